package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"career-predictor/internal/bootstrap"
	"career-predictor/internal/shared/config"
	"career-predictor/internal/shared/telemetry"
)

type handlerFunc func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// newHandler builds the router once per sandbox. A failed build is answered
// with a 503 JSON response on every invocation.
func newHandler(build func() (*gin.Engine, error)) handlerFunc {
	adapter := sync.OnceValues(func() (*ginadapter.GinLambdaV2, error) {
		router, err := build()
		if err != nil {
			return nil, err
		}
		return ginadapter.NewV2(router), nil
	})
	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		proxy, err := adapter()
		if err != nil {
			telemetry.Error("lambda.bootstrap_failed", map[string]any{
				"error":      err,
				"request_id": req.RequestContext.RequestID,
				"route":      req.RouteKey,
			})
			return unavailable(), nil
		}
		return proxy.ProxyWithContext(ctx, req)
	}
}

func unavailable() events.APIGatewayV2HTTPResponse {
	body, _ := json.Marshal(map[string]any{"success": false, "error": "Service unavailable"})
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusServiceUnavailable,
		Body:       string(body),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

func buildRouter() (*gin.Engine, error) {
	app, err := bootstrap.Build(config.Load())
	if err != nil {
		return nil, err
	}
	telemetry.Info("lambda.ready", map[string]any{"env": app.Config.Env})
	return app.Router, nil
}

func main() {
	lambda.Start(newHandler(buildRouter))
}
