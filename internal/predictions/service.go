package predictions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"career-predictor/internal/projection"
	"career-predictor/internal/resumeparse"
	"career-predictor/internal/shared/metrics"
	"career-predictor/internal/shared/telemetry"
)

// Service orchestrates extraction, projection, caching and persistence.
type Service struct {
	Repo      Repo
	Cache     Cache
	Projector *projection.Projector
	Schema    *SchemaValidator
	NewID     func() string
}

// NewService wires a Service. A nil projector uses the wall clock and a nil
// cache disables caching.
func NewService(repo Repo, cache Cache, projector *projection.Projector, schema *SchemaValidator) *Service {
	if projector == nil {
		projector = projection.NewProjector(nil)
	}
	return &Service{
		Repo:      repo,
		Cache:     cache,
		Projector: projector,
		Schema:    schema,
		NewID:     uuid.NewString,
	}
}

// AnalyzeInput is a validated analysis request.
type AnalyzeInput struct {
	ResumeText string
	TargetRole string
	Timeframe  projection.Timeframe
	Enrichment projection.Enrichment
}

// Analyze extracts the resume, projects it toward the target role and
// records the run. Persistence failures are logged and do not fail the call.
func (s *Service) Analyze(ctx context.Context, in AnalyzeInput) (Result, error) {
	start := time.Now()
	metrics.IncPredictionStarted()

	role, known := projection.ParseRole(in.TargetRole)
	tf := in.Timeframe
	if tf == 0 {
		tf = projection.DefaultTimeframe
	}

	rec := s.extract(in.ResumeText)
	low := rec.Confidence.Overall < resumeparse.LowConfidence
	if !known {
		metrics.IncRoleFallback()
		telemetry.Warn("prediction.role_fallback", map[string]any{
			"requested_role": in.TargetRole,
			"fallback_role":  role.String(),
		})
	}

	pred, cached, err := s.predict(ctx, rec, role, tf, in.Enrichment)
	if err != nil {
		metrics.IncPredictionFailed()
		telemetry.Error("prediction.failed", map[string]any{
			"parse_id":    rec.ParseID,
			"target_role": role.String(),
			"error":       err,
		})
		return Result{}, err
	}

	res := Result{
		PredictionID:  s.newID(),
		ParseID:       rec.ParseID,
		Record:        rec,
		Prediction:    pred,
		RoleFallback:  !known,
		LowConfidence: low,
		Cached:        cached,
	}
	res.ProcessingTime = time.Since(start)
	res.Persisted = s.persist(ctx, res)

	metrics.IncPredictionCompleted(pred.TargetRole, pred.TimeframeDays)
	metrics.ObservePredictionDurationMs(durationMs(res.ProcessingTime))
	telemetry.Info("prediction.completed", map[string]any{
		"prediction_id":  res.PredictionID,
		"parse_id":       res.ParseID,
		"target_role":    pred.TargetRole,
		"timeframe_days": pred.TimeframeDays,
		"cached":         cached,
		"low_confidence": low,
		"persisted":      res.Persisted,
		"duration_ms":    durationMs(res.ProcessingTime),
	})
	return res, nil
}

// Extract runs only the resume extractor.
func (s *Service) Extract(ctx context.Context, text string) (resumeparse.Record, error) {
	if err := ctx.Err(); err != nil {
		return resumeparse.Record{}, err
	}
	return s.extract(text), nil
}

// Get returns a stored prediction.
func (s *Service) Get(ctx context.Context, id string) (StoredPrediction, error) {
	if s.Repo == nil {
		return StoredPrediction{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns stored predictions newest first.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]StoredPrediction, error) {
	if s.Repo == nil {
		return []StoredPrediction{}, nil
	}
	return s.Repo.List(ctx, filter.normalized())
}

func (s *Service) extract(text string) resumeparse.Record {
	rec := resumeparse.Parse(text)
	metrics.IncExtraction()
	if rec.Confidence.Overall < resumeparse.LowConfidence {
		metrics.IncLowConfidence()
		telemetry.Warn("extraction.low_confidence", map[string]any{
			"parse_id":   rec.ParseID,
			"confidence": rec.Confidence.Overall,
		})
	}
	return rec
}

func (s *Service) predict(ctx context.Context, rec resumeparse.Record, role projection.Role, tf projection.Timeframe, extra projection.Enrichment) (projection.Prediction, bool, error) {
	key := CacheKey(rec, role, tf, s.Projector.Now().Year(), extra)
	useCache := s.Cache != nil && key != ""
	if useCache {
		cached, ok, err := s.Cache.Get(ctx, key)
		if err != nil {
			telemetry.Warn("cache.get_failed", map[string]any{"key": key, "error": err})
		}
		metrics.ObserveCache(ok)
		if ok {
			return cached, true, nil
		}
	}

	pred := s.Projector.Project(rec, role, tf, extra)
	if err := pred.Validate(); err != nil {
		return projection.Prediction{}, false, fmt.Errorf("%w: %v", ErrInvalidPrediction, err)
	}
	if s.Schema != nil {
		if err := s.Schema.Validate(pred); err != nil {
			return projection.Prediction{}, false, fmt.Errorf("%w: %v", ErrInvalidPrediction, err)
		}
	}

	if useCache {
		if err := s.Cache.Set(ctx, key, pred); err != nil {
			telemetry.Warn("cache.set_failed", map[string]any{"key": key, "error": err})
		}
	}
	return pred, false, nil
}

func (s *Service) persist(ctx context.Context, res Result) bool {
	if s.Repo == nil {
		return false
	}
	stored := StoredPrediction{
		ID:            res.PredictionID,
		ParseID:       res.ParseID,
		TargetRole:    res.Prediction.TargetRole,
		TimeframeDays: res.Prediction.TimeframeDays,
		RoleFallback:  res.RoleFallback,
		LowConfidence: res.LowConfidence,
		Confidence:    res.Record.Confidence.Overall,
		Record:        res.Record,
		Prediction:    res.Prediction,
		ProcessingMs:  durationMs(res.ProcessingTime),
		CreatedAt:     s.Projector.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, stored); err != nil {
		metrics.IncPersistFailed()
		level := telemetry.Error
		if errors.Is(err, context.Canceled) {
			level = telemetry.Warn
		}
		level("prediction.persist_failed", map[string]any{
			"prediction_id": res.PredictionID,
			"error":         err,
		})
		return false
	}
	return true
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func durationMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
