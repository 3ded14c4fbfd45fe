package predictions

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"career-predictor/internal/extract"
	"career-predictor/internal/projection"
	"career-predictor/internal/resumeparse"
	"career-predictor/internal/shared/server/middleware"
	"career-predictor/internal/shared/server/respond"
	"career-predictor/internal/shared/util"
)

const defaultMaxUploadBytes = 5 << 20

// Handler wires HTTP handlers to the predictions service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches prediction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.POST("/analyze/upload", h.analyzeUpload)
	rg.POST("/extract", h.extract)
	rg.GET("/predictions", h.listPredictions)
	rg.GET("/predictions/:id", h.getPrediction)
	rg.GET("/roles", h.listRoles)
}

func (h *Handler) analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Failure(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, err)
		return
	}
	tf, err := req.Timeframe()
	if err != nil {
		writeError(c, err)
		return
	}
	h.run(c, AnalyzeInput{
		ResumeText: req.ResumeText,
		TargetRole: req.TargetRole,
		Timeframe:  tf,
		Enrichment: req.Enrichment(),
	}, nil)
}

func (h *Handler) analyzeUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			respond.Failure(c, http.StatusRequestEntityTooLarge, "File exceeds the upload size limit")
			return
		}
		respond.Failure(c, http.StatusBadRequest, "Missing required field: file is required")
		return
	}
	targetRole := strings.TrimSpace(c.PostForm("targetRole"))
	if targetRole == "" {
		writeError(c, ErrMissingFields)
		return
	}
	tf := projection.DefaultTimeframe
	if raw := strings.TrimSpace(c.PostForm("timeGoal")); raw != "" {
		days, convErr := strconv.Atoi(raw)
		if convErr != nil || days == 0 {
			writeError(c, ErrInvalidTimeGoal)
			return
		}
		if tf, err = projection.ParseTimeframe(days); err != nil {
			writeError(c, ErrInvalidTimeGoal)
			return
		}
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Failure(c, http.StatusBadRequest, "Unable to read uploaded file")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		respond.Failure(c, http.StatusBadRequest, "Unable to read uploaded file")
		return
	}

	text, err := extract.ExtractTextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFile) {
			writeError(c, err)
			return
		}
		respond.Failure(c, http.StatusUnprocessableEntity, "Unable to extract text from the uploaded file")
		return
	}
	if strings.TrimSpace(text) == "" {
		writeError(c, ErrEmptyDocument)
		return
	}

	fileName, err := util.CleanFileName(fileHeader.Filename)
	if err != nil {
		fileName = "resume"
	}
	h.run(c, AnalyzeInput{ResumeText: text, TargetRole: targetRole, Timeframe: tf}, gin.H{
		"fileName":       fileName,
		"extractedChars": len([]rune(text)),
	})
}

func (h *Handler) run(c *gin.Context, in AnalyzeInput, extra gin.H) {
	res, err := h.Svc.Analyze(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.PredictionIDKey, res.PredictionID)
	c.Set(middleware.ParseIDKey, res.ParseID)
	c.Set(middleware.TargetRoleKey, res.Prediction.TargetRole)
	if res.Cached {
		c.Set(middleware.CacheStatusKey, "hit")
	} else {
		c.Set(middleware.CacheStatusKey, "miss")
	}

	body := gin.H{
		"prediction":     res.Prediction,
		"processingTime": res.ProcessingTime.Milliseconds(),
		"predictionId":   res.PredictionID,
		"parseId":        res.ParseID,
		"roleFallback":   res.RoleFallback,
		"lowConfidence":  res.LowConfidence,
		"cached":         res.Cached,
		"confidence":     res.Record.Confidence,
	}
	for k, v := range extra {
		body[k] = v
	}
	respond.Success(c, body)
}

func (h *Handler) extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Failure(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, err)
		return
	}
	rec, err := h.Svc.Extract(c.Request.Context(), req.ResumeText)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.ParseIDKey, rec.ParseID)
	respond.Success(c, gin.H{
		"record":        rec,
		"lowConfidence": rec.Confidence.Overall < resumeparse.LowConfidence,
	})
}

func (h *Handler) getPrediction(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respond.Failure(c, http.StatusBadRequest, "prediction id is required")
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.PredictionIDKey, p.ID)
	respond.Success(c, gin.H{"prediction": p})
}

func (h *Handler) listPredictions(c *gin.Context) {
	filter := ListFilter{ParseID: strings.TrimSpace(c.Query("parseId"))}
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			filter.Limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			filter.Offset = parsed
		}
	}
	filter = filter.normalized()

	items, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]Summary, 0, len(items))
	for _, p := range items {
		out = append(out, p.Summary())
	}
	respond.Success(c, gin.H{
		"predictions": out,
		"limit":       filter.Limit,
		"offset":      filter.Offset,
	})
}

type roleView struct {
	Name         string   `json:"name"`
	Aliases      []string `json:"aliases"`
	BaseSalary   float64  `json:"baseSalary"`
	Multiplier   float64  `json:"multiplier"`
	Skills       []string `json:"skills"`
	Requirements []string `json:"requirements"`
}

func (h *Handler) listRoles(c *gin.Context) {
	roles := projection.Roles()
	out := make([]roleView, 0, len(roles))
	for _, r := range roles {
		p := r.Profile()
		out = append(out, roleView{
			Name:         p.Name,
			Aliases:      p.Aliases,
			BaseSalary:   p.BaseSalary,
			Multiplier:   p.Multiplier,
			Skills:       p.Skills,
			Requirements: p.Requirements,
		})
	}
	respond.Success(c, gin.H{
		"roles":       out,
		"defaultRole": projection.DefaultRole.String(),
		"timeframes":  []int{projection.Days30.Days(), projection.Days60.Days(), projection.Days90.Days()},
	})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrMissingResumeText),
		errors.Is(err, ErrInvalidTimeGoal),
		errors.Is(err, ErrInvalidScores),
		errors.Is(err, ErrEmptyDocument):
		respond.Failure(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, extract.ErrUnsupportedFile):
		respond.Failure(c, http.StatusUnsupportedMediaType, "Unsupported file type: upload a PDF, DOCX or TXT file")
	case errors.Is(err, ErrNotFound):
		respond.Failure(c, http.StatusNotFound, ErrNotFound.Error())
	default:
		respond.Failure(c, http.StatusInternalServerError, "Failed to generate prediction")
	}
}
