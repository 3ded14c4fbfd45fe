package predictions

import (
	"time"

	"career-predictor/internal/projection"
	"career-predictor/internal/resumeparse"
)

// StoredPrediction is one persisted projection run.
type StoredPrediction struct {
	ID            string                `json:"id"`
	ParseID       string                `json:"parseId"`
	TargetRole    string                `json:"targetRole"`
	TimeframeDays int                   `json:"timeframeDays"`
	RoleFallback  bool                  `json:"roleFallback"`
	LowConfidence bool                  `json:"lowConfidence"`
	Confidence    float64               `json:"confidence"`
	Record        resumeparse.Record    `json:"record"`
	Prediction    projection.Prediction `json:"prediction"`
	ProcessingMs  float64               `json:"processingTime"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// Summary is the history listing view of a StoredPrediction.
type Summary struct {
	ID             string    `json:"id"`
	ParseID        string    `json:"parseId"`
	TargetRole     string    `json:"targetRole"`
	TimeframeDays  int       `json:"timeframeDays"`
	ReadinessScore int       `json:"readinessScore"`
	FutureSalary   float64   `json:"futureSalary"`
	LowConfidence  bool      `json:"lowConfidence"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (p StoredPrediction) Summary() Summary {
	return Summary{
		ID:             p.ID,
		ParseID:        p.ParseID,
		TargetRole:     p.TargetRole,
		TimeframeDays:  p.TimeframeDays,
		ReadinessScore: p.Prediction.JobRoleReadiness.ReadinessScore,
		FutureSalary:   p.Prediction.Salary.Future,
		LowConfidence:  p.LowConfidence,
		CreatedAt:      p.CreatedAt,
	}
}

// Result is the outcome of one Analyze call.
type Result struct {
	PredictionID   string
	ParseID        string
	Record         resumeparse.Record
	Prediction     projection.Prediction
	RoleFallback   bool
	LowConfidence  bool
	Cached         bool
	Persisted      bool
	ProcessingTime time.Duration
}

// ListFilter narrows a history query. Limit 0 selects the default page size.
type ListFilter struct {
	ParseID string
	Limit   int
	Offset  int
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func (f ListFilter) normalized() ListFilter {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
