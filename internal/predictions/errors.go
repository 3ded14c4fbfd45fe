package predictions

import "errors"

// Client-facing messages double as the error text returned by the API.
var (
	ErrNotFound          = errors.New("Prediction not found")
	ErrMissingFields     = errors.New("Missing required fields: resumeText and targetRole are required")
	ErrMissingResumeText = errors.New("Missing required field: resumeText is required")
	ErrInvalidTimeGoal   = errors.New("timeGoal must be one of 30, 60, 90")
	ErrInvalidScores     = errors.New("interviewScores values must be between 0 and 100")
	ErrEmptyDocument     = errors.New("No text could be extracted from the uploaded file")
	ErrInvalidPrediction = errors.New("prediction failed validation")
)
