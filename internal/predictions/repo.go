package predictions

import "context"

// Repo defines persistence operations for prediction history.
type Repo interface {
	Create(ctx context.Context, p StoredPrediction) error
	GetByID(ctx context.Context, id string) (StoredPrediction, error)
	List(ctx context.Context, filter ListFilter) ([]StoredPrediction, error)
}
