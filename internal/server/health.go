package server

import (
	"context"
	"errors"

	"github.com/vanshika/degrees/backend/internal/dataset"
)

// HealthService defines behaviour for readiness probes.
type HealthService interface {
	Probe(ctx context.Context) error
}

// ErrDatasetEmpty indicates the dataset loaded zero people.
var ErrDatasetEmpty = errors.New("dataset holds no people")

// DatasetHealthService reports readiness based on the loaded dataset.
type DatasetHealthService struct {
	Dataset *dataset.Dataset
}

// Probe implements the HealthService interface.
func (s DatasetHealthService) Probe(context.Context) error {
	if s.Dataset == nil || s.Dataset.PeopleCount() == 0 {
		return ErrDatasetEmpty
	}
	return nil
}
