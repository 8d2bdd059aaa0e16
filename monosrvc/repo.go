package monosrvc

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repo persists monograph records. Get returns nil without an error when the
// record does not exist; List returns records newest first.
type Repo interface {
	Store(ctx context.Context, m Monograph) error
	Get(ctx context.Context, id uuid.UUID) (*Monograph, error)
	List(ctx context.Context) ([]Monograph, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, updatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}
