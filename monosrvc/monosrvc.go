// Package monosrvc is the monograph registry service: it creates records,
// mints presigned upload targets for their PDFs, and reconciles records whose
// upload never arrived.
package monosrvc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/thesisdesk/backend/eventq"
	"github.com/thesisdesk/backend/proglist"
)

// ObjStorage is the bucket surface the service needs. s3bucket.S3Bucket
// implements it.
type ObjStorage interface {
	PresignedPutURL(ctx context.Context, key string, contentType string, ttl time.Duration) (string, time.Time, error)
	PresignedGetURL(ctx context.Context, key string, ttl time.Duration) (string, time.Time, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}

type MonographSrvc struct {
	repo     Repo
	programs proglist.Lister
	storage  ObjStorage
	events   eventq.Publisher

	// overridable for tests
	idGen func() uuid.UUID
	clock func() time.Time
}

func NewMonographSrvc(
	repo Repo,
	programs proglist.Lister,
	storage ObjStorage,
	events eventq.Publisher,
) *MonographSrvc {
	if events == nil {
		events = eventq.NoopPublisher{}
	}
	return &MonographSrvc{
		repo:     repo,
		programs: programs,
		storage:  storage,
		events:   events,
		idGen:    uuid.New,
		clock:    time.Now,
	}
}
