package monosrvc

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status tracks whether a monograph's PDF has reached the bucket. A record is
// created as registered and becomes stored once the upload is confirmed,
// either by the reconciler or never (an orphan).
type Status string

const (
	StatusRegistered Status = "registered"
	StatusStored     Status = "stored"
)

func CanTransition(from, to Status) bool {
	switch from {
	case StatusRegistered:
		return to == StatusStored
	case StatusStored:
		return false
	default:
		return false
	}
}

func ValidateTransition(from, to Status) error {
	if from == to {
		return nil
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("invalid monograph status transition: %s -> %s", from, to)
	}
	return nil
}

// Monograph is the registered academic document record. PdfKey is fixed at
// creation time; upload targets are always minted for that key.
type Monograph struct {
	ID              uuid.UUID
	Title           string
	PublicationDate time.Time
	AuthorID        string
	DegreeProgramID string
	PdfKey          string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
