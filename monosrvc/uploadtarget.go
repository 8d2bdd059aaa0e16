package monosrvc

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/thesisdesk/backend/srvcerror"
)

// uploadURLTTL bounds how long a minted target stays writable.
const uploadURLTTL = 15 * time.Minute

const pdfMediaType = "application/pdf"

// pdfKeyPrefix is the bucket namespace every monograph PDF lives under.
const pdfKeyPrefix = "monographs/"

// UploadTarget is a time-limited write destination bound to one record.
// Minted on demand, never stored.
type UploadTarget struct {
	URL       string
	Method    string
	Key       string
	ExpiresAt time.Time
}

// MintUploadTarget returns a presigned PUT URL for the record's PDF key.
// The title must match the record when provided; a mismatch usually means the
// client is mixing up two registration attempts.
func (s *MonographSrvc) MintUploadTarget(ctx context.Context, id uuid.UUID, title string) (*UploadTarget, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}
	if m == nil {
		return nil, newErrMonographNotFound()
	}
	if title != "" && title != m.Title {
		return nil, newErrTitleMismatch()
	}

	url, expiresAt, err := s.storage.PresignedPutURL(ctx, m.PdfKey, pdfMediaType, uploadURLTTL)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}

	return &UploadTarget{
		URL:       url,
		Method:    http.MethodPut,
		Key:       m.PdfKey,
		ExpiresAt: expiresAt,
	}, nil
}
