package monosrvc

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/thesisdesk/backend/srvcerror"
)

const downloadURLTTL = 15 * time.Minute

// MintDownloadURL returns a presigned GET URL for a stored monograph's PDF.
// Records still waiting for their upload have nothing to serve.
func (s *MonographSrvc) MintDownloadURL(ctx context.Context, id uuid.UUID) (*UploadTarget, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}
	if m == nil {
		return nil, newErrMonographNotFound()
	}
	if m.Status != StatusStored {
		return nil, newErrPdfNotStored()
	}

	url, expiresAt, err := s.storage.PresignedGetURL(ctx, m.PdfKey, downloadURLTTL)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}

	return &UploadTarget{
		URL:       url,
		Method:    http.MethodGet,
		Key:       m.PdfKey,
		ExpiresAt: expiresAt,
	}, nil
}
