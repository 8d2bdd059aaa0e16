package monosrvc

import (
	"context"

	"github.com/google/uuid"

	"github.com/thesisdesk/backend/srvcerror"
)

func (s *MonographSrvc) GetMonograph(ctx context.Context, id uuid.UUID) (*Monograph, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}
	if m == nil {
		return nil, newErrMonographNotFound()
	}
	return m, nil
}

// ListMonographs returns all records, newest first.
func (s *MonographSrvc) ListMonographs(ctx context.Context) ([]Monograph, error) {
	monos, err := s.repo.List(ctx)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}
	return monos, nil
}
