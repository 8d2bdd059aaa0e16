package monosrvc

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/thesisdesk/backend/eventq"
	"github.com/thesisdesk/backend/logger"
	"github.com/thesisdesk/backend/proglist"
	"github.com/thesisdesk/backend/srvcerror"
)

type CreateMonographParams struct {
	Title           string
	PublicationDate time.Time
	AuthorID        string
	DegreeProgramID string
}

// CreateMonograph validates params, persists a new registered record and
// announces it on the event queue. The record's PdfKey is fixed here; the
// upload itself happens later against a minted target.
func (s *MonographSrvc) CreateMonograph(ctx context.Context, p CreateMonographParams) (*Monograph, error) {
	if err := validateTitle(p.Title); err != nil {
		return nil, err
	}
	if err := validatePublicationDate(p.PublicationDate); err != nil {
		return nil, err
	}
	if err := validateAuthorID(p.AuthorID); err != nil {
		return nil, err
	}

	programs, err := s.programs.ListDegreePrograms(ctx)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}
	if !proglist.Exists(programs, p.DegreeProgramID) {
		return nil, proglist.ErrInvalidDegreeProgram()
	}

	now := s.clock()
	m := Monograph{
		ID:              s.idGen(),
		Title:           p.Title,
		PublicationDate: p.PublicationDate,
		AuthorID:        p.AuthorID,
		DegreeProgramID: p.DegreeProgramID,
		Status:          StatusRegistered,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	m.PdfKey = fmt.Sprintf("%s%s.pdf", pdfKeyPrefix, m.ID)

	if err := s.repo.Store(ctx, m); err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}

	// The record is the source of truth; a lost event only delays downstream
	// indexing, so publish failures are logged and not surfaced.
	err = s.events.Publish(ctx, eventq.Event{
		Type:        eventq.EvMonographRegistered,
		MonographID: m.ID.String(),
		OccurredAt:  now,
	})
	if err != nil {
		logger.FromContext(ctx).Warn("failed to publish registration event",
			"monograph_id", m.ID, "error", err)
	}

	return &m, nil
}

func validateTitle(title string) error {
	// The limit counts characters, so multibyte titles get the full budget.
	const maxTitleLength = 255
	if title == "" {
		return newErrTitleEmpty()
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return newErrTitleTooLong(maxTitleLength)
	}
	return nil
}

func validatePublicationDate(date time.Time) error {
	if date.IsZero() {
		return newErrPublicationDateMissing()
	}
	return nil
}

func validateAuthorID(authorID string) error {
	const minLength = 6
	const maxLength = 10
	if len(authorID) < minLength || len(authorID) > maxLength {
		return newErrAuthorIDInvalid()
	}
	for _, r := range authorID {
		if r < '0' || r > '9' {
			return newErrAuthorIDInvalid()
		}
	}
	return nil
}
