package monosrvc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thesisdesk/backend/eventq"
	"github.com/thesisdesk/backend/logger"
)

// ReconcileReport summarizes one reconciliation pass.
type ReconcileReport struct {
	Checked      int
	MarkedStored []uuid.UUID
	Orphans      []uuid.UUID
	Purged       []uuid.UUID

	// bucket objects under the PDF prefix with no owning record
	StrayKeys   []string
	DeletedKeys []string
}

// ReconcileUploads resolves the window between record creation and upload:
// a client that created a record and then failed never retries against that
// record, so somebody has to settle its fate. For every registered record,
// if its PDF is in the bucket the record is marked stored; if the PDF is
// absent and the record is older than grace it is reported as an orphan, and
// purged when purge is set. The sweep also walks the bucket the other way:
// objects under the PDF prefix that no record owns are reported as stray,
// and deleted when purge is set.
func (s *MonographSrvc) ReconcileUploads(ctx context.Context, grace time.Duration, purge bool) (ReconcileReport, error) {
	log := logger.FromContext(ctx)
	report := ReconcileReport{}

	monos, err := s.repo.List(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to list monographs: %w", err)
	}

	now := s.clock()
	for _, m := range monos {
		if m.Status != StatusRegistered {
			continue
		}
		report.Checked++

		exists, err := s.storage.Exists(ctx, m.PdfKey)
		if err != nil {
			return report, fmt.Errorf("failed to check %s: %w", m.PdfKey, err)
		}

		if exists {
			if err := ValidateTransition(m.Status, StatusStored); err != nil {
				return report, err
			}
			if err := s.repo.UpdateStatus(ctx, m.ID, StatusStored, now); err != nil {
				return report, fmt.Errorf("failed to mark %s stored: %w", m.ID, err)
			}
			report.MarkedStored = append(report.MarkedStored, m.ID)

			err = s.events.Publish(ctx, eventq.Event{
				Type:        eventq.EvMonographStored,
				MonographID: m.ID.String(),
				OccurredAt:  now,
			})
			if err != nil {
				log.Warn("failed to publish stored event", "monograph_id", m.ID, "error", err)
			}
			continue
		}

		if now.Sub(m.CreatedAt) < grace {
			// Recent record, the upload may still be in flight.
			continue
		}

		report.Orphans = append(report.Orphans, m.ID)
		log.Info("orphaned monograph record", "monograph_id", m.ID,
			"created_at", m.CreatedAt, "title", m.Title)

		if purge {
			if err := s.repo.Delete(ctx, m.ID); err != nil {
				return report, fmt.Errorf("failed to purge %s: %w", m.ID, err)
			}
			report.Purged = append(report.Purged, m.ID)
		}
	}

	owned := make(map[string]bool, len(monos))
	for _, m := range monos {
		owned[m.PdfKey] = true
	}

	keys, err := s.storage.ListKeys(ctx, pdfKeyPrefix)
	if err != nil {
		return report, fmt.Errorf("failed to list bucket keys: %w", err)
	}
	for _, key := range keys {
		if owned[key] {
			continue
		}
		report.StrayKeys = append(report.StrayKeys, key)
		log.Info("stray object without an owning record", "key", key)

		if purge {
			if err := s.storage.Delete(ctx, key); err != nil {
				return report, fmt.Errorf("failed to delete stray object %s: %w", key, err)
			}
			report.DeletedKeys = append(report.DeletedKeys, key)
		}
	}

	return report, nil
}
