package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/thesisdesk/backend/conf"
	"github.com/thesisdesk/backend/monosrvc"
	"github.com/thesisdesk/backend/proglist"
	"github.com/thesisdesk/backend/s3bucket"
)

func runReconcile(grace time.Duration, purge bool) error {
	ctx := context.Background()

	srvc, _, pool, err := buildSrvc(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	log.Info().Dur("grace", grace).Bool("purge", purge).Msg("starting reconciliation")

	report, err := srvc.ReconcileUploads(ctx, grace, purge)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	log.Info().
		Int("checked", report.Checked).
		Int("marked_stored", len(report.MarkedStored)).
		Int("orphans", len(report.Orphans)).
		Int("purged", len(report.Purged)).
		Int("stray_keys", len(report.StrayKeys)).
		Int("deleted_keys", len(report.DeletedKeys)).
		Msg("reconciliation finished")

	for _, id := range report.Orphans {
		log.Warn().Str("monograph_id", id.String()).Msg("orphaned record without its PDF")
	}
	for _, key := range report.StrayKeys {
		log.Warn().Str("key", key).Msg("stray bucket object without an owning record")
	}

	return nil
}

// buildSrvc wires the registry service against Postgres and S3. The caller
// owns closing the returned pool.
func buildSrvc(ctx context.Context) (*monosrvc.MonographSrvc, *s3bucket.S3Bucket, *pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, conf.GetPgConnStrFromEnv())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	bucketName := conf.S3Bucket()
	if bucketName == "" {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("S3_MONOGRAPH_BUCKET is not set")
	}
	bucket, err := s3bucket.NewS3Bucket(conf.S3Region(), bucketName)
	if err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("failed to set up s3 bucket: %w", err)
	}

	repo := monosrvc.NewPgRepo(pool)
	srvc := monosrvc.NewMonographSrvc(repo, proglist.NewStaticLister(nil), bucket, nil)
	return srvc, bucket, pool, nil
}
