package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/thesisdesk/backend/monosrvc"
)

// runExport streams every monograph record to a zstd-compressed JSONL file,
// one record per line. With pdfDir set, each stored record's PDF is fetched
// from the bucket alongside the metadata.
func runExport(out string, pdfDir string) error {
	ctx := context.Background()

	srvc, bucket, pool, err := buildSrvc(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	monos, err := srvc.ListMonographs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list monographs: %w", err)
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	zw, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}

	enc := json.NewEncoder(zw)
	for _, m := range monos {
		if err := enc.Encode(m); err != nil {
			zw.Close()
			return fmt.Errorf("failed to encode monograph %s: %w", m.ID, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish zstd stream: %w", err)
	}

	pdfs := 0
	if pdfDir != "" {
		if err := os.MkdirAll(pdfDir, 0755); err != nil {
			return fmt.Errorf("failed to create pdf directory: %w", err)
		}
		for _, m := range monos {
			if m.Status != monosrvc.StatusStored {
				continue
			}
			content, err := bucket.Download(ctx, m.PdfKey)
			if err != nil {
				return fmt.Errorf("failed to download %s: %w", m.PdfKey, err)
			}
			dest := filepath.Join(pdfDir, m.ID.String()+".pdf")
			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", dest, err)
			}
			pdfs++
		}
	}

	log.Info().Int("records", len(monos)).Int("pdfs", pdfs).Str("out", out).Msg("export finished")
	return nil
}
