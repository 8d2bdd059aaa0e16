package monosrvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) *pgRepo {
	return &pgRepo{pool: pool}
}

// Store inserts a new monograph row.
func (r *pgRepo) Store(ctx context.Context, m Monograph) error {
	insertQuery := `
		INSERT INTO monographs (
			id, title, publication_date, author_id, degree_program_id,
			pdf_key, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, insertQuery,
		m.ID,
		m.Title,
		m.PublicationDate,
		m.AuthorID,
		m.DegreeProgramID,
		m.PdfKey,
		string(m.Status),
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert monograph: %w", err)
	}

	return nil
}

// Get retrieves a monograph by id. Returns nil when no row matches.
func (r *pgRepo) Get(ctx context.Context, id uuid.UUID) (*Monograph, error) {
	selectQuery := `
		SELECT id, title, publication_date, author_id, degree_program_id,
			pdf_key, status, created_at, updated_at
		FROM monographs
		WHERE id = $1
	`
	var m Monograph
	var status string
	err := r.pool.QueryRow(ctx, selectQuery, id).Scan(
		&m.ID,
		&m.Title,
		&m.PublicationDate,
		&m.AuthorID,
		&m.DegreeProgramID,
		&m.PdfKey,
		&status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query monograph: %w", err)
	}
	m.Status = Status(status)

	return &m, nil
}

// List retrieves all monographs, newest first.
func (r *pgRepo) List(ctx context.Context) ([]Monograph, error) {
	listQuery := `
		SELECT id, title, publication_date, author_id, degree_program_id,
			pdf_key, status, created_at, updated_at
		FROM monographs
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, listQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query monographs: %w", err)
	}
	defer rows.Close()

	var monos []Monograph
	for rows.Next() {
		var m Monograph
		var status string
		err := rows.Scan(
			&m.ID,
			&m.Title,
			&m.PublicationDate,
			&m.AuthorID,
			&m.DegreeProgramID,
			&m.PdfKey,
			&status,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monograph: %w", err)
		}
		m.Status = Status(status)
		monos = append(monos, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monographs: %w", err)
	}

	return monos, nil
}

// UpdateStatus implements Repo
func (r *pgRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, updatedAt time.Time) error {
	updateQuery := `
		UPDATE monographs
		SET status = $1, updated_at = $2
		WHERE id = $3
	`
	_, err := r.pool.Exec(ctx, updateQuery, string(status), updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update monograph status: %w", err)
	}
	return nil
}

// Delete implements Repo
func (r *pgRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM monographs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete monograph: %w", err)
	}
	return nil
}
