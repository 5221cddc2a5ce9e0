package generations

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a generation record. Empty contact fields are stored as
// NULL, never as empty strings.
func (r *PGRepo) Create(ctx context.Context, gen Generation) error {
	const query = `
INSERT INTO generations (
    id, resume_text, cover_letter, first_name, last_name, address, phone, email, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		gen.ID,
		gen.ResumeText,
		gen.CoverLetter,
		nullable(gen.FirstName),
		nullable(gen.LastName),
		nullable(gen.Address),
		nullable(gen.Phone),
		nullable(gen.Email),
		gen.CreatedAt,
	)
	return err
}

// GetByID returns a generation by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Generation, error) {
	const query = `
SELECT id, resume_text, cover_letter, first_name, last_name, address, phone, email, created_at
FROM generations
WHERE id = $1
LIMIT 1`
	gen, err := scanGeneration(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Generation{}, ErrNotFound
		}
		return Generation{}, err
	}
	return gen, nil
}

// ListRecent lists generations newest-first.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Generation, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	const query = `
SELECT id, resume_text, cover_letter, first_name, last_name, address, phone, email, created_at
FROM generations
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		gen, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, gen)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGeneration(row rowScanner) (Generation, error) {
	var (
		gen       Generation
		firstName sql.NullString
		lastName  sql.NullString
		address   sql.NullString
		phone     sql.NullString
		email     sql.NullString
	)
	err := row.Scan(
		&gen.ID,
		&gen.ResumeText,
		&gen.CoverLetter,
		&firstName,
		&lastName,
		&address,
		&phone,
		&email,
		&gen.CreatedAt,
	)
	if err != nil {
		return Generation{}, err
	}
	gen.FirstName = firstName.String
	gen.LastName = lastName.String
	gen.Address = address.String
	gen.Phone = phone.String
	gen.Email = email.String
	return gen, nil
}

func nullable(s string) sql.NullString {
	trimmed := strings.TrimSpace(s)
	return sql.NullString{String: trimmed, Valid: trimmed != ""}
}

var _ Repo = (*PGRepo)(nil)
