package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
)

const dateLayout = time.DateOnly

const (
	querySchema = `
		CREATE TABLE IF NOT EXISTS availabilities (
			id VARCHAR(255) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			from_date DATE NOT NULL,
			to_date DATE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`

	queryList = `
		SELECT id, name, from_date, to_date, created_at
		FROM availabilities
		ORDER BY created_at ASC, id ASC`

	queryInsert = `
		INSERT INTO availabilities (id, name, from_date, to_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	queryUpdate = `
		UPDATE availabilities
		SET name = COALESCE($2, name),
			from_date = COALESCE($3::date, from_date),
			to_date = COALESCE($4::date, to_date)
		WHERE id = $1
		RETURNING id, name, from_date, to_date, created_at`

	queryDelete = `DELETE FROM availabilities WHERE id = $1`

	queryFindByID = `
		SELECT id, name, from_date, to_date, created_at
		FROM availabilities
		WHERE id = $1`
)

// PostgresRepository implements Repository on the availabilities table.
type PostgresRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

func NewPostgresRepository(db DatabaseIface, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		db:     db,
		logger: logger.With("component", "postgres_repository"),
	}
}

// EnsureSchema creates the availabilities table if it does not exist.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, querySchema); err != nil {
		return fmt.Errorf("failed to create availabilities table: %w", err)
	}

	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, fmt.Errorf("failed to list availabilities: %w", err)
	}
	defer rows.Close()

	records := []Record{}

	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}

		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate availabilities: %w", err)
	}

	return records, nil
}

func (r *PostgresRepository) Add(ctx context.Context, record Record) error {
	if record.ID == "" {
		return errEmptyID("PostgresRepository.Add")
	}

	_, err := r.db.Exec(ctx, queryInsert,
		record.ID,
		record.Name,
		record.From,
		record.To,
		record.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert availability", "id", record.ID, "error", err)
		return fmt.Errorf("failed to insert availability: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, patch Patch) (*Record, error) {
	if id == "" {
		return nil, errEmptyID("PostgresRepository.Update")
	}

	record, err := scanRecord(
		r.db.QueryRow(ctx, queryUpdate,
			id,
			patch.Name,
			patch.From,
			patch.To,
		),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to update availability: %w", err)
	}

	return record, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errEmptyID("PostgresRepository.Delete")
	}

	tag, err := r.db.Exec(ctx, queryDelete, id)
	if err != nil {
		return fmt.Errorf("failed to delete availability: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, errEmptyID("PostgresRepository.FindByID")
	}

	record, err := scanRecord(r.db.QueryRow(ctx, queryFindByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to find availability: %w", err)
	}

	return record, nil
}

func scanRecord(row pgx.Row) (*Record, error) {
	var (
		record   Record
		from, to time.Time
	)

	if err := row.Scan(&record.ID, &record.Name, &from, &to, &record.CreatedAt); err != nil {
		return nil, err
	}

	record.From = from.Format(dateLayout)
	record.To = to.Format(dateLayout)

	return &record, nil
}

var _ Repository = (*PostgresRepository)(nil)
