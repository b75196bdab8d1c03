package preference

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals that a client has never chosen a display currency.
var ErrNotFound = errors.New("currency preference not found")

// Preference is the single piece of state persisted across sessions: the
// display currency a client last selected.
type Preference struct {
	ClientID     string
	CurrencyCode string
	UpdatedAt    time.Time
}

// Repository persists currency preferences.
type Repository interface {
	Get(ctx context.Context, clientID string) (Preference, error)
	Put(ctx context.Context, pref Preference) error
}

// PostgresRepository stores preferences in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get fetches the stored preference for a client.
func (r *PostgresRepository) Get(ctx context.Context, clientID string) (Preference, error) {
	row := r.db.QueryRow(ctx, `SELECT client_id, currency_code, updated_at
        FROM currency_preferences WHERE client_id = $1`, clientID)

	var p Preference
	var updatedAt time.Time
	if err := row.Scan(&p.ClientID, &p.CurrencyCode, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Preference{}, ErrNotFound
		}
		return Preference{}, err
	}
	p.UpdatedAt = updatedAt.UTC()
	return p, nil
}

// Put writes the preference, replacing any previous choice.
func (r *PostgresRepository) Put(ctx context.Context, pref Preference) error {
	_, err := r.db.Exec(ctx, `INSERT INTO currency_preferences (client_id, currency_code, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (client_id) DO UPDATE SET currency_code = $2, updated_at = $3`,
		pref.ClientID, pref.CurrencyCode, pref.UpdatedAt.UTC())
	return err
}
