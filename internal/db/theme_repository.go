package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/opencode-ai/glasstheme/internal/models"
)

// Theme repository errors.
var (
	ErrThemeNotFound = errors.New("theme not found")
)

// ThemeRepository handles theme history persistence.
type ThemeRepository struct {
	db *DB
}

// NewThemeRepository creates a new ThemeRepository.
func NewThemeRepository(db *DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

// Create stores a generated theme, assigning an ID and timestamp if unset.
func (r *ThemeRepository) Create(ctx context.Context, record *models.ThemeRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	} else {
		record.CreatedAt = record.CreatedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO themes (
			id, name, kind, source, stylesheet, token_count, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		record.ID,
		record.Name,
		string(record.Kind),
		nullString(record.Source),
		record.Stylesheet,
		record.TokenCount,
		record.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert theme: %w", err)
	}

	r.db.logger.Debug().Str("theme_id", record.ID).Str("name", record.Name).Msg("theme saved")
	return nil
}

// Get retrieves a theme by ID.
func (r *ThemeRepository) Get(ctx context.Context, id string) (*models.ThemeRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, kind, source, stylesheet, token_count, created_at
		FROM themes WHERE id = ?
	`, id)

	return r.scanTheme(row)
}

// List returns the most recent themes first.
func (r *ThemeRepository) List(ctx context.Context, limit int) ([]*models.ThemeRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, kind, source, stylesheet, token_count, created_at
		FROM themes
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query themes: %w", err)
	}
	defer rows.Close()

	var themes []*models.ThemeRecord
	for rows.Next() {
		theme, err := r.scanTheme(rows)
		if err != nil {
			return nil, err
		}
		themes = append(themes, theme)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating themes: %w", err)
	}

	return themes, nil
}

// Delete removes a theme.
func (r *ThemeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM themes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete theme: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete theme: %w", err)
	}
	if affected == 0 {
		return ErrThemeNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ThemeRepository) scanTheme(row rowScanner) (*models.ThemeRecord, error) {
	var theme models.ThemeRecord
	var kind, createdAt string
	var source sql.NullString

	err := row.Scan(
		&theme.ID,
		&theme.Name,
		&kind,
		&source,
		&theme.Stylesheet,
		&theme.TokenCount,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrThemeNotFound
		}
		return nil, fmt.Errorf("failed to scan theme: %w", err)
	}

	theme.Kind = models.ThemeKind(kind)
	if source.Valid {
		theme.Source = source.String
	}
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		theme.CreatedAt = t
	} else {
		r.db.logger.Warn().Err(err).Str("theme_id", theme.ID).Msg("failed to parse theme timestamp")
	}

	return &theme, nil
}

func nullString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
