package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"typeprompt/internal/domain"
	"typeprompt/internal/domain/entities"
	"typeprompt/internal/domain/locale"
	"typeprompt/internal/ports/output"
)

var _ output.TypePromptRepository = (*TypePromptRepository)(nil)

const selectTypePrompt = `SELECT key, locale_id, subject_type_name, text_name, translated_text, updated_at FROM type_prompts`

type TypePromptRepository struct {
	db *sql.DB
}

func NewTypePromptRepository(db *sql.DB) *TypePromptRepository {
	return &TypePromptRepository{db: db}
}

func (r *TypePromptRepository) Create(ctx context.Context, prompt *entities.TypePrompt) error {
	rec := prompt.Record()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO type_prompts (key, locale_id, subject_type_name, text_name, translated_text, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (key, locale_id) DO NOTHING`,
		rec.Key.String(), int(rec.LocaleID), rec.SubjectTypeName, rec.TextName, rec.TranslatedText, formatTime(rec.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("create type prompt: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("create type prompt: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s (%s)", domain.ErrPromptExists, rec.Key, rec.LocaleID)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *TypePromptRepository) Save(ctx context.Context, prompt *entities.TypePrompt) error {
	return save(ctx, r.db, prompt)
}

func (r *TypePromptRepository) SaveAll(ctx context.Context, prompts []*entities.TypePrompt) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save type prompts: %w", err)
	}
	defer tx.Rollback()

	for _, p := range prompts {
		if err := save(ctx, tx, p); err != nil {
			return fmt.Errorf("save type prompts: %s (%s): %w", p.Key(), p.LocaleID(), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save type prompts: %w", err)
	}
	return nil
}

func save(ctx context.Context, db execer, prompt *entities.TypePrompt) error {
	rec := prompt.Record()
	_, err := db.ExecContext(ctx, `
		INSERT INTO type_prompts (key, locale_id, subject_type_name, text_name, translated_text, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (key, locale_id) DO UPDATE SET
			subject_type_name = excluded.subject_type_name,
			text_name         = excluded.text_name,
			translated_text   = excluded.translated_text,
			updated_at        = excluded.updated_at`,
		rec.Key.String(), int(rec.LocaleID), rec.SubjectTypeName, rec.TextName, rec.TranslatedText, formatTime(rec.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("save type prompt: %w", err)
	}
	return nil
}

func (r *TypePromptRepository) FindByKey(ctx context.Context, key entities.TypePromptKey, localeID locale.ID) (*entities.TypePrompt, error) {
	row := r.db.QueryRowContext(ctx, selectTypePrompt+` WHERE key = ? AND locale_id = ?`, key.String(), int(localeID))
	p, err := scanTypePrompt(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s (%s)", domain.ErrPromptNotFound, key, localeID)
		}
		return nil, fmt.Errorf("get type prompt: %w", err)
	}
	return p, nil
}

func (r *TypePromptRepository) FindByLocale(ctx context.Context, localeID locale.ID) ([]*entities.TypePrompt, error) {
	rows, err := r.db.QueryContext(ctx, selectTypePrompt+` WHERE locale_id = ? ORDER BY subject_type_name, text_name`, int(localeID))
	if err != nil {
		return nil, fmt.Errorf("get type prompts by locale: %w", err)
	}
	defer rows.Close()

	var out []*entities.TypePrompt
	for rows.Next() {
		p, err := scanTypePrompt(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning type prompt row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *TypePromptRepository) Keys(ctx context.Context, localeID locale.ID) (map[entities.TypePromptKey]struct{}, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM type_prompts WHERE locale_id = ?`, int(localeID))
	if err != nil {
		return nil, fmt.Errorf("get type prompt keys: %w", err)
	}
	defer rows.Close()

	out := make(map[entities.TypePromptKey]struct{})
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning key: %w", err)
		}
		key, err := entities.ParseTypePromptKey(raw)
		if err != nil {
			return nil, err
		}
		out[key] = struct{}{}
	}
	return out, rows.Err()
}

func (r *TypePromptRepository) Delete(ctx context.Context, key entities.TypePromptKey, localeID locale.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM type_prompts WHERE key = ? AND locale_id = ?`, key.String(), int(localeID))
	if err != nil {
		return fmt.Errorf("delete type prompt: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete type prompt: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s (%s)", domain.ErrPromptNotFound, key, localeID)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTypePrompt(s scanner) (*entities.TypePrompt, error) {
	var (
		rawKey, updatedAt string
		rec               entities.TypePromptRecord
		localeID          int
	)
	if err := s.Scan(&rawKey, &localeID, &rec.SubjectTypeName, &rec.TextName, &rec.TranslatedText, &updatedAt); err != nil {
		return nil, err
	}
	key, err := entities.ParseTypePromptKey(rawKey)
	if err != nil {
		return nil, err
	}
	at, err := time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at %q: %w", updatedAt, err)
	}
	rec.Key = key
	rec.LocaleID = locale.ID(localeID)
	rec.UpdatedAt = at
	return entities.RestoreTypePrompt(rec), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339Nano)
}
