package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"typeprompt/internal/domain"
	"typeprompt/internal/domain/entities"
	"typeprompt/internal/domain/locale"
	"typeprompt/internal/ports/output"
)

var _ output.TypePromptRepository = (*TypePromptRepository)(nil)

const uniqueViolation = "23505"

const selectTypePrompt = `SELECT key, locale_id, subject_type_name, text_name, translated_text, updated_at FROM type_prompts`

// TypePromptRepository implements output.TypePromptRepository using pgx.
type TypePromptRepository struct {
	pool *pgxpool.Pool
}

// NewTypePromptRepository creates a TypePromptRepository.
func NewTypePromptRepository(pool *pgxpool.Pool) *TypePromptRepository {
	return &TypePromptRepository{pool: pool}
}

func (r *TypePromptRepository) Create(ctx context.Context, prompt *entities.TypePrompt) error {
	row := typePromptToRow(prompt)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO type_prompts (key, locale_id, subject_type_name, text_name, translated_text, updated_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()))`,
		row.Key, row.LocaleID, row.SubjectTypeName, row.TextName, row.TranslatedText, row.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s (%s)", domain.ErrPromptExists, prompt.Key(), prompt.LocaleID())
		}
		return fmt.Errorf("create type prompt: %w", err)
	}
	return nil
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *TypePromptRepository) Save(ctx context.Context, prompt *entities.TypePrompt) error {
	return save(ctx, r.pool, prompt)
}

func (r *TypePromptRepository) SaveAll(ctx context.Context, prompts []*entities.TypePrompt) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, p := range prompts {
			if err := save(ctx, tx, p); err != nil {
				return fmt.Errorf("%s (%s): %w", p.Key(), p.LocaleID(), err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save type prompts: %w", err)
	}
	return nil
}

func save(ctx context.Context, db execer, prompt *entities.TypePrompt) error {
	row := typePromptToRow(prompt)
	_, err := db.Exec(ctx, `
		INSERT INTO type_prompts (key, locale_id, subject_type_name, text_name, translated_text, updated_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()))
		ON CONFLICT (key, locale_id) DO UPDATE SET
			subject_type_name = EXCLUDED.subject_type_name,
			text_name         = EXCLUDED.text_name,
			translated_text   = EXCLUDED.translated_text,
			updated_at        = EXCLUDED.updated_at`,
		row.Key, row.LocaleID, row.SubjectTypeName, row.TextName, row.TranslatedText, row.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save type prompt: %w", err)
	}
	return nil
}

func (r *TypePromptRepository) FindByKey(ctx context.Context, key entities.TypePromptKey, localeID locale.ID) (*entities.TypePrompt, error) {
	rows, err := r.pool.Query(ctx, selectTypePrompt+` WHERE key = $1 AND locale_id = $2`, key.UUID(), int32(localeID))
	if err != nil {
		return nil, fmt.Errorf("get type prompt: %w", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[typePromptRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s (%s)", domain.ErrPromptNotFound, key, localeID)
		}
		return nil, fmt.Errorf("get type prompt: %w", err)
	}
	return typePromptToDomain(row), nil
}

func (r *TypePromptRepository) FindByLocale(ctx context.Context, localeID locale.ID) ([]*entities.TypePrompt, error) {
	rows, err := r.pool.Query(ctx, selectTypePrompt+` WHERE locale_id = $1 ORDER BY subject_type_name, text_name`, int32(localeID))
	if err != nil {
		return nil, fmt.Errorf("get type prompts by locale: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[typePromptRow])
	if err != nil {
		return nil, fmt.Errorf("get type prompts by locale: %w", err)
	}
	out := make([]*entities.TypePrompt, len(found))
	for i := range found {
		out[i] = typePromptToDomain(found[i])
	}
	return out, nil
}

func (r *TypePromptRepository) Keys(ctx context.Context, localeID locale.ID) (map[entities.TypePromptKey]struct{}, error) {
	rows, err := r.pool.Query(ctx, `SELECT key FROM type_prompts WHERE locale_id = $1`, int32(localeID))
	if err != nil {
		return nil, fmt.Errorf("get type prompt keys: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("get type prompt keys: %w", err)
	}
	out := make(map[entities.TypePromptKey]struct{}, len(ids))
	for _, id := range ids {
		out[entities.KeyFromUUID(id)] = struct{}{}
	}
	return out, nil
}

func (r *TypePromptRepository) Delete(ctx context.Context, key entities.TypePromptKey, localeID locale.ID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM type_prompts WHERE key = $1 AND locale_id = $2`, key.UUID(), int32(localeID))
	if err != nil {
		return fmt.Errorf("delete type prompt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s (%s)", domain.ErrPromptNotFound, key, localeID)
	}
	return nil
}
