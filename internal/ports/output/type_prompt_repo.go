package output

import (
	"context"

	"typeprompt/internal/domain/entities"
	"typeprompt/internal/domain/locale"
)

// TypePromptRepository stores one row per (key, locale).
type TypePromptRepository interface {
	// Create fails with domain.ErrPromptExists if (key, locale) is taken.
	Create(ctx context.Context, prompt *entities.TypePrompt) error
	// Save inserts or replaces the prompt stored under (key, locale).
	Save(ctx context.Context, prompt *entities.TypePrompt) error
	// SaveAll saves every prompt in one transaction: all are stored or none.
	SaveAll(ctx context.Context, prompts []*entities.TypePrompt) error
	// FindByKey fails with domain.ErrPromptNotFound when nothing is stored.
	FindByKey(ctx context.Context, key entities.TypePromptKey, localeID locale.ID) (*entities.TypePrompt, error)
	FindByLocale(ctx context.Context, localeID locale.ID) ([]*entities.TypePrompt, error)
	Keys(ctx context.Context, localeID locale.ID) (map[entities.TypePromptKey]struct{}, error)
	Delete(ctx context.Context, key entities.TypePromptKey, localeID locale.ID) error
}
