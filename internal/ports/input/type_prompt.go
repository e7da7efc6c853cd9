package input

import (
	"context"
	"io"
	"reflect"

	"typeprompt/internal/domain/entities"
	"typeprompt/internal/domain/locale"
)

type TypePromptUseCase interface {
	AddPrompt(ctx context.Context, subject reflect.Type, textName string, localeID locale.ID, text, editor string) (*entities.TypePrompt, error)
	SeedLocale(ctx context.Context, source, target locale.ID) (int, error)
	UpdateTranslation(ctx context.Context, key entities.TypePromptKey, localeID locale.ID, text, editor string) (*entities.TypePrompt, error)
	DeletePrompt(ctx context.Context, key entities.TypePromptKey, localeID locale.ID, editor string) error
	ListLocale(ctx context.Context, localeID locale.ID) ([]*entities.TypePrompt, error)
	Export(ctx context.Context, localeID locale.ID, w io.Writer) (int, error)
	Import(ctx context.Context, r io.Reader, editor string) (int, error)
}
