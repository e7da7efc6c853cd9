package output

import (
	"io"

	"typeprompt/internal/domain/entities"
	"typeprompt/internal/domain/locale"
)

// PromptFileCodec encodes the prompts of one locale for hand-off to
// translators.
type PromptFileCodec interface {
	Write(w io.Writer, localeID locale.ID, prompts []*entities.TypePrompt) error
	Read(r io.Reader) (locale.ID, []*entities.TypePrompt, error)
}
