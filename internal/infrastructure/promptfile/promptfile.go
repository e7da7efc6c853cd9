// Package promptfile reads and writes the TOML interchange file used to hand
// the prompts of one locale to translators and back.
package promptfile

import (
	"fmt"
	"io"
	"time"

	"github.com/pelletier/go-toml/v2"

	"typeprompt/internal/domain"
	"typeprompt/internal/domain/entities"
	"typeprompt/internal/domain/locale"
	"typeprompt/internal/ports/output"
)

var _ output.PromptFileCodec = Codec{}

type document struct {
	Locale  int     `toml:"locale"`
	Prompts []entry `toml:"prompt"`
}

type entry struct {
	Key         string    `toml:"key"`
	Type        string    `toml:"type"`
	TextName    string    `toml:"text_name"`
	Translation string    `toml:"translation"`
	UpdatedAt   time.Time `toml:"updated_at"`
}

// Write encodes prompts as the file of localeID. Prompts of other locales
// are rejected.
func Write(w io.Writer, localeID locale.ID, prompts []*entities.TypePrompt) error {
	doc := document{Locale: int(localeID), Prompts: make([]entry, 0, len(prompts))}
	for _, p := range prompts {
		if p.LocaleID() != localeID {
			return fmt.Errorf("promptfile: prompt %s belongs to locale %d, not %d", p.Key(), int(p.LocaleID()), int(localeID))
		}
		doc.Prompts = append(doc.Prompts, entry{
			Key:         p.Key().String(),
			Type:        p.SubjectTypeName(),
			TextName:    p.TextName(),
			Translation: p.TranslatedText,
			UpdatedAt:   p.UpdatedAt.UTC(),
		})
	}

	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("promptfile: encode: %w", err)
	}
	return nil
}

// Read decodes a file written by Write. Subjects are left unresolved.
func Read(r io.Reader) (locale.ID, []*entities.TypePrompt, error) {
	var doc document
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&doc); err != nil {
		return 0, nil, fmt.Errorf("promptfile: decode: %w", err)
	}
	if doc.Locale <= 0 {
		return 0, nil, fmt.Errorf("promptfile: %w: %d", domain.ErrUnknownLocale, doc.Locale)
	}
	localeID := locale.ID(doc.Locale)

	prompts := make([]*entities.TypePrompt, 0, len(doc.Prompts))
	for i, e := range doc.Prompts {
		key, err := entities.ParseTypePromptKey(e.Key)
		if err != nil {
			return 0, nil, fmt.Errorf("promptfile: prompt #%d: %w", i+1, err)
		}
		if e.Type == "" {
			return 0, nil, fmt.Errorf("promptfile: prompt #%d: %w for %q", i+1, domain.ErrMissingTypeName, e.TextName)
		}
		prompts = append(prompts, entities.RestoreTypePrompt(entities.TypePromptRecord{
			SubjectTypeName: e.Type,
			TextName:        e.TextName,
			TranslatedText:  e.Translation,
			UpdatedAt:       e.UpdatedAt,
			LocaleID:        localeID,
			Key:             key,
		}))
	}
	return localeID, prompts, nil
}

// Codec adapts Write and Read to the output.PromptFileCodec port.
type Codec struct{}

func (Codec) Write(w io.Writer, localeID locale.ID, prompts []*entities.TypePrompt) error {
	return Write(w, localeID, prompts)
}

func (Codec) Read(r io.Reader) (locale.ID, []*entities.TypePrompt, error) {
	return Read(r)
}
