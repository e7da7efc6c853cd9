package application

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"typeprompt/internal/domain"
	"typeprompt/internal/domain/entities"
	"typeprompt/internal/domain/locale"
	"typeprompt/internal/ports/input"
	"typeprompt/internal/ports/output"
)

var _ input.TypePromptUseCase = (*TypePromptService)(nil)

type TypePromptService struct {
	repo     output.TypePromptRepository
	resolver entities.TypeResolver
	codec    output.PromptFileCodec
	logger   *zap.Logger
	now      func() time.Time
}

type Option func(*TypePromptService)

func WithLogger(logger *zap.Logger) Option {
	return func(s *TypePromptService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *TypePromptService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewTypePromptService(
	repo output.TypePromptRepository,
	resolver entities.TypeResolver,
	codec output.PromptFileCodec,
	opts ...Option,
) *TypePromptService {
	s := &TypePromptService{
		repo:     repo,
		resolver: resolver,
		codec:    codec,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddPrompt stores the first translation of a type (textName == "") or of
// one of its members in localeID. The subject must be known to the resolver.
func (s *TypePromptService) AddPrompt(ctx context.Context, subject reflect.Type, textName string, localeID locale.ID, text, editor string) (*entities.TypePrompt, error) {
	if strings.TrimSpace(editor) == "" {
		return nil, domain.ErrMissingEditor
	}
	name, err := entities.QualifiedTypeName(subject)
	if err != nil {
		return nil, err
	}
	if s.resolver.ResolveType(name) == nil {
		return nil, &domain.PromptError{Err: domain.ErrUnresolvableType, TypeName: name, TextName: textName}
	}

	prompt := entities.NewTypePrompt(entities.NewTypePromptKey(name, textName), textName, localeID)
	if err := prompt.SetSubject(subject); err != nil {
		return nil, err
	}
	prompt.Translate(text, editor, s.now())

	if err := s.repo.Create(ctx, prompt); err != nil {
		return nil, fmt.Errorf("create prompt: %w", err)
	}
	s.logger.Info("prompt added",
		zap.Stringer("key", prompt.Key()),
		zap.String("subject", name),
		zap.String("text_name", textName),
		zap.Stringer("locale", localeID),
		zap.String("editor", editor),
	)
	return prompt, nil
}

// SeedLocale copies every prompt of source that target does not have yet
// into target, untranslated. It returns the number of prompts created.
func (s *TypePromptService) SeedLocale(ctx context.Context, source, target locale.ID) (int, error) {
	if source == target {
		return 0, fmt.Errorf("%w: %s", domain.ErrSameLocale, source)
	}
	prompts, err := s.repo.FindByLocale(ctx, source)
	if err != nil {
		return 0, fmt.Errorf("list source prompts: %w", err)
	}
	existing, err := s.repo.Keys(ctx, target)
	if err != nil {
		return 0, fmt.Errorf("list target keys: %w", err)
	}

	created := 0
	for _, p := range prompts {
		if _, ok := existing[p.Key()]; ok {
			continue
		}
		clone, err := entities.NewTypePromptForLocale(target, p, s.resolver)
		if err != nil {
			return created, fmt.Errorf("seed prompt %s: %w", p.Key(), err)
		}
		if err := s.repo.Create(ctx, clone); err != nil {
			return created, fmt.Errorf("seed prompt %s: %w", p.Key(), err)
		}
		existing[clone.Key()] = struct{}{}
		created++
	}

	s.logger.Info("locale seeded",
		zap.Stringer("source", source),
		zap.Stringer("target", target),
		zap.Int("created", created),
		zap.Int("skipped", len(prompts)-created),
	)
	return created, nil
}

// UpdateTranslation replaces the text of one prompt, recording editor and
// the current time with it.
func (s *TypePromptService) UpdateTranslation(ctx context.Context, key entities.TypePromptKey, localeID locale.ID, text, editor string) (*entities.TypePrompt, error) {
	if strings.TrimSpace(editor) == "" {
		return nil, domain.ErrMissingEditor
	}
	prompt, err := s.repo.FindByKey(ctx, key, localeID)
	if err != nil {
		return nil, err
	}

	prompt.Translate(text, editor, s.now())
	if err := s.repo.Save(ctx, prompt); err != nil {
		return nil, fmt.Errorf("save prompt: %w", err)
	}
	s.logger.Info("translation updated",
		zap.Stringer("key", key),
		zap.Stringer("locale", localeID),
		zap.String("editor", editor),
	)
	return prompt, nil
}

// DeletePrompt removes the translation of key in localeID. Other locales
// keep theirs.
func (s *TypePromptService) DeletePrompt(ctx context.Context, key entities.TypePromptKey, localeID locale.ID, editor string) error {
	if strings.TrimSpace(editor) == "" {
		return domain.ErrMissingEditor
	}
	if err := s.repo.Delete(ctx, key, localeID); err != nil {
		return err
	}
	s.logger.Info("prompt deleted",
		zap.Stringer("key", key),
		zap.Stringer("locale", localeID),
		zap.String("editor", editor),
	)
	return nil
}

// ListLocale returns the prompts of localeID ordered by subject, then text name.
func (s *TypePromptService) ListLocale(ctx context.Context, localeID locale.ID) ([]*entities.TypePrompt, error) {
	prompts, err := s.repo.FindByLocale(ctx, localeID)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	slices.SortFunc(prompts, func(a, b *entities.TypePrompt) int {
		if c := strings.Compare(a.SubjectTypeName(), b.SubjectTypeName()); c != 0 {
			return c
		}
		return strings.Compare(a.TextName(), b.TextName())
	})
	return prompts, nil
}

func (s *TypePromptService) Export(ctx context.Context, localeID locale.ID, w io.Writer) (int, error) {
	prompts, err := s.ListLocale(ctx, localeID)
	if err != nil {
		return 0, err
	}
	if err := s.codec.Write(w, localeID, prompts); err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}
	s.logger.Info("locale exported", zap.Stringer("locale", localeID), zap.Int("count", len(prompts)))
	return len(prompts), nil
}

// Import stores every prompt of the file, replacing existing rows, in one
// transaction. The file is rejected as a whole if any key does not belong to
// its type and text name, if any subject cannot be resolved, or if any write
// fails.
func (s *TypePromptService) Import(ctx context.Context, r io.Reader, editor string) (int, error) {
	if strings.TrimSpace(editor) == "" {
		return 0, domain.ErrMissingEditor
	}
	localeID, prompts, err := s.codec.Read(r)
	if err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}
	for _, p := range prompts {
		if want := entities.NewTypePromptKey(p.SubjectTypeName(), p.TextName()); p.Key() != want {
			return 0, fmt.Errorf("import prompt %s: %w: expected %s for %s", p.Key(), domain.ErrInvalidKey, want, p)
		}
		if _, err := p.Subject(s.resolver); err != nil {
			return 0, fmt.Errorf("import prompt %s: %w", p.Key(), err)
		}
	}

	at := s.now()
	for _, p := range prompts {
		p.Translate(p.TranslatedText, editor, at)
	}
	if err := s.repo.SaveAll(ctx, prompts); err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}
	s.logger.Info("locale imported",
		zap.Stringer("locale", localeID),
		zap.Int("count", len(prompts)),
		zap.String("editor", editor),
	)
	return len(prompts), nil
}
