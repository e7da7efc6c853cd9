package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"typeprompt/internal/domain/entities"
	"typeprompt/internal/domain/locale"
)

// Mock TypePromptRepository
type TypePromptRepository struct {
	mock.Mock
}

func (m *TypePromptRepository) Create(ctx context.Context, prompt *entities.TypePrompt) error {
	args := m.Called(ctx, prompt)
	return args.Error(0)
}
func (m *TypePromptRepository) Save(ctx context.Context, prompt *entities.TypePrompt) error {
	args := m.Called(ctx, prompt)
	return args.Error(0)
}
func (m *TypePromptRepository) SaveAll(ctx context.Context, prompts []*entities.TypePrompt) error {
	args := m.Called(ctx, prompts)
	return args.Error(0)
}
func (m *TypePromptRepository) FindByKey(ctx context.Context, key entities.TypePromptKey, localeID locale.ID) (*entities.TypePrompt, error) {
	args := m.Called(ctx, key, localeID)
	p, _ := args.Get(0).(*entities.TypePrompt)
	return p, args.Error(1)
}
func (m *TypePromptRepository) FindByLocale(ctx context.Context, localeID locale.ID) ([]*entities.TypePrompt, error) {
	args := m.Called(ctx, localeID)
	prompts, _ := args.Get(0).([]*entities.TypePrompt)
	return prompts, args.Error(1)
}
func (m *TypePromptRepository) Keys(ctx context.Context, localeID locale.ID) (map[entities.TypePromptKey]struct{}, error) {
	args := m.Called(ctx, localeID)
	keys, _ := args.Get(0).(map[entities.TypePromptKey]struct{})
	return keys, args.Error(1)
}
func (m *TypePromptRepository) Delete(ctx context.Context, key entities.TypePromptKey, localeID locale.ID) error {
	args := m.Called(ctx, key, localeID)
	return args.Error(0)
}
