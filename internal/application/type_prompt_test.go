package application

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"typeprompt/internal/domain"
	"typeprompt/internal/domain/entities"
	"typeprompt/internal/domain/locale"
	"typeprompt/internal/infrastructure/promptfile"
	"typeprompt/internal/infrastructure/typeregistry"
	"typeprompt/internal/ports/output/mocks"
)

type Color int

type Unregistered struct{}

const colorTypeName = "typeprompt/internal/application.Color"

var fixedNow = time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*TypePromptService, *mocks.TypePromptRepository) {
	t.Helper()
	reg := typeregistry.New()
	require.NoError(t, reg.RegisterValue(Color(0)))

	repo := new(mocks.TypePromptRepository)
	svc := NewTypePromptService(repo, reg, promptfile.Codec{}, WithClock(func() time.Time { return fixedNow }))
	return svc, repo
}

func storedColor(textName, text string, loc locale.ID) *entities.TypePrompt {
	return entities.RestoreTypePrompt(entities.TypePromptRecord{
		SubjectTypeName: colorTypeName,
		TextName:        textName,
		TranslatedText:  text,
		UpdatedAt:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		LocaleID:        loc,
		Key:             entities.NewTypePromptKey(colorTypeName, textName),
	})
}

func TestAddPrompt(t *testing.T) {
	svc, repo := newService(t)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *entities.TypePrompt) bool {
		return p.TextName() == "Red" &&
			p.TranslatedText == "Rojo" &&
			p.UpdatedBy == "bob" &&
			p.UpdatedAt.Equal(fixedNow) &&
			p.LocaleID() == locale.SpanishES &&
			p.SubjectTypeName() == colorTypeName
	})).Return(nil).Once()

	p, err := svc.AddPrompt(context.Background(), reflect.TypeOf(Color(0)), "Red", locale.SpanishES, "Rojo", "bob")
	require.NoError(t, err)
	assert.Equal(t, entities.NewTypePromptKey(colorTypeName, "Red"), p.Key())
	assert.Equal(t, "Color.Red: Rojo", p.String())
	repo.AssertExpectations(t)
}

func TestAddPrompt_Rejected(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	_, err := svc.AddPrompt(ctx, reflect.TypeOf(Color(0)), "Red", locale.SpanishES, "Rojo", " ")
	assert.ErrorIs(t, err, domain.ErrMissingEditor)

	_, err = svc.AddPrompt(ctx, reflect.TypeOf(Unregistered{}), "", locale.SpanishES, "x", "bob")
	assert.ErrorIs(t, err, domain.ErrUnresolvableType)

	_, err = svc.AddPrompt(ctx, nil, "", locale.SpanishES, "x", "bob")
	assert.ErrorIs(t, err, domain.ErrNilSubject)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddPrompt_Exists(t *testing.T) {
	svc, repo := newService(t)
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrPromptExists).Once()

	_, err := svc.AddPrompt(context.Background(), reflect.TypeOf(Color(0)), "Red", locale.SpanishES, "Rojo", "bob")
	assert.ErrorIs(t, err, domain.ErrPromptExists)
	repo.AssertExpectations(t)
}

func TestSeedLocale(t *testing.T) {
	svc, repo := newService(t)
	red := storedColor("Red", "Rojo", locale.SpanishES)
	blue := storedColor("Blue", "Azul", locale.SpanishES)

	repo.On("FindByLocale", mock.Anything, locale.SpanishES).Return([]*entities.TypePrompt{red, blue}, nil).Once()
	repo.On("Keys", mock.Anything, locale.SwedishSE).Return(map[entities.TypePromptKey]struct{}{
		blue.Key(): {},
	}, nil).Once()

	var created *entities.TypePrompt
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.TypePrompt")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entities.TypePrompt) }).
		Return(nil).Once()

	n, err := svc.SeedLocale(context.Background(), locale.SpanishES, locale.SwedishSE)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NotNil(t, created)
	assert.True(t, created.Equal(red))
	assert.Equal(t, locale.SwedishSE, created.LocaleID())
	assert.Equal(t, "Red", created.TextName())
	assert.Empty(t, created.TranslatedText)
	assert.Equal(t, "Rojo", red.TranslatedText)
	repo.AssertExpectations(t)
}

func TestSeedLocale_SameLocale(t *testing.T) {
	svc, repo := newService(t)
	_, err := svc.SeedLocale(context.Background(), locale.SpanishES, locale.SpanishES)
	assert.ErrorIs(t, err, domain.ErrSameLocale)
	repo.AssertNotCalled(t, "FindByLocale", mock.Anything, mock.Anything)
}

func TestSeedLocale_UnresolvableSource(t *testing.T) {
	svc, repo := newService(t)
	gone := entities.RestoreTypePrompt(entities.TypePromptRecord{
		SubjectTypeName: "example.com/removed.Type",
		TextName:        "Name",
		LocaleID:        locale.SpanishES,
		Key:             entities.NewTypePromptKey("example.com/removed.Type", "Name"),
	})
	repo.On("FindByLocale", mock.Anything, locale.SpanishES).Return([]*entities.TypePrompt{gone}, nil).Once()
	repo.On("Keys", mock.Anything, locale.FrenchFR).Return(map[entities.TypePromptKey]struct{}{}, nil).Once()

	n, err := svc.SeedLocale(context.Background(), locale.SpanishES, locale.FrenchFR)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, domain.ErrInvalidClone)
	assert.Contains(t, err.Error(), gone.Key().String())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSeedLocale_RepositoryError(t *testing.T) {
	svc, repo := newService(t)
	repo.On("FindByLocale", mock.Anything, locale.SpanishES).Return(nil, errors.New("db down")).Once()

	_, err := svc.SeedLocale(context.Background(), locale.SpanishES, locale.FrenchFR)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list source prompts")
}

func TestUpdateTranslation(t *testing.T) {
	svc, repo := newService(t)
	red := storedColor("Red", "", locale.SwedishSE)
	repo.On("FindByKey", mock.Anything, red.Key(), locale.SwedishSE).Return(red, nil).Once()
	repo.On("Save", mock.Anything, red).Return(nil).Once()

	got, err := svc.UpdateTranslation(context.Background(), red.Key(), locale.SwedishSE, "Röd", "carol")
	require.NoError(t, err)
	assert.Equal(t, "Röd", got.TranslatedText)
	assert.Equal(t, "carol", got.UpdatedBy)
	assert.True(t, got.UpdatedAt.Equal(fixedNow))
	repo.AssertExpectations(t)
}

func TestUpdateTranslation_Errors(t *testing.T) {
	svc, repo := newService(t)
	key := entities.NewTypePromptKey(colorTypeName, "Red")

	_, err := svc.UpdateTranslation(context.Background(), key, locale.SwedishSE, "Röd", "")
	assert.ErrorIs(t, err, domain.ErrMissingEditor)

	repo.On("FindByKey", mock.Anything, key, locale.SwedishSE).Return(nil, domain.ErrPromptNotFound).Once()
	_, err = svc.UpdateTranslation(context.Background(), key, locale.SwedishSE, "Röd", "carol")
	assert.ErrorIs(t, err, domain.ErrPromptNotFound)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeletePrompt(t *testing.T) {
	svc, repo := newService(t)
	key := entities.NewTypePromptKey(colorTypeName, "Red")

	assert.ErrorIs(t, svc.DeletePrompt(context.Background(), key, locale.FrenchFR, ""), domain.ErrMissingEditor)

	repo.On("Delete", mock.Anything, key, locale.FrenchFR).Return(nil).Once()
	require.NoError(t, svc.DeletePrompt(context.Background(), key, locale.FrenchFR, "erin"))

	repo.On("Delete", mock.Anything, key, locale.SwedishSE).Return(domain.ErrPromptNotFound).Once()
	assert.ErrorIs(t, svc.DeletePrompt(context.Background(), key, locale.SwedishSE, "erin"), domain.ErrPromptNotFound)
	repo.AssertExpectations(t)
}

func TestListLocale_Sorted(t *testing.T) {
	svc, repo := newService(t)
	other := entities.RestoreTypePrompt(entities.TypePromptRecord{
		SubjectTypeName: "example.com/a.Size",
		TextName:        "Large",
		LocaleID:        locale.SpanishES,
		Key:             entities.NewTypePromptKey("example.com/a.Size", "Large"),
	})
	repo.On("FindByLocale", mock.Anything, locale.SpanishES).Return([]*entities.TypePrompt{
		storedColor("Red", "Rojo", locale.SpanishES),
		storedColor("", "Color", locale.SpanishES),
		other,
	}, nil).Once()

	got, err := svc.ListLocale(context.Background(), locale.SpanishES)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Large", got[0].TextName())
	assert.Equal(t, "", got[1].TextName())
	assert.Equal(t, "Red", got[2].TextName())
}

func TestExportImport(t *testing.T) {
	svc, repo := newService(t)
	repo.On("FindByLocale", mock.Anything, locale.SpanishES).Return([]*entities.TypePrompt{
		storedColor("Red", "Rojo", locale.SpanishES),
		storedColor("Blue", "Azul", locale.SpanishES),
	}, nil).Once()

	var buf bytes.Buffer
	n, err := svc.Export(context.Background(), locale.SpanishES, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var saved []*entities.TypePrompt
	repo.On("SaveAll", mock.Anything, mock.AnythingOfType("[]*entities.TypePrompt")).
		Run(func(args mock.Arguments) { saved = args.Get(1).([]*entities.TypePrompt) }).
		Return(nil).Once()

	n, err = svc.Import(context.Background(), &buf, "dave")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, saved, 2)
	for _, p := range saved {
		assert.Equal(t, "dave", p.UpdatedBy)
		assert.Equal(t, locale.SpanishES, p.LocaleID())
	}
	assert.Equal(t, "Azul", saved[0].TranslatedText)
	repo.AssertExpectations(t)
}

func TestImport_UnresolvableRejectsFile(t *testing.T) {
	svc, repo := newService(t)
	var buf bytes.Buffer
	require.NoError(t, promptfile.Write(&buf, locale.SpanishES, []*entities.TypePrompt{
		storedColor("Red", "Rojo", locale.SpanishES),
		entities.RestoreTypePrompt(entities.TypePromptRecord{
			SubjectTypeName: "example.com/removed.Type",
			LocaleID:        locale.SpanishES,
			Key:             entities.NewTypePromptKey("example.com/removed.Type", ""),
		}),
	}))

	_, err := svc.Import(context.Background(), &buf, "dave")
	assert.ErrorIs(t, err, domain.ErrUnresolvableType)
	repo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
}

func TestImport_KeyMustMatchTypeAndTextName(t *testing.T) {
	svc, repo := newService(t)
	red := storedColor("Red", "Rojo", locale.SpanishES)
	var buf bytes.Buffer
	require.NoError(t, promptfile.Write(&buf, locale.SpanishES, []*entities.TypePrompt{
		entities.RestoreTypePrompt(entities.TypePromptRecord{
			SubjectTypeName: colorTypeName,
			TextName:        "Blue",
			TranslatedText:  "Azul",
			LocaleID:        locale.SpanishES,
			Key:             red.Key(),
		}),
	}))

	_, err := svc.Import(context.Background(), &buf, "dave")
	assert.ErrorIs(t, err, domain.ErrInvalidKey)
	assert.Contains(t, err.Error(), entities.NewTypePromptKey(colorTypeName, "Blue").String())
	repo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
}

func TestImport_WriteFailureStoresNothing(t *testing.T) {
	svc, repo := newService(t)
	var buf bytes.Buffer
	require.NoError(t, promptfile.Write(&buf, locale.SpanishES, []*entities.TypePrompt{
		storedColor("Red", "Rojo", locale.SpanishES),
		storedColor("Blue", "Azul", locale.SpanishES),
	}))
	repo.On("SaveAll", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	n, err := svc.Import(context.Background(), &buf, "dave")
	require.Error(t, err)
	assert.Zero(t, n)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}
