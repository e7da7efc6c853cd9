package entities

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
	"time"

	"typeprompt/internal/domain"
	"typeprompt/internal/domain/locale"
)

var now = time.Now

// TypePrompt is the translation of a type, or of one of its members
// (field, enum constant), in a single locale.
//
// Key, TextName, LocaleID and the subject type name identify the prompt and
// are fixed once the prompt has been built. TranslatedText, UpdatedAt and
// UpdatedBy are the payload. Two prompts are equal when their keys are equal,
// whatever their locale or text.
//
// A TypePrompt must not be copied after first use.
type TypePrompt struct {
	key      TypePromptKey
	textName string
	localeID locale.ID

	mu              sync.Mutex
	subjectTypeName string
	subject         reflect.Type

	TranslatedText string
	UpdatedAt      time.Time
	// UpdatedBy is supplied by whoever changes the text. It is not persisted.
	UpdatedBy string
}

// TypePromptRecord is the persisted form of a TypePrompt. The resolved
// subject and UpdatedBy are not part of it.
type TypePromptRecord struct {
	SubjectTypeName string        `json:"SubjectTypeName"`
	TextName        string        `json:"TextName"`
	TranslatedText  string        `json:"TranslatedText"`
	UpdatedAt       time.Time     `json:"UpdatedAt"`
	LocaleID        locale.ID     `json:"LocaleId"`
	Key             TypePromptKey `json:"Key"`
}

// NewTypePrompt creates an untranslated prompt. SetSubject must be called
// before the subject is read.
func NewTypePrompt(key TypePromptKey, textName string, localeID locale.ID) *TypePrompt {
	return &TypePrompt{
		key:       key,
		textName:  textName,
		localeID:  localeID,
		UpdatedAt: now(),
	}
}

// NewTypePromptForLocale seeds localeID with a copy of source: same subject,
// key and text name, empty translation. The subject of source is resolved
// with r and must succeed.
func NewTypePromptForLocale(localeID locale.ID, source *TypePrompt, r TypeResolver) (*TypePrompt, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: source is nil", domain.ErrInvalidClone)
	}
	subject, err := source.Subject(r)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not specified: %w", domain.ErrInvalidClone, err)
	}

	return &TypePrompt{
		key:             source.key,
		textName:        source.textName,
		localeID:        localeID,
		subjectTypeName: source.SubjectTypeName(),
		subject:         subject,
		TranslatedText:  "",
		UpdatedAt:       now(),
	}, nil
}

// RestoreTypePrompt rebuilds a prompt from its persisted form. The subject is
// resolved on first access.
func RestoreTypePrompt(rec TypePromptRecord) *TypePrompt {
	return &TypePrompt{
		key:             rec.Key,
		textName:        rec.TextName,
		localeID:        rec.LocaleID,
		subjectTypeName: rec.SubjectTypeName,
		TranslatedText:  rec.TranslatedText,
		UpdatedAt:       rec.UpdatedAt,
	}
}

func (p *TypePrompt) Key() TypePromptKey { return p.key }

// TextName is the member of the subject being translated; empty when the
// type itself is translated.
func (p *TypePrompt) TextName() string { return p.textName }

func (p *TypePrompt) LocaleID() locale.ID { return p.localeID }

// SubjectTypeName is the qualified name of the subject type.
func (p *TypePrompt) SubjectTypeName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.subjectTypeName
}

// Subject returns the subject type, resolving SubjectTypeName with r on the
// first call. A successful resolution is cached; a failed one is not, and
// is attempted again on the next call.
func (p *TypePrompt) Subject(r TypeResolver) (reflect.Type, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.subject != nil {
		return p.subject, nil
	}
	if p.subjectTypeName == "" {
		return nil, &domain.PromptError{Err: domain.ErrMissingTypeName, TextName: p.textName}
	}
	var t reflect.Type
	if r != nil {
		t = r.ResolveType(p.subjectTypeName)
	}
	if t == nil {
		return nil, &domain.PromptError{Err: domain.ErrUnresolvableType, TypeName: p.subjectTypeName, TextName: p.textName}
	}
	p.subject = t
	return t, nil
}

// SetSubject assigns the subject type and records its qualified name.
// Nil and unnamed types are rejected and leave the prompt unchanged.
func (p *TypePrompt) SetSubject(t reflect.Type) error {
	named, name, err := namedType(t)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.subject = named
	p.subjectTypeName = name
	return nil
}

// Translate replaces the translated text and stamps who changed it and when.
func (p *TypePrompt) Translate(text, editor string, at time.Time) {
	p.TranslatedText = text
	p.UpdatedAt = at
	p.UpdatedBy = editor
}

// Equal reports whether p and other describe the same concept. Locale,
// text and timestamps are ignored.
func (p *TypePrompt) Equal(other *TypePrompt) bool {
	if p == nil || other == nil {
		return false
	}
	return p.key == other.key
}

// Describe renders "Subject.TextName: TranslatedText".
func (p *TypePrompt) Describe(r TypeResolver) (string, error) {
	subject, err := p.Subject(r)
	if err != nil {
		return "", err
	}
	return subject.Name() + "." + p.textName + ": " + p.TranslatedText, nil
}

// String renders the prompt like Describe without resolving the subject.
func (p *TypePrompt) String() string {
	p.mu.Lock()
	name := shortTypeName(p.subjectTypeName)
	if p.subject != nil {
		name = p.subject.Name()
	}
	p.mu.Unlock()
	return name + "." + p.textName + ": " + p.TranslatedText
}

// Record returns the persisted form of p.
func (p *TypePrompt) Record() TypePromptRecord {
	return TypePromptRecord{
		SubjectTypeName: p.SubjectTypeName(),
		TextName:        p.textName,
		TranslatedText:  p.TranslatedText,
		UpdatedAt:       p.UpdatedAt,
		LocaleID:        p.localeID,
		Key:             p.key,
	}
}

func (p *TypePrompt) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Record())
}

func (p *TypePrompt) UnmarshalJSON(b []byte) error {
	var rec TypePromptRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.key = rec.Key
	p.textName = rec.TextName
	p.localeID = rec.LocaleID
	p.subjectTypeName = rec.SubjectTypeName
	p.subject = nil
	p.TranslatedText = rec.TranslatedText
	p.UpdatedAt = rec.UpdatedAt
	p.UpdatedBy = ""
	return nil
}
