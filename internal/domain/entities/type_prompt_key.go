package entities

import (
	"fmt"

	"github.com/google/uuid"

	"typeprompt/internal/domain"
)

// keyNamespace seeds the name-based UUIDs of prompt keys. Changing it
// changes every key ever derived.
var keyNamespace = uuid.MustParse("5b0f2c43-7d3e-4c8e-9a51-3f0c6f7e2d18")

// TypePromptKey identifies one translatable concept (a type, or a member of
// a type). All locale variants of the same concept share the same key.
// The zero value is not a valid key.
type TypePromptKey struct {
	id uuid.UUID
}

// NewTypePromptKey derives the key of the member textName of the type
// subjectTypeName. The same pair always yields the same key.
func NewTypePromptKey(subjectTypeName, textName string) TypePromptKey {
	return TypePromptKey{id: uuid.NewSHA1(keyNamespace, []byte(subjectTypeName+"\x00"+textName))}
}

// ParseTypePromptKey parses the string form produced by TypePromptKey.String.
func ParseTypePromptKey(s string) (TypePromptKey, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TypePromptKey{}, fmt.Errorf("%w %q: %v", domain.ErrInvalidKey, s, err)
	}
	if id == uuid.Nil {
		return TypePromptKey{}, fmt.Errorf("%w %q: nil uuid", domain.ErrInvalidKey, s)
	}
	return TypePromptKey{id: id}, nil
}

// KeyFromUUID wraps a stored identifier.
func KeyFromUUID(id uuid.UUID) TypePromptKey {
	return TypePromptKey{id: id}
}

func (k TypePromptKey) UUID() uuid.UUID { return k.id }

func (k TypePromptKey) IsZero() bool { return k.id == uuid.Nil }

func (k TypePromptKey) String() string { return k.id.String() }

func (k TypePromptKey) MarshalText() ([]byte, error) {
	return []byte(k.id.String()), nil
}

func (k *TypePromptKey) UnmarshalText(b []byte) error {
	parsed, err := ParseTypePromptKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
