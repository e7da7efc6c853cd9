// Package catalog lists the types of this binary whose names and members
// are shown to operators and therefore carry translated prompts.
package catalog

import (
	"reflect"

	"typeprompt/internal/config"
	"typeprompt/internal/domain/entities"
	"typeprompt/internal/domain/locale"
)

// Types returns the translatable subject types.
func Types() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf((*entities.TypePrompt)(nil)).Elem(),
		reflect.TypeOf((*entities.TypePromptKey)(nil)).Elem(),
		reflect.TypeOf((*locale.ID)(nil)).Elem(),
		reflect.TypeOf((*config.Config)(nil)).Elem(),
	}
}

// Registrar is implemented by typeregistry.Registry.
type Registrar interface {
	Register(types ...reflect.Type) error
}

// Register adds Types to r.
func Register(r Registrar) error {
	return r.Register(Types()...)
}

// ByShortName finds a registered catalog type by its bare name ("ID") or
// qualified name.
func ByShortName(name string) (reflect.Type, bool) {
	for _, t := range Types() {
		qualified, err := entities.QualifiedTypeName(t)
		if err != nil {
			continue
		}
		if t.Name() == name || qualified == name {
			return t, true
		}
	}
	return nil, false
}
