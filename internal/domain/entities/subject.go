package entities

import (
	"fmt"
	"reflect"
	"strings"

	"typeprompt/internal/domain"
)

// TypeResolver finds a type by the name QualifiedTypeName gives it.
// ResolveType returns nil when the name is unknown.
type TypeResolver interface {
	ResolveType(name string) reflect.Type
}

// QualifiedTypeName returns "<import path>.<Name>" for a named type.
// Pointer types are reported as their element type.
func QualifiedTypeName(t reflect.Type) (string, error) {
	_, name, err := namedType(t)
	return name, err
}

func namedType(t reflect.Type) (reflect.Type, string, error) {
	if t == nil {
		return nil, "", domain.ErrNilSubject
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return nil, "", fmt.Errorf("%w: %s", domain.ErrUnnamedType, t)
	}
	return t, t.PkgPath() + "." + t.Name(), nil
}

// shortTypeName turns "example.com/pkg.Color" into "Color". Type arguments
// of a generic type are kept as they are, matching reflect.Type.Name.
func shortTypeName(qualified string) string {
	name, args := qualified, ""
	if i := strings.IndexByte(name, '['); i >= 0 {
		name, args = name[:i], name[i:]
	}
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name + args
}
