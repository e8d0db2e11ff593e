package asn1core

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// nameTable maps integer codes to display names and back. Lookups by name
// ignore case. Registration happens in init, so a clash panics.
type nameTable[T constraints.Integer] struct {
	names  map[T]string
	values map[string]T
}

func (m *nameTable[T]) Add(name string, val T) {
	if m.names == nil {
		m.names = make(map[T]string)
		m.values = make(map[string]T)
	}
	if old, ok := m.names[val]; ok {
		panic(fmt.Sprintf("%d already registered as %q", val, old))
	}
	m.names[val] = name
	m.claim(name, val)
}

// AddAlias makes every alias parse to the value already registered under name.
func (m *nameTable[T]) AddAlias(name string, aliases ...string) {
	val, ok := m.values[strings.ToLower(name)]
	if !ok {
		panic(fmt.Sprintf("alias for unregistered name %q", name))
	}
	for _, alias := range aliases {
		m.claim(alias, val)
	}
}

func (m *nameTable[T]) claim(name string, val T) {
	key := strings.ToLower(name)
	if _, taken := m.values[key]; taken {
		panic(fmt.Sprintf("name %q registered twice", name))
	}
	m.values[key] = val
}

func (m *nameTable[T]) Name(val T) (string, error) {
	if name, ok := m.names[val]; ok {
		return name, nil
	}
	return "", NewErrorf("no name for %d", val)
}

func (m *nameTable[T]) Value(name string) (T, error) {
	if val, ok := m.values[strings.ToLower(name)]; ok {
		return val, nil
	}
	var zero T
	return zero, NewErrorf("unknown name %q", name)
}
