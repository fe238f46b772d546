package action

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Mapper holds named hooks that a service calls while performing an operation.
// Services register their defaults at construction and tests replace individual
// hooks by name, so the service keeps doing collaboration while the rules it
// applies (validation, normalization) stay swappable.
type Mapper struct {
	actions map[string]any
}

func (m *Mapper) Add(name string, fn any) *Mapper {
	if m.actions == nil {
		m.actions = make(map[string]any)
	}

	m.actions[name] = fn

	return m
}

func (m *Mapper) Get(name string) (any, error) {
	v, ok := m.actions[name]
	if !ok {
		return nil, errors.New("no action found for: " + name)
	}

	return v, nil
}

// Merge copies every action from o into m, replacing actions with the same name.
func (m *Mapper) Merge(o *Mapper) *Mapper {
	if o == nil {
		return m
	}

	for name, fn := range o.actions {
		m.Add(name, fn)
	}

	return m
}

func (m *Mapper) All() []string {
	return slices.Sorted(maps.Keys(m.actions))
}

// Lookup returns the named action as T or an error if it's missing or of another type.
func Lookup[T any](m *Mapper, name string) (T, error) {
	var zero T

	v, err := m.Get(name)
	if err != nil {
		return zero, err
	}

	fn, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("action %q is %T, expected %T", name, v, zero)
	}

	return fn, nil
}
