package tokens

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolved is returned when a reference names a token that does not exist.
	ErrUnresolved = errors.New("unresolved token reference")
	// ErrCycle is returned when references loop back on themselves.
	ErrCycle = errors.New("token reference cycle")
	// ErrNotColor is returned when an alpha override targets a non-colour token.
	ErrNotColor = errors.New("token is not a color")
)

// Entry is a single key/value pair of a Set.
type Entry struct {
	Key   string
	Value Value
}

// Set is an insertion-ordered collection of tokens keyed by name.
type Set struct {
	name   string
	keys   []string
	values map[string]Value
}

// NewSet creates an empty token set.
func NewSet(name string) *Set {
	return &Set{
		name:   name,
		values: make(map[string]Value),
	}
}

// Name returns the set name.
func (s *Set) Name() string {
	return s.name
}

// Put stores a token. Replacing an existing key keeps its position.
func (s *Set) Put(key string, value Value) {
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the stored (unresolved) value of a token.
func (s *Set) Get(key string) (Value, bool) {
	value, ok := s.values[key]
	return value, ok
}

// Len returns the number of tokens.
func (s *Set) Len() int {
	return len(s.keys)
}

// Keys returns the token names in insertion order.
func (s *Set) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Entries returns the tokens in insertion order.
func (s *Set) Entries() []Entry {
	entries := make([]Entry, 0, len(s.keys))
	for _, key := range s.keys {
		entries = append(entries, Entry{Key: key, Value: s.values[key]})
	}
	return entries
}

// Resolve follows references until a concrete value is reached. Alpha
// overrides along the way are applied to the resolved colour, the outermost
// override winning.
func (s *Set) Resolve(key string) (Value, error) {
	return s.resolve(key, make(map[string]bool))
}

func (s *Set) resolve(key string, visiting map[string]bool) (Value, error) {
	value, ok := s.values[key]
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrUnresolved, key)
	}
	if value.Kind != KindRef {
		return value, nil
	}
	if visiting[key] {
		return Value{}, fmt.Errorf("%w: %s", ErrCycle, key)
	}
	visiting[key] = true

	target, err := s.resolve(value.Ref, visiting)
	if err != nil {
		return Value{}, err
	}
	if !value.HasAlpha {
		return target, nil
	}
	if !target.IsColor() {
		return Value{}, fmt.Errorf("%w: %s -> %s", ErrNotColor, key, value.Ref)
	}
	return target.withAlpha(value.Alpha), nil
}

// Resolved returns a copy of the set with every reference replaced by its
// concrete value.
func (s *Set) Resolved() (*Set, error) {
	out := NewSet(s.name)
	for _, key := range s.keys {
		value, err := s.Resolve(key)
		if err != nil {
			return nil, err
		}
		out.Put(key, value)
	}
	return out, nil
}
