package entity

import (
	"slices"
)

// ExclusionSet holds shard names the user chose to ignore.
type ExclusionSet map[string]struct{}

func NewExclusionSet(names ...string) ExclusionSet {
	s := make(ExclusionSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

func (s ExclusionSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s ExclusionSet) Add(name string) {
	s[name] = struct{}{}
}

func (s ExclusionSet) Remove(name string) {
	delete(s, name)
}

// Toggle flips membership and reports whether name is now excluded.
func (s ExclusionSet) Toggle(name string) bool {
	if s.Has(name) {
		delete(s, name)
		return false
	}
	s[name] = struct{}{}
	return true
}

func (s ExclusionSet) Clone() ExclusionSet {
	c := make(ExclusionSet, len(s))
	for name := range s {
		c[name] = struct{}{}
	}
	return c
}

// Names returns members in lexical order.
func (s ExclusionSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
