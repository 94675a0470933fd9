package dependency

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Dependency identifies an impacted package by name and project-relative path.
// It is comparable, so the same package reached through several parents collapses to one entry.
type Dependency struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// NormalizePath strips rootPrefix from an absolute path reported by the package manager.
// This is a plain string prefix strip: no cleaning, no symlink or ".." resolution.
// Paths outside the prefix are returned unchanged.
func NormalizePath(path, rootPrefix string) string {
	return strings.TrimPrefix(path, rootPrefix)
}

// ImpactSet is the set of packages that changed or depend on something that changed.
type ImpactSet map[Dependency]struct{}

// NewImpactSet returns a set holding deps.
func NewImpactSet(deps ...Dependency) ImpactSet {
	s := make(ImpactSet, len(deps))
	for _, d := range deps {
		s.Add(d)
	}
	return s
}

func (s ImpactSet) Add(d Dependency) {
	s[d] = struct{}{}
}

func (s ImpactSet) Contains(d Dependency) bool {
	_, ok := s[d]
	return ok
}

func (s ImpactSet) Len() int {
	return len(s)
}

// Union returns a new set with the members of s and other.
func (s ImpactSet) Union(other ImpactSet) ImpactSet {
	out := make(ImpactSet, len(s)+len(other))
	for d := range s {
		out.Add(d)
	}
	for d := range other {
		out.Add(d)
	}
	return out
}

// Equal reports whether both sets hold the same members.
func (s ImpactSet) Equal(other ImpactSet) bool {
	if len(s) != len(other) {
		return false
	}
	for d := range s {
		if !other.Contains(d) {
			return false
		}
	}
	return true
}

// Sorted returns the members ordered by name, then path.
func (s ImpactSet) Sorted() []Dependency {
	deps := lo.Keys(s)
	sort.Slice(deps, func(i, j int) bool {
		if deps[i].Name != deps[j].Name {
			return deps[i].Name < deps[j].Name
		}
		return deps[i].Path < deps[j].Path
	})
	return deps
}

// Names returns the sorted, unique package names in the set.
func (s ImpactSet) Names() []string {
	return lo.Uniq(lo.Map(s.Sorted(), func(d Dependency, _ int) string { return d.Name }))
}

// Paths returns the set of normalized paths in the set.
func (s ImpactSet) Paths() map[string]struct{} {
	paths := make(map[string]struct{}, len(s))
	for d := range s {
		paths[d.Path] = struct{}{}
	}
	return paths
}
