package journal

import (
	"strings"

	"github.com/ad92co/FKMap/api/models"
)

// CompanionSet is the ordered-unique list of companion names for the pin
// under construction. It always holds at least one name: the "Solo"
// sentinel stands in whenever no real companion is present.
type CompanionSet struct {
	names []string
}

func NewCompanionSet() *CompanionSet {
	return &CompanionSet{names: []string{models.SoloPartner}}
}

// Add appends a companion. Blank and duplicate names are ignored; adding
// the first real name drops the "Solo" sentinel.
func (s *CompanionSet) Add(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	for _, n := range s.names {
		if n == name {
			return
		}
	}
	if name != models.SoloPartner {
		s.names = remove(s.names, models.SoloPartner)
	}
	s.names = append(s.names, name)
}

// Remove drops a companion; an emptied set falls back to ["Solo"].
func (s *CompanionSet) Remove(name string) {
	s.names = remove(s.names, name)
	if len(s.names) == 0 {
		s.names = []string{models.SoloPartner}
	}
}

// Names returns a copy of the current companion list.
func (s *CompanionSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *CompanionSet) Len() int {
	return len(s.names)
}

// Reset returns the set to its initial ["Solo"] state.
func (s *CompanionSet) Reset() {
	s.names = []string{models.SoloPartner}
}

func remove(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
