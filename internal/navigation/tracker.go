// Package navigation decides which page section the menu highlights and
// whether the header bar is shown, as pure functions of scroll input.
// Event wiring lives in the browser script; everything here is testable
// without a rendering environment.
package navigation

import (
	"errors"
	"fmt"
)

// DefaultSections is the fixed, ordered list of page sections.
var DefaultSections = []string{"home", "features", "pricing", "testimonials", "faq", "contact"}

// DefaultReferenceLine is the distance in logical pixels from the viewport
// top that a section must straddle to become active.
const DefaultReferenceLine = 100

// Bounds are a section's vertical edges relative to the viewport top.
type Bounds struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Straddles reports whether the bounds contain the line, edges included.
func (b Bounds) Straddles(line float64) bool {
	return b.Top <= line && b.Bottom >= line
}

// ViewportObserver reports on-screen bounds of page sections. ok is false
// when the section is not mounted yet.
type ViewportObserver interface {
	Bounds(section string) (b Bounds, ok bool)
}

// Viewport is a fixed snapshot of section bounds.
type Viewport map[string]Bounds

func (v Viewport) Bounds(section string) (Bounds, bool) {
	b, ok := v[section]
	return b, ok
}

// ActiveSection returns the first section straddling the reference line.
// Sections the observer cannot see are skipped.
func ActiveSection(sections []string, obs ViewportObserver, line float64) (string, bool) {
	for _, s := range sections {
		b, ok := obs.Bounds(s)
		if !ok {
			continue
		}
		if b.Straddles(line) {
			return s, true
		}
	}
	return "", false
}

// Tracker holds the active section. It starts on the first section and
// only ever moves to another member of the list.
type Tracker struct {
	sections      []string
	referenceLine float64
	active        string
}

// NewTracker creates a tracker over a non-empty list of unique sections.
func NewTracker(sections []string, referenceLine float64) (*Tracker, error) {
	if len(sections) == 0 {
		return nil, errors.New("navigation: no sections")
	}
	seen := make(map[string]bool, len(sections))
	for _, s := range sections {
		if s == "" {
			return nil, errors.New("navigation: empty section id")
		}
		if seen[s] {
			return nil, fmt.Errorf("navigation: duplicate section %q", s)
		}
		seen[s] = true
	}

	owned := make([]string, len(sections))
	copy(owned, sections)
	return &Tracker{
		sections:      owned,
		referenceLine: referenceLine,
		active:        owned[0],
	}, nil
}

func (t *Tracker) Active() string         { return t.active }
func (t *Tracker) Sections() []string     { return t.sections }
func (t *Tracker) ReferenceLine() float64 { return t.referenceLine }

// Clone returns an independent tracker with the same sections and active
// section. The section list is shared; it is never modified.
func (t *Tracker) Clone() *Tracker {
	c := *t
	return &c
}

// OnScroll recomputes the active section. When no section straddles the
// reference line, or none is mounted yet, the previous one is kept.
func (t *Tracker) OnScroll(obs ViewportObserver) string {
	if s, ok := ActiveSection(t.sections, obs, t.referenceLine); ok {
		t.active = s
	}
	return t.active
}

// Select moves the highlight to a known section, as when a menu link is
// followed. Unknown ids are ignored.
func (t *Tracker) Select(section string) bool {
	for _, s := range t.sections {
		if s == section {
			t.active = s
			return true
		}
	}
	return false
}
