package faq

import (
	"net/url"
	"strings"
)

// Query is the FAQ view-model for a single page render. The open entry is
// tracked by ID; its index is always derived from the current filtered list,
// so a filter change can never make it point at a different question.
type Query struct {
	catalog  *Catalog
	category string
	search   string
	openID   string
}

// DeepLink is the outcome of resolving a URL fragment.
type DeepLink struct {
	Category string
	// Position is the entry's index in the category's unfiltered list.
	Position int
	// ScrollIntoView tells the caller to bring the entry into view.
	ScrollIntoView bool
}

// NewQuery starts on the first category with an empty search and nothing open.
func NewQuery(catalog *Catalog) *Query {
	return &Query{
		catalog:  catalog,
		category: catalog.categories[0].Name,
	}
}

// Clone returns an independent copy sharing the same catalog.
func (q *Query) Clone() *Query {
	c := *q
	return &c
}

func (q *Query) ActiveCategory() string { return q.category }
func (q *Query) SearchTerm() string     { return q.search }
func (q *Query) Catalog() *Catalog      { return q.catalog }

// SetCategory switches the active category and closes the open entry.
// Unknown names are ignored and reported as false.
func (q *Query) SetCategory(name string) bool {
	if _, ok := q.catalog.byName[name]; !ok {
		return false
	}
	q.category = name
	q.openID = ""
	return true
}

// SetSearchTerm replaces the search term. The open entry survives unless the
// new filter hides it.
func (q *Query) SetSearchTerm(text string) {
	q.search = text
	if q.openID == "" {
		return
	}
	if _, ok := q.OpenIndex(); !ok {
		q.openID = ""
	}
}

// VisibleEntries returns the active category's entries whose question or
// answer contains the search term, case-insensitively, in catalog order.
func (q *Query) VisibleEntries() []Entry {
	entries, _ := q.catalog.Entries(q.category)
	if q.search == "" {
		return entries
	}

	term := strings.ToLower(q.search)
	visible := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Question), term) ||
			strings.Contains(strings.ToLower(e.Answer), term) {
			visible = append(visible, e)
		}
	}
	return visible
}

// Toggle opens the visible entry at index, or closes it when it is already
// open. At most one entry is open. It returns the entry and whether it is
// now open; an out-of-range index changes nothing.
func (q *Query) Toggle(index int) (Entry, bool) {
	visible := q.VisibleEntries()
	if index < 0 || index >= len(visible) {
		return Entry{}, false
	}

	e := visible[index]
	if q.openID == e.ID {
		q.openID = ""
		return e, false
	}
	q.openID = e.ID
	return e, true
}

// Open opens the entry with the given ID if it is currently visible.
func (q *Query) Open(id string) bool {
	for _, e := range q.VisibleEntries() {
		if e.ID == id {
			q.openID = id
			return true
		}
	}
	return false
}

// Close collapses the open entry, if any.
func (q *Query) Close() {
	q.openID = ""
}

// OpenIndex returns the open entry's index in the visible list.
func (q *Query) OpenIndex() (int, bool) {
	if q.openID == "" {
		return 0, false
	}
	for i, e := range q.VisibleEntries() {
		if e.ID == q.openID {
			return i, true
		}
	}
	return 0, false
}

// OpenEntry returns the open entry, if any.
func (q *Query) OpenEntry() (Entry, bool) {
	i, ok := q.OpenIndex()
	if !ok {
		return Entry{}, false
	}
	return q.VisibleEntries()[i], true
}

// ResolveDeepLink selects the category owning the entry whose ID equals
// fragment and opens it. The search term is cleared so the entry is
// guaranteed to be visible.
func (q *Query) ResolveDeepLink(fragment string) (DeepLink, bool) {
	fragment = strings.TrimPrefix(fragment, "#")
	category, position, ok := q.catalog.Locate(fragment)
	if !ok {
		return DeepLink{}, false
	}

	q.category = category
	q.search = ""
	q.openID = fragment
	return DeepLink{Category: category, Position: position, ScrollIntoView: true}, true
}

// Values encodes the state as URL query parameters. Empty fields are omitted.
func (q *Query) Values() url.Values {
	v := url.Values{}
	v.Set("category", q.category)
	if q.search != "" {
		v.Set("q", q.search)
	}
	if q.openID != "" {
		v.Set("open", q.openID)
	}
	return v
}

// Apply restores state from URL query parameters. An "open" parameter with
// no explicit category is treated as a deep link.
func (q *Query) Apply(v url.Values) {
	open := v.Get("open")
	category := v.Get("category")

	if category == "" && open != "" {
		if _, ok := q.ResolveDeepLink(open); ok {
			return
		}
	}
	if category != "" {
		q.SetCategory(category)
	}
	q.SetSearchTerm(v.Get("q"))
	if open != "" {
		q.Open(open)
	}
}
