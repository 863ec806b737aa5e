// Package hints holds the static render-hint table: UI presentation metadata
// keyed by tool name. The table is built once and never mutated.
package hints

import (
	"slices"
	"sort"
	"sync"
)

// Layout is the recommended layout slot for a rendered result.
type Layout string

const (
	LayoutCard      Layout = "card"
	LayoutTable     Layout = "table"
	LayoutGrid      Layout = "grid"
	LayoutDashboard Layout = "dashboard"
)

// Hint describes how a client should present a tool result.
type Hint struct {
	SuggestedComponent string   `json:"suggestedComponent"`
	ChartType          string   `json:"chartType,omitempty"`
	Layout             Layout   `json:"layout"`
	HighlightFields    []string `json:"highlightFields,omitempty"`
	PairedWith         []string `json:"pairedWith,omitempty"`
	ExampleCode        string   `json:"exampleCode,omitempty"`
	DashboardTemplates []string `json:"dashboardTemplates,omitempty"`
}

// Clone returns a deep copy so callers cannot alter the shared table.
func (h Hint) Clone() *Hint {
	h.HighlightFields = slices.Clone(h.HighlightFields)
	h.PairedWith = slices.Clone(h.PairedWith)
	h.DashboardTemplates = slices.Clone(h.DashboardTemplates)
	return &h
}

// Table is an immutable tool name → Hint mapping, safe for concurrent reads.
type Table struct {
	entries map[string]Hint
}

// NewTable copies entries into a new table.
func NewTable(entries map[string]Hint) *Table {
	t := &Table{entries: make(map[string]Hint, len(entries))}
	for name, h := range entries {
		t.entries[name] = *h.Clone()
	}
	return t
}

// Lookup returns a copy of the hint registered for tool, if any.
func (t *Table) Lookup(tool string) (*Hint, bool) {
	if t == nil {
		return nil, false
	}
	h, ok := t.entries[tool]
	if !ok {
		return nil, false
	}
	return h.Clone(), true
}

// Names returns the tool names with an entry, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

var defaultTable = sync.OnceValue(func() *Table {
	return NewTable(defaultEntries)
})

// Default returns the process-wide render-hint table.
func Default() *Table {
	return defaultTable()
}
