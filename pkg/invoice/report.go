package invoice

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/harrisonrobin/hours/pkg/model"
	"github.com/shopspring/decimal"
)

const separator = "----"

// CategoryGroup holds entries keyed by category, each list in input order.
type CategoryGroup struct {
	entries map[string][]model.Entry
}

// NewCategoryGroup returns an empty group.
func NewCategoryGroup() *CategoryGroup {
	return &CategoryGroup{entries: make(map[string][]model.Entry)}
}

// GroupByCategory groups entries by their Category field.
func GroupByCategory(entries []model.Entry) *CategoryGroup {
	g := NewCategoryGroup()
	for _, e := range entries {
		g.Add(e)
	}
	return g
}

// Add appends e to the list of its category.
func (g *CategoryGroup) Add(e model.Entry) {
	g.entries[e.Category] = append(g.entries[e.Category], e)
}

// Categories returns the category names in ascending lexicographic order.
func (g *CategoryGroup) Categories() []string {
	names := make([]string, 0, len(g.entries))
	for name := range g.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns a copy of the category's entries in input order.
func (g *CategoryGroup) Entries(category string) []model.Entry {
	return slices.Clone(g.entries[category])
}

// Len is the number of distinct categories.
func (g *CategoryGroup) Len() int {
	return len(g.entries)
}

// Section is one category block of a Report.
type Section struct {
	Category string
	Entries  []model.Entry
	Subtotal decimal.Decimal
}

// Report is the invoice summary of a CategoryGroup.
type Report struct {
	Sections []Section
	Total    decimal.Decimal
}

// BuildReport sums hours per category and overall. Sections follow Categories() order.
func BuildReport(g *CategoryGroup) Report {
	report := Report{Total: decimal.Zero}
	for _, category := range g.Categories() {
		section := Section{Category: category, Subtotal: decimal.Zero}
		for _, e := range g.Entries(category) {
			section.Entries = append(section.Entries, e)
			section.Subtotal = section.Subtotal.Add(e.Hours)
			report.Total = report.Total.Add(e.Hours)
		}
		report.Sections = append(report.Sections, section)
	}
	return report
}

// String renders the report exactly as WriteTo does.
func (r Report) String() string {
	var b strings.Builder
	b.WriteString(separator + "\n")
	for _, s := range r.Sections {
		b.WriteString(s.Category + "\n")
		for _, e := range s.Entries {
			fmt.Fprintf(&b, "%s (%s - %s hours)\n", e.Task, e.DateLabel(), e.Hours.String())
		}
		fmt.Fprintf(&b, "\nhours for category: %s\n", s.Subtotal.String())
		b.WriteString(separator + "\n")
	}
	fmt.Fprintf(&b, "\ntotal hours: %s\n", r.Total.String())
	return b.String()
}

func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}
