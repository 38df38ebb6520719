package timesheet

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Tally accumulates hours per task. Tasks are reported in the order they
// were first added; the map is only used for lookups.
type Tally struct {
	order []string
	hours map[string]float64
	total float64
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{hours: make(map[string]float64)}
}

// Summarize computes the duration of every interval and tallies it by task.
func Summarize(intervals []Interval) (*Tally, error) {
	t := NewTally()
	for _, iv := range intervals {
		d, err := CalculateDuration(iv.Start, iv.End)
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", iv.Task, err)
		}
		t.Add(iv.Task, d)
	}
	return t, nil
}

// Add records hours against task, adding the task to the order on first sight.
func (t *Tally) Add(task string, hours float64) {
	if _, seen := t.hours[task]; !seen {
		t.order = append(t.order, task)
	}
	t.hours[task] += hours
	t.total += hours
}

// Tasks returns the distinct task labels in first-seen order.
func (t *Tally) Tasks() []string {
	return slices.Clone(t.order)
}

// Hours is the unrounded sum for task.
func (t *Tally) Hours(task string) float64 {
	return t.hours[task]
}

// Total is the unrounded sum over all tasks.
func (t *Tally) Total() float64 {
	return t.total
}

// Len is the number of distinct tasks.
func (t *Tally) Len() int {
	return len(t.order)
}

// Lines returns one "<task> (<hours>)" line per task.
func (t *Tally) Lines() []string {
	lines := make([]string, 0, len(t.order))
	for _, task := range t.order {
		lines = append(lines, fmt.Sprintf("%s (%s)", task, FormatHours(Round2(t.hours[task]))))
	}
	return lines
}

// Bullets lists each task once, for the "Yesterday" stand-up summary.
func (t *Tally) Bullets() []string {
	bullets := make([]string, 0, len(t.order))
	for _, task := range t.order {
		bullets = append(bullets, "• "+task)
	}
	return bullets
}

// ClipboardText is the task lines joined by newlines, without the total.
// Pasted into a spreadsheet it fills a single cell.
func (t *Tally) ClipboardText() string {
	return strings.Join(t.Lines(), "\n")
}

func (t *Tally) String() string {
	var b strings.Builder
	for _, line := range t.Lines() {
		b.WriteString(line + "\n")
	}
	fmt.Fprintf(&b, "\nTotal hours: %s\n", FormatHours(Round2(t.total)))
	b.WriteString("\nYesterday:\n")
	for _, bullet := range t.Bullets() {
		b.WriteString(bullet + "\n")
	}
	return b.String()
}

func (t *Tally) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}
