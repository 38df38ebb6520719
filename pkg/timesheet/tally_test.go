package timesheet

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	intervals := []Interval{
		{"9", "10.30", "Project A"},
		{"10.30", "12", "Project B"},
		{"1", "2.45", "Project A"},
		{"2.45", "5", "Review"},
	}

	tally, err := Summarize(intervals)
	require.NoError(t, err)

	assert.Equal(t, []string{"Project A", "Project B", "Review"}, tally.Tasks())
	assert.Equal(t, 3, tally.Len())
	assert.InDelta(t, 3.25, tally.Hours("Project A"), 1e-9)
	assert.InDelta(t, 1.5, tally.Hours("Project B"), 1e-9)
	assert.InDelta(t, 2.25, tally.Hours("Review"), 1e-9)
	assert.InDelta(t, 7.0, tally.Total(), 1e-9)

	assert.Equal(t, []string{"Project A (3.25)", "Project B (1.5)", "Review (2.25)"}, tally.Lines())
	assert.Equal(t, []string{"• Project A", "• Project B", "• Review"}, tally.Bullets())
	assert.Equal(t, "Project A (3.25)\nProject B (1.5)\nReview (2.25)", tally.ClipboardText())
}

func TestSummarizeInvalidToken(t *testing.T) {
	_, err := Summarize([]Interval{{"9", "ten", "Oops"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Oops")
}

func TestTallyKeepsFirstSeenOrder(t *testing.T) {
	tally := NewTally()
	for _, task := range []string{"zeta", "alpha", "mid", "alpha", "zeta", "beta"} {
		tally.Add(task, 1)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid", "beta"}, tally.Tasks())
	assert.Equal(t, "zeta (2.0)\nalpha (2.0)\nmid (1.0)\nbeta (1.0)", tally.ClipboardText())

	tasks := tally.Tasks()
	tasks[0] = "changed"
	assert.Equal(t, "zeta", tally.Tasks()[0])
}

func TestTallyWriteTo(t *testing.T) {
	tally, err := Summarize([]Interval{
		{"9", "10.30", "Project A"},
		{"10.30", "12", "Project B"},
		{"1", "2.45", "Project A"},
		{"2.45", "5", "Review"},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = tally.WriteTo(&buf)
	require.NoError(t, err)

	expected := "Project A (3.25)\n" +
		"Project B (1.5)\n" +
		"Review (2.25)\n" +
		"\n" +
		"Total hours: 7.0\n" +
		"\n" +
		"Yesterday:\n" +
		"• Project A\n" +
		"• Project B\n" +
		"• Review\n"
	assert.Equal(t, expected, buf.String())
}

func TestTallyEmpty(t *testing.T) {
	tally, err := Summarize(nil)
	require.NoError(t, err)
	assert.Empty(t, tally.Lines())
	assert.Empty(t, tally.ClipboardText())
	assert.Equal(t, "\nTotal hours: 0.0\n\nYesterday:\n", tally.String())
}

func TestRoundedTaskHoursReconcileWithTotal(t *testing.T) {
	intervals := []Interval{
		{"9", "9.20", "a"},
		{"9.20", "9.40", "b"},
		{"9.40", "10", "c"},
		{"10", "10.07", "a"},
		{"10.07", "10.59", "d"},
		{"10.59", "1.13", "b"},
		{"1.13", "1.14", "e"},
		{"1.14", "4.01", "c"},
	}

	tally, err := Summarize(intervals)
	require.NoError(t, err)

	var sum float64
	for _, task := range tally.Tasks() {
		sum += Round2(tally.Hours(task))
	}
	tolerance := 0.01*float64(tally.Len()) + 1e-9
	assert.LessOrEqual(t, math.Abs(sum-Round2(tally.Total())), tolerance)
}
