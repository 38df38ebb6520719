package timesheet

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var (
	leadingDigitRegex = regexp.MustCompile(`^\d`)
	intervalRegex     = regexp.MustCompile(`^(\d{1,2}(?:\.\d{1,2})?)-(\d{1,2}(?:\.\d{1,2})?)\s+(.*)`)
)

// initialLineBuffer is the scanner's starting buffer; it grows without limit
// so a long pasted note is skipped like any other line.
const initialLineBuffer = 64 * 1024

const (
	rejectNoDigit  = "does not start with a digit"
	rejectNoMatch  = "not a start-end task line"
	rejectBreak    = "break interval"
	breakTaskLabel = "break"
)

// Interval is one accepted "start-end task" log line.
// Start and End are raw H or H.MM tokens.
type Interval struct {
	Start string
	End   string
	Task  string
}

// ParseLine extracts an Interval from a single log line. Comments, headers,
// blank lines, malformed ranges and breaks are rejected with ok=false.
func ParseLine(line string) (Interval, bool) {
	interval, reason := classify(line)
	return interval, reason == ""
}

func classify(line string) (Interval, string) {
	line = strings.TrimSpace(line)
	if !leadingDigitRegex.MatchString(line) {
		return Interval{}, rejectNoDigit
	}

	matches := intervalRegex.FindStringSubmatch(line)
	if matches == nil {
		return Interval{}, rejectNoMatch
	}

	interval := Interval{Start: matches[1], End: matches[2], Task: matches[3]}
	if strings.HasPrefix(strings.ToLower(interval.Task), breakTaskLabel) {
		return Interval{}, rejectBreak
	}
	return interval, ""
}

// Parser turns a task log into intervals, logging skipped lines at debug level.
type Parser struct {
	logger *zap.Logger
}

// NewParser returns a Parser; a nil logger discards the skipped-line logs.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// Parse reads r to EOF, then returns the accepted intervals in input order.
// Rejected lines are dropped; only read errors are returned.
func (p *Parser) Parse(r io.Reader) ([]Interval, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read task log: %w", err)
	}
	return p.ParseLines(lines), nil
}

// ParseLines filters already-read lines, keeping accepted intervals in order.
func (p *Parser) ParseLines(lines []string) []Interval {
	var intervals []Interval
	for i, line := range lines {
		interval, reason := classify(line)
		if reason != "" {
			p.logger.Debug("skipping line",
				zap.Int("line", i+1),
				zap.String("text", line),
				zap.String("reason", reason))
			continue
		}
		intervals = append(intervals, interval)
	}
	return intervals
}
