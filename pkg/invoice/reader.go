package invoice

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/harrisonrobin/hours/pkg/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	dateLayout = "1/2/2006" // MM/DD/YYYY, leading zeros optional
	utf8BOM    = "\ufeff"
)

var (
	// HeaderFields is the exact header row an hours CSV must start with.
	HeaderFields = []string{"Week", "Date", "Hours", "Task", "Category"}

	errNegativeHours = errors.New("hours must not be negative")
)

// Sheet is an hours CSV read fully into memory.
type Sheet struct {
	Header []string
	Rows   [][]string
}

// Reader loads hours CSV files.
type Reader struct {
	logger *zap.Logger
}

// NewReader returns a Reader; a nil logger disables its debug output.
func NewReader(logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{logger: logger}
}

// ReadSheet reads every record from r. The first record becomes the header.
func (rd *Reader) ReadSheet(r io.Reader) (*Sheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row shape is checked per entry
	cr.LazyQuotes = true    // `Review 27" monitor` keeps its quote

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	sheet := &Sheet{}
	if len(records) > 0 {
		sheet.Header = records[0]
		// Excel's "CSV UTF-8" export starts with a byte-order mark.
		if len(sheet.Header) > 0 {
			sheet.Header[0] = strings.TrimPrefix(sheet.Header[0], utf8BOM)
		}
		sheet.Rows = records[1:]
	}
	rd.logger.Debug("read hours sheet",
		zap.Strings("header", sheet.Header),
		zap.Int("rows", len(sheet.Rows)))
	return sheet, nil
}

// ValidateHeader checks the header row against HeaderFields, in order.
func (s *Sheet) ValidateHeader() error {
	return ValidateHeader(s.Header)
}

// Entries converts every row into an Entry, stopping at the first bad row.
func (s *Sheet) Entries() ([]model.Entry, error) {
	entries := make([]model.Entry, 0, len(s.Rows))
	for i, row := range s.Rows {
		entry, err := ParseEntry(row)
		if err != nil {
			// +2: one for the header, one for 1-based numbering
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ValidateHeader returns a HeaderMismatchError unless fields equal HeaderFields exactly.
func ValidateHeader(fields []string) error {
	if !slices.Equal(fields, HeaderFields) {
		return &HeaderMismatchError{
			Expected: slices.Clone(HeaderFields),
			Actual:   slices.Clone(fields),
		}
	}
	return nil
}

// ParseEntry builds an Entry from a Week,Date,Hours,Task,Category row.
// Task and category are taken as-is.
func ParseEntry(row []string) (model.Entry, error) {
	if len(row) != len(HeaderFields) {
		return model.Entry{}, &FormatError{
			Field: "row",
			Value: strings.Join(row, ","),
			Err:   fmt.Errorf("expected %d fields, got %d", len(HeaderFields), len(row)),
		}
	}

	rawDate := strings.TrimSpace(row[1])
	date, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		return model.Entry{}, &FormatError{Field: "date", Value: row[1], Err: err}
	}

	hours, err := decimal.NewFromString(strings.TrimSpace(row[2]))
	if err != nil {
		return model.Entry{}, &FormatError{Field: "hours", Value: row[2], Err: err}
	}
	if hours.IsNegative() {
		return model.Entry{}, &FormatError{Field: "hours", Value: row[2], Err: errNegativeHours}
	}

	return model.Entry{
		Week:     row[0],
		Date:     date,
		Hours:    hours,
		Task:     row[3],
		Category: row[4],
	}, nil
}
