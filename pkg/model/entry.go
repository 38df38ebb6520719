package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry represents one row of logged work from an hours CSV.
type Entry struct {
	Week     string // raw label, usually a week number
	Date     time.Time
	Hours    decimal.Decimal
	Task     string
	Category string
}

// DateLabel formats the entry date as it appears on an invoice, e.g. "March 05".
func (e Entry) DateLabel() string {
	return e.Date.Format("January 02")
}
