package timesheet

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var tokenRegex = regexp.MustCompile(`^\d+(?:\.\d+)?$`)

// ParseTime converts an H or H.MM token to fractional hours. The digits
// after the point are minutes, not a decimal fraction: "9.30" is 9.5.
// Neither part is range checked.
func ParseTime(token string) (float64, error) {
	if !tokenRegex.MatchString(token) {
		return 0, fmt.Errorf("invalid time token: %q", token)
	}

	hoursPart, minutesPart, hasMinutes := strings.Cut(token, ".")
	hours, err := strconv.Atoi(hoursPart)
	if err != nil {
		return 0, fmt.Errorf("invalid hours in %q: %w", token, err)
	}

	minutes := 0
	if hasMinutes {
		minutes, err = strconv.Atoi(minutesPart)
		if err != nil {
			return 0, fmt.Errorf("invalid minutes in %q: %w", token, err)
		}
	}

	return float64(hours) + float64(minutes)/60, nil
}

// AdjustForPM moves end into the afternoon when it is numerically before start.
// A span crossing midnight ("23-1") is not recognised and stays negative.
func AdjustForPM(start, end float64) float64 {
	if end < start {
		end += 12
	}
	return end
}

// CalculateDuration returns the hours between two tokens, rounded to 2 decimals.
func CalculateDuration(startToken, endToken string) (float64, error) {
	start, err := ParseTime(startToken)
	if err != nil {
		return 0, err
	}
	end, err := ParseTime(endToken)
	if err != nil {
		return 0, err
	}
	return Round2(AdjustForPM(start, end) - start), nil
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatHours prints v with the shortest exact form but at least one decimal, e.g. "8.0", "0.33".
func FormatHours(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
