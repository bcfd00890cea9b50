package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

const monthLayout = "2006-01"

// ParseMonth parses a yyyy-MM month identifier and returns the first day of
// that month.
func ParseMonth(month string) (time.Time, error) {
	return time.Parse(monthLayout, month)
}

// IsValidMonth checks if a string is a yyyy-MM month identifier.
func IsValidMonth(month string) bool {
	_, err := ParseMonth(month)
	return err == nil
}

// FormatMonth renders a time as its yyyy-MM month identifier.
func FormatMonth(t time.Time) string {
	return t.Format(monthLayout)
}

// flexibleDateLayouts are the accepted textual date formats, tried in order.
// The employee directory contains mixed data, so the ISO form is tried first
// and the dd/MM/yyyy form second.
var flexibleDateLayouts = []string{"2006-01-02", "02/01/2006"}

// ParseFlexibleDate parses a date trying each accepted format in order; the
// first success wins. Exhaustion returns the last parse error.
func ParseFlexibleDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var lastErr error
	for _, layout := range flexibleDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// SameMonth reports whether two dates fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
