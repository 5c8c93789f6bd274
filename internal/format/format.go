// Package format provides the display formatting rules shared by the TUI
// and the non-interactive output: locale-separated integers, KB/MB disk
// sizes, date prefixes, and width-aware truncation.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Missing is rendered in place of absent numeric values.
const Missing = "–"

var printer = message.NewPrinter(language.English)

// Count renders an integer with locale thousand separators: 1234567
// becomes "1,234,567".
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// CountPtr renders a nullable counter, or Missing when absent.
func CountPtr(n *int) string {
	if n == nil {
		return Missing
	}
	return Count(*n)
}

// DiskKB renders a disk size reported in kilobytes: values of 1000 KB and
// above switch to megabytes with one decimal.
func DiskKB(kb *int) string {
	if kb == nil {
		return Missing
	}
	if *kb >= 1000 {
		return fmt.Sprintf("%.1f MB", float64(*kb)/1000)
	}
	return fmt.Sprintf("%d KB", *kb)
}

// Date reduces an ISO-8601 timestamp to its date: the first ten
// characters ("YYYY-MM-DD"). Empty input renders as Missing.
func Date(iso string) string {
	if iso == "" {
		return Missing
	}
	if len(iso) < 10 {
		return iso
	}
	return iso[:10]
}

// NewStars renders a trending star delta as "+N", or "" when the value is
// absent (non-trending responses).
func NewStars(ns *int) string {
	if ns == nil {
		return ""
	}
	return "+" + Count(*ns)
}
