package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Prices travel as decimal strings end to end; arithmetic happens on
// integer cents so "50.00" never degrades to 50 or 49.999999.

var errBadPrice = errors.New("price must be a non-negative decimal with at most two decimal places")

// NormalizePrice validates a client-supplied price and returns it with
// exactly two fraction digits ("50" -> "50.00").
func NormalizePrice(s string) (string, error) {
	cents, err := PriceCents(s)
	if err != nil {
		return "", err
	}
	return FormatCents(cents), nil
}

// PriceCents parses a decimal string into integer cents.
func PriceCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, errBadPrice
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, errBadPrice
	}
	for len(frac) < 2 {
		frac += "0"
	}

	// ParseUint rejects sign characters, so "5.-1" cannot sneak a
	// negative fraction past the whole-string prefix check above.
	w, err := strconv.ParseUint(whole, 10, 32)
	if err != nil {
		return 0, errBadPrice
	}
	f, err := strconv.ParseUint(frac, 10, 32)
	if err != nil {
		return 0, errBadPrice
	}

	return int64(w)*100 + int64(f), nil
}

// FormatCents renders integer cents as a two-decimal string.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// TotalPrice computes nights * nightly for a booking. Any stay shorter
// than a full day still counts as one night; the caller has already
// rejected ranges where start is not before end.
func TotalPrice(nightly string, start, end time.Time) (string, error) {
	cents, err := PriceCents(nightly)
	if err != nil {
		return "", err
	}

	nights := int64(end.Sub(start) / (24 * time.Hour))
	if nights < 1 {
		nights = 1
	}

	return FormatCents(cents * nights), nil
}
