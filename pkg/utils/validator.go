package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// DateLayout is the canonical date format used across all sheets.
	DateLayout = "2006-01-02"
	// ClockLayout is the 24h wall-clock format for itinerary times.
	ClockLayout = "15:04"
)

// Sheet titles cannot contain these characters.
var invalidSheetChars = regexp.MustCompile(`[\[\]\*\?/\\:]`)

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(raw string) error {
	if _, err := time.Parse(DateLayout, raw); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(DateLayout, raw)
}

// ValidateClock checks an HH:MM time-of-day string.
func ValidateClock(raw string) error {
	if _, err := time.Parse(ClockLayout, raw); err != nil {
		return fmt.Errorf("invalid time %q, expected HH:MM", raw)
	}
	return nil
}

// ValidateTripName checks that a trip name is usable as a sheet title.
func ValidateTripName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("trip name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("trip name exceeds 100 characters")
	}
	if invalidSheetChars.MatchString(name) {
		return fmt.Errorf("trip name contains characters not allowed in sheet titles: %s", name)
	}
	return nil
}
