package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yigit/degreepath/internal/pkg/apperrors"
)

// TimeParseError reports an offering dropped from the timeline because its
// meeting times could not be used.
type TimeParseError struct {
	OfferingID string
	CourseCode string
	Field      string // "start", "end" or "range"
	Value      string
	Err        error
}

func (e *TimeParseError) Error() string {
	msg := fmt.Sprintf("offering %s (%s): invalid %s time %q", e.OfferingID, e.CourseCode, e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TimeParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{apperrors.ErrTimeParse}
	}
	return []error{apperrors.ErrTimeParse, e.Err}
}

// ParseClock converts a 24-hour "H:MM" or "HH:MM" wall-clock time to minutes
// since midnight. A trailing ":SS" is accepted and ignored.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}

	hour, err := clockField(parts[0], 1, 2)
	if err != nil {
		return 0, fmt.Errorf("hour: %w", err)
	}
	minute, err := clockField(parts[1], 2, 2)
	if err != nil {
		return 0, fmt.Errorf("minute: %w", err)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute %d out of range", minute)
	}
	if len(parts) == 3 {
		second, err := clockField(parts[2], 2, 2)
		if err != nil {
			return 0, fmt.Errorf("second: %w", err)
		}
		if second < 0 || second > 59 {
			return 0, fmt.Errorf("second %d out of range", second)
		}
	}

	return hour*60 + minute, nil
}

// clockField parses an unsigned run of minLen to maxLen ASCII digits.
func clockField(s string, minLen, maxLen int) (int, error) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, fmt.Errorf("expected %d-%d digits, got %q", minLen, maxLen, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit in %q", s)
		}
	}
	return strconv.Atoi(s)
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
