package schedule

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mertcan/eduportal/internal/pkg/apperrors"
)

// DefaultBreakMinutes is the fixed break appended to every scheduled class.
const DefaultBreakMinutes = 15

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	Hour   int // 0..23
	Minute int // 0..59
}

var clockPattern = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})$`)

// ParseClock parses a "HH:MM" string into a ClockTime. The whole input must
// match; trailing text like "10:00pm" is rejected.
func ParseClock(s string) (ClockTime, error) {
	groups := clockPattern.FindStringSubmatch(s)
	if groups == nil {
		return ClockTime{}, apperrors.NewValidationError(fmt.Sprintf("invalid time %q, expected HH:MM", s))
	}
	h, _ := strconv.Atoi(groups[1])
	m, _ := strconv.Atoi(groups[2])
	if h > 23 || m > 59 {
		return ClockTime{}, apperrors.NewValidationError(fmt.Sprintf("time %q out of range", s))
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// String formats the time as zero-padded "HH:MM".
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// AddMinutes returns the time advanced by the given number of minutes.
// Minute overflow carries into the hour; the hour wraps modulo 24 with no
// day rollover, so 23:50 plus 15 minutes is 00:05 on the same day.
func (t ClockTime) AddMinutes(minutes int) ClockTime {
	total := t.Hour*60 + t.Minute + minutes
	total %= 24 * 60
	if total < 0 {
		total += 24 * 60
	}
	return ClockTime{Hour: total / 60, Minute: total % 60}
}

// AdjustEndTime converts a user-entered class end time into the end time
// that gets persisted, which includes the automatic break. The raw input is
// discarded once adjusted.
func AdjustEndTime(rawEnd ClockTime, breakMinutes int) ClockTime {
	return rawEnd.AddMinutes(breakMinutes)
}
