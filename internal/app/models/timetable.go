package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/mertcan/eduportal/internal/pkg/apperrors"
)

// Weekday is one of the seven fixed day names used as a grouping key.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays is the fixed display order for timetable buckets.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday validates a day name against the seven fixed values.
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range Weekdays {
		if string(d) == s {
			return d, nil
		}
	}
	return "", apperrors.NewValidationError("invalid day: " + s)
}

// Index returns the calendar position of the weekday, Monday being 0.
// Unknown values sort last.
func (w Weekday) Index() int {
	for i, d := range Weekdays {
		if d == w {
			return i
		}
	}
	return len(Weekdays)
}

// TimetableEntry defines a scheduled class based on the 'timetable' table.
// EndTime is stored with the automatic break already applied; the raw end
// time entered at creation is discarded once adjusted.
type TimetableEntry struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Day       Weekday   `json:"day" db:"day"`
	StartTime string    `json:"startTime" db:"start_time"`
	EndTime   string    `json:"endTime" db:"end_time"`
	Subject   string    `json:"subject" db:"subject"`
	FacultyID uuid.UUID `json:"facultyId" db:"faculty_id"`
	// FacultyName is joined from profiles.full_name on list queries.
	FacultyName string    `json:"facultyName" db:"faculty_name"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// OwnerID returns the owning principal identifier.
func (e *TimetableEntry) OwnerID() uuid.UUID { return e.FacultyID }

// DaySchedule is one weekday bucket of the grouped timetable.
type DaySchedule struct {
	Day     Weekday           `json:"day"`
	Entries []*TimetableEntry `json:"entries"`
}

// GroupByDay partitions entries into the seven weekday buckets in fixed
// Monday..Sunday order. Every bucket is present even when empty. Entries
// arrive pre-sorted by start time from the repository; order within a
// bucket is preserved, never recomputed here.
func GroupByDay(entries []*TimetableEntry) []DaySchedule {
	grouped := make([]DaySchedule, 0, len(Weekdays))
	for _, day := range Weekdays {
		bucket := DaySchedule{Day: day, Entries: []*TimetableEntry{}}
		for _, e := range entries {
			if e.Day == day {
				bucket.Entries = append(bucket.Entries, e)
			}
		}
		grouped = append(grouped, bucket)
	}
	return grouped
}
