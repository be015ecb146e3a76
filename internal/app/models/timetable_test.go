package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDayEmptyInput(t *testing.T) {
	grouped := GroupByDay(nil)

	require.Len(t, grouped, 7)
	for i, day := range Weekdays {
		assert.Equal(t, day, grouped[i].Day)
		assert.Empty(t, grouped[i].Entries)
		assert.NotNil(t, grouped[i].Entries)
	}
}

func TestGroupByDayPreservesInputOrder(t *testing.T) {
	// Entries arrive pre-sorted by start time within each day.
	tue := &TimetableEntry{Day: Tuesday, StartTime: "09:00", Subject: "Physics"}
	monEarly := &TimetableEntry{Day: Monday, StartTime: "08:00", Subject: "Algebra"}
	monLate := &TimetableEntry{Day: Monday, StartTime: "10:00", Subject: "History"}

	grouped := GroupByDay([]*TimetableEntry{monEarly, monLate, tue})

	require.Len(t, grouped, 7)
	assert.Equal(t, Monday, grouped[0].Day)
	require.Len(t, grouped[0].Entries, 2)
	assert.Equal(t, "Algebra", grouped[0].Entries[0].Subject)
	assert.Equal(t, "History", grouped[0].Entries[1].Subject)

	assert.Equal(t, Tuesday, grouped[1].Day)
	require.Len(t, grouped[1].Entries, 1)
	assert.Equal(t, "Physics", grouped[1].Entries[0].Subject)

	for _, bucket := range grouped[2:] {
		assert.Empty(t, bucket.Entries)
	}
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("Wednesday")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, d)
	assert.Equal(t, 2, d.Index())

	_, err = ParseWeekday("Funday")
	assert.Error(t, err)
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleFaculty, ParseRole("faculty"))
	assert.Equal(t, RoleStudent, ParseRole("student"))
	assert.Equal(t, RoleUnknown, ParseRole("admin"))
	assert.Equal(t, RoleUnknown, ParseRole(""))

	assert.True(t, RoleFaculty.CanWrite())
	assert.False(t, RoleStudent.CanWrite())
	assert.False(t, RoleUnknown.CanWrite())
}
