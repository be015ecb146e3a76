package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustEndTime(t *testing.T) {
	tests := []struct {
		name string
		in   ClockTime
		want ClockTime
	}{
		{"on the hour", ClockTime{9, 0}, ClockTime{9, 15}},
		{"minute carry", ClockTime{14, 50}, ClockTime{15, 5}},
		{"carry at 45", ClockTime{10, 45}, ClockTime{11, 0}},
		{"no carry at 44", ClockTime{10, 44}, ClockTime{10, 59}},
		// Wraps past midnight without any day rollover.
		{"midnight wrap", ClockTime{23, 50}, ClockTime{0, 5}},
		{"wrap exactly", ClockTime{23, 45}, ClockTime{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdjustEndTime(tt.in, DefaultBreakMinutes))
		})
	}
}

func TestAddMinutesAlwaysAdvancesByBreak(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			in := ClockTime{h, m}
			out := in.AddMinutes(DefaultBreakMinutes)
			gotDelta := (out.Hour*60 + out.Minute - in.Hour*60 - in.Minute + 24*60) % (24 * 60)
			require.Equal(t, DefaultBreakMinutes, gotDelta, "input %s", in)
		}
	}
}

func TestParseClock(t *testing.T) {
	ct, err := ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, ClockTime{9, 5}, ct)
	assert.Equal(t, "09:05", ct.String())

	ct, err = ParseClock("7:30")
	require.NoError(t, err)
	assert.Equal(t, ClockTime{7, 30}, ct)

	for _, bad := range []string{
		"25:00",
		"nonsense",
		"12:75",
		"12:5",
		// The whole input must be the time; suffixes are not ignored.
		"10:00pm",
		"10:00 ",
		" 10:00",
		"10:00:00",
		"-1:30",
	} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
