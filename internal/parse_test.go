package internal

import (
	"errors"
	"testing"
	"time"

	"github.com/dromara/carbon/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAbsentDate(t *testing.T) {
	var nilTime *time.Time
	var nilCarbon *carbon.Carbon
	now := time.Now()

	tests := []struct {
		name string
		in   any
		want bool
	}{
		{name: "nil", in: nil, want: true},
		{name: "empty string", in: "", want: true},
		{name: "blank string", in: "   ", want: true},
		{name: "zero time", in: time.Time{}, want: true},
		{name: "nil time pointer", in: nilTime, want: true},
		{name: "nil carbon", in: nilCarbon, want: true},
		{name: "zero carbon", in: carbon.NewCarbon(), want: true},
		{name: "zero carbon struct", in: &carbon.Carbon{}, want: true},
		{name: "zero carbon value", in: carbon.Carbon{}, want: true},
		{name: "carbon", in: carbon.Parse("2018-01-02", carbon.UTC), want: false},
		{name: "date string", in: "2018-01-01", want: false},
		{name: "time", in: now, want: false},
		{name: "time pointer", in: &now, want: false},
		{name: "unsupported type", in: 42, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAbsentDate(tt.in))
		})
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2018, 1, 2, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "date string", in: "2018-01-02", want: "2018-01-02"},
		{name: "padded string", in: " 2018-01-02 ", want: "2018-01-02"},
		{name: "datetime string", in: "2018-01-02 15:04:05", want: "2018-01-02"},
		{name: "time", in: ts, want: "2018-01-02"},
		{name: "time pointer", in: &ts, want: "2018-01-02"},
		{name: "carbon", in: carbon.Parse("2018-01-02", carbon.UTC), want: "2018-01-02"},
		{name: "carbon value", in: *carbon.Parse("2018-01-02", carbon.UTC), want: "2018-01-02"},
		{name: "utc timestamp", in: "2018-01-02T01:00:00Z", want: "2018-01-02"},
		{name: "offset timestamp", in: "2018-01-02T23:30:00-08:00", want: "2018-01-02"},
		{name: "today", in: "today", want: time.Now().Format(time.DateOnly)},
		{name: "yesterday", in: "Yesterday", want: time.Now().AddDate(0, 0, -1).Format(time.DateOnly)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDateIgnoresHostZone(t *testing.T) {
	orig := time.Local
	t.Cleanup(func() { time.Local = orig })

	for _, loc := range []*time.Location{
		time.FixedZone("EST", -5*60*60),
		time.FixedZone("JST", 9*60*60),
	} {
		time.Local = loc
		t.Run(loc.String(), func(t *testing.T) {
			for in, want := range map[string]string{
				"2018-01-02":                "2018-01-02",
				"2018-01-02 15:04:05":       "2018-01-02",
				"2018-01-02T01:00:00Z":      "2018-01-02",
				"2018-01-02T23:30:00+05:00": "2018-01-02",
				"2018-01-02T00:15:00-07:00": "2018-01-02",
			} {
				got, err := FormatDate(in)
				require.NoError(t, err, in)
				assert.Equal(t, want, got, in)
			}
		})
	}
}

func TestFormatDateErrors(t *testing.T) {
	tests := []struct {
		name string
		in   any
		msg  string
	}{
		{name: "nil", in: nil, msg: "Please specify a valid date."},
		{name: "zero carbon", in: carbon.NewCarbon(), msg: "Please specify a valid date."},
		{name: "garbage", in: "someday", msg: "Invalid date: someday. Use the format YYYY-MM-DD."},
		{name: "unsupported type", in: 3.14, msg: "Date used must be a date/time value or a string in the format YYYY-MM-DD; supplied argument is a float64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FormatDate(tt.in)
			require.Error(t, err)
			assert.EqualError(t, err, tt.msg)
			assert.True(t, errors.Is(err, ErrInvalidArgs))
		})
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in          string
		want        string
		expectError bool
	}{
		{in: "12:30", want: "12:30"},
		{in: "00:00", want: "00:00"},
		{in: "23:59", want: "23:59"},
		{in: "9:05", want: "09:05"},
		{in: "24:00", expectError: true},
		{in: "12:60", expectError: true},
		{in: "12", expectError: true},
		{in: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FormatTime(tt.in)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidArgs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
