package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDueTime(t *testing.T) {
	loc := time.FixedZone("local", 3*60*60)
	want := time.Date(2025, 3, 14, 9, 26, 0, 0, loc)

	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantOK  bool
		wantErr bool
	}{
		{name: "Should parse datetime-local layout", raw: "2025-03-14T09:26", want: want, wantOK: true},
		{name: "Should parse space separated layout", raw: "2025-03-14 09:26", want: want, wantOK: true},
		{name: "Should parse layout with seconds", raw: "2025-03-14T09:26:00", want: want, wantOK: true},
		{name: "Should parse space separated layout with seconds", raw: "2025-03-14 09:26:00", want: want, wantOK: true},
		{name: "Should trim surrounding whitespace", raw: "  2025-03-14T09:26  ", want: want, wantOK: true},
		{name: "Should fall back to fractional seconds", raw: "2025-03-14T09:26:00.500", want: want.Add(500 * time.Millisecond), wantOK: true},
		{name: "Should fall back to date only", raw: "2025-03-14", want: time.Date(2025, 3, 14, 0, 0, 0, 0, loc), wantOK: true},
		{name: "Should accept month and day without leading zeros", raw: "2025-3-14T9:26", want: want, wantOK: true},
		{name: "Should accept unpadded space separated layout with seconds", raw: "2025-3-14 9:26:0", want: want, wantOK: true},
		{name: "Should reject UTC designator", raw: "2025-03-14T06:26:00Z", wantErr: true},
		{name: "Should reject offset with seconds", raw: "2025-03-14T09:26:00+03:00", wantErr: true},
		{name: "Should reject offset without seconds", raw: "2025-03-14T09:26+03:00", wantErr: true},
		{name: "Should reject offset with fractional seconds", raw: "2025-03-14T09:26:00.5-05:00", wantErr: true},
		{name: "Should treat empty string as no due time", raw: "", wantOK: false},
		{name: "Should treat whitespace as no due time", raw: "   \t", wantOK: false},
		{name: "Should fail on free text", raw: "tomorrow", wantErr: true},
		{name: "Should fail on invalid calendar date", raw: "2025-02-30T10:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseDueTime(tt.raw, loc)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrDueTimeParse)
				assert.False(t, ok)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
				assert.Equal(t, loc, got.Location())
			}
		})
	}
}

func TestParseDueTime_AcceptedLayoutsAgree(t *testing.T) {
	logical := time.Date(2024, 12, 31, 23, 59, 0, 0, time.Local)
	inputs := []string{
		logical.Format("2006-01-02T15:04"),
		logical.Format("2006-01-02 15:04"),
		logical.Format("2006-01-02T15:04:05"),
		logical.Format("2006-01-02 15:04:05"),
	}

	for _, in := range inputs {
		got, ok, err := ParseDueTime(in, time.Local)
		require.NoError(t, err, in)
		require.True(t, ok, in)
		assert.True(t, logical.Equal(got), "%s parsed to %v", in, got)
	}
}

func TestMinutesUntil(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		offset time.Duration
		want   int
	}{
		{name: "60m30s ahead", offset: 60*time.Minute + 30*time.Second, want: 60},
		{name: "59m30s ahead", offset: 59*time.Minute + 30*time.Second, want: 59},
		{name: "exactly 5m ahead", offset: 5 * time.Minute, want: 5},
		{name: "4m59s ahead", offset: 4*time.Minute + 59*time.Second, want: 4},
		{name: "30s ahead", offset: 30 * time.Second, want: 0},
		{name: "30s overdue", offset: -30 * time.Second, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinutesUntil(now.Add(tt.offset), now))
		})
	}
}

func TestInReminderWindow(t *testing.T) {
	assert.False(t, InReminderWindow(61, FirstReminderMinutes))
	assert.True(t, InReminderWindow(60, FirstReminderMinutes))
	assert.True(t, InReminderWindow(59, FirstReminderMinutes))
	assert.False(t, InReminderWindow(58, FirstReminderMinutes))

	assert.False(t, InReminderWindow(6, FinalReminderMinutes))
	assert.True(t, InReminderWindow(5, FinalReminderMinutes))
	assert.True(t, InReminderWindow(4, FinalReminderMinutes))
	assert.False(t, InReminderWindow(3, FinalReminderMinutes))
}
