package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid time", input: "10:00", want: "10:00"},
		{name: "valid time with normalization", input: "9:05", want: "09:05"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:45", want: "23:45"},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "invalid minute", input: "10:75", wantErr: true},
		{name: "not a time", input: "abc", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "with seconds", input: "10:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{input: "00:00", want: 0},
		{input: "00:15", want: 15},
		{input: "10:00", want: 600},
		{input: "19:00", want: 1140},
		{input: "23:59", want: 1439},
	}

	for _, tt := range tests {
		got, err := tt.input.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Minutes() for %s", tt.input)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "add within hour", input: "10:00", minutes: 15, want: "10:15"},
		{name: "add across hour", input: "10:45", minutes: 30, want: "11:15"},
		{name: "add full service duration", input: "18:00", minutes: 60, want: "19:00"},
		{name: "exactly end of day", input: "23:00", minutes: 60, want: "24:00"},
		{name: "past midnight", input: "23:30", minutes: 60, wantErr: true},
		{name: "negative below zero", input: "00:30", minutes: -60, wantErr: true},
		{name: "zero minutes", input: "12:00", minutes: 0, want: "12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("10:15"))
	assert.False(t, TimeString("10:15").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))

	assert.True(t, TimeString("11:00").IsAfter("10:45"))
	assert.False(t, TimeString("10:45").IsAfter("11:00"))
	assert.False(t, TimeString("11:00").IsAfter("11:00"))

	// "24:00" — конец суток, позже любого валидного времени
	assert.True(t, TimeString("24:00").IsAfter("23:59"))
	assert.False(t, TimeString("24:00").IsBefore("19:00"))
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("from string HH:MM", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:30"))
		assert.Equal(t, TimeString("10:30"), ts)
	})

	t.Run("from string HH:MM:SS", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:30:00"))
		assert.Equal(t, TimeString("10:30"), ts)
	})

	t.Run("from bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("19:00:00")))
		assert.Equal(t, TimeString("19:00"), ts)
	})

	t.Run("from time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2024, 1, 10, 14, 45, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("14:45"), ts)
	})

	t.Run("from nil", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("from unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	_, err = TimeString("garbage").Value()
	assert.Error(t, err)
}

func TestTimeString_JSON(t *testing.T) {
	data, err := json.Marshal(TimeString("10:00"))
	require.NoError(t, err)
	assert.Equal(t, `"10:00"`, string(data))

	var ts TimeString
	require.NoError(t, json.Unmarshal([]byte(`"9:05"`), &ts))
	assert.Equal(t, TimeString("09:05"), ts)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &ts))
}
