package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("18:30")
	require.NoError(t, err)
	assert.Equal(t, "18:30", ts.String())

	for _, invalid := range []string{"25:00", "18:60", "1830", "six pm", ""} {
		_, err := NewTimeStringFromString(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 20, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("23:30")
	require.NoError(t, err)

	// Переход через полночь заворачивается
	result, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "00:15", result.String())
}

func TestTimeString_Comparison(t *testing.T) {
	early, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	late, err := NewTimeStringFromString("18:00")
	require.NoError(t, err)

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
}
