package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete_StartEnd(t *testing.T) {
	iv, err := StartEnd(at(9, 0), at(13, 30)).Complete()
	require.NoError(t, err)
	assert.Equal(t, at(9, 0), iv.Start)
	assert.Equal(t, at(13, 30), iv.End)
	assert.InDelta(t, 4.5, iv.Hours(), 1e-9)
}

func TestComplete_StartHours(t *testing.T) {
	iv, err := StartHours(at(22, 0), 6).Complete()
	require.NoError(t, err)
	assert.Equal(t, at(22, 0).Add(6*time.Hour), iv.End)
	assert.InDelta(t, 6, iv.Hours(), 1e-9)
}

func TestComplete_EndHours(t *testing.T) {
	iv, err := EndHours(at(17, 0), 7.5).Complete()
	require.NoError(t, err)
	assert.Equal(t, at(17, 0).Add(-7*time.Hour-30*time.Minute), iv.Start)
	assert.Equal(t, at(17, 0), iv.End)
}

func TestComplete_Incomplete(t *testing.T) {
	_, err := (Given{}).Complete()
	assert.ErrorIs(t, err, ErrIncompleteInput)
}

func TestComplete_InvalidInterval(t *testing.T) {
	_, err := StartEnd(at(13, 0), at(9, 0)).Complete()
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = StartHours(at(9, 0), -2).Complete()
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestComplete_TooLong(t *testing.T) {
	_, err := StartHours(at(9, 0), 30).Complete()
	assert.ErrorIs(t, err, ErrIntervalTooLong)
}
