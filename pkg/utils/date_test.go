package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalDate(t *testing.T) {
	got, err := ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *got)

	got, err = ParseOptionalDate("2024-05-01T10:00:00+07:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC), *got)

	_, err = ParseOptionalDate("next tuesday")
	assert.Error(t, err)
}

func TestConvertDateTimeToHumanReadableFormat(t *testing.T) {
	ts := time.Date(2024, 5, 1, 3, 4, 0, 0, time.UTC)
	assert.Equal(t, "01 May 2024, 03:04 UTC", ConvertDateTimeToHumanReadableFormat(ts))
}
