package tz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	loc, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = Load("Nowhere/Atlantis")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	at := time.Date(2026, 10, 19, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-19 09:05 UTC", Format(at, time.UTC))
	assert.Equal(t, "-", Format(time.Time{}, time.UTC))
}
