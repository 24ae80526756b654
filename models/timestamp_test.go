package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampScan(t *testing.T) {
	want := time.Date(2026, 10, 17, 19, 30, 5, 0, time.UTC)

	inputs := []interface{}{
		want,
		"2026-10-17 19:30:05+00:00",
		[]byte("2026-10-17T19:30:05Z"),
		"2026-10-17 19:30:05",
		"2026-10-17 19:30:05.000000000+00:00",
	}
	for _, in := range inputs {
		var ts Timestamp
		require.NoError(t, ts.Scan(in), "%v", in)
		assert.True(t, ts.Equal(want), "%v scanned as %v", in, ts.Time)
	}

	var ts Timestamp
	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
	assert.Error(t, ts.Scan("yesterday"))
}
