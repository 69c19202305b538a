package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{3, 2, 2},
		{5, 1, 5},
		{1000, 7, 143},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TotalPages(tc.total, tc.limit), "total=%d limit=%d", tc.total, tc.limit)
	}
}

func TestPageSkip(t *testing.T) {
	assert.Equal(t, int64(0), Page{Page: 1, Limit: 10}.Skip())
	assert.Equal(t, int64(2), Page{Page: 2, Limit: 2}.Skip())
	assert.Equal(t, int64(40), Page{Page: 5, Limit: 10}.Skip())
	assert.Equal(t, int64(math.MaxInt64), Page{Page: math.MaxInt64, Limit: 10}.Skip())
}

func TestGeoPointValid(t *testing.T) {
	assert.True(t, NewGeoPoint(36.82, -1.29).Valid())
	assert.False(t, NewGeoPoint(200, 0).Valid())
	assert.False(t, NewGeoPoint(0, -91).Valid())
	assert.False(t, GeoPoint{Type: "Point"}.Valid())
}

func TestHistoryStatusValid(t *testing.T) {
	assert.True(t, HistoryPending.Valid())
	assert.True(t, HistoryCompleted.Valid())
	assert.True(t, HistoryCancelled.Valid())
	assert.False(t, HistoryStatus("Completed").Valid())
	assert.False(t, HistoryStatus("").Valid())
}
