package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripCacheKey_CaseInsensitive(t *testing.T) {
	assert.Equal(t,
		tripCacheKey("New York, NY", "Chicago, IL"),
		tripCacheKey("new york, ny", "CHICAGO, il"),
	)
}

func TestTripCacheKey_DistinctLocationsDistinctKeys(t *testing.T) {
	assert.NotEqual(t,
		tripCacheKey("New York, NY", "Chicago, IL"),
		tripCacheKey("New York, NY", "Denver, CO"),
	)
}

func TestTripCacheKey_FieldBoundariesDoNotCollide(t *testing.T) {
	// Joining the fields with a separator would hash these to the same key
	assert.NotEqual(t, tripCacheKey("a|b", "c"), tripCacheKey("a", "b|c"))
	assert.NotEqual(t, tripCacheKey("ab", "c"), tripCacheKey("a", "bc"))
}
