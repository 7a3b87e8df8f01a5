package constants

import (
	"fmt"
	"time"
)

// Redis keys follow comedyslots:{module}:{operation}:{params}

const (
	CACHE_PREFIX = "comedyslots"
)

const (
	// Show listings change whenever a booking is admitted or changes status,
	// so they are kept only briefly.
	TTL_SHOW_LISTING = 2 * time.Minute
)

// Show cache keys
const (
	CACHE_KEY_SHOWS_LIST = CACHE_PREFIX + ":shows:list" // + :page:X:limit:Y:from:A:to:B

	PATTERN_INVALIDATE_SHOWS_ALL = CACHE_PREFIX + ":shows:*"
)

// Rate limiting keys
const (
	RATE_LIMIT_PREFIX = CACHE_PREFIX + ":ratelimit"
)

// BuildShowListKey builds the cache key of one page of the show listing.
func BuildShowListKey(page, limit int, dateFrom, dateTo string) string {
	if dateFrom == "" {
		dateFrom = "any"
	}
	if dateTo == "" {
		dateTo = "any"
	}
	return fmt.Sprintf("%s:page:%d:limit:%d:from:%s:to:%s", CACHE_KEY_SHOWS_LIST, page, limit, dateFrom, dateTo)
}
