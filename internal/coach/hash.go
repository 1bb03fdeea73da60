package coach

import "strconv"

// cacheKeyPrefix versions cached reports; bump it when the report shape or
// scoring rubric changes so stale entries are never served.
const cacheKeyPrefix = "resume-analysis-v4-"

// ContentHash produces a short stable digest of the document text. It is a
// 32-bit rolling hash (h = h*31 + ch, wrapped), rendered as the decimal string
// of its absolute value. Collisions are acceptable: the hash only keys a
// cache, it is never used for integrity.
func ContentHash(text string) string {
	var hash int32
	for _, ch := range text {
		hash = (hash << 5) - hash + int32(ch)
	}
	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}
	return strconv.FormatInt(abs, 10)
}

// CacheKey maps a document to its versioned cache key
func CacheKey(text string) string {
	return cacheKeyPrefix + ContentHash(text)
}
