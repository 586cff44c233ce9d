package store

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Average reading speed in words per minute.
const wordsPerMinute = 225

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// ReadTime derives a display read time from a rich-text body: HTML tags are
// stripped, the remaining words are counted and divided by the average
// reading speed, rounded up to whole minutes.
func ReadTime(content string) string {
	plain := htmlTagRe.ReplaceAllString(content, "")
	words := strings.Fields(plain)

	minutes := int(math.Ceil(float64(len(words)) / wordsPerMinute))

	return fmt.Sprintf("%d min read", minutes)
}

// DisplayReadTime returns the post's precomputed read time, deriving it from
// the content body when the field is empty.
func (p Post) DisplayReadTime() string {
	if p.ReadTime != "" {
		return p.ReadTime
	}
	return ReadTime(p.Content)
}
