package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ListAll(t *testing.T) {
	s := NewSeeded()

	t.Run("ReturnsAllPostsInInsertionOrder", func(t *testing.T) {
		posts := s.ListAll()
		require.Len(t, posts, 6)
		for i, p := range posts {
			assert.Equal(t, i+1, p.ID, "posts must keep insertion order")
		}
	})

	t.Run("IDsAreUnique", func(t *testing.T) {
		seen := make(map[int]bool)
		for _, p := range s.ListAll() {
			require.False(t, seen[p.ID], "duplicate id %d", p.ID)
			seen[p.ID] = true
		}
	})

	t.Run("CallersCannotMutateStore", func(t *testing.T) {
		posts := s.ListAll()
		posts[0].Title = "mutated"

		again := s.ListAll()
		assert.Equal(t, "Building AI-Powered Web Applications", again[0].Title)
	})

	t.Run("SeedCategoryDistribution", func(t *testing.T) {
		counts := make(map[string]int)
		for _, p := range s.ListAll() {
			counts[p.Category]++
		}
		assert.Equal(t, map[string]int{
			"AI/ML":        2,
			"Design":       1,
			"Development":  2,
			"Data Science": 1,
		}, counts)
	})
}

func TestReadTime(t *testing.T) {
	t.Run("Exactly450WordsIsTwoMinutes", func(t *testing.T) {
		content := strings.TrimSpace(strings.Repeat("word ", 450))
		assert.Equal(t, "2 min read", ReadTime(content))
	})

	t.Run("StripsHTMLTagsBeforeCounting", func(t *testing.T) {
		// 225 words wrapped in markup: tags themselves must not count.
		content := "<article><p>" + strings.TrimSpace(strings.Repeat("word ", 225)) + "</p></article>"
		assert.Equal(t, "1 min read", ReadTime(content))
	})

	t.Run("SingleWordRoundsUp", func(t *testing.T) {
		assert.Equal(t, "1 min read", ReadTime("hello"))
	})
}

func TestPost_DisplayReadTime(t *testing.T) {
	t.Run("PrefersPrecomputedValue", func(t *testing.T) {
		p := Post{ReadTime: "5 min read", Content: "one two three"}
		assert.Equal(t, "5 min read", p.DisplayReadTime())
	})

	t.Run("DerivesFromContentWhenUnset", func(t *testing.T) {
		p := Post{Content: strings.Repeat("word ", 226)}
		assert.Equal(t, "2 min read", p.DisplayReadTime())
	})
}
