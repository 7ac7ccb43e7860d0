package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t  ", ""},
		{"collapses runs", "hello    world", "hello world"},
		{"trims edges", "  hi there  ", "hi there"},
		{"tabs and newlines", "a\tb\nc", "a b c"},
		{"already clean", "hello world", "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 50))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "abcde...", Truncate("abcdefgh", 5))
	assert.Equal(t, "unbounded", Truncate("unbounded", 0))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Alex", Capitalize("alex"))
	assert.Equal(t, "Alex", Capitalize("ALEX"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "X", Capitalize("x"))
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lowercases", "Hello World", []string{"hello", "world"}},
		{"strips punctuation", "wait, what?!", []string{"wait", "what"}},
		{"folds apostrophes", "isn't it great", []string{"isnt", "it", "great"}},
		{"curly apostrophe", "don’t", []string{"dont"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokens(tt.input)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasToken(t *testing.T) {
	assert.True(t, HasToken("what time is it", "it"))
	assert.False(t, HasToken("the item list", "it"))
	assert.True(t, HasAnyToken("this and that", []string{"missing", "that"}))
	assert.False(t, HasAnyToken("this and that", []string{"missing"}))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("my previous experience was great", []string{"experience was"}))
	assert.False(t, ContainsAny("nothing here", []string{"experience was"}))
	assert.False(t, ContainsAny("anything", nil))
}
