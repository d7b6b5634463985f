package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lzmu/lzmubackend/utils"
)

func TestSplitCSVSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want map[string]bool
	}{
		{name: "empty", in: "", want: map[string]bool{}},
		{name: "single", in: "https://lzmu.dev", want: map[string]bool{"https://lzmu.dev": true}},
		{
			name: "spaces and blanks",
			in:   " https://a.dev , ,https://b.dev,",
			want: map[string]bool{"https://a.dev": true, "https://b.dev": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, utils.SplitCSVSet(tt.in))
		})
	}
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trims", in: "  Jane Doe \n", want: "Jane Doe"},
		{name: "composes accents", in: "Jose\u0301", want: "Jos\u00e9"},
		{name: "drops control chars", in: "a\x00b\x07c", want: "abc"},
		{name: "keeps newlines and tabs", in: "line one\r\nline\ttwo", want: "line one\nline\ttwo"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, utils.NormalizeText(tt.in))
		})
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	opts := []string{"UI/UX Design", "Other"}
	assert.True(t, utils.Contains(opts, "Other"))
	assert.True(t, utils.Contains(opts, " UI/UX Design "))
	assert.False(t, utils.Contains(opts, "other"))
	assert.False(t, utils.Contains(nil, "Other"))
}
