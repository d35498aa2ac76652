package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePackageName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "trims and drops punctuation", raw: " neofetch! ", want: "neofetch"},
		{name: "keeps dash and underscore", raw: "python3-foo_bar", want: "python3-foo_bar"},
		{name: "drops inner whitespace", raw: "lib foo", want: "libfoo"},
		{name: "drops markup", raw: "<b>vim</b>", want: "bvimb"},
		{name: "drops non ascii", raw: "päckage", want: "pckage"},
		{name: "whitespace only", raw: " \t\n ", want: ""},
		{name: "punctuation only", raw: "!@#$%^&*().,;:'\"", want: ""},
		{name: "empty", raw: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizePackageName(tt.raw))
		})
	}
}

func TestSanitizePackageNameIdentityOnAllowedCharacters(t *testing.T) {
	allowed := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"
	for i := 0; i < len(allowed); i++ {
		for j := i; j < len(allowed) && j < i+8; j++ {
			value := allowed[i : j+1]
			assert.Equal(t, value, SanitizePackageName(value))
			assert.Equal(t, value, SanitizePackageName("  "+value+"\n"))
		}
	}
}
