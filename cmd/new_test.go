package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Attention Is Not All You Need", "attention-is-not-all-you-need"},
		{"  spaces   everywhere  ", "spaces-everywhere"},
		{"C'est la vie!", "c-est-la-vie"},
		{"100% Grad Student", "100-grad-student"},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slugify(tc.in), "slugify(%q)", tc.in)
	}
}
