package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"/a/b/": "a/b",
		"a/b/":  "a/b",
		"/a/b":  "a/b",
		"a/b":   "a/b",
		"/":     "",
		"":      "",
		"//a//": "/a/",
		"a//b":  "a//b",
	}

	for input, want := range cases {
		assert.Equal(t, want, normalize(input), "normalize(%q)", input)
	}
}

func TestDepthOf(t *testing.T) {
	assert.Equal(t, 0, depthOf([]string{"a"}))
	assert.Equal(t, 2, depthOf([]string{"a", "b", "c"}))
}
