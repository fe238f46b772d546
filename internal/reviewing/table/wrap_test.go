package table

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	for name, tc := range map[string]struct {
		in       string
		width    int
		expected []string
	}{
		"short text stays on one line":               {"Paris", 10, []string{"Paris"}},
		"empty text is one empty line":               {"", 10, []string{""}},
		"breaks at the last space that fits":         {"Great, fun day at the park", 12, []string{"Great, fun", "day at the", "park"}},
		"a space right after the width breaks there": {"abcd efgh", 4, []string{"abcd", "efgh"}},
		"cuts long words at the width":               {"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		"newlines always break":                      {"ab\n\ncd", 10, []string{"ab", "", "cd"}},
		"wide characters count double":               {"日本語です", 5, []string{"日本", "語で", "す"}},
	} {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.expected, wrap(tc.in, tc.width))
		})
	}
}
