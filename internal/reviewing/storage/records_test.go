package storage

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, input string) ([]rawRecord, error) {
	t.Helper()

	var ret []rawRecord
	for rec, err := range records(strings.NewReader(input)) {
		if err != nil {
			return ret, err
		}
		ret = append(ret, rec)
	}

	return ret, nil
}

func TestRecords(t *testing.T) {
	t.Run("yields one record per line when nothing is quoted across lines", func(t *testing.T) {
		actual, err := collect(t, "a,b\nc,d\n")

		require.NoError(t, err)
		require.Equal(t, []rawRecord{{Line: 1, Text: "a,b\n"}, {Line: 2, Text: "c,d\n"}}, actual)
	})

	t.Run("joins lines while a quote is open", func(t *testing.T) {
		actual, err := collect(t, "h\n1,\"one\ntwo, \"\"three\"\"\nfour\"\n2,x")

		require.NoError(t, err)
		require.Equal(t, []rawRecord{
			{Line: 1, Text: "h\n"},
			{Line: 2, Text: "1,\"one\ntwo, \"\"three\"\"\nfour\"\n"},
			{Line: 5, Text: "2,x"},
		}, actual)
	})

	t.Run("skips blank lines between records but not inside quotes", func(t *testing.T) {
		actual, err := collect(t, "\n\r\na\n\n\"b\n\nc\"\n")

		require.NoError(t, err)
		require.Equal(t, []rawRecord{{Line: 3, Text: "a\n"}, {Line: 5, Text: "\"b\n\nc\"\n"}}, actual)
	})

	t.Run("fails at the end when a quote is still open", func(t *testing.T) {
		actual, err := collect(t, "a\n\"b\nc\n")

		require.Equal(t, []rawRecord{{Line: 1, Text: "a\n"}}, actual)
		var mre *MalformedRecordError
		require.ErrorAs(t, err, &mre)
		require.Equal(t, 2, mre.Line)
	})

	t.Run("passes on read errors", func(t *testing.T) {
		boom := errors.New("disk on fire")

		var got error
		for _, err := range records(iotest.ErrReader(boom)) {
			got = err
		}

		require.ErrorIs(t, got, boom)
	})

	t.Run("stops when the caller stops asking", func(t *testing.T) {
		var seen int
		for range records(strings.NewReader("a\nb\nc\n")) {
			seen++
			if seen == 2 {
				break
			}
		}

		require.Equal(t, 2, seen)
	})
}
