package storage

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
)

// rawRecord is one logical record and the physical line it starts on.
type rawRecord struct {
	Line int
	Text string
}

// records yields the logical records in r, joining physical lines while a
// quoted field is open. Blank lines between records are skipped.
// The sequence stops after the first error.
func records(r io.Reader) iter.Seq2[rawRecord, error] {
	return func(yield func(rawRecord, error) bool) {
		br := bufio.NewReader(r)

		var (
			lineNo   int
			start    int
			pending  strings.Builder
			inQuotes bool
		)

		for {
			line, err := br.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				yield(rawRecord{}, err)
				return
			}
			if line == "" && errors.Is(err, io.EOF) {
				break
			}

			lineNo++
			if pending.Len() == 0 && !inQuotes {
				start = lineNo
			}

			pending.WriteString(line)
			// Every quote flips the state; an escaped "" flips it twice.
			if strings.Count(line, `"`)%2 == 1 {
				inQuotes = !inQuotes
			}

			if !inQuotes {
				text := pending.String()
				pending.Reset()

				if strings.TrimSpace(text) != "" && !yield(rawRecord{Line: start, Text: text}, nil) {
					return
				}
			}

			if errors.Is(err, io.EOF) {
				break
			}
		}

		if inQuotes {
			yield(rawRecord{}, &MalformedRecordError{Line: start, Reason: "quoted field is never closed before the end of the file"})
		}
	}
}
