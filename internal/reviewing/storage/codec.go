package storage

import (
	"strconv"
	"strings"

	"github.com/gaqzi/park-reviewer/internal/reviewing"
)

// Header is the first line of every reviews file.
const Header = "Review_ID,Rating,Review_Month,Reviewer_Location,Review_Text,Branch"

const fieldCount = 6

// Encode returns the review as one CSV record terminated by a newline.
// The numbers are written bare and the text fields are always quoted.
func Encode(r reviewing.Review) string {
	var b strings.Builder

	b.WriteString(strconv.FormatInt(r.ID, 10))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(r.Rating))
	for _, s := range []string{r.Month, r.Location, r.Text, r.Branch} {
		b.WriteByte(',')
		writeQuoted(&b, s)
	}
	b.WriteByte('\n')

	return b.String()
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(s, `"`, `""`))
	b.WriteByte('"')
}

// Decode parses one logical record, which may span several lines when a quoted
// field holds a newline. Carriage returns are dropped.
func Decode(record string) (reviewing.Review, error) {
	fields, err := splitFields(record)
	if err != nil {
		return reviewing.Review{}, err
	}
	if len(fields) != fieldCount {
		return reviewing.Review{}, &MalformedRecordError{
			Reason: "expected " + strconv.Itoa(fieldCount) + " fields, got " + strconv.Itoa(len(fields)),
		}
	}

	id, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil || id <= 0 {
		return reviewing.Review{}, &MalformedRecordError{Reason: "review id " + strconv.Quote(fields[0]) + " is not a positive integer"}
	}

	rating, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return reviewing.Review{}, &MalformedRecordError{Reason: "rating " + strconv.Quote(fields[1]) + " is not an integer"}
	}

	return reviewing.Review{
		ID:       id,
		Rating:   rating,
		Month:    fields[2],
		Location: fields[3],
		Text:     fields[4],
		Branch:   fields[5],
	}, nil
}

// splitFields splits on commas outside quotes. Inside quotes "" is a literal
// quote and a single " ends the quoted run.
func splitFields(record string) ([]string, error) {
	record = strings.TrimSuffix(strings.ReplaceAll(record, "\r", ""), "\n")

	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(record); i++ {
		c := record[i]

		switch {
		case inQuotes && c == '"':
			if i+1 < len(record) && record[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = false
			}
		case inQuotes:
			field.WriteByte(c)
		case c == '"':
			inQuotes = true
		case c == ',':
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}

	if inQuotes {
		return nil, &MalformedRecordError{Reason: "quoted field is never closed"}
	}

	return append(fields, field.String()), nil
}
