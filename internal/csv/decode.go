// Package csv decodes published-spreadsheet CSV exports into uniform records.
//
// The decoder is deliberately lenient. It never returns an error: malformed
// quoting degrades into whatever split the quote state produces, and short
// rows are either dropped or backfilled depending on the [ShortRowPolicy].
// It does not support quoted fields spanning lines or escaped quotes ("").
package csv

import (
	"fmt"
	"io"
	"strings"
)

// Record is one decoded data row keyed by header name.
type Record map[string]string

// Get returns the value for field and whether the field exists at all.
func (r Record) Get(field string) (string, bool) {
	v, ok := r[field]
	return v, ok
}

// Value returns the value for field, or "" when the field is absent.
func (r Record) Value(field string) string {
	return r[field]
}

// ShortRowPolicy decides what happens to a data line that yields fewer
// values than there are headers.
type ShortRowPolicy int

const (
	// SkipShortRows drops the line.
	SkipShortRows ShortRowPolicy = iota
	// FillShortRows keeps the line and sets missing trailing fields to "".
	FillShortRows
)

// String implements fmt.Stringer.
func (p ShortRowPolicy) String() string {
	switch p {
	case FillShortRows:
		return "fill"
	default:
		return "skip"
	}
}

// ParseShortRowPolicy converts "skip" or "fill" into a policy.
func ParseShortRowPolicy(s string) (ShortRowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip":
		return SkipShortRows, nil
	case "fill":
		return FillShortRows, nil
	default:
		return SkipShortRows, fmt.Errorf("unknown short row policy %q", s)
	}
}

// DecodeOptions controls decoding.
type DecodeOptions struct {
	ShortRows ShortRowPolicy
}

// Result is a decoded dataset plus counters describing how much of the
// input was degraded on the way.
type Result struct {
	Headers []string
	Records []Record
	Lines   int   // data lines seen (header excluded)
	Skipped int   // short lines dropped
	Filled  int   // short lines backfilled
	Bytes   int64 // raw input size, set by DecodeReader
}

// Decode decodes text with the default options (short rows skipped).
func Decode(text string) []Record {
	return DecodeWithStats(text, DecodeOptions{}).Records
}

// DecodeWithStats decodes text and reports degradation counters.
func DecodeWithStats(text string, opts DecodeOptions) Result {
	lines := splitLines(strings.TrimSpace(text))
	if len(lines) < 2 {
		return Result{Records: []Record{}}
	}

	headers := strings.Split(lines[0], ",")
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	res := Result{
		Headers: headers,
		Records: make([]Record, 0, len(lines)-1),
		Lines:   len(lines) - 1,
	}

	for _, line := range lines[1:] {
		values := SplitLine(line)
		if len(values) < len(headers) {
			if opts.ShortRows == SkipShortRows {
				res.Skipped++
				continue
			}
			res.Filled++
		}

		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(values) {
				rec[h] = cleanValue(values[i])
			} else {
				rec[h] = ""
			}
		}
		res.Records = append(res.Records, rec)
	}

	return res
}

// DecodeReader reads r through WrapForDecoding and decodes the result.
func DecodeReader(r io.Reader, opts DecodeOptions) (Result, error) {
	reader, counter := WrapForDecoding(r)
	body, err := io.ReadAll(reader)
	if err != nil {
		return Result{}, fmt.Errorf("read csv: %w", err)
	}
	res := DecodeWithStats(string(body), opts)
	res.Bytes = counter.BytesRead
	return res, nil
}

// splitLines splits on \n and drops the \r of \r\n endings.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// cleanValue removes every quote character and trims the result.
func cleanValue(v string) string {
	return strings.TrimSpace(strings.ReplaceAll(v, `"`, ""))
}
