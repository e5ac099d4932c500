package csv

// tokenizerState is the quote state of SplitLine.
type tokenizerState int

const (
	unquoted tokenizerState = iota
	quoted
)

// SplitLine splits one data line into raw values. A comma separates values
// only while outside quotes; every '"' flips the quote state. Raw values
// keep their quotes and surrounding whitespace.
//
// An unbalanced quote leaves the tokenizer in the quoted state until the
// end of the line, so the remainder becomes a single value.
func SplitLine(line string) []string {
	values := make([]string, 0, 8)
	state := unquoted
	start := 0

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			if state == unquoted {
				state = quoted
			} else {
				state = unquoted
			}
		case ',':
			if state == unquoted {
				values = append(values, line[start:i])
				start = i + 1
			}
		}
	}

	return append(values, line[start:])
}
