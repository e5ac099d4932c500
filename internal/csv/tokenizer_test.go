package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"empty line", "", []string{""}},
		{"empty fields", ",,", []string{"", "", ""}},
		{"quoted comma", `Foo,"Math, Science"`, []string{"Foo", `"Math, Science"`}},
		{"quote mid value", `a"b,c"d,e`, []string{`a"b,c"d`, "e"}},
		{"doubled quotes toggle twice", `"say ""hi"", ok",x`, []string{`"say ""hi"", ok"`, "x"}},
		{"unbalanced quote swallows rest", `a,"b,c,d`, []string{"a", `"b,c,d`}},
		{"keeps whitespace", " a , b ", []string{" a ", " b "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLine(tt.line))
		})
	}
}
