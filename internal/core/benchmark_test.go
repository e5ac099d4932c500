package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/JonMunkholm/resourcehub/internal/csv"
)

// ============================================================================
// Decode Benchmarks
// ============================================================================

// BenchmarkDecode benchmarks decoding a typical sheet export.
func BenchmarkDecode(b *testing.B) {
	data := generateTestCSV(500)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		csv.Decode(data)
	}
}

// BenchmarkDecode_Large benchmarks a sheet well past the expected size.
func BenchmarkDecode_Large(b *testing.B) {
	data := generateTestCSV(5000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		csv.Decode(data)
	}
}

// ============================================================================
// Engine Benchmarks
// ============================================================================

// BenchmarkDeriveFacets runs once per load.
func BenchmarkDeriveFacets(b *testing.B) {
	records := csv.Decode(generateTestCSV(1000))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		DeriveFacets(records, FacetFields)
	}
}

// BenchmarkFilter runs on every page view and API search.
func BenchmarkFilter(b *testing.B) {
	records := csv.Decode(generateTestCSV(1000))

	tests := []struct {
		name  string
		query string
		sel   Selection
	}{
		{"empty", "", nil},
		{"query", "toolkit 7", nil},
		{"facets", "", Selection{FieldTopicArea: {"Math", "Art"}, FieldResourceType: {"Guide"}}},
		{"query_and_facets", "district", Selection{FieldTopicArea: {"Science"}}},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Filter(records, tt.query, tt.sel)
			}
		})
	}
}

// BenchmarkToggle benchmarks building toggle links for every facet option.
func BenchmarkToggle(b *testing.B) {
	sel := Selection{FieldTopicArea: {"Art", "History", "Math"}, FieldResourceType: {"Guide"}}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Toggle(sel, FieldTopicArea, "Math")
		Toggle(sel, FieldTopicArea, "Science")
	}
}

// BenchmarkFilterParallel simulates concurrent requests over one snapshot.
func BenchmarkFilterParallel(b *testing.B) {
	records := csv.Decode(generateTestCSV(1000))
	sel := Selection{FieldTopicArea: {"Math"}}

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			Filter(records, "toolkit", sel)
		}
	})
}

// ============================================================================
// Helper Functions
// ============================================================================

var (
	benchTopics = []string{"Math", "Science", "Art", "History", "Literacy"}
	benchTypes  = []string{"Guide", "Toolkit", "Video", "Podcast"}
)

// generateTestCSV generates a sheet export with the specified number of rows.
func generateTestCSV(rows int) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(ExpectedColumns, ","))
	sb.WriteByte('\n')

	for i := 0; i < rows; i++ {
		topics := benchTopics[i%len(benchTopics)] + ", " + benchTopics[(i+2)%len(benchTopics)]
		fmt.Fprintf(&sb, "Toolkit %d,https://example.org/r/%d,\"Notes, handouts and slides\",Author %d,District %d,\"%s\",%s,S%d\n",
			i, i, i%40, i%12, topics, benchTypes[i%len(benchTypes)], i%7)
	}
	return sb.String()
}
