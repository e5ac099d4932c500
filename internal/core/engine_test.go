package core

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/resourcehub/internal/csv"
)

const hubCSV = "Resource Title,Topic Area (New)\nFoo,\"Math, Science\"\nBar,Science"

func titles(records []csv.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r[FieldTitle]
	}
	return out
}

func TestConcreteDirectory(t *testing.T) {
	records := csv.Decode(hubCSV)
	require.Len(t, records, 2)

	facets := DeriveFacets(records, []string{FieldTopicArea})
	assert.Equal(t, []string{"Math", "Science"}, facets[FieldTopicArea])

	math := Toggle(Selection{}, FieldTopicArea, "Math")
	assert.Equal(t, []string{"Foo"}, titles(Filter(records, "", math)))

	assert.Equal(t, []string{"Foo", "Bar"}, titles(Filter(records, "", Selection{})))
	assert.Equal(t, []string{"Bar"}, titles(Filter(records, "bar", nil)))
}

func TestDeriveFacets(t *testing.T) {
	records := []csv.Record{
		{FieldTopicArea: " Science ,Math,", FieldResourceType: "Toolkit"},
		{FieldTopicArea: "Math, Art", FieldResourceType: ""},
		{FieldTopicArea: ""},
		{FieldResourceType: "Guide, Toolkit"},
	}

	got := DeriveFacets(records, FacetFields)

	want := FacetOptions{
		FieldTopicArea:    {"Art", "Math", "Science"},
		FieldResourceType: {"Guide", "Toolkit"},
		FieldStandards:    {},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DeriveFacets() mismatch (-want +got):\n%s", diff)
	}
	assert.NotNil(t, got[FieldStandards], "empty facet must still be reported")
}

func TestDeriveFacets_OrderIndependent(t *testing.T) {
	records := csv.Decode("Resource Title,Topic Area (New),Resource Type (New)\n" +
		"a,\"Math, Science\",Guide\n" +
		"b,Art,\"Toolkit, Guide\"\n" +
		"c,\"History, Math\",Video\n" +
		"d,,Podcast\n")
	want := DeriveFacets(records, FacetFields)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]csv.Record(nil), records...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		if diff := cmp.Diff(want, DeriveFacets(shuffled, FacetFields)); diff != "" {
			t.Fatalf("facets depend on row order (-want +got):\n%s", diff)
		}
	}
}

func TestToggle(t *testing.T) {
	t.Run("adds and removes", func(t *testing.T) {
		s := Toggle(Selection{}, FieldTopicArea, "Math")
		assert.Equal(t, Selection{FieldTopicArea: {"Math"}}, s)

		s = Toggle(s, FieldTopicArea, "Art")
		assert.Equal(t, Selection{FieldTopicArea: {"Art", "Math"}}, s)

		s = Toggle(s, FieldTopicArea, "Math")
		assert.Equal(t, Selection{FieldTopicArea: {"Art"}}, s)
	})

	t.Run("emptied field is removed", func(t *testing.T) {
		s := Toggle(Selection{FieldTopicArea: {"Math"}}, FieldTopicArea, "Math")
		_, present := s[FieldTopicArea]
		assert.False(t, present)
		assert.Empty(t, s)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := Selection{FieldTopicArea: {"Art", "Math"}, FieldStandards: {"S1"}}
		before := in.Clone()

		_ = Toggle(in, FieldTopicArea, "Math")
		_ = Toggle(in, FieldTopicArea, "Biology")
		_ = Toggle(in, FieldStandards, "S1")

		if diff := cmp.Diff(before, in); diff != "" {
			t.Errorf("input mutated (-before +after):\n%s", diff)
		}
	})

	t.Run("self inverse", func(t *testing.T) {
		selections := []Selection{
			{},
			{FieldTopicArea: {"Math"}},
			{FieldTopicArea: {"Art", "Math"}, FieldResourceType: {"Guide"}},
		}
		for _, s := range selections {
			for _, v := range []string{"Math", "Zoology", "Art", "Guide"} {
				for _, f := range FacetFields {
					got := Toggle(Toggle(s, f, v), f, v)
					if diff := cmp.Diff(s, got); diff != "" {
						t.Errorf("Toggle twice %s=%s (-want +got):\n%s", f, v, diff)
					}
				}
			}
		}
	})
}

func TestNewSelection(t *testing.T) {
	got := NewSelection(map[string][]string{
		FieldTopicArea:    {"Science", "Math", "Science", ""},
		FieldResourceType: {""},
	})
	assert.Equal(t, Selection{FieldTopicArea: {"Math", "Science"}}, got)
}

func TestIsVisible_TextMatch(t *testing.T) {
	rec := csv.Record{
		FieldTitle:       "Reading Circles",
		FieldDescription: "Peer-led discussion",
		FieldAuthor:      "J. Doe",
		FieldAffiliation: "Results Network",
		FieldTopicArea:   "Literacy",
	}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"circles", true},
		{"PEER-LED", true},
		{"doe", true},
		{"network", true},
		{"literacy", false}, // facet fields are not searched
		{"algebra", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsVisible(rec, tt.query, nil), "query %q", tt.query)
	}

	assert.False(t, IsVisible(csv.Record{}, "x", nil), "absent fields never match a non-empty query")
	assert.True(t, IsVisible(csv.Record{}, "", nil))
}

func TestIsVisible_FacetConjunction(t *testing.T) {
	both := csv.Record{FieldTopicArea: "x, z", FieldResourceType: "y"}
	onlyA := csv.Record{FieldTopicArea: "x", FieldResourceType: "w"}
	onlyB := csv.Record{FieldTopicArea: "q", FieldResourceType: "y"}
	missingB := csv.Record{FieldTopicArea: "x"}

	sel := Selection{FieldTopicArea: {"x"}, FieldResourceType: {"y"}}

	assert.True(t, IsVisible(both, "", sel))
	assert.False(t, IsVisible(onlyA, "", sel))
	assert.False(t, IsVisible(onlyB, "", sel))
	assert.False(t, IsVisible(missingB, "", sel))

	// Dropping the A constraint leaves visibility to B alone.
	onlyBSel := Toggle(sel, FieldTopicArea, "x")
	_, present := onlyBSel[FieldTopicArea]
	require.False(t, present)

	assert.True(t, IsVisible(both, "", onlyBSel))
	assert.False(t, IsVisible(onlyA, "", onlyBSel))
	assert.True(t, IsVisible(onlyB, "", onlyBSel))
	assert.False(t, IsVisible(missingB, "", onlyBSel))
}

func TestIsVisible_FacetDisjunctionWithinField(t *testing.T) {
	sel := Selection{FieldTopicArea: {"Art", "Math"}}

	assert.True(t, IsVisible(csv.Record{FieldTopicArea: "Math"}, "", sel))
	assert.True(t, IsVisible(csv.Record{FieldTopicArea: "History, Art"}, "", sel))
	assert.False(t, IsVisible(csv.Record{FieldTopicArea: "History"}, "", sel))
	assert.False(t, IsVisible(csv.Record{FieldTopicArea: ""}, "", sel))
}

func TestSelection_UnsortedValues(t *testing.T) {
	sel := Selection{FieldTopicArea: {"Math", "Art", "Math"}}

	assert.True(t, sel.Has(FieldTopicArea, "Art"))
	assert.True(t, IsVisible(csv.Record{FieldTopicArea: "Art"}, "", sel))
	assert.True(t, IsVisible(csv.Record{FieldTopicArea: "History, Math"}, "", sel))

	assert.Equal(t, Selection{FieldTopicArea: {"Math"}}, Toggle(sel, FieldTopicArea, "Art"))
	assert.Equal(t, Selection{FieldTopicArea: {"Art", "History", "Math"}}, Toggle(sel, FieldTopicArea, "History"))
	assert.Equal(t, []string{"Math", "Art", "Math"}, sel[FieldTopicArea], "input left as given")
}

func TestIsVisible_EmptySelectionEntry(t *testing.T) {
	sel := Selection{FieldTopicArea: {}}
	assert.True(t, IsVisible(csv.Record{}, "", sel))
}

func TestIsVisible_CombinesQueryAndFacets(t *testing.T) {
	rec := csv.Record{FieldTitle: "Fractions Toolkit", FieldTopicArea: "Math"}
	sel := Selection{FieldTopicArea: {"Math"}}

	assert.True(t, IsVisible(rec, "fraction", sel))
	assert.False(t, IsVisible(rec, "poetry", sel))
	assert.False(t, IsVisible(rec, "fraction", Selection{FieldTopicArea: {"Art"}}))
}

func TestFacetLabel(t *testing.T) {
	assert.Equal(t, "Topic Area", FacetLabel(FieldTopicArea))
	assert.Equal(t, "Resource Type", FacetLabel(FieldResourceType))
	assert.Equal(t, "Local Standards of Excellence Tags", FacetLabel(FieldStandards))
	assert.Equal(t, "Author/Creator", FacetLabel("Author/Creator(NEW)"))
	assert.Equal(t, "Grade (New)", FacetLabel("Grade (new) (New)"), "only the first marker is dropped")
}

func TestCardFor(t *testing.T) {
	c := CardFor(csv.Record{})
	assert.Equal(t, UntitledLabel, c.Title)
	assert.Equal(t, PlaceholderURL, c.URL)
	assert.False(t, c.HasByline())

	c = CardFor(csv.Record{
		FieldTitle:       "Toolkit",
		FieldURL:         "https://example.org/t",
		FieldAffiliation: "District 9",
	})
	assert.Equal(t, "Toolkit", c.Title)
	assert.Equal(t, "https://example.org/t", c.URL)
	assert.True(t, c.HasByline())
	assert.Empty(t, c.Author)
}

func TestMissingColumns(t *testing.T) {
	assert.Empty(t, MissingColumns(ExpectedColumns))

	got := MissingColumns([]string{FieldTitle, "Extra", FieldURL, FieldTopicArea})
	assert.Equal(t, []string{FieldDescription, FieldAuthor, FieldAffiliation, FieldResourceType, FieldStandards}, got)

	assert.Equal(t, ExpectedColumns, MissingColumns(nil))
}
