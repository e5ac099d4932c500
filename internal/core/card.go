package core

import "github.com/JonMunkholm/resourcehub/internal/csv"

// Display fallbacks for records missing a title or link.
const (
	UntitledLabel  = "Untitled Resource"
	PlaceholderURL = "#"
)

// Card is the display projection of a record.
type Card struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Author      string `json:"author,omitempty"`
	Affiliation string `json:"affiliation,omitempty"`
	Description string `json:"description,omitempty"`
}

// HasByline reports whether the card has an author or affiliation line.
func (c Card) HasByline() bool {
	return c.Author != "" || c.Affiliation != ""
}

// CardFor projects rec for display, applying fallbacks.
func CardFor(rec csv.Record) Card {
	c := Card{
		Title:       rec.Value(FieldTitle),
		URL:         rec.Value(FieldURL),
		Author:      rec.Value(FieldAuthor),
		Affiliation: rec.Value(FieldAffiliation),
		Description: rec.Value(FieldDescription),
	}
	if c.Title == "" {
		c.Title = UntitledLabel
	}
	if c.URL == "" {
		c.URL = PlaceholderURL
	}
	return c
}

// CardsFor projects every record.
func CardsFor(records []csv.Record) []Card {
	cards := make([]Card, len(records))
	for i, rec := range records {
		cards[i] = CardFor(rec)
	}
	return cards
}
