package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
)

func testProducts() []models.Product {
	return []models.Product{
		{ID: "m1", Name: "Modern Minimalist Desk - White", Category: "Furniture", Style: "modern", Material: "Sustainable bamboo"},
		{ID: "s1", Name: "Light Wood Desk with Storage", Category: "Furniture", Style: "scandinavian", Material: "FSC-certified oak"},
		{ID: "s3", Name: "Minimalist Pendant Light", Category: "Lighting", Style: "scandinavian"},
		{ID: "i1", Name: "Metal and Wood Industrial Desk", Category: "Furniture", Style: "industrial",
			SustainabilityFeatures: []string{"Upcycled materials"}},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestIndex_Search(t *testing.T) {
	idx := NewIndex(testProducts())

	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{"single token", "desk", "", []string{"m1", "s1", "i1"}},
		{"all tokens must match", "wood desk", "", []string{"s1", "i1"}},
		{"case insensitive", "MINIMALIST", "All", []string{"m1", "s3"}},
		{"category filter", "minimalist", "Lighting", []string{"s3"}},
		{"matches material", "bamboo", "", []string{"m1"}},
		{"matches features", "upcycled", "", []string{"i1"}},
		{"matches style", "scandinavian", "furniture", []string{"s1"}},
		{"no match", "sofa", "", []string{}},
		{"empty query lists category", "", "Lighting", []string{"s3"}},
		{"unknown category", "desk", "Books", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(idx.Search(tt.query, tt.category))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Search(%q, %q) mismatch (-want +got):\n%s", tt.query, tt.category, diff)
			}
		})
	}
}

func TestIndex_Len(t *testing.T) {
	assert.Equal(t, 4, NewIndex(testProducts()).Len())
	assert.Equal(t, 0, NewIndex(nil).Len())
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Modern Minimalist Desk - White", []string{"modern", "minimalist", "desk", "white"}},
		{"FSC-certified oak", []string{"fsc", "certified", "oak"}},
		{"3-Seater Sofa", []string{"seater", "sofa"}},
		{"E27 bulb", []string{"e27", "bulb"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []string{
		"oak furniture",
		"oak desk",
		"oak chair",
		"oak lamp",
		"oak bookshelf",
	}, Suggest("  oak "))

	assert.Empty(t, Suggest("   "))
}

func TestIndex_FilterSkipsExactCheck(t *testing.T) {
	idx := NewIndex(testProducts())

	idx.Search("hammock", "")
	idx.Search("chandelier", "")
	assert.Less(t, idx.Candidates(), int64(2*idx.Len()), "misses should mostly stop at the bloom filter")

	before := idx.Candidates()
	got := ids(idx.Search("desk", ""))
	assert.Equal(t, []string{"m1", "s1", "i1"}, got)
	assert.GreaterOrEqual(t, idx.Candidates()-before, int64(len(got)), "every match passes the filter")
}
