// Package search implements keyword search over the product catalog.
//
// Every product keeps a small bloom filter over its tokens and its raw
// searchable text. A query tests its terms against the filter first; only
// products that pass every term are tokenized and checked exactly, so false
// positives never reach the caller.
package search

import (
	"slices"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
)

// falsePositiveRate is the target bloom filter false positive rate per product
const falsePositiveRate = 0.01

// maxQueryTokens bounds the work a single query can cause
const maxQueryTokens = 8

// AllCategories is the search bar entry that disables category filtering
const AllCategories = "All"

// Categories offered by the storefront search bar
var Categories = []string{
	AllCategories,
	"Furniture",
	"Electronics",
	"Home & Kitchen",
	"Books",
	"Fashion",
	"Computers",
	"Toys & Games",
	"Beauty",
	"Sports & Outdoors",
}

// suggestionSuffixes complete a partial query in the search bar
var suggestionSuffixes = []string{"furniture", "desk", "chair", "lamp", "bookshelf"}

type entry struct {
	product models.Product
	filter  *bloom.BloomFilter
	text    string // tokenized again only when the filter passes every term
}

// Index is an immutable keyword index over a set of products
type Index struct {
	entries    []entry
	candidates atomic.Int64
}

// NewIndex builds an index over products
func NewIndex(products []models.Product) *Index {
	entries := make([]entry, 0, len(products))
	for _, p := range products {
		text := searchableText(p)
		tokens := Tokenize(text)

		filter := bloom.NewWithEstimates(uint(len(tokens)+1), falsePositiveRate)
		for _, tok := range tokens {
			filter.AddString(tok)
		}

		entries = append(entries, entry{product: p, filter: filter, text: text})
	}
	return &Index{entries: entries}
}

// Search returns the products containing every query token, optionally
// restricted to a category. "All" and "" mean any category. An empty query
// matches every product of the category.
func (idx *Index) Search(query, category string) []models.Product {
	terms := Tokenize(query)
	if len(terms) > maxQueryTokens {
		terms = terms[:maxQueryTokens]
	}
	anyCategory := category == "" || strings.EqualFold(category, AllCategories)

	results := make([]models.Product, 0)
	for i := range idx.entries {
		e := &idx.entries[i]
		if !anyCategory && !strings.EqualFold(e.product.Category, category) {
			continue
		}
		if !e.mayContain(terms) {
			continue
		}
		idx.candidates.Add(1)
		if e.contains(terms) {
			results = append(results, e.product)
		}
	}
	return results
}

// Len returns the number of indexed products
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Candidates returns how many products have passed the bloom filters and
// needed an exact check since the index was built
func (idx *Index) Candidates() int64 {
	return idx.candidates.Load()
}

func (e *entry) mayContain(terms []string) bool {
	for _, term := range terms {
		if !e.filter.TestString(term) {
			return false
		}
	}
	return true
}

func (e *entry) contains(terms []string) bool {
	if len(terms) == 0 {
		return true
	}

	tokens := Tokenize(e.text)
	for _, term := range terms {
		if !slices.Contains(tokens, term) {
			return false
		}
	}
	return true
}

// Suggest completes a partial query the way the storefront search bar does
func Suggest(query string) []string {
	query = strings.Join(strings.Fields(query), " ")
	if query == "" {
		return []string{}
	}

	suggestions := make([]string, len(suggestionSuffixes))
	for i, suffix := range suggestionSuffixes {
		suggestions[i] = query + " " + suffix
	}
	return suggestions
}

// Tokenize lowercases text and splits it on anything that is not a letter or
// digit, dropping single-character tokens
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func searchableText(p models.Product) string {
	parts := []string{p.Name, p.Category, p.Style, p.Material}
	parts = append(parts, p.SustainabilityFeatures...)
	return strings.Join(parts, " ")
}
