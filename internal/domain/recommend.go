package domain

import "strings"

// DefaultNoteVocabulary is the fixed set of fragrance notes the chatbot
// recognizes in free text. Lowercase by convention; matching is substring
// containment, so "rosemary" also matches "rose".
func DefaultNoteVocabulary() []string {
	return []string{
		"woody",
		"fresh",
		"citrus",
		"mint",
		"aqua",
		"jasmine",
		"vanilla",
		"rose",
		"musk",
		"amber",
		"sandalwood",
	}
}

// RecommendRequest is the chatbot request body
type RecommendRequest struct {
	Message string `json:"message" binding:"required"`
}

// Recommendation is one display-ready product summary in the chatbot reply
type Recommendation struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Notes       []string `json:"notes"`
}

// PriceRange is an optional inclusive price interval extracted from text.
// A nil bound means that side is unconstrained. When both bounds are present
// they are taken verbatim from the message; Lower <= Upper is NOT enforced,
// so an inverted range is possible and simply matches nothing.
type PriceRange struct {
	Lower *int
	Upper *int
}

// Contains reports whether price satisfies every present bound
func (r *PriceRange) Contains(price int) bool {
	if r.Upper != nil && price > *r.Upper {
		return false
	}
	if r.Lower != nil && price < *r.Lower {
		return false
	}
	return true
}

// ProductFilter is the composed query a product repository executes.
// Both clauses are optional; an empty filter matches every product.
type ProductFilter struct {
	// Notes requires at least one keynote name to contain (case-insensitive)
	// at least one of these entries. Empty means no note constraint.
	Notes []string

	// Price requires at least one capacity option whose price falls inside
	// the range. Nil means no price constraint.
	Price *PriceRange
}

// IsUniversal reports whether the filter matches all products
func (f *ProductFilter) IsUniversal() bool {
	return len(f.Notes) == 0 && f.Price == nil
}

// Matches evaluates the filter against a product. Clauses are AND-ed:
// the product must satisfy every present clause.
func (f *ProductFilter) Matches(p *Product) bool {
	if len(f.Notes) > 0 && !f.matchesNotes(p) {
		return false
	}
	if f.Price != nil && !f.matchesPrice(p) {
		return false
	}
	return true
}

// matchesNotes checks that some keynote name contains some requested note.
// Substring matching mirrors how notes are detected in free text, so a
// stored keynote "Rose Petal" satisfies a match on "rose".
func (f *ProductFilter) matchesNotes(p *Product) bool {
	for _, keynote := range p.Keynotes {
		name := strings.ToLower(keynote.Name)
		for _, note := range f.Notes {
			if strings.Contains(name, note) {
				return true
			}
		}
	}
	return false
}

// matchesPrice checks that a single capacity option satisfies every bound
func (f *ProductFilter) matchesPrice(p *Product) bool {
	for _, option := range p.CapacityInML {
		if f.Price.Contains(option.Price) {
			return true
		}
	}
	return false
}
