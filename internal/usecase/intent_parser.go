package usecase

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/goldior/backend/internal/domain"
)

// Intent is the structured reading of a free-text chat message:
// which vocabulary notes it mentions and which price bounds it states.
type Intent struct {
	Notes []string
	Price *domain.PriceRange
}

// IntentParser extracts fragrance notes and price bounds from chat messages.
// The vocabulary is fixed at construction and never mutated.
type IntentParser struct {
	vocabulary         []string
	underPattern       *regexp.Regexp
	abovePattern       *regexp.Regexp
	enableDebugLogging bool
}

// NewIntentParser creates a parser over the given note vocabulary.
// currencySymbol is the optional glyph users may type between the price
// keyword and the amount (e.g. "under ₹2000").
func NewIntentParser(vocabulary []string, currencySymbol string, enableDebugLogging bool) *IntentParser {
	glyph := regexp.QuoteMeta(currencySymbol)

	return &IntentParser{
		vocabulary:         vocabulary,
		underPattern:       regexp.MustCompile(`(?:under|below)\s?(?:` + glyph + `)?(\d+)`),
		abovePattern:       regexp.MustCompile(`(?:above|over)\s?(?:` + glyph + `)?(\d+)`),
		enableDebugLogging: enableDebugLogging,
	}
}

// Parse normalizes the message and extracts the full intent.
// An empty or blank message is rejected before any scanning happens.
func (p *IntentParser) Parse(message string) (*Intent, error) {
	if strings.TrimSpace(message) == "" {
		return nil, domain.ErrInvalidRequest
	}

	normalized := strings.ToLower(message)

	notes := p.MatchNotes(normalized)
	price, err := p.ParsePriceRange(normalized)
	if err != nil {
		return nil, err
	}

	if p.enableDebugLogging {
		log.Printf("[INTENT] Message: %q | Notes: %v | Price: %s", message, notes, formatRange(price))
	}

	return &Intent{Notes: notes, Price: price}, nil
}

// MatchNotes returns every vocabulary note contained in the normalized text.
// Containment is plain substring matching ("rosemary" matches "rose"), and
// the result preserves vocabulary order so it is deterministic.
func (p *IntentParser) MatchNotes(normalized string) []string {
	var matched []string
	for _, note := range p.vocabulary {
		if strings.Contains(normalized, note) {
			matched = append(matched, note)
		}
	}
	return matched
}

// ParsePriceRange scans the normalized text for "under/below N" and
// "above/over N" phrases and resolves them into an inclusive interval:
//   - both present: upper = under-value, lower = above-value, assigned
//     positionally with no magnitude check (an inverted range is kept as-is)
//   - one present: a half-open interval with just that bound
//   - neither: nil, meaning no price constraint
//
// Only the first occurrence of each phrase counts.
func (p *IntentParser) ParsePriceRange(normalized string) (*domain.PriceRange, error) {
	underMatch := p.underPattern.FindStringSubmatch(normalized)
	aboveMatch := p.abovePattern.FindStringSubmatch(normalized)

	if underMatch == nil && aboveMatch == nil {
		return nil, nil
	}

	var priceRange domain.PriceRange

	if underMatch != nil {
		upper, err := strconv.Atoi(underMatch[1])
		if err != nil {
			return nil, fmt.Errorf("parsing upper price bound %q: %w", underMatch[1], err)
		}
		priceRange.Upper = &upper
	}

	if aboveMatch != nil {
		lower, err := strconv.Atoi(aboveMatch[1])
		if err != nil {
			return nil, fmt.Errorf("parsing lower price bound %q: %w", aboveMatch[1], err)
		}
		priceRange.Lower = &lower
	}

	return &priceRange, nil
}

// formatRange renders a price range for debug logs
func formatRange(r *domain.PriceRange) string {
	if r == nil {
		return "none"
	}
	lower, upper := "-", "-"
	if r.Lower != nil {
		lower = strconv.Itoa(*r.Lower)
	}
	if r.Upper != nil {
		upper = strconv.Itoa(*r.Upper)
	}
	return fmt.Sprintf("[%s, %s]", lower, upper)
}
