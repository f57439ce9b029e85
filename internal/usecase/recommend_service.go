package usecase

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/goldior/backend/internal/domain"
)

// priceUnavailable is shown when a product has no capacity options listed
const priceUnavailable = "N/A"

// RecommendServiceConfig holds configuration for the recommendation service
type RecommendServiceConfig struct {
	Limit              int
	CurrencySymbol     string
	Vocabulary         []string
	EnableDebugLogging bool
}

// RecommendService turns a chat message into up to Limit product suggestions.
// Flow: parse intent -> compose filter -> strict lookup -> fallback if empty -> project
type RecommendService struct {
	products           domain.ProductRepository
	parser             *IntentParser
	limit              int
	currencySymbol     string
	enableDebugLogging bool
}

// NewRecommendService creates a new recommendation service with dependencies
func NewRecommendService(products domain.ProductRepository, config RecommendServiceConfig) *RecommendService {
	limit := config.Limit
	if limit <= 0 {
		limit = 3
	}

	symbol := config.CurrencySymbol
	if symbol == "" {
		symbol = "₹"
	}

	vocabulary := config.Vocabulary
	if len(vocabulary) == 0 {
		vocabulary = domain.DefaultNoteVocabulary()
	}

	return &RecommendService{
		products:           products,
		parser:             NewIntentParser(vocabulary, symbol, config.EnableDebugLogging),
		limit:              limit,
		currencySymbol:     symbol,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Recommend runs the full pipeline for one chat message
func (s *RecommendService) Recommend(ctx context.Context, request *domain.RecommendRequest) ([]domain.Recommendation, error) {
	if request == nil {
		return nil, domain.ErrInvalidRequest
	}

	intent, err := s.parser.Parse(request.Message)
	if err != nil {
		return nil, err
	}

	filter := composeFilter(intent)

	matches, err := s.products.FindMatching(ctx, filter, s.limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}

	if s.enableDebugLogging {
		log.Printf("[RECOMMEND] Matches found: %d", len(matches))
	}

	// Single fallback: an empty strict result (for any reason) is served
	// from the unfiltered catalog instead. Never retried further.
	if len(matches) == 0 {
		matches, err = s.products.FindAny(ctx, s.limit)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
		}
	}

	return s.project(matches), nil
}

// composeFilter merges the extracted intent into a repository filter.
// No notes and no price yields the universal filter.
func composeFilter(intent *Intent) domain.ProductFilter {
	return domain.ProductFilter{
		Notes: intent.Notes,
		Price: intent.Price,
	}
}

// project maps matched products to display summaries
func (s *RecommendService) project(products []domain.Product) []domain.Recommendation {
	reply := make([]domain.Recommendation, 0, len(products))
	for i := range products {
		product := &products[i]
		reply = append(reply, domain.Recommendation{
			Name:        product.Name,
			Description: product.Description,
			Price:       s.displayPrice(product),
			Notes:       product.KeynoteNames(),
		})
	}
	return reply
}

// displayPrice formats the first listed price with the currency prefix,
// or the unavailable marker when the product has no capacity options
func (s *RecommendService) displayPrice(product *domain.Product) string {
	price, ok := product.FirstPrice()
	if !ok {
		return s.currencySymbol + priceUnavailable
	}
	return s.currencySymbol + strconv.Itoa(price)
}
