package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/ent/market"
	"github.com/veraz-project/veraz/ent/predictionfactor"
	"github.com/veraz-project/veraz/ent/trade"
)

// probEpsilon bounds the yes_prob + no_prob = 1 invariant check.
const probEpsilon = 1e-9

// MarketService manages prediction markets and their trades.
type MarketService struct {
	client *ent.Client
}

// NewMarketService creates a new MarketService
func NewMarketService(client *ent.Client) *MarketService {
	return &MarketService{client: client}
}

// CreateMarketRequest creates one market, optionally tied to a claim.
type CreateMarketRequest struct {
	Question   string
	Category   string
	HighStakes bool
	ClaimID    string
	ClosesAt   *time.Time
}

// CreateMarket creates an open market at even odds.
func (s *MarketService) CreateMarket(ctx context.Context, req CreateMarketRequest) (*ent.Market, error) {
	if req.Question == "" {
		return nil, NewValidationError("question", "required")
	}

	builder := s.client.Market.Create().
		SetID(uuid.New().String()).
		SetSlug(slugify(req.Question)).
		SetQuestion(req.Question).
		SetYesProb(0.5).
		SetNoProb(0.5)
	if req.Category != "" {
		builder.SetCategory(req.Category)
	}
	builder.SetHighStakes(req.HighStakes)
	if req.ClaimID != "" {
		builder.SetClaimID(req.ClaimID)
	}
	if req.ClosesAt != nil {
		builder.SetClosesAt(*req.ClosesAt)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create market: %w", err)
	}
	return created, nil
}

// ExecuteTrade records a trade and moves the market price. The price
// update is proportional to trade size against current volume, clamped
// to (0.01, 0.99) so a market never hits a degenerate certainty.
func (s *MarketService) ExecuteTrade(httpCtx context.Context, marketID, actor, side string, size float64) (*ent.Trade, error) {
	if size <= 0 {
		return nil, NewValidationError("size", "must be positive")
	}
	if side != "yes" && side != "no" {
		return nil, NewValidationError("side", "must be yes or no")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	m, err := tx.Market.Query().
		Where(market.ID(marketID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock market: %w", err)
	}
	if m.Status != market.StatusOpen {
		return nil, ErrMarketClosed
	}

	newYes := moveProbability(m.YesProb, m.Volume, side, size)
	newNo := 1 - newYes
	if math.Abs(newYes+newNo-1) > probEpsilon {
		return nil, fmt.Errorf("probability invariant violated: yes=%v no=%v", newYes, newNo)
	}

	created, err := tx.Trade.Create().
		SetID(uuid.New().String()).
		SetMarketID(marketID).
		SetActor(actor).
		SetSide(trade.Side(side)).
		SetSize(size).
		SetPrice(m.YesProb).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record trade: %w", err)
	}

	err = tx.Market.UpdateOneID(marketID).
		SetYesProb(newYes).
		SetNoProb(newNo).
		SetVolume(m.Volume + size).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update market price: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit trade: %w", err)
	}
	return created, nil
}

// moveProbability shifts yes_prob toward the traded side, weighted by
// trade size against accumulated volume.
func moveProbability(yesProb, volume float64, side string, size float64) float64 {
	weight := size / (volume + size + 100)
	target := 1.0
	if side == "no" {
		target = 0.0
	}
	moved := yesProb + (target-yesProb)*weight
	return math.Min(0.99, math.Max(0.01, moved))
}

// RecordAssessment appends an agent prediction factor to a market.
func (s *MarketService) RecordAssessment(ctx context.Context, marketID string, assessedProb, confidence float64, reasoning, agentVersion string, dataSources map[string]interface{}) error {
	builder := s.client.PredictionFactor.Create().
		SetID(uuid.New().String()).
		SetMarketID(marketID).
		SetAssessedProb(assessedProb).
		SetConfidence(confidence).
		SetReasoning(reasoning).
		SetAgentVersion(agentVersion)
	if dataSources != nil {
		builder.SetDataSources(dataSources)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record assessment: %w", err)
	}
	return nil
}

// LatestAssessment returns the newest prediction factor for a market.
func (s *MarketService) LatestAssessment(ctx context.Context, marketID string) (*ent.PredictionFactor, error) {
	pf, err := s.client.PredictionFactor.Query().
		Where(predictionfactor.MarketIDEQ(marketID)).
		Order(ent.Desc(predictionfactor.FieldComputedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load latest assessment: %w", err)
	}
	return pf, nil
}

// SeedCandidates returns open markets younger than maxAge with no trades.
func (s *MarketService) SeedCandidates(ctx context.Context, maxAge time.Duration, limit int) ([]*ent.Market, error) {
	return s.client.Market.Query().
		Where(
			market.StatusEQ(market.StatusOpen),
			market.CreatedAtGT(time.Now().Add(-maxAge)),
			market.Not(market.HasTrades()),
		).
		Order(ent.Asc(market.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// StaleAssessed returns open markets whose latest assessment is older
// than staleness (or missing), oldest-assessed first, up to limit.
func (s *MarketService) StaleAssessed(ctx context.Context, staleness time.Duration, limit int) ([]*ent.Market, error) {
	cutoff := time.Now().Add(-staleness)
	return s.client.Market.Query().
		Where(
			market.StatusEQ(market.StatusOpen),
			market.Not(market.HasPredictionFactorsWith(
				predictionfactor.ComputedAtGT(cutoff),
			)),
		).
		Order(ent.Asc(market.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// TradeCount returns the number of trades on a market.
func (s *MarketService) TradeCount(ctx context.Context, marketID string) (int, error) {
	return s.client.Trade.Query().
		Where(trade.MarketIDEQ(marketID)).
		Count(ctx)
}

// OpenMarkets returns open markets oldest first.
func (s *MarketService) OpenMarkets(ctx context.Context, limit int) ([]*ent.Market, error) {
	return s.client.Market.Query().
		Where(market.StatusEQ(market.StatusOpen)).
		Order(ent.Asc(market.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// InactiveMarkets returns open markets with no trade in the window.
func (s *MarketService) InactiveMarkets(ctx context.Context, window time.Duration, limit int) ([]*ent.Market, error) {
	cutoff := time.Now().Add(-window)
	return s.client.Market.Query().
		Where(
			market.StatusEQ(market.StatusOpen),
			market.Not(market.HasTradesWith(trade.CreatedAtGT(cutoff))),
			market.CreatedAtLT(cutoff),
		).
		Order(ent.Asc(market.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// slugify builds a URL slug from a market question.
func slugify(q string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(q) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > 80 {
		slug = strings.Trim(slug[:80], "-")
	}
	// Uniqueness suffix: question text alone can collide.
	return slug + "-" + uuid.New().String()[:8]
}
