package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/ent/trendingtopic"
)

// TrendingInput is one trending topic to publish in a snapshot.
type TrendingInput struct {
	Name        string
	Keywords    []string
	TrendScore  float64
	Velocity    float64
	Correlation float64
	Relevance   float64
	Risk        float64
	Priority    float64
}

// TrendingService publishes and serves trending-topic snapshots.
type TrendingService struct {
	client *ent.Client
}

// NewTrendingService creates a new TrendingService
func NewTrendingService(client *ent.Client) *TrendingService {
	return &TrendingService{client: client}
}

// ReplaceSnapshot atomically swaps the current snapshot: new rows are
// inserted under a fresh snapshot_id and older snapshots are dropped in
// the same transaction, so readers always see exactly one complete set.
func (s *TrendingService) ReplaceSnapshot(ctx context.Context, topics []TrendingInput) (string, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	snapshotID := uuid.New().String()
	for _, t := range topics {
		err := tx.TrendingTopic.Create().
			SetID(uuid.New().String()).
			SetSnapshotID(snapshotID).
			SetName(t.Name).
			SetKeywords(t.Keywords).
			SetTrendScore(t.TrendScore).
			SetVelocity(t.Velocity).
			SetCorrelation(t.Correlation).
			SetRelevance(t.Relevance).
			SetRisk(t.Risk).
			SetPriority(t.Priority).
			Exec(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to insert trending topic: %w", err)
		}
	}

	_, err = tx.TrendingTopic.Delete().
		Where(trendingtopic.SnapshotIDNEQ(snapshotID)).
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to drop previous snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return snapshotID, nil
}

// Current returns the current snapshot ordered by priority, best first.
func (s *TrendingService) Current(ctx context.Context, limit int) ([]*ent.TrendingTopic, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.client.TrendingTopic.Query().
		Order(ent.Desc(trendingtopic.FieldPriority)).
		Limit(limit).
		All(ctx)
}
