package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/ent/topic"
	"github.com/veraz-project/veraz/pkg/config"
)

// SyncTaxonomy upserts the topic table from the configured taxonomy at
// startup. Topics removed from the file are kept: old claims still link
// to them.
func SyncTaxonomy(ctx context.Context, client *ent.Client, taxonomy *config.Taxonomy) error {
	for _, t := range taxonomy.Topics {
		n, err := client.Topic.Update().
			Where(topic.TaxonomySlugEQ(t.Slug)).
			SetName(t.Name).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update topic %s: %w", t.Slug, err)
		}
		if n > 0 {
			continue
		}
		err = client.Topic.Create().
			SetID(uuid.New().String()).
			SetName(t.Name).
			SetTaxonomySlug(t.Slug).
			Exec(ctx)
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to create topic %s: %w", t.Slug, err)
		}
	}
	return nil
}
