// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/veraz-project/veraz/ent/claim"
	"github.com/veraz-project/veraz/ent/evidence"
	"github.com/veraz-project/veraz/ent/market"
	"github.com/veraz-project/veraz/ent/notification"
	"github.com/veraz-project/veraz/ent/predictionfactor"
	"github.com/veraz-project/veraz/ent/schema"
	"github.com/veraz-project/veraz/ent/source"
	"github.com/veraz-project/veraz/ent/statcounter"
	"github.com/veraz-project/veraz/ent/task"
	"github.com/veraz-project/veraz/ent/trade"
	"github.com/veraz-project/veraz/ent/trendingtopic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	claimFields := schema.Claim{}.Fields()
	_ = claimFields
	// claimDescExplanation is the schema descriptor for explanation field.
	claimDescExplanation := claimFields[4].Descriptor()
	// claim.ExplanationValidator is a validator for the "explanation" field. It is called by the builders before save.
	claim.ExplanationValidator = claimDescExplanation.Validators[0].(func(string) error)
	// claimDescNeedsReview is the schema descriptor for needs_review field.
	claimDescNeedsReview := claimFields[7].Descriptor()
	// claim.DefaultNeedsReview holds the default value on creation for the needs_review field.
	claim.DefaultNeedsReview = claimDescNeedsReview.Default.(bool)
	// claimDescHasEmbedding is the schema descriptor for has_embedding field.
	claimDescHasEmbedding := claimFields[9].Descriptor()
	// claim.DefaultHasEmbedding holds the default value on creation for the has_embedding field.
	claim.DefaultHasEmbedding = claimDescHasEmbedding.Default.(bool)
	// claimDescCreatedAt is the schema descriptor for created_at field.
	claimDescCreatedAt := claimFields[10].Descriptor()
	// claim.DefaultCreatedAt holds the default value on creation for the created_at field.
	claim.DefaultCreatedAt = claimDescCreatedAt.Default.(func() time.Time)
	evidenceFields := schema.Evidence{}.Fields()
	_ = evidenceFields
	// evidenceDescFetchedAt is the schema descriptor for fetched_at field.
	evidenceDescFetchedAt := evidenceFields[6].Descriptor()
	// evidence.DefaultFetchedAt holds the default value on creation for the fetched_at field.
	evidence.DefaultFetchedAt = evidenceDescFetchedAt.Default.(func() time.Time)
	// evidenceDescCredibilityTier is the schema descriptor for credibility_tier field.
	evidenceDescCredibilityTier := evidenceFields[8].Descriptor()
	// evidence.CredibilityTierValidator is a validator for the "credibility_tier" field. It is called by the builders before save.
	evidence.CredibilityTierValidator = func() func(int) error {
		validators := evidenceDescCredibilityTier.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(credibility_tier int) error {
			for _, fn := range fns {
				if err := fn(credibility_tier); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	marketFields := schema.Market{}.Fields()
	_ = marketFields
	// marketDescCategory is the schema descriptor for category field.
	marketDescCategory := marketFields[3].Descriptor()
	// market.DefaultCategory holds the default value on creation for the category field.
	market.DefaultCategory = marketDescCategory.Default.(string)
	// marketDescHighStakes is the schema descriptor for high_stakes field.
	marketDescHighStakes := marketFields[4].Descriptor()
	// market.DefaultHighStakes holds the default value on creation for the high_stakes field.
	market.DefaultHighStakes = marketDescHighStakes.Default.(bool)
	// marketDescYesProb is the schema descriptor for yes_prob field.
	marketDescYesProb := marketFields[5].Descriptor()
	// market.DefaultYesProb holds the default value on creation for the yes_prob field.
	market.DefaultYesProb = marketDescYesProb.Default.(float64)
	// marketDescNoProb is the schema descriptor for no_prob field.
	marketDescNoProb := marketFields[6].Descriptor()
	// market.DefaultNoProb holds the default value on creation for the no_prob field.
	market.DefaultNoProb = marketDescNoProb.Default.(float64)
	// marketDescVolume is the schema descriptor for volume field.
	marketDescVolume := marketFields[7].Descriptor()
	// market.DefaultVolume holds the default value on creation for the volume field.
	market.DefaultVolume = marketDescVolume.Default.(float64)
	// marketDescCreatedAt is the schema descriptor for created_at field.
	marketDescCreatedAt := marketFields[11].Descriptor()
	// market.DefaultCreatedAt holds the default value on creation for the created_at field.
	market.DefaultCreatedAt = marketDescCreatedAt.Default.(func() time.Time)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescAcknowledged is the schema descriptor for acknowledged field.
	notificationDescAcknowledged := notificationFields[4].Descriptor()
	// notification.DefaultAcknowledged holds the default value on creation for the acknowledged field.
	notification.DefaultAcknowledged = notificationDescAcknowledged.Default.(bool)
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[5].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	predictionfactorFields := schema.PredictionFactor{}.Fields()
	_ = predictionfactorFields
	// predictionfactorDescComputedAt is the schema descriptor for computed_at field.
	predictionfactorDescComputedAt := predictionfactorFields[7].Descriptor()
	// predictionfactor.DefaultComputedAt holds the default value on creation for the computed_at field.
	predictionfactor.DefaultComputedAt = predictionfactorDescComputedAt.Default.(func() time.Time)
	sourceFields := schema.Source{}.Fields()
	_ = sourceFields
	// sourceDescCapturedAt is the schema descriptor for captured_at field.
	sourceDescCapturedAt := sourceFields[6].Descriptor()
	// source.DefaultCapturedAt holds the default value on creation for the captured_at field.
	source.DefaultCapturedAt = sourceDescCapturedAt.Default.(func() time.Time)
	// sourceDescFailureCount is the schema descriptor for failure_count field.
	sourceDescFailureCount := sourceFields[14].Descriptor()
	// source.DefaultFailureCount holds the default value on creation for the failure_count field.
	source.DefaultFailureCount = sourceDescFailureCount.Default.(int)
	statcounterFields := schema.StatCounter{}.Fields()
	_ = statcounterFields
	// statcounterDescValue is the schema descriptor for value field.
	statcounterDescValue := statcounterFields[1].Descriptor()
	// statcounter.DefaultValue holds the default value on creation for the value field.
	statcounter.DefaultValue = statcounterDescValue.Default.(int64)
	// statcounterDescUpdatedAt is the schema descriptor for updated_at field.
	statcounterDescUpdatedAt := statcounterFields[2].Descriptor()
	// statcounter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	statcounter.DefaultUpdatedAt = statcounterDescUpdatedAt.Default.(func() time.Time)
	// statcounter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	statcounter.UpdateDefaultUpdatedAt = statcounterDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescPriority is the schema descriptor for priority field.
	taskDescPriority := taskFields[4].Descriptor()
	// task.DefaultPriority holds the default value on creation for the priority field.
	task.DefaultPriority = taskDescPriority.Default.(int)
	// taskDescAttempt is the schema descriptor for attempt field.
	taskDescAttempt := taskFields[5].Descriptor()
	// task.DefaultAttempt holds the default value on creation for the attempt field.
	task.DefaultAttempt = taskDescAttempt.Default.(int)
	// taskDescMaxAttempts is the schema descriptor for max_attempts field.
	taskDescMaxAttempts := taskFields[6].Descriptor()
	// task.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	task.DefaultMaxAttempts = taskDescMaxAttempts.Default.(int)
	// taskDescEnqueueAt is the schema descriptor for enqueue_at field.
	taskDescEnqueueAt := taskFields[8].Descriptor()
	// task.DefaultEnqueueAt holds the default value on creation for the enqueue_at field.
	task.DefaultEnqueueAt = taskDescEnqueueAt.Default.(func() time.Time)
	// taskDescAvailableAt is the schema descriptor for available_at field.
	taskDescAvailableAt := taskFields[9].Descriptor()
	// task.DefaultAvailableAt holds the default value on creation for the available_at field.
	task.DefaultAvailableAt = taskDescAvailableAt.Default.(func() time.Time)
	tradeFields := schema.Trade{}.Fields()
	_ = tradeFields
	// tradeDescCreatedAt is the schema descriptor for created_at field.
	tradeDescCreatedAt := tradeFields[6].Descriptor()
	// trade.DefaultCreatedAt holds the default value on creation for the created_at field.
	trade.DefaultCreatedAt = tradeDescCreatedAt.Default.(func() time.Time)
	trendingtopicFields := schema.TrendingTopic{}.Fields()
	_ = trendingtopicFields
	// trendingtopicDescDetectedAt is the schema descriptor for detected_at field.
	trendingtopicDescDetectedAt := trendingtopicFields[10].Descriptor()
	// trendingtopic.DefaultDetectedAt holds the default value on creation for the detected_at field.
	trendingtopic.DefaultDetectedAt = trendingtopicDescDetectedAt.Default.(func() time.Time)
}
