// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClaimsColumns holds the columns for the "claims" table.
	ClaimsColumns = []*schema.Column{
		{Name: "claim_id", Type: field.TypeString, Unique: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "original_text", Type: field.TypeString, Size: 2147483647},
		{Name: "verdict", Type: field.TypeEnum, Enums: []string{"verified", "debunked", "misleading", "unverified"}},
		{Name: "explanation", Type: field.TypeString, Size: 280},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "evidence_strength", Type: field.TypeEnum, Enums: []string{"strong", "moderate", "weak", "insufficient"}},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "review_priority", Type: field.TypeEnum, Enums: []string{"high", "medium", "low", "none"}, Default: "none"},
		{Name: "has_embedding", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ClaimsTable holds the schema information for the "claims" table.
	ClaimsTable = &schema.Table{
		Name:       "claims",
		Columns:    ClaimsColumns,
		PrimaryKey: []*schema.Column{ClaimsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "claim_created_at",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[10]},
			},
			{
				Name:    "claim_verdict",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[3]},
			},
			{
				Name:    "claim_verdict_created_at",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[3], ClaimsColumns[10]},
			},
			{
				Name:    "claim_needs_review",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "needs_review",
				},
			},
		},
	}
	// EntitiesColumns holds the columns for the "entities" table.
	EntitiesColumns = []*schema.Column{
		{Name: "entity_id", Type: field.TypeString, Unique: true},
		{Name: "canonical_name", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"person", "institution", "location", "organization"}},
	}
	// EntitiesTable holds the schema information for the "entities" table.
	EntitiesTable = &schema.Table{
		Name:       "entities",
		Columns:    EntitiesColumns,
		PrimaryKey: []*schema.Column{EntitiesColumns[0]},
	}
	// EvidencesColumns holds the columns for the "evidences" table.
	EvidencesColumns = []*schema.Column{
		{Name: "evidence_id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "snippet", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "fetched_at", Type: field.TypeTime},
		{Name: "relevance", Type: field.TypeFloat64},
		{Name: "credibility_tier", Type: field.TypeInt},
		{Name: "position", Type: field.TypeInt},
		{Name: "claim_id", Type: field.TypeString},
	}
	// EvidencesTable holds the schema information for the "evidences" table.
	EvidencesTable = &schema.Table{
		Name:       "evidences",
		Columns:    EvidencesColumns,
		PrimaryKey: []*schema.Column{EvidencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evidences_claims_evidence",
				Columns:    []*schema.Column{EvidencesColumns[9]},
				RefColumns: []*schema.Column{ClaimsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evidence_claim_id_position",
				Unique:  false,
				Columns: []*schema.Column{EvidencesColumns[9], EvidencesColumns[8]},
			},
			{
				Name:    "evidence_domain",
				Unique:  false,
				Columns: []*schema.Column{EvidencesColumns[2]},
			},
		},
	}
	// MarketsColumns holds the columns for the "markets" table.
	MarketsColumns = []*schema.Column{
		{Name: "market_id", Type: field.TypeString, Unique: true},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeString, Default: "general"},
		{Name: "high_stakes", Type: field.TypeBool, Default: false},
		{Name: "yes_prob", Type: field.TypeFloat64, Default: 0.5},
		{Name: "no_prob", Type: field.TypeFloat64, Default: 0.5},
		{Name: "volume", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "resolved", "cancelled"}, Default: "open"},
		{Name: "closes_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "claim_id", Type: field.TypeString, Nullable: true},
	}
	// MarketsTable holds the schema information for the "markets" table.
	MarketsTable = &schema.Table{
		Name:       "markets",
		Columns:    MarketsColumns,
		PrimaryKey: []*schema.Column{MarketsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "markets_claims_markets",
				Columns:    []*schema.Column{MarketsColumns[11]},
				RefColumns: []*schema.Column{ClaimsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "market_status",
				Unique:  false,
				Columns: []*schema.Column{MarketsColumns[8]},
			},
			{
				Name:    "market_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{MarketsColumns[8], MarketsColumns[10]},
			},
			{
				Name:    "market_category",
				Unique:  false,
				Columns: []*schema.Column{MarketsColumns[3]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "notification_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"provider_failure", "scraper_auth", "dead_letter"}},
		{Name: "subject", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "acknowledged", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_acknowledged_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[4], NotificationsColumns[5]},
			},
		},
	}
	// PredictionFactorsColumns holds the columns for the "prediction_factors" table.
	PredictionFactorsColumns = []*schema.Column{
		{Name: "factor_id", Type: field.TypeString, Unique: true},
		{Name: "assessed_prob", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647},
		{Name: "data_sources", Type: field.TypeJSON, Nullable: true},
		{Name: "agent_version", Type: field.TypeString},
		{Name: "computed_at", Type: field.TypeTime},
		{Name: "market_id", Type: field.TypeString},
	}
	// PredictionFactorsTable holds the schema information for the "prediction_factors" table.
	PredictionFactorsTable = &schema.Table{
		Name:       "prediction_factors",
		Columns:    PredictionFactorsColumns,
		PrimaryKey: []*schema.Column{PredictionFactorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prediction_factors_markets_prediction_factors",
				Columns:    []*schema.Column{PredictionFactorsColumns[7]},
				RefColumns: []*schema.Column{MarketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "predictionfactor_market_id_computed_at",
				Unique:  false,
				Columns: []*schema.Column{PredictionFactorsColumns[7], PredictionFactorsColumns[6]},
			},
		},
	}
	// SchedulerLeasesColumns holds the columns for the "scheduler_leases" table.
	SchedulerLeasesColumns = []*schema.Column{
		{Name: "lease_name", Type: field.TypeString, Unique: true},
		{Name: "holder", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// SchedulerLeasesTable holds the schema information for the "scheduler_leases" table.
	SchedulerLeasesTable = &schema.Table{
		Name:       "scheduler_leases",
		Columns:    SchedulerLeasesColumns,
		PrimaryKey: []*schema.Column{SchedulerLeasesColumns[0]},
	}
	// SourcesColumns holds the columns for the "sources" table.
	SourcesColumns = []*schema.Column{
		{Name: "source_id", Type: field.TypeString, Unique: true},
		{Name: "platform", Type: field.TypeEnum, Enums: []string{"social_short", "news_rss", "video", "forum", "web"}},
		{Name: "external_id", Type: field.TypeString},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "captured_at", Type: field.TypeTime},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "likes", Type: field.TypeInt64, Nullable: true},
		{Name: "shares", Type: field.TypeInt64, Nullable: true},
		{Name: "comments", Type: field.TypeInt64, Nullable: true},
		{Name: "views", Type: field.TypeInt64, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "processed", "skipped", "failed"}, Default: "pending"},
		{Name: "skip_reason", Type: field.TypeString, Nullable: true},
		{Name: "failure_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "claim_id", Type: field.TypeString, Nullable: true},
	}
	// SourcesTable holds the schema information for the "sources" table.
	SourcesTable = &schema.Table{
		Name:       "sources",
		Columns:    SourcesColumns,
		PrimaryKey: []*schema.Column{SourcesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sources_claims_sources",
				Columns:    []*schema.Column{SourcesColumns[16]},
				RefColumns: []*schema.Column{ClaimsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "source_platform_external_id",
				Unique:  true,
				Columns: []*schema.Column{SourcesColumns[1], SourcesColumns[2]},
			},
			{
				Name:    "source_state",
				Unique:  false,
				Columns: []*schema.Column{SourcesColumns[12]},
			},
			{
				Name:    "source_captured_at",
				Unique:  false,
				Columns: []*schema.Column{SourcesColumns[6]},
			},
			{
				Name:    "source_state_captured_at",
				Unique:  false,
				Columns: []*schema.Column{SourcesColumns[12], SourcesColumns[6]},
			},
			{
				Name:    "source_state_failure_count",
				Unique:  false,
				Columns: []*schema.Column{SourcesColumns[12], SourcesColumns[14]},
				Annotation: &entsql.IndexAnnotation{
					Where: "state = 'failed'",
				},
			},
		},
	}
	// StatCountersColumns holds the columns for the "stat_counters" table.
	StatCountersColumns = []*schema.Column{
		{Name: "counter_name", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StatCountersTable holds the schema information for the "stat_counters" table.
	StatCountersTable = &schema.Table{
		Name:       "stat_counters",
		Columns:    StatCountersColumns,
		PrimaryKey: []*schema.Column{StatCountersColumns[0]},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "unique_key", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "succeeded", "failed", "dead"}, Default: "pending"},
		{Name: "enqueue_at", Type: field.TypeTime},
		{Name: "available_at", Type: field.TypeTime},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status_available_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7], TasksColumns[9]},
			},
			{
				Name:    "task_name_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[7]},
			},
			{
				Name:    "task_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7], TasksColumns[12]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "topic_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "taxonomy_slug", Type: field.TypeString, Unique: true},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
	}
	// TradesColumns holds the columns for the "trades" table.
	TradesColumns = []*schema.Column{
		{Name: "trade_id", Type: field.TypeString, Unique: true},
		{Name: "actor", Type: field.TypeString},
		{Name: "side", Type: field.TypeEnum, Enums: []string{"yes", "no"}},
		{Name: "size", Type: field.TypeFloat64},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "market_id", Type: field.TypeString},
	}
	// TradesTable holds the schema information for the "trades" table.
	TradesTable = &schema.Table{
		Name:       "trades",
		Columns:    TradesColumns,
		PrimaryKey: []*schema.Column{TradesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "trades_markets_trades",
				Columns:    []*schema.Column{TradesColumns[6]},
				RefColumns: []*schema.Column{MarketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trade_market_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TradesColumns[6], TradesColumns[5]},
			},
			{
				Name:    "trade_actor",
				Unique:  false,
				Columns: []*schema.Column{TradesColumns[1]},
			},
		},
	}
	// TrendingTopicsColumns holds the columns for the "trending_topics" table.
	TrendingTopicsColumns = []*schema.Column{
		{Name: "trending_id", Type: field.TypeString, Unique: true},
		{Name: "snapshot_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "keywords", Type: field.TypeJSON},
		{Name: "trend_score", Type: field.TypeFloat64},
		{Name: "velocity", Type: field.TypeFloat64},
		{Name: "correlation", Type: field.TypeFloat64},
		{Name: "relevance", Type: field.TypeFloat64},
		{Name: "risk", Type: field.TypeFloat64},
		{Name: "priority", Type: field.TypeFloat64},
		{Name: "detected_at", Type: field.TypeTime},
	}
	// TrendingTopicsTable holds the schema information for the "trending_topics" table.
	TrendingTopicsTable = &schema.Table{
		Name:       "trending_topics",
		Columns:    TrendingTopicsColumns,
		PrimaryKey: []*schema.Column{TrendingTopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trendingtopic_snapshot_id",
				Unique:  false,
				Columns: []*schema.Column{TrendingTopicsColumns[1]},
			},
			{
				Name:    "trendingtopic_snapshot_id_priority",
				Unique:  false,
				Columns: []*schema.Column{TrendingTopicsColumns[1], TrendingTopicsColumns[9]},
			},
		},
	}
	// ClaimEntitiesColumns holds the columns for the "claim_entities" table.
	ClaimEntitiesColumns = []*schema.Column{
		{Name: "claim_id", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
	}
	// ClaimEntitiesTable holds the schema information for the "claim_entities" table.
	ClaimEntitiesTable = &schema.Table{
		Name:       "claim_entities",
		Columns:    ClaimEntitiesColumns,
		PrimaryKey: []*schema.Column{ClaimEntitiesColumns[0], ClaimEntitiesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "claim_entities_claim_id",
				Columns:    []*schema.Column{ClaimEntitiesColumns[0]},
				RefColumns: []*schema.Column{ClaimsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "claim_entities_entity_id",
				Columns:    []*schema.Column{ClaimEntitiesColumns[1]},
				RefColumns: []*schema.Column{EntitiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ClaimTopicsColumns holds the columns for the "claim_topics" table.
	ClaimTopicsColumns = []*schema.Column{
		{Name: "claim_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
	}
	// ClaimTopicsTable holds the schema information for the "claim_topics" table.
	ClaimTopicsTable = &schema.Table{
		Name:       "claim_topics",
		Columns:    ClaimTopicsColumns,
		PrimaryKey: []*schema.Column{ClaimTopicsColumns[0], ClaimTopicsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "claim_topics_claim_id",
				Columns:    []*schema.Column{ClaimTopicsColumns[0]},
				RefColumns: []*schema.Column{ClaimsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "claim_topics_topic_id",
				Columns:    []*schema.Column{ClaimTopicsColumns[1]},
				RefColumns: []*schema.Column{TopicsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClaimsTable,
		EntitiesTable,
		EvidencesTable,
		MarketsTable,
		NotificationsTable,
		PredictionFactorsTable,
		SchedulerLeasesTable,
		SourcesTable,
		StatCountersTable,
		TasksTable,
		TopicsTable,
		TradesTable,
		TrendingTopicsTable,
		ClaimEntitiesTable,
		ClaimTopicsTable,
	}
)

func init() {
	EvidencesTable.ForeignKeys[0].RefTable = ClaimsTable
	MarketsTable.ForeignKeys[0].RefTable = ClaimsTable
	PredictionFactorsTable.ForeignKeys[0].RefTable = MarketsTable
	SourcesTable.ForeignKeys[0].RefTable = ClaimsTable
	TradesTable.ForeignKeys[0].RefTable = MarketsTable
	ClaimEntitiesTable.ForeignKeys[0].RefTable = ClaimsTable
	ClaimEntitiesTable.ForeignKeys[1].RefTable = EntitiesTable
	ClaimTopicsTable.ForeignKeys[0].RefTable = ClaimsTable
	ClaimTopicsTable.ForeignKeys[1].RefTable = TopicsTable
}
