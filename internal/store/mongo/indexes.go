package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. Safe to call on
// every startup; index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongodrv.Database) error {
	patientIndexes := []mongodrv.IndexModel{
		{
			Keys: bson.D{{Key: "risk_level", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "risk_score", Value: 1}},
		},
	}
	if _, err := db.Collection(ColPatients).Indexes().CreateMany(ctx, patientIndexes); err != nil {
		return fmt.Errorf("create patient indexes: %w", err)
	}

	planIndexes := []mongodrv.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "risk_min", Value: 1}},
		},
	}
	if _, err := db.Collection(ColPlans).Indexes().CreateMany(ctx, planIndexes); err != nil {
		return fmt.Errorf("create plan indexes: %w", err)
	}

	return nil
}
