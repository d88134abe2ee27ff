package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/veridianhealth/riskengine/internal/core"
	"github.com/veridianhealth/riskengine/internal/platform/ids"
)

type PlanRepoMongo struct {
	coll      *mongodrv.Collection
	opTimeout time.Duration
}

func NewPlanRepo(db *mongodrv.Database, opTimeout time.Duration) *PlanRepoMongo {
	return &PlanRepoMongo{
		coll:      db.Collection(ColPlans),
		opTimeout: opTimeout,
	}
}

// Lists the catalog ordered by ascending risk-range floor, so selection scans
// the lowest tier first.
func (r *PlanRepoMongo) List(ctx context.Context) ([]core.InsurancePlan, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "risk_min", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("plans.find: %w", err)
	}
	defer cur.Close(ctx)

	var plans []core.InsurancePlan
	for cur.Next(ctx) {
		var doc PlanDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("plans.decode: %w", err)
		}
		plans = append(plans, fromPlanDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("plans.cursor: %w", err)
	}
	return plans, nil
}

// UpsertByName writes a catalog entry keyed by plan name. Seeding only; the
// engine treats the catalog as read-only.
func (r *PlanRepoMongo) UpsertByName(ctx context.Context, p core.InsurancePlan) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	doc := toPlanDoc(p)

	set := bson.M{
		"name":         doc.Name,
		"type":         doc.Type,
		"base_premium": doc.BasePremium,
		"coverage":     doc.Coverage,
		"max_coverage": doc.MaxCoverage,
		"deductible":   doc.Deductible,
		"risk_min":     doc.RiskMin,
		"risk_max":     doc.RiskMax,
	}
	setOnInsert := bson.M{"_id": doc.ID}
	if doc.ID == "" {
		setOnInsert["_id"] = ids.New()
	}

	_, err := r.coll.UpdateOne(
		ctx,
		bson.M{"name": doc.Name},
		bson.M{"$set": set, "$setOnInsert": setOnInsert},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("plans.upsert: %w", err)
	}
	return nil
}
