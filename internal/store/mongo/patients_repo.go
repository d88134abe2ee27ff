package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/veridianhealth/riskengine/internal/core"
	"github.com/veridianhealth/riskengine/internal/platform/ids"
)

type PatientRepoMongo struct {
	coll      *mongodrv.Collection
	opTimeout time.Duration
}

func NewPatientRepo(db *mongodrv.Database, opTimeout time.Duration) *PatientRepoMongo {
	return &PatientRepoMongo{
		coll:      db.Collection(ColPatients),
		opTimeout: opTimeout,
	}
}

// Gets a patient by ID. Returns core.ErrPatientNotFound if not found.
func (r *PatientRepoMongo) Get(ctx context.Context, id string) (core.PatientProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	var doc PatientDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return core.PatientProfile{}, core.ErrPatientNotFound
		}
		return core.PatientProfile{}, fmt.Errorf("patients.findOne: %w", err)
	}
	return fromPatientDoc(doc), nil
}

// Lists all patients. Returns an empty slice if none found.
func (r *PatientRepoMongo) List(ctx context.Context) ([]core.PatientProfile, error) {
	return r.find(ctx, bson.M{})
}

// ListByRiskLevel lists patients carrying a stored risk level.
func (r *PatientRepoMongo) ListByRiskLevel(ctx context.Context, level core.RiskLevel) ([]core.PatientProfile, error) {
	return r.find(ctx, bson.M{"risk_level": string(level)})
}

func (r *PatientRepoMongo) find(ctx context.Context, filter bson.M) ([]core.PatientProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("patients.find: %w", err)
	}
	defer cur.Close(ctx)

	var patients []core.PatientProfile
	for cur.Next(ctx) {
		var doc PatientDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("patients.decode: %w", err)
		}
		patients = append(patients, fromPatientDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("patients.cursor: %w", err)
	}
	return patients, nil
}

// Upsert writes a patient record. Used by seeding and ingestion tooling; the
// engine itself only reads.
func (r *PatientRepoMongo) Upsert(ctx context.Context, p core.PatientProfile) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	doc := toPatientDoc(p)
	if doc.ID == "" {
		doc.ID = ids.New()
	}

	// _id stays out of $set; on insert it comes from the filter.
	set := bson.M{
		"name":                    doc.Name,
		"age":                     doc.Age,
		"gender":                  doc.Gender,
		"chronic_conditions":      doc.ChronicConditions,
		"allergies":               doc.Allergies,
		"family_history":          doc.FamilyHistory,
		"lifestyle":               doc.Lifestyle,
		"claims_history":          doc.Claims,
		"risk_score":              doc.RiskScore,
		"risk_level":              doc.RiskLevel,
		"recent_hospitalizations": doc.RecentHospitalizations,
		"medication_compliance":   doc.MedicationCompliance,
	}

	_, err := r.coll.UpdateOne(
		ctx,
		bson.M{"_id": doc.ID},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("patients.upsert: %w", err)
	}
	return nil
}
