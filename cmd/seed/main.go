package main

import (
	"context"
	"fmt"
	"time"

	"github.com/veridianhealth/riskengine/internal/core"
	"github.com/veridianhealth/riskengine/internal/platform/config"
	"github.com/veridianhealth/riskengine/internal/platform/logging"
	"github.com/veridianhealth/riskengine/internal/store/mongo"
)

func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.NewClient(cfg)
	if err != nil {
		log.Error("failed to connect to MongoDB", "err", err)
		return
	}
	defer client.Close(ctx)

	if err := mongo.EnsureIndexes(ctx, client.DB); err != nil {
		log.Error("failed to ensure indexes", "err", err)
		return
	}

	planRepo := mongo.NewPlanRepo(client.DB, 5*time.Second)
	patientRepo := mongo.NewPatientRepo(client.DB, 5*time.Second)

	log.Info("seeding plan catalog")
	seedPlans(ctx, planRepo)

	log.Info("seeding demo patients")
	seedPatients(ctx, patientRepo)

	log.Info("done seeding")
}

func seedPlans(ctx context.Context, repo *mongo.PlanRepoMongo) {
	plans := []core.InsurancePlan{
		{
			Name:        "Essential Care",
			Type:        core.TierBasic,
			BasePremium: 180,
			Coverage: core.Coverage{
				Medical: 70, Hospital: 75, Prescription: 60,
				Preventive: 100, MentalHealth: 50, Dental: 40, Vision: 30,
			},
			MaxCoverage: 250000,
			Deductible:  3000,
			RiskRange:   core.RiskRange{Min: 0, Max: 34},
		},
		{
			Name:        "Balanced Care",
			Type:        core.TierStandard,
			BasePremium: 280,
			Coverage: core.Coverage{
				Medical: 80, Hospital: 85, Prescription: 70,
				Preventive: 100, MentalHealth: 60, Dental: 50, Vision: 40,
			},
			MaxCoverage: 500000,
			Deductible:  2000,
			RiskRange:   core.RiskRange{Min: 35, Max: 54},
		},
		{
			Name:        "Advanced Care",
			Type:        core.TierPremium,
			BasePremium: 420,
			Coverage: core.Coverage{
				Medical: 90, Hospital: 90, Prescription: 80,
				Preventive: 100, MentalHealth: 75, Dental: 60, Vision: 50,
			},
			MaxCoverage: 1000000,
			Deductible:  1000,
			RiskRange:   core.RiskRange{Min: 55, Max: 74},
		},
		{
			Name:        "Total Care",
			Type:        core.TierComprehensive,
			BasePremium: 650,
			Coverage: core.Coverage{
				Medical: 95, Hospital: 100, Prescription: 90,
				Preventive: 100, MentalHealth: 90, Dental: 80, Vision: 70,
			},
			MaxCoverage: 2000000,
			Deductible:  500,
			RiskRange:   core.RiskRange{Min: 75, Max: 100},
		},
	}

	for _, p := range plans {
		if err := repo.UpsertByName(ctx, p); err != nil {
			fmt.Printf("failed to seed %s: %v\n", p.Name, err)
		} else {
			fmt.Printf("seeded plan: %s\n", p.Name)
		}
	}
}

func seedPatients(ctx context.Context, repo *mongo.PatientRepoMongo) {
	patients := []core.PatientProfile{
		{
			PatientID: "pat-demo-001",
			Name:      "Alice Nakamura",
			Age:       29,
			Gender:    "female",
			Lifestyle: core.Lifestyle{
				Smoking:  false,
				Alcohol:  false,
				Exercise: core.ExerciseHigh,
				Diet:     core.DietGood,
			},
			Claims: core.ClaimsHistory{TotalClaims: 1, TotalAmount: 1200},
		},
		{
			PatientID:         "pat-demo-002",
			Name:              "Marcus Webb",
			Age:               47,
			Gender:            "male",
			ChronicConditions: []string{"Hypertension"},
			FamilyHistory:     []string{"Heart Disease"},
			Lifestyle: core.Lifestyle{
				Smoking:  false,
				Alcohol:  true,
				Exercise: core.ExerciseModerate,
				Diet:     core.DietAverage,
			},
			Claims: core.ClaimsHistory{
				TotalClaims:        4,
				TotalAmount:        18500,
				FrequentConditions: []string{"Hypertension"},
			},
		},
		{
			PatientID:         "pat-demo-003",
			Name:              "Rosa Delgado",
			Age:               63,
			Gender:            "female",
			ChronicConditions: []string{"Diabetes", "Hypertension", "Arthritis"},
			FamilyHistory:     []string{"Cancer", "Diabetes"},
			Lifestyle: core.Lifestyle{
				Smoking:  true,
				Alcohol:  false,
				Exercise: core.ExerciseLow,
				Diet:     core.DietPoor,
			},
			Claims: core.ClaimsHistory{
				TotalClaims:        9,
				TotalAmount:        112000,
				FrequentConditions: []string{"Diabetes", "Hypertension"},
			},
			RecentHospitalizations: 2,
		},
	}

	for _, p := range patients {
		// Stored patients carry a portfolio-policy score so list filters and
		// cohort analytics work without rescoring.
		a := core.AssessRisk(p, core.ScoringPortfolio)
		score := a.OverallScore
		p.RiskScore = &score
		p.RiskLevel = a.Level

		if err := repo.Upsert(ctx, p); err != nil {
			fmt.Printf("failed to seed %s: %v\n", p.PatientID, err)
		} else {
			fmt.Printf("seeded patient: %s (%s, score %d)\n", p.Name, p.RiskLevel, score)
		}
	}
}
