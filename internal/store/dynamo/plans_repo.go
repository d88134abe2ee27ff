package dynamo

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/veridianhealth/riskengine/internal/core"
	"github.com/veridianhealth/riskengine/internal/platform/ids"
)

type PlanItem struct {
	ID          string       `dynamodbav:"id"`
	Name        string       `dynamodbav:"name"`
	Type        string       `dynamodbav:"type"`
	BasePremium float64      `dynamodbav:"base_premium"`
	Coverage    CoverageItem `dynamodbav:"coverage"`
	MaxCoverage int64        `dynamodbav:"max_coverage"`
	Deductible  int          `dynamodbav:"deductible"`
	RiskMin     int          `dynamodbav:"risk_min"`
	RiskMax     int          `dynamodbav:"risk_max"`
}

type CoverageItem struct {
	Medical      int `dynamodbav:"medical"`
	Hospital     int `dynamodbav:"hospital"`
	Prescription int `dynamodbav:"prescription"`
	Preventive   int `dynamodbav:"preventive"`
	MentalHealth int `dynamodbav:"mental_health"`
	Dental       int `dynamodbav:"dental"`
	Vision       int `dynamodbav:"vision"`
}

func (i PlanItem) ToCore() core.InsurancePlan {
	return core.InsurancePlan{
		ID:          i.ID,
		Name:        i.Name,
		Type:        core.PlanTier(i.Type),
		BasePremium: i.BasePremium,
		Coverage: core.Coverage{
			Medical:      i.Coverage.Medical,
			Hospital:     i.Coverage.Hospital,
			Prescription: i.Coverage.Prescription,
			Preventive:   i.Coverage.Preventive,
			MentalHealth: i.Coverage.MentalHealth,
			Dental:       i.Coverage.Dental,
			Vision:       i.Coverage.Vision,
		},
		MaxCoverage: i.MaxCoverage,
		Deductible:  i.Deductible,
		RiskRange:   core.RiskRange{Min: i.RiskMin, Max: i.RiskMax},
	}
}

func planItemFromCore(p core.InsurancePlan) PlanItem {
	return PlanItem{
		ID:          p.ID,
		Name:        p.Name,
		Type:        string(p.Type),
		BasePremium: p.BasePremium,
		Coverage: CoverageItem{
			Medical:      p.Coverage.Medical,
			Hospital:     p.Coverage.Hospital,
			Prescription: p.Coverage.Prescription,
			Preventive:   p.Coverage.Preventive,
			MentalHealth: p.Coverage.MentalHealth,
			Dental:       p.Coverage.Dental,
			Vision:       p.Coverage.Vision,
		},
		MaxCoverage: p.MaxCoverage,
		Deductible:  p.Deductible,
		RiskMin:     p.RiskRange.Min,
		RiskMax:     p.RiskRange.Max,
	}
}

type PlanRepo struct {
	client *dynamodb.Client
}

func NewPlanRepo(client *dynamodb.Client) *PlanRepo {
	return &PlanRepo{client: client}
}

// List scans the catalog and orders it by ascending risk-range floor. Scans
// return items in key order, not tier order.
func (r *PlanRepo) List(ctx context.Context) ([]core.InsurancePlan, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(TablePlans),
	})
	if err != nil {
		return nil, fmt.Errorf("plans.scan: %w", err)
	}

	var items []PlanItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("plans.unmarshal: %w", err)
	}

	plans := make([]core.InsurancePlan, len(items))
	for i, item := range items {
		plans[i] = item.ToCore()
	}
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].RiskRange.Min < plans[j].RiskRange.Min
	})
	return plans, nil
}

// Upsert writes a catalog entry. Seeding only.
func (r *PlanRepo) Upsert(ctx context.Context, p core.InsurancePlan) error {
	item := planItemFromCore(p)
	if item.ID == "" {
		item.ID = ids.New()
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("plans.marshal: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(TablePlans),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("plans.putItem: %w", err)
	}
	return nil
}
