package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/veridianhealth/riskengine/internal/core"
	"github.com/veridianhealth/riskengine/internal/platform/ids"
)

type PatientItem struct {
	ID                     string        `dynamodbav:"id"`
	Name                   string        `dynamodbav:"name"`
	Age                    int           `dynamodbav:"age"`
	Gender                 string        `dynamodbav:"gender,omitempty"`
	ChronicConditions      []string      `dynamodbav:"chronic_conditions,omitempty"`
	Allergies              []string      `dynamodbav:"allergies,omitempty"`
	FamilyHistory          []string      `dynamodbav:"family_history,omitempty"`
	Lifestyle              LifestyleItem `dynamodbav:"lifestyle"`
	Claims                 ClaimsItem    `dynamodbav:"claims_history"`
	RiskScore              *int          `dynamodbav:"risk_score,omitempty"`
	RiskLevel              string        `dynamodbav:"risk_level,omitempty"`
	RecentHospitalizations int           `dynamodbav:"recent_hospitalizations,omitempty"`
	MedicationCompliance   int           `dynamodbav:"medication_compliance,omitempty"`
}

type LifestyleItem struct {
	Smoking  bool   `dynamodbav:"smoking"`
	Alcohol  bool   `dynamodbav:"alcohol"`
	Exercise string `dynamodbav:"exercise,omitempty"`
	Diet     string `dynamodbav:"diet,omitempty"`
}

type ClaimsItem struct {
	TotalClaims        int      `dynamodbav:"total_claims"`
	TotalAmount        float64  `dynamodbav:"total_amount"`
	FrequentConditions []string `dynamodbav:"frequent_conditions,omitempty"`
}

func (i PatientItem) ToCore() core.PatientProfile {
	return core.PatientProfile{
		PatientID:         i.ID,
		Name:              i.Name,
		Age:               i.Age,
		Gender:            i.Gender,
		ChronicConditions: i.ChronicConditions,
		Allergies:         i.Allergies,
		FamilyHistory:     i.FamilyHistory,
		Lifestyle: core.Lifestyle{
			Smoking:  i.Lifestyle.Smoking,
			Alcohol:  i.Lifestyle.Alcohol,
			Exercise: core.ExerciseLevel(i.Lifestyle.Exercise),
			Diet:     core.DietQuality(i.Lifestyle.Diet),
		},
		Claims: core.ClaimsHistory{
			TotalClaims:        i.Claims.TotalClaims,
			TotalAmount:        i.Claims.TotalAmount,
			FrequentConditions: i.Claims.FrequentConditions,
		},
		RiskScore:              i.RiskScore,
		RiskLevel:              core.RiskLevel(i.RiskLevel),
		RecentHospitalizations: i.RecentHospitalizations,
		MedicationCompliance:   i.MedicationCompliance,
	}
}

func patientItemFromCore(p core.PatientProfile) PatientItem {
	return PatientItem{
		ID:                p.PatientID,
		Name:              p.Name,
		Age:               p.Age,
		Gender:            p.Gender,
		ChronicConditions: p.ChronicConditions,
		Allergies:         p.Allergies,
		FamilyHistory:     p.FamilyHistory,
		Lifestyle: LifestyleItem{
			Smoking:  p.Lifestyle.Smoking,
			Alcohol:  p.Lifestyle.Alcohol,
			Exercise: string(p.Lifestyle.Exercise),
			Diet:     string(p.Lifestyle.Diet),
		},
		Claims: ClaimsItem{
			TotalClaims:        p.Claims.TotalClaims,
			TotalAmount:        p.Claims.TotalAmount,
			FrequentConditions: p.Claims.FrequentConditions,
		},
		RiskScore:              p.RiskScore,
		RiskLevel:              string(p.RiskLevel),
		RecentHospitalizations: p.RecentHospitalizations,
		MedicationCompliance:   p.MedicationCompliance,
	}
}

type PatientRepo struct {
	client *dynamodb.Client
}

func NewPatientRepo(client *dynamodb.Client) *PatientRepo {
	return &PatientRepo{client: client}
}

func (r *PatientRepo) Get(ctx context.Context, id string) (core.PatientProfile, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(TablePatients),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return core.PatientProfile{}, fmt.Errorf("patients.getItem: %w", err)
	}
	if out.Item == nil {
		return core.PatientProfile{}, core.ErrPatientNotFound
	}

	var item PatientItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return core.PatientProfile{}, fmt.Errorf("patients.unmarshal: %w", err)
	}
	return item.ToCore(), nil
}

func (r *PatientRepo) List(ctx context.Context) ([]core.PatientProfile, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(TablePatients),
	})
}

func (r *PatientRepo) ListByRiskLevel(ctx context.Context, level core.RiskLevel) ([]core.PatientProfile, error) {
	expr, err := expression.NewBuilder().
		WithFilter(expression.Name("risk_level").Equal(expression.Value(string(level)))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("patients.buildFilter: %w", err)
	}

	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(TablePatients),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
}

func (r *PatientRepo) scan(ctx context.Context, input *dynamodb.ScanInput) ([]core.PatientProfile, error) {
	var patients []core.PatientProfile

	paginator := dynamodb.NewScanPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("patients.scan: %w", err)
		}

		var items []PatientItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("patients.unmarshal: %w", err)
		}
		for _, item := range items {
			patients = append(patients, item.ToCore())
		}
	}
	return patients, nil
}

// Upsert writes a patient record. Seeding and ingestion only.
func (r *PatientRepo) Upsert(ctx context.Context, p core.PatientProfile) error {
	item := patientItemFromCore(p)
	if item.ID == "" {
		item.ID = ids.New()
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("patients.marshal: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(TablePatients),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("patients.putItem: %w", err)
	}
	return nil
}
