// Package catalog provides a file-backed plan catalog for deployments that
// manage plans in version control rather than in the store.
package catalog

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/veridianhealth/riskengine/internal/core"
	"github.com/veridianhealth/riskengine/internal/platform/ids"
)

// Static is an immutable in-memory core.PlanRepo.
type Static struct {
	plans []core.InsurancePlan
}

// NewStatic wraps a fixed plan list, ordered by ascending risk-range floor so
// that catalog selection scans lowest tier first.
func NewStatic(plans []core.InsurancePlan) *Static {
	sorted := make([]core.InsurancePlan, len(plans))
	copy(sorted, plans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RiskRange.Min < sorted[j].RiskRange.Min
	})
	return &Static{plans: sorted}
}

func (s *Static) List(_ context.Context) ([]core.InsurancePlan, error) {
	out := make([]core.InsurancePlan, len(s.plans))
	copy(out, s.plans)
	return out, nil
}

type planFile struct {
	Plans []planEntry `yaml:"plans"`
}

type planEntry struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	BasePremium float64 `yaml:"basePremium"`
	Coverage    struct {
		Medical      int `yaml:"medical"`
		Hospital     int `yaml:"hospital"`
		Prescription int `yaml:"prescription"`
		Preventive   int `yaml:"preventive"`
		MentalHealth int `yaml:"mentalHealth"`
		Dental       int `yaml:"dental"`
		Vision       int `yaml:"vision"`
	} `yaml:"coverage"`
	MaxCoverage int64 `yaml:"maxCoverage"`
	Deductible  int   `yaml:"deductible"`
	RiskRange   struct {
		Min int `yaml:"min"`
		Max int `yaml:"max"`
	} `yaml:"riskRange"`
}

// LoadFile reads and validates a YAML plan catalog.
func LoadFile(path string) (*Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var file planFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	if len(file.Plans) == 0 {
		return nil, fmt.Errorf("catalog: %s: %w", path, core.ErrCatalogEmpty)
	}

	plans := make([]core.InsurancePlan, 0, len(file.Plans))
	for i, entry := range file.Plans {
		plan := core.InsurancePlan{
			ID:          entry.ID,
			Name:        entry.Name,
			Type:        core.PlanTier(entry.Type),
			BasePremium: entry.BasePremium,
			Coverage: core.Coverage{
				Medical:      entry.Coverage.Medical,
				Hospital:     entry.Coverage.Hospital,
				Prescription: entry.Coverage.Prescription,
				Preventive:   entry.Coverage.Preventive,
				MentalHealth: entry.Coverage.MentalHealth,
				Dental:       entry.Coverage.Dental,
				Vision:       entry.Coverage.Vision,
			},
			MaxCoverage: entry.MaxCoverage,
			Deductible:  entry.Deductible,
			RiskRange:   core.RiskRange{Min: entry.RiskRange.Min, Max: entry.RiskRange.Max},
		}
		if plan.ID == "" {
			plan.ID = ids.New()
		}
		if err := plan.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: plan %d (%s): %w", i, entry.Name, err)
		}
		plans = append(plans, plan)
	}

	return NewStatic(plans), nil
}
