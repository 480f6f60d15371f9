package engine

import (
	"testing"

	"github.com/lankatax/backend/internal/model"
	"github.com/lankatax/backend/internal/regime"
)

func TestTaxOnBracketMath(t *testing.T) {
	tbl := regime.Default()
	tests := []struct {
		name    string
		taxable float64
		want    float64
	}{
		{"zero", 0, 0},
		{"negative clamps", -100, 0},
		{"inside first slab", 400_000, 24_000},
		{"exactly on first limit", 500_000, 30_000}, // boundary belongs to the lower slab
		{"just over first limit", 500_001, 30_000},  // 30,000.12 rounds down
		{"two slabs", 1_000_000, 90_000},
		{"three million", 3_000_000, 630_000},
		{"deep into top slab", 10_000_000, 3_150_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TaxOn(tbl, tt.taxable, "2024"); got != tt.want {
				t.Errorf("TaxOn(%v) = %v, want %v", tt.taxable, got, tt.want)
			}
		})
	}
}

func TestTaxOnMonotonic(t *testing.T) {
	tbl := regime.Default()
	prev := -1.0
	for x := 0.0; x <= 5_000_000; x += 50_000 {
		tax := TaxOn(tbl, x, "2024")
		if tax < prev {
			t.Fatalf("TaxOn not monotonic: TaxOn(%v) = %v < %v", x, tax, prev)
		}
		prev = tax
	}
}

func TestTaxOnUsesClampedRegime(t *testing.T) {
	tbl := regime.Default()
	// Out-of-range years resolve to boundary regimes instead of failing.
	if got, want := TaxOn(tbl, 1_000_000, "1900"), TaxOn(tbl, 1_000_000, "2015"); got != want {
		t.Errorf("1900 tax = %v, want clamp to 2015 value %v", got, want)
	}
	if got, want := TaxOn(tbl, 1_000_000, "2099"), TaxOn(tbl, 1_000_000, "2025"); got != want {
		t.Errorf("2099 tax = %v, want clamp to 2025 value %v", got, want)
	}
}

func TestComputeTaxEmploymentScenario(t *testing.T) {
	tbl := regime.Default()
	snap := &model.Snapshot{
		Incomes: []*model.Income{{
			OwnerID:           "e1",
			Schedule:          model.ScheduleEmployment,
			TaxYear:           "2024",
			GrossRemuneration: 2_400_000,
			APITDeducted:      50_000,
		}},
	}
	calc := ComputeTax(tbl, snap, "2024", 0)

	if calc.AssessableIncome != 2_400_000 {
		t.Errorf("assessable income = %v, want 2400000", calc.AssessableIncome)
	}
	if calc.PersonalRelief != 1_200_000 {
		t.Errorf("personal relief = %v, want 1200000", calc.PersonalRelief)
	}
	if calc.TaxableIncome != 1_200_000 {
		t.Errorf("taxable income = %v, want 1200000", calc.TaxableIncome)
	}
	if calc.TaxOnIncome != 126_000 {
		t.Errorf("tax on income = %v, want 126000", calc.TaxOnIncome)
	}
	if calc.TaxPayable != 76_000 {
		t.Errorf("tax payable = %v, want 76000", calc.TaxPayable)
	}
}

func TestComputeTaxSolarReliefCap(t *testing.T) {
	tbl := regime.Default()
	snap := &model.Snapshot{
		Incomes: []*model.Income{{
			Schedule: model.ScheduleBusiness, TaxYear: "2024", NetProfit: 5_000_000,
		}},
	}
	capped := ComputeTax(tbl, snap, "2024", 2_000_000)
	if capped.SolarRelief != MaxSolarRelief {
		t.Errorf("solar relief = %v, want capped at %v", capped.SolarRelief, float64(MaxSolarRelief))
	}
	if want := 5_000_000 - 1_200_000 - float64(MaxSolarRelief); capped.TaxableIncome != want {
		t.Errorf("taxable income = %v, want %v", capped.TaxableIncome, want)
	}
}

func TestComputeTaxClampsNonNegative(t *testing.T) {
	tbl := regime.Default()
	snap := &model.Snapshot{
		Incomes: []*model.Income{{
			Schedule: model.ScheduleEmployment, TaxYear: "2024",
			GrossRemuneration: 300_000, APITDeducted: 90_000,
		}},
	}
	calc := ComputeTax(tbl, snap, "2024", 0)
	if calc.TaxableIncome != 0 {
		t.Errorf("taxable income = %v, want 0 (income below relief)", calc.TaxableIncome)
	}
	if calc.TaxPayable != 0 {
		t.Errorf("tax payable = %v, want 0 (credits exceed tax)", calc.TaxPayable)
	}
}

func TestComputeTaxIdempotent(t *testing.T) {
	tbl := regime.Default()
	snap := &model.Snapshot{
		Incomes: []*model.Income{{
			Schedule: model.ScheduleEmployment, TaxYear: "2024",
			GrossRemuneration: 3_333_333, APITDeducted: 12_345,
		}},
	}
	first := ComputeTax(tbl, snap, "2024", 150_000)
	second := ComputeTax(tbl, snap, "2024", 150_000)
	if first != second {
		t.Errorf("ComputeTax is not idempotent: %+v vs %+v", first, second)
	}
}
