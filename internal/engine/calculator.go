package engine

import (
	"math"

	"github.com/lankatax/backend/internal/model"
	"github.com/lankatax/backend/internal/regime"
)

// MaxSolarRelief caps the deduction for solar panel installation per year.
const MaxSolarRelief = 600_000

// TaxOn walks the fiscal year's marginal brackets over taxableIncome and
// returns the tax due, rounded to the nearest rupee. A bracket's limit is an
// exclusive upper bound for its own rate: an amount sitting exactly on a
// limit is taxed entirely at the lower bracket's rate.
func TaxOn(tbl *regime.Table, taxableIncome float64, taxYear string) float64 {
	if taxableIncome <= 0 {
		return 0
	}
	var tax, lower float64
	for _, br := range tbl.RegimeFor(taxYear).Brackets {
		if br.UpperLimit == 0 || taxableIncome <= br.UpperLimit {
			tax += (taxableIncome - lower) * br.Rate
			break
		}
		tax += (br.UpperLimit - lower) * br.Rate
		lower = br.UpperLimit
	}
	return math.Round(tax)
}

// ComputeTax runs the full computation for one entity's snapshot and tax
// year. Every quantity is clamped non-negative; the function cannot fail.
func ComputeTax(tbl *regime.Table, snap *model.Snapshot, taxYear string, solarInvestment float64) model.TaxComputation {
	breakdown := AggregateIncome(tbl, snap, taxYear)
	reg := tbl.RegimeFor(taxYear)

	solarRelief := math.Min(math.Max(0, solarInvestment), MaxSolarRelief)
	taxableIncome := math.Max(0, breakdown.TotalIncome-reg.PersonalRelief-solarRelief)
	taxOnIncome := TaxOn(tbl, taxableIncome, taxYear)
	taxPayable := math.Max(0, taxOnIncome-breakdown.TotalAPIT-breakdown.TotalWHT)

	return model.TaxComputation{
		TaxYear:          taxYear,
		Breakdown:        breakdown,
		AssessableIncome: breakdown.TotalIncome,
		PersonalRelief:   reg.PersonalRelief,
		SolarRelief:      solarRelief,
		TaxableIncome:    taxableIncome,
		TaxOnIncome:      taxOnIncome,
		APITCredit:       breakdown.TotalAPIT,
		WHTCredit:        breakdown.TotalWHT,
		TaxPayable:       taxPayable,
	}
}
