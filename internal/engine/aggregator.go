// Package engine implements the tax computation and audit-risk derivation
// over an immutable record snapshot. Every function here is total: unknown
// years clamp, unknown categories fall back, and missing numbers are zero.
package engine

import (
	"github.com/lankatax/backend/internal/model"
	"github.com/lankatax/backend/internal/regime"
	"github.com/lankatax/backend/internal/valuation"
)

// rentReliefRate is the flat relief on rent income: only 75% of gross rent
// is assessable.
const rentReliefRate = 0.25

// AggregateIncome sums declared income for one tax year across all four
// schedules, merges in interest and dividends derived from asset balance
// histories, and accumulates the APIT/WHT credit pools. Manually entered
// investment income and balance-derived income are assumed to cover
// disjoint sources and are not deduplicated.
func AggregateIncome(tbl *regime.Table, snap *model.Snapshot, taxYear string) model.IncomeBreakdown {
	var b model.IncomeBreakdown

	for _, inc := range snap.Incomes {
		if inc.TaxYear != taxYear {
			continue
		}
		switch inc.Schedule {
		case model.ScheduleEmployment:
			b.EmploymentIncome += inc.GrossRemuneration + inc.NonCashBenefits - inc.ExemptIncome
			b.TotalAPIT += inc.APITDeducted
		case model.ScheduleBusiness:
			b.BusinessIncome += inc.NetProfit
		case model.ScheduleInvestment:
			amount := inc.GrossAmount
			if inc.InvestmentType == model.InvestmentRent {
				amount *= 1 - rentReliefRate
			}
			b.InvestmentIncome += amount
			b.TotalWHT += inc.WHTDeducted
		case model.ScheduleOther:
			b.OtherIncome += inc.GrossAmount - inc.ExemptAmount
			b.TotalWHT += inc.WHTDeducted
		}
	}

	// Interest and dividends recorded on asset histories count as investment
	// income even when no income record was entered for them.
	for _, a := range valuation.FilterInScope(snap.Assets, taxYear) {
		switch a.Category {
		case model.AssetFinancial:
			if bal := a.BalanceFor(taxYear); bal != nil && bal.InterestEarned != 0 {
				b.InvestmentIncome += bal.InterestEarned * tbl.FXRate(a.Currency, taxYear)
			}
		case model.AssetShares:
			if sb := a.StockBalanceFor(taxYear); sb != nil && sb.DividendIncome != 0 {
				b.InvestmentIncome += sb.DividendIncome
			}
		}
	}

	for _, c := range snap.Certificates {
		if c.TaxYear != taxYear {
			continue
		}
		if c.Type == model.CertificateTypeEmployment {
			b.TotalAPIT += c.TaxDeducted
		} else {
			b.TotalWHT += c.TaxDeducted
		}
	}

	b.TotalIncome = b.EmploymentIncome + b.BusinessIncome + b.InvestmentIncome + b.OtherIncome
	return b
}
