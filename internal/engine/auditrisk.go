package engine

import (
	"math"

	"github.com/lankatax/backend/internal/fiscal"
	"github.com/lankatax/backend/internal/model"
	"github.com/lankatax/backend/internal/regime"
	"github.com/lankatax/backend/internal/valuation"
)

// Risk classification thresholds in rupees.
const (
	riskWarningThreshold = 100_000
	riskDangerThreshold  = 500_000
)

// AssessRisk reconciles known outflows against known inflows for one tax
// year. Rather than asking the taxpayer for a living-expense estimate, the
// residual that balances the two sides is treated as implied personal
// spending; whatever outflow remains uncovered becomes the risk score.
func AssessRisk(tbl *regime.Table, snap *model.Snapshot, taxYear string) model.AuditRisk {
	risk := model.AuditRisk{TaxYear: taxYear}

	for _, a := range valuation.FilterInScope(snap.Assets, taxYear) {
		share := a.ShareFraction()

		// Cost of assets bought this year, unless the asset was sold again
		// inside the same window. A disposal in a later year leaves this
		// year's purchase cost standing.
		soldSameYear := a.Disposal != nil && a.Disposal.Date != nil && fiscal.InYear(*a.Disposal.Date, taxYear)
		if fiscal.InYear(a.AcquiredDate, taxYear) && !soldSameYear {
			risk.AssetGrowth += a.Cost * share
		}

		switch a.Category {
		case model.AssetFinancial:
			if bal := a.BalanceFor(taxYear); bal != nil {
				// The deposit/withdrawal is the balance delta net of the
				// interest the account earned by itself.
				delta := (bal.ClosingBalance - bal.OpeningBalance - bal.InterestEarned) * tbl.FXRate(a.Currency, taxYear)
				if delta > 0 {
					risk.BalanceIncreases += delta
				} else {
					risk.BalanceDecreases += -delta
				}
			}
		case model.AssetShares:
			if sb := a.StockBalanceFor(taxYear); sb != nil {
				if sb.CashTransfers > 0 {
					risk.StockCashDeposits += sb.CashTransfers
				} else {
					risk.StockCashWithdrawals += -sb.CashTransfers
				}
			}
		}

		if pe := a.PropertyExpenseFor(taxYear); pe != nil {
			risk.PropertyExpenses += pe.Amount
		}
	}

	// Disposals inside the window bring sale proceeds in; the in-scope
	// filter already dropped anything sold before the window.
	for _, a := range snap.Assets {
		if a.Disposal == nil || a.Disposal.Date == nil {
			continue
		}
		if fiscal.InYear(*a.Disposal.Date, taxYear) {
			risk.AssetSales += a.Disposal.SalePrice * a.ShareFraction()
		}
	}

	for _, l := range snap.Liabilities {
		if fiscal.InYear(l.AcquiredDate, taxYear) {
			risk.NewLoans += l.OriginalAmount
		}
		for _, p := range l.Payments {
			if p.TaxYear == taxYear {
				risk.LoanPayments += p.PrincipalPaid + p.InterestPaid
			}
		}
	}

	breakdown := AggregateIncome(tbl, snap, taxYear)
	risk.NetIncome = breakdown.TotalIncome - (breakdown.TotalAPIT + breakdown.TotalWHT)

	risk.ActualOutflows = risk.AssetGrowth + risk.BalanceIncreases + risk.PropertyExpenses +
		risk.LoanPayments + risk.StockCashDeposits
	risk.ActualInflows = risk.NetIncome + risk.NewLoans + risk.AssetSales +
		risk.BalanceDecreases + risk.StockCashWithdrawals

	risk.DerivedLivingExpenses = math.Max(0, risk.ActualInflows-risk.ActualOutflows)
	risk.RiskScore = (risk.ActualOutflows + risk.DerivedLivingExpenses) - risk.ActualInflows

	switch {
	case risk.RiskScore > riskDangerThreshold:
		risk.Level = model.RiskDanger
	case risk.RiskScore > riskWarningThreshold:
		risk.Level = model.RiskWarning
	default:
		risk.Level = model.RiskSafe
	}
	return risk
}

// ValidateSourceOfFunds is the soft completeness check: it reports whether
// declared inflows fully cover observed outflows and, if not, by how much
// they fall short. It never errors; an empty snapshot is simply valid.
func ValidateSourceOfFunds(tbl *regime.Table, snap *model.Snapshot, taxYear string) model.SourceOfFundsResult {
	risk := AssessRisk(tbl, snap, taxYear)
	return model.SourceOfFundsResult{
		TaxYear:           taxYear,
		Valid:             risk.RiskScore <= 0,
		UnexplainedAmount: risk.RiskScore,
	}
}
