package service

import (
	"encoding/csv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lankatax/backend/internal/model"
)

// renderReportCSV writes the computation and risk breakdown as a two-column
// CSV. Amounts use grouped thousands, which is what the return preparers
// asked for when pasting into spreadsheets.
func renderReportCSV(calc model.TaxComputation, risk model.AuditRisk) []byte {
	p := message.NewPrinter(language.English)
	amount := func(v float64) string {
		return p.Sprintf("%.2f", v)
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Field", "Amount (LKR)"})
	_ = w.Write([]string{"Tax Year", calc.TaxYear})
	_ = w.Write([]string{"Employment Income", amount(calc.Breakdown.EmploymentIncome)})
	_ = w.Write([]string{"Business Income", amount(calc.Breakdown.BusinessIncome)})
	_ = w.Write([]string{"Investment Income", amount(calc.Breakdown.InvestmentIncome)})
	_ = w.Write([]string{"Other Income", amount(calc.Breakdown.OtherIncome)})
	_ = w.Write([]string{"Assessable Income", amount(calc.AssessableIncome)})
	_ = w.Write([]string{"Personal Relief", amount(calc.PersonalRelief)})
	_ = w.Write([]string{"Solar Relief", amount(calc.SolarRelief)})
	_ = w.Write([]string{"Taxable Income", amount(calc.TaxableIncome)})
	_ = w.Write([]string{"Tax on Income", amount(calc.TaxOnIncome)})
	_ = w.Write([]string{"APIT Credit", amount(calc.APITCredit)})
	_ = w.Write([]string{"WHT Credit", amount(calc.WHTCredit)})
	_ = w.Write([]string{"Tax Payable", amount(calc.TaxPayable)})
	_ = w.Write([]string{})
	_ = w.Write([]string{"Asset Growth", amount(risk.AssetGrowth)})
	_ = w.Write([]string{"Balance Increases", amount(risk.BalanceIncreases)})
	_ = w.Write([]string{"Broker Cash Deposits", amount(risk.StockCashDeposits)})
	_ = w.Write([]string{"Property Expenses", amount(risk.PropertyExpenses)})
	_ = w.Write([]string{"Loan Payments", amount(risk.LoanPayments)})
	_ = w.Write([]string{"Net Income", amount(risk.NetIncome)})
	_ = w.Write([]string{"New Loans", amount(risk.NewLoans)})
	_ = w.Write([]string{"Asset Sales", amount(risk.AssetSales)})
	_ = w.Write([]string{"Balance Decreases", amount(risk.BalanceDecreases)})
	_ = w.Write([]string{"Broker Cash Withdrawals", amount(risk.StockCashWithdrawals)})
	_ = w.Write([]string{"Derived Living Expenses", amount(risk.DerivedLivingExpenses)})
	_ = w.Write([]string{"Risk Score", amount(risk.RiskScore)})
	_ = w.Write([]string{"Risk Level", string(risk.Level)})
	w.Flush()
	return []byte(buf.String())
}
