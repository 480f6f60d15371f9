package model

// IncomeBreakdown is the per-schedule income aggregation for one tax year,
// including credits accumulated along the way.
type IncomeBreakdown struct {
	EmploymentIncome float64 `json:"employmentIncome"`
	BusinessIncome   float64 `json:"businessIncome"`
	InvestmentIncome float64 `json:"investmentIncome"`
	OtherIncome      float64 `json:"otherIncome"`
	TotalIncome      float64 `json:"totalIncome"`
	TotalAPIT        float64 `json:"totalApit"`
	TotalWHT         float64 `json:"totalWht"`
}

// TaxComputation is the result of a full tax run for one entity and tax
// year. It is recomputed on demand and never stored.
type TaxComputation struct {
	TaxYear          string          `json:"taxYear"`
	Breakdown        IncomeBreakdown `json:"breakdown"`
	AssessableIncome float64         `json:"assessableIncome"`
	PersonalRelief   float64         `json:"personalRelief"`
	SolarRelief      float64         `json:"solarRelief"`
	TaxableIncome    float64         `json:"taxableIncome"`
	TaxOnIncome      float64         `json:"taxOnIncome"`
	APITCredit       float64         `json:"apitCredit"`
	WHTCredit        float64         `json:"whtCredit"`
	TaxPayable       float64         `json:"taxPayable"`
}

// RiskLevel is the three-step audit-risk classification.
type RiskLevel string

const (
	RiskSafe    RiskLevel = "safe"
	RiskWarning RiskLevel = "warning"
	RiskDanger  RiskLevel = "danger"
)

// AuditRisk reconciles known cash flows for one tax year. The itemized
// components are kept so reports can show how the score was reached.
type AuditRisk struct {
	TaxYear string `json:"taxYear"`

	// Outflows.
	AssetGrowth       float64 `json:"assetGrowth"`
	BalanceIncreases  float64 `json:"balanceIncreases"`
	StockCashDeposits float64 `json:"stockCashDeposits"`
	PropertyExpenses  float64 `json:"propertyExpenses"`
	LoanPayments      float64 `json:"loanPayments"`

	// Inflows.
	NetIncome            float64 `json:"netIncome"`
	NewLoans             float64 `json:"newLoans"`
	AssetSales           float64 `json:"assetSales"`
	BalanceDecreases     float64 `json:"balanceDecreases"`
	StockCashWithdrawals float64 `json:"stockCashWithdrawals"`

	ActualOutflows        float64 `json:"actualOutflows"`
	ActualInflows         float64 `json:"actualInflows"`
	DerivedLivingExpenses float64 `json:"derivedLivingExpenses"`

	RiskScore float64   `json:"riskScore"`
	Level     RiskLevel `json:"level"`
}

// SourceOfFundsResult is the soft validation output: Valid reports whether
// declared inflows cover observed outflows, UnexplainedAmount is the gap.
type SourceOfFundsResult struct {
	TaxYear           string  `json:"taxYear"`
	Valid             bool    `json:"valid"`
	UnexplainedAmount float64 `json:"unexplainedAmount"`
}
