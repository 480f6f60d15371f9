package model

import "time"

// Schedule identifies which part of the return an income entry belongs to.
type Schedule string

const (
	ScheduleEmployment Schedule = "employment"
	ScheduleBusiness   Schedule = "business"
	ScheduleInvestment Schedule = "investment"
	ScheduleOther      Schedule = "other"
)

// InvestmentType refines investment-schedule income. Rent gets a flat 25%
// relief; the rest are taxed on the gross amount.
type InvestmentType string

const (
	InvestmentInterest InvestmentType = "interest"
	InvestmentDividend InvestmentType = "dividend"
	InvestmentRent     InvestmentType = "rent"
	InvestmentOther    InvestmentType = "other"
)

// AssetCategory tags an asset record. Financial covers bank accounts, cash
// in hand and loans given out; those carry per-year balance histories.
type AssetCategory string

const (
	AssetProperty  AssetCategory = "property"
	AssetVehicle   AssetCategory = "vehicle"
	AssetFinancial AssetCategory = "financial"
	AssetShares    AssetCategory = "shares"
	AssetJewellery AssetCategory = "jewellery"
	AssetBusiness  AssetCategory = "business"
)

// CertificateTypeEmployment marks an APIT (employment withholding)
// certificate; any other certificate type feeds the WHT credit pool.
const CertificateTypeEmployment = "employment"

// Entity is the taxpayer all other records hang off via OwnerID.
type Entity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TIN       string    `json:"tin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Income is a tagged variant over Schedule. Only the fields for the tagged
// schedule are meaningful; the rest stay zero. Missing numeric fields are
// zero by convention, never an error.
type Income struct {
	ID       string   `json:"id"`
	OwnerID  string   `json:"ownerId"`
	Schedule Schedule `json:"schedule"`
	TaxYear  string   `json:"taxYear"`
	Source   string   `json:"source,omitempty"`

	// Employment schedule.
	GrossRemuneration float64 `json:"grossRemuneration,omitempty"`
	NonCashBenefits   float64 `json:"nonCashBenefits,omitempty"`
	ExemptIncome      float64 `json:"exemptIncome,omitempty"`
	APITDeducted      float64 `json:"apitDeducted,omitempty"`

	// Business schedule: the declared net-profit cage, passed through as-is.
	NetProfit float64 `json:"netProfit,omitempty"`

	// Investment and other schedules.
	InvestmentType InvestmentType `json:"investmentType,omitempty"`
	GrossAmount    float64        `json:"grossAmount,omitempty"`
	ExemptAmount   float64        `json:"exemptAmount,omitempty"`
	WHTDeducted    float64        `json:"whtDeducted,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Balance is one fiscal year of a financial asset's history. At most one
// balance exists per asset per tax year.
type Balance struct {
	TaxYear        string  `json:"taxYear"`
	OpeningBalance float64 `json:"openingBalance"`
	ClosingBalance float64 `json:"closingBalance"`
	InterestEarned float64 `json:"interestEarned"`
}

// StockBalance is one fiscal year of a share-account history. CashTransfers
// is signed: positive means money moved into the broker account.
type StockBalance struct {
	TaxYear        string  `json:"taxYear"`
	MarketValue    float64 `json:"marketValue"`
	CashTransfers  float64 `json:"cashTransfers"`
	DividendIncome float64 `json:"dividendIncome"`
}

// PropertyExpense is a logged improvement/maintenance spend on an immovable
// property for one fiscal year.
type PropertyExpense struct {
	TaxYear     string  `json:"taxYear"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// JewelleryTransaction records purchases and sales of precious items within
// one fiscal year.
type JewelleryTransaction struct {
	TaxYear string  `json:"taxYear"`
	Bought  float64 `json:"bought"`
	Sold    float64 `json:"sold"`
}

// Disposal marks an asset as sold. A nil Date with a non-nil Disposal is an
// invalid state; the asset drops out of every fiscal-year view.
type Disposal struct {
	Date      *time.Time `json:"date,omitempty"`
	SalePrice float64    `json:"salePrice"`
}

// Closure marks a financial asset (account) as closed. Same invalid-state
// rule as Disposal.
type Closure struct {
	Date         *time.Time `json:"date,omitempty"`
	FinalBalance float64    `json:"finalBalance"`
}

// Asset is a single declared asset with its full multi-year history.
// Fiscal-year scoping happens at read time; the record itself keeps
// everything.
type Asset struct {
	ID          string        `json:"id"`
	OwnerID     string        `json:"ownerId"`
	Category    AssetCategory `json:"category"`
	Description string        `json:"description,omitempty"`

	AcquiredDate time.Time `json:"acquiredDate"`
	Cost         float64   `json:"cost"`
	MarketValue  float64   `json:"marketValue"`

	// OwnershipPercent is the taxpayer's share; zero means sole ownership.
	OwnershipPercent float64 `json:"ownershipPercent,omitempty"`

	// Currency applies to financial assets; empty or "LKR" means rupees.
	Currency string `json:"currency,omitempty"`

	// ItemType applies to jewellery assets (gold, silver, gems, ...).
	ItemType string `json:"itemType,omitempty"`

	Balances              []Balance              `json:"balances,omitempty"`
	StockBalances         []StockBalance         `json:"stockBalances,omitempty"`
	PropertyExpenses      []PropertyExpense      `json:"propertyExpenses,omitempty"`
	JewelleryTransactions []JewelleryTransaction `json:"jewelleryTransactions,omitempty"`

	Disposal *Disposal `json:"disposal,omitempty"`
	Closure  *Closure  `json:"closure,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShareFraction converts OwnershipPercent into a multiplier, treating an
// unset share as sole ownership.
func (a *Asset) ShareFraction() float64 {
	if a.OwnershipPercent <= 0 || a.OwnershipPercent >= 100 {
		return 1
	}
	return a.OwnershipPercent / 100
}

// BalanceFor returns the balance sub-record for a tax year, or nil.
func (a *Asset) BalanceFor(taxYear string) *Balance {
	for i := range a.Balances {
		if a.Balances[i].TaxYear == taxYear {
			return &a.Balances[i]
		}
	}
	return nil
}

// StockBalanceFor returns the share-account sub-record for a tax year, or nil.
func (a *Asset) StockBalanceFor(taxYear string) *StockBalance {
	for i := range a.StockBalances {
		if a.StockBalances[i].TaxYear == taxYear {
			return &a.StockBalances[i]
		}
	}
	return nil
}

// PropertyExpenseFor returns the property-expense sub-record for a tax year,
// or nil.
func (a *Asset) PropertyExpenseFor(taxYear string) *PropertyExpense {
	for i := range a.PropertyExpenses {
		if a.PropertyExpenses[i].TaxYear == taxYear {
			return &a.PropertyExpenses[i]
		}
	}
	return nil
}

// LiabilityPayment is one repayment against a liability.
type LiabilityPayment struct {
	Date          time.Time `json:"date"`
	PrincipalPaid float64   `json:"principalPaid"`
	InterestPaid  float64   `json:"interestPaid"`
	TaxYear       string    `json:"taxYear"`
}

// Liability is a loan or other obligation with its repayment history.
type Liability struct {
	ID             string             `json:"id"`
	OwnerID        string             `json:"ownerId"`
	Description    string             `json:"description,omitempty"`
	OriginalAmount float64            `json:"originalAmount"`
	CurrentBalance float64            `json:"currentBalance"`
	AcquiredDate   time.Time          `json:"acquiredDate"`
	Payments       []LiabilityPayment `json:"payments,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// Certificate is a withholding/advance-tax credit voucher (T-10, AIT
// statement, etc.) for one tax year.
type Certificate struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Type        string    `json:"type"`
	TaxYear     string    `json:"taxYear"`
	GrossAmount float64   `json:"grossAmount"`
	TaxDeducted float64   `json:"taxDeducted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Snapshot is the immutable record set a computation runs over. The engine
// never mutates it.
type Snapshot struct {
	Incomes      []*Income
	Assets       []*Asset
	Liabilities  []*Liability
	Certificates []*Certificate
}
