package engine

import (
	"testing"
	"time"

	"github.com/lankatax/backend/internal/model"
	"github.com/lankatax/backend/internal/regime"
)

func TestAggregateIncomeSchedules(t *testing.T) {
	tbl := regime.Default()
	snap := &model.Snapshot{
		Incomes: []*model.Income{
			{Schedule: model.ScheduleEmployment, TaxYear: "2024",
				GrossRemuneration: 1_000_000, NonCashBenefits: 120_000, ExemptIncome: 20_000, APITDeducted: 30_000},
			{Schedule: model.ScheduleBusiness, TaxYear: "2024", NetProfit: 800_000},
			{Schedule: model.ScheduleInvestment, TaxYear: "2024",
				InvestmentType: model.InvestmentInterest, GrossAmount: 200_000, WHTDeducted: 10_000},
			{Schedule: model.ScheduleOther, TaxYear: "2024", GrossAmount: 100_000, ExemptAmount: 40_000, WHTDeducted: 5_000},
			// A different year must not leak in.
			{Schedule: model.ScheduleBusiness, TaxYear: "2023", NetProfit: 9_999_999},
		},
	}
	b := AggregateIncome(tbl, snap, "2024")

	if b.EmploymentIncome != 1_100_000 {
		t.Errorf("employment = %v, want 1100000", b.EmploymentIncome)
	}
	if b.BusinessIncome != 800_000 {
		t.Errorf("business = %v, want 800000", b.BusinessIncome)
	}
	if b.InvestmentIncome != 200_000 {
		t.Errorf("investment = %v, want 200000", b.InvestmentIncome)
	}
	if b.OtherIncome != 60_000 {
		t.Errorf("other = %v, want 60000", b.OtherIncome)
	}
	if b.TotalIncome != 2_160_000 {
		t.Errorf("total = %v, want 2160000", b.TotalIncome)
	}
	if b.TotalAPIT != 30_000 || b.TotalWHT != 15_000 {
		t.Errorf("credits = APIT %v / WHT %v, want 30000 / 15000", b.TotalAPIT, b.TotalWHT)
	}
}

func TestAggregateIncomeRentRelief(t *testing.T) {
	tbl := regime.Default()
	snap := &model.Snapshot{
		Incomes: []*model.Income{{
			Schedule: model.ScheduleInvestment, TaxYear: "2024",
			InvestmentType: model.InvestmentRent, GrossAmount: 100_000,
		}},
	}
	b := AggregateIncome(tbl, snap, "2024")
	if b.InvestmentIncome != 75_000 {
		t.Errorf("rent income after relief = %v, want 75000", b.InvestmentIncome)
	}
}

func TestAggregateIncomeDerivedFromBalances(t *testing.T) {
	tbl := regime.Default()
	acquired := time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC)
	snap := &model.Snapshot{
		Assets: []*model.Asset{
			{
				Category: model.AssetFinancial, AcquiredDate: acquired,
				Balances: []model.Balance{{TaxYear: "2024", OpeningBalance: 1_000_000, ClosingBalance: 1_050_000, InterestEarned: 50_000}},
			},
			{
				// USD interest converts at the fiscal-year rate (300 in 2024).
				Category: model.AssetFinancial, AcquiredDate: acquired, Currency: "USD",
				Balances: []model.Balance{{TaxYear: "2024", InterestEarned: 100}},
			},
			{
				Category: model.AssetShares, AcquiredDate: acquired,
				StockBalances: []model.StockBalance{{TaxYear: "2024", DividendIncome: 40_000}},
			},
			{
				// Disposed before the window: its history is out of scope.
				Category: model.AssetFinancial, AcquiredDate: acquired,
				Disposal: &model.Disposal{Date: timePtr(time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC))},
				Balances: []model.Balance{{TaxYear: "2024", InterestEarned: 77_777}},
			},
		},
	}
	b := AggregateIncome(tbl, snap, "2024")
	want := 50_000 + 100*300 + 40_000.0
	if b.InvestmentIncome != want {
		t.Errorf("derived investment income = %v, want %v", b.InvestmentIncome, want)
	}
}

func TestAggregateIncomeCertificateCredits(t *testing.T) {
	tbl := regime.Default()
	snap := &model.Snapshot{
		Certificates: []*model.Certificate{
			{Type: model.CertificateTypeEmployment, TaxYear: "2024", TaxDeducted: 25_000},
			{Type: "interest", TaxYear: "2024", TaxDeducted: 8_000},
			{Type: "dividend", TaxYear: "2023", TaxDeducted: 99_999}, // wrong year
		},
	}
	b := AggregateIncome(tbl, snap, "2024")
	if b.TotalAPIT != 25_000 {
		t.Errorf("APIT from certificates = %v, want 25000", b.TotalAPIT)
	}
	if b.TotalWHT != 8_000 {
		t.Errorf("WHT from certificates = %v, want 8000", b.TotalWHT)
	}
}

func timePtr(t time.Time) *time.Time { return &t }
