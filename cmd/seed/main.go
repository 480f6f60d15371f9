package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"
	"github.com/joho/godotenv"

	"github.com/lankatax/backend/internal/model"
	"github.com/lankatax/backend/internal/service"
)

// Seeds a demo taxpayer into a running server and verifies the computed
// position. Run the server with USE_MEMORY_STORE=true first.
func main() {
	_ = godotenv.Load()

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8117"
	}
	taxYear := os.Getenv("TAX_YEAR")
	if taxYear == "" {
		taxYear = "2024"
	}

	log.Printf("seeding demo taxpayer via %s (tax year %s)", apiURL, taxYear)

	httpClient := &http.Client{Timeout: 30 * time.Second}
	ctx := context.Background()

	createEntity := service.NewProcedureClient[service.CreateEntityRequest, service.EntityResponse](httpClient, apiURL, "CreateEntity")
	entityRes, err := createEntity.CallUnary(ctx, connect.NewRequest(&service.CreateEntityRequest{
		Name: "Demo Taxpayer",
		TIN:  "104567890",
	}))
	if err != nil {
		log.Fatalf("create entity: %v", err)
	}
	ownerID := entityRes.Msg.Entity.ID
	log.Printf("created entity %s", ownerID)

	if err := seedIncomes(ctx, httpClient, apiURL, ownerID, taxYear); err != nil {
		log.Fatalf("seed incomes: %v", err)
	}
	if err := seedAssets(ctx, httpClient, apiURL, ownerID, taxYear); err != nil {
		log.Fatalf("seed assets: %v", err)
	}
	if err := seedLiability(ctx, httpClient, apiURL, ownerID, taxYear); err != nil {
		log.Fatalf("seed liability: %v", err)
	}

	computeTax := service.NewProcedureClient[service.ComputeTaxRequest, service.ComputeTaxResponse](httpClient, apiURL, "ComputeTax")
	calcRes, err := computeTax.CallUnary(ctx, connect.NewRequest(&service.ComputeTaxRequest{OwnerID: ownerID, TaxYear: taxYear}))
	if err != nil {
		log.Fatalf("compute tax: %v", err)
	}
	calc := calcRes.Msg.Computation
	log.Printf("assessable %.2f, taxable %.2f, payable %.2f", calc.AssessableIncome, calc.TaxableIncome, calc.TaxPayable)

	auditRisk := service.NewProcedureClient[service.GetAuditRiskRequest, service.GetAuditRiskResponse](httpClient, apiURL, "GetAuditRisk")
	riskRes, err := auditRisk.CallUnary(ctx, connect.NewRequest(&service.GetAuditRiskRequest{OwnerID: ownerID, TaxYear: taxYear}))
	if err != nil {
		log.Fatalf("audit risk: %v", err)
	}
	risk := riskRes.Msg.Risk
	log.Printf("risk score %.2f (%s), derived living expenses %.2f", risk.RiskScore, risk.Level, risk.DerivedLivingExpenses)

	log.Printf("done; OWNER_ID=%s", ownerID)
}

func seedIncomes(ctx context.Context, httpClient *http.Client, apiURL, ownerID, taxYear string) error {
	createIncome := service.NewProcedureClient[service.CreateIncomeRequest, service.IncomeResponse](httpClient, apiURL, "CreateIncome")

	incomes := []*model.Income{
		{
			OwnerID:           ownerID,
			Schedule:          model.ScheduleEmployment,
			TaxYear:           taxYear,
			Source:            "Ceylon Software (Pvt) Ltd",
			GrossRemuneration: 2_400_000,
			APITDeducted:      50_000,
		},
		{
			OwnerID:        ownerID,
			Schedule:       model.ScheduleInvestment,
			TaxYear:        taxYear,
			Source:         "Kandy house rent",
			InvestmentType: model.InvestmentRent,
			GrossAmount:    600_000,
		},
	}
	for _, income := range incomes {
		if _, err := createIncome.CallUnary(ctx, connect.NewRequest(&service.CreateIncomeRequest{Income: income})); err != nil {
			return err
		}
		log.Printf("created %s income from %s", income.Schedule, income.Source)
	}
	return nil
}

func seedAssets(ctx context.Context, httpClient *http.Client, apiURL, ownerID, taxYear string) error {
	createAsset := service.NewProcedureClient[service.CreateAssetRequest, service.AssetResponse](httpClient, apiURL, "CreateAsset")
	appendBalance := service.NewProcedureClient[service.AppendBalanceRequest, service.AssetResponse](httpClient, apiURL, "AppendBalance")

	assetRes, err := createAsset.CallUnary(ctx, connect.NewRequest(&service.CreateAssetRequest{Asset: &model.Asset{
		OwnerID:      ownerID,
		Category:     model.AssetFinancial,
		Description:  "NSB savings account",
		AcquiredDate: time.Date(2019, time.July, 1, 0, 0, 0, 0, time.UTC),
	}}))
	if err != nil {
		return err
	}
	log.Printf("created asset %s", assetRes.Msg.Asset.ID)

	_, err = appendBalance.CallUnary(ctx, connect.NewRequest(&service.AppendBalanceRequest{
		AssetID: assetRes.Msg.Asset.ID,
		Balance: model.Balance{
			TaxYear:        taxYear,
			OpeningBalance: 500_000,
			ClosingBalance: 650_000,
			InterestEarned: 45_000,
		},
	}))
	return err
}

func seedLiability(ctx context.Context, httpClient *http.Client, apiURL, ownerID, taxYear string) error {
	createLiability := service.NewProcedureClient[service.CreateLiabilityRequest, service.LiabilityResponse](httpClient, apiURL, "CreateLiability")
	appendPayment := service.NewProcedureClient[service.AppendLiabilityPaymentRequest, service.LiabilityResponse](httpClient, apiURL, "AppendLiabilityPayment")

	liabRes, err := createLiability.CallUnary(ctx, connect.NewRequest(&service.CreateLiabilityRequest{Liability: &model.Liability{
		OwnerID:        ownerID,
		Description:    "Housing loan",
		OriginalAmount: 3_000_000,
		CurrentBalance: 2_600_000,
		AcquiredDate:   time.Date(2021, time.May, 10, 0, 0, 0, 0, time.UTC),
	}}))
	if err != nil {
		return err
	}
	log.Printf("created liability %s", liabRes.Msg.Liability.ID)

	_, err = appendPayment.CallUnary(ctx, connect.NewRequest(&service.AppendLiabilityPaymentRequest{
		LiabilityID: liabRes.Msg.Liability.ID,
		Payment: model.LiabilityPayment{
			Date:          time.Date(2024, time.October, 5, 0, 0, 0, 0, time.UTC),
			PrincipalPaid: 180_000,
			InterestPaid:  60_000,
			TaxYear:       taxYear,
		},
	}))
	return err
}
