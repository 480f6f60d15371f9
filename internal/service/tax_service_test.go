package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lankatax/backend/internal/model"
	"github.com/lankatax/backend/internal/regime"
	"github.com/lankatax/backend/internal/store"
)

func newTestService(t *testing.T) (*TaxService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return NewTaxService(st, regime.Default()), st
}

func seedEntity(t *testing.T, s *TaxService) string {
	t.Helper()
	res, err := s.CreateEntity(context.Background(), connect.NewRequest(&CreateEntityRequest{Name: "N. Jayawardena", TIN: "200145678"}))
	require.NoError(t, err)
	return res.Msg.Entity.ID
}

func TestComputeTaxEndToEnd(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	ownerID := seedEntity(t, svc)

	_, err := svc.CreateIncome(ctx, connect.NewRequest(&CreateIncomeRequest{Income: &model.Income{
		OwnerID:           ownerID,
		Schedule:          model.ScheduleEmployment,
		TaxYear:           "2024",
		GrossRemuneration: 2_400_000,
		APITDeducted:      50_000,
	}}))
	require.NoError(t, err)

	res, err := svc.ComputeTax(ctx, connect.NewRequest(&ComputeTaxRequest{OwnerID: ownerID, TaxYear: "2024"}))
	require.NoError(t, err)

	calc := res.Msg.Computation
	assert.Equal(t, 1_200_000.0, calc.TaxableIncome)
	assert.Equal(t, 126_000.0, calc.TaxOnIncome)
	assert.Equal(t, 76_000.0, calc.TaxPayable)
}

func TestComputeTaxRequiresOwner(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.ComputeTax(context.Background(), connect.NewRequest(&ComputeTaxRequest{TaxYear: "2024"}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestGetAuditRiskEndToEnd(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	ownerID := seedEntity(t, svc)

	_, err := svc.CreateAsset(ctx, connect.NewRequest(&CreateAssetRequest{Asset: &model.Asset{
		OwnerID:      ownerID,
		Category:     model.AssetProperty,
		AcquiredDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Cost:         10_000_000,
	}}))
	require.NoError(t, err)

	res, err := svc.GetAuditRisk(ctx, connect.NewRequest(&GetAuditRiskRequest{OwnerID: ownerID, TaxYear: "2024"}))
	require.NoError(t, err)

	risk := res.Msg.Risk
	assert.Equal(t, 10_000_000.0, risk.RiskScore)
	assert.Equal(t, model.RiskDanger, risk.Level)
}

func TestValidateSourceOfFundsHandler(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	ownerID := seedEntity(t, svc)

	res, err := svc.ValidateSourceOfFunds(ctx, connect.NewRequest(&ValidateSourceOfFundsRequest{OwnerID: ownerID, TaxYear: "2024"}))
	require.NoError(t, err)
	assert.True(t, res.Msg.Result.Valid)
	assert.Zero(t, res.Msg.Result.UnexplainedAmount)
}

func TestListAssetsYearScopedValues(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	ownerID := seedEntity(t, svc)

	inRes, err := svc.CreateAsset(ctx, connect.NewRequest(&CreateAssetRequest{Asset: &model.Asset{
		OwnerID:      ownerID,
		Category:     model.AssetFinancial,
		Currency:     "USD",
		MarketValue:  10_000,
		AcquiredDate: time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC),
	}}))
	require.NoError(t, err)

	_, err = svc.CreateAsset(ctx, connect.NewRequest(&CreateAssetRequest{Asset: &model.Asset{
		OwnerID:      ownerID,
		Category:     model.AssetVehicle,
		AcquiredDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}}))
	require.NoError(t, err)

	res, err := svc.ListAssets(ctx, connect.NewRequest(&ListAssetsRequest{OwnerID: ownerID, TaxYear: "2024"}))
	require.NoError(t, err)

	require.Len(t, res.Msg.Assets, 1)
	assert.Equal(t, 10_000*300.0, res.Msg.Values[inRes.Msg.Asset.ID])

	// Without a tax year the listing is unscoped and carries no values.
	all, err := svc.ListAssets(ctx, connect.NewRequest(&ListAssetsRequest{OwnerID: ownerID}))
	require.NoError(t, err)
	assert.Len(t, all.Msg.Assets, 2)
	assert.Nil(t, all.Msg.Values)
}

func TestGetTaxSummaryRange(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	ownerID := seedEntity(t, svc)

	for _, year := range []string{"2022", "2023", "2024"} {
		_, err := svc.CreateIncome(ctx, connect.NewRequest(&CreateIncomeRequest{Income: &model.Income{
			OwnerID: ownerID, Schedule: model.ScheduleBusiness, TaxYear: year, NetProfit: 2_000_000,
		}}))
		require.NoError(t, err)
	}

	res, err := svc.GetTaxSummaryRange(ctx, connect.NewRequest(&GetTaxSummaryRangeRequest{
		OwnerID: ownerID, FromYear: "2022", ToYear: "2024",
	}))
	require.NoError(t, err)
	require.Len(t, res.Msg.Computations, 3)
	for _, calc := range res.Msg.Computations {
		assert.Equal(t, 2_000_000.0, calc.AssessableIncome)
	}

	_, err = svc.GetTaxSummaryRange(ctx, connect.NewRequest(&GetTaxSummaryRangeRequest{
		OwnerID: ownerID, FromYear: "2024", ToYear: "2020",
	}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestExportTaxReportCSV(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	ownerID := seedEntity(t, svc)

	_, err := svc.CreateIncome(ctx, connect.NewRequest(&CreateIncomeRequest{Income: &model.Income{
		OwnerID: ownerID, Schedule: model.ScheduleEmployment, TaxYear: "2024", GrossRemuneration: 2_400_000,
	}}))
	require.NoError(t, err)

	res, err := svc.ExportTaxReport(ctx, connect.NewRequest(&ExportTaxReportRequest{OwnerID: ownerID, TaxYear: "2024"}))
	require.NoError(t, err)

	assert.Equal(t, "text/csv", res.Msg.ContentType)
	assert.Equal(t, "tax-report-2024.csv", res.Msg.Filename)

	body := string(res.Msg.Data)
	assert.Contains(t, body, "Taxable Income,\"1,200,000.00\"")
	assert.Contains(t, body, "Risk Level,safe")
}

func TestExportTaxReportJSON(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	ownerID := seedEntity(t, svc)

	res, err := svc.ExportTaxReport(ctx, connect.NewRequest(&ExportTaxReportRequest{OwnerID: ownerID, TaxYear: "2024", Format: "json"}))
	require.NoError(t, err)
	assert.Equal(t, "application/json", res.Msg.ContentType)
	assert.True(t, strings.Contains(string(res.Msg.Data), `"taxYear": "2024"`))

	_, err = svc.ExportTaxReport(ctx, connect.NewRequest(&ExportTaxReportRequest{OwnerID: ownerID, Format: "xml"}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}
