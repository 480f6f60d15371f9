package service

import "github.com/lankatax/backend/internal/model"

// Request/response types for the TaxService procedures. These are the wire
// shapes the frontend posts as connect unary JSON.

// Entity

type CreateEntityRequest struct {
	Name string `json:"name"`
	TIN  string `json:"tin,omitempty"`
}

type EntityResponse struct {
	Entity *model.Entity `json:"entity"`
}

type GetEntityRequest struct {
	EntityID string `json:"entityId"`
}

type UpdateEntityRequest struct {
	Entity *model.Entity `json:"entity"`
}

type DeleteEntityRequest struct {
	EntityID string `json:"entityId"`
}

type DeleteResponse struct{}

type ListEntitiesRequest struct {
	PageSize  int32  `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

type ListEntitiesResponse struct {
	Entities      []*model.Entity `json:"entities"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
}

// Income

type CreateIncomeRequest struct {
	Income *model.Income `json:"income"`
}

type IncomeResponse struct {
	Income *model.Income `json:"income"`
}

type GetIncomeRequest struct {
	IncomeID string `json:"incomeId"`
}

type UpdateIncomeRequest struct {
	Income *model.Income `json:"income"`
}

type DeleteIncomeRequest struct {
	IncomeID string `json:"incomeId"`
}

type ListIncomesRequest struct {
	OwnerID   string `json:"ownerId"`
	TaxYear   string `json:"taxYear,omitempty"`
	PageSize  int32  `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

type ListIncomesResponse struct {
	Incomes       []*model.Income `json:"incomes"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
}

// Asset

type CreateAssetRequest struct {
	Asset *model.Asset `json:"asset"`
}

type AssetResponse struct {
	Asset *model.Asset `json:"asset"`
}

type GetAssetRequest struct {
	AssetID string `json:"assetId"`
}

type UpdateAssetRequest struct {
	Asset *model.Asset `json:"asset"`
}

type DeleteAssetRequest struct {
	AssetID string `json:"assetId"`
}

type ListAssetsRequest struct {
	OwnerID   string `json:"ownerId"`
	TaxYear   string `json:"taxYear,omitempty"` // scope listing to one fiscal-year window
	PageSize  int32  `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

type ListAssetsResponse struct {
	Assets []*model.Asset `json:"assets"`
	// Values holds each asset's fiscal-year value keyed by asset ID, only
	// when the request scoped the listing to a tax year.
	Values        map[string]float64 `json:"values,omitempty"`
	NextPageToken string             `json:"nextPageToken,omitempty"`
}

type AppendBalanceRequest struct {
	AssetID string        `json:"assetId"`
	Balance model.Balance `json:"balance"`
}

type AppendStockBalanceRequest struct {
	AssetID string             `json:"assetId"`
	Balance model.StockBalance `json:"balance"`
}

type AppendPropertyExpenseRequest struct {
	AssetID string                `json:"assetId"`
	Expense model.PropertyExpense `json:"expense"`
}

type AppendJewelleryTransactionRequest struct {
	AssetID     string                     `json:"assetId"`
	Transaction model.JewelleryTransaction `json:"transaction"`
}

// Liability

type CreateLiabilityRequest struct {
	Liability *model.Liability `json:"liability"`
}

type LiabilityResponse struct {
	Liability *model.Liability `json:"liability"`
}

type GetLiabilityRequest struct {
	LiabilityID string `json:"liabilityId"`
}

type UpdateLiabilityRequest struct {
	Liability *model.Liability `json:"liability"`
}

type DeleteLiabilityRequest struct {
	LiabilityID string `json:"liabilityId"`
}

type ListLiabilitiesRequest struct {
	OwnerID   string `json:"ownerId"`
	PageSize  int32  `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

type ListLiabilitiesResponse struct {
	Liabilities   []*model.Liability `json:"liabilities"`
	NextPageToken string             `json:"nextPageToken,omitempty"`
}

type AppendLiabilityPaymentRequest struct {
	LiabilityID string                 `json:"liabilityId"`
	Payment     model.LiabilityPayment `json:"payment"`
}

// Certificate

type CreateCertificateRequest struct {
	Certificate *model.Certificate `json:"certificate"`
}

type CertificateResponse struct {
	Certificate *model.Certificate `json:"certificate"`
}

type GetCertificateRequest struct {
	CertificateID string `json:"certificateId"`
}

type UpdateCertificateRequest struct {
	Certificate *model.Certificate `json:"certificate"`
}

type DeleteCertificateRequest struct {
	CertificateID string `json:"certificateId"`
}

type ListCertificatesRequest struct {
	OwnerID   string `json:"ownerId"`
	TaxYear   string `json:"taxYear,omitempty"`
	PageSize  int32  `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

type ListCertificatesResponse struct {
	Certificates  []*model.Certificate `json:"certificates"`
	NextPageToken string               `json:"nextPageToken,omitempty"`
}

// Computation

type ComputeTaxRequest struct {
	OwnerID         string  `json:"ownerId"`
	TaxYear         string  `json:"taxYear,omitempty"`
	SolarInvestment float64 `json:"solarInvestment,omitempty"`
}

type ComputeTaxResponse struct {
	Computation model.TaxComputation `json:"computation"`
}

type GetAuditRiskRequest struct {
	OwnerID string `json:"ownerId"`
	TaxYear string `json:"taxYear,omitempty"`
}

type GetAuditRiskResponse struct {
	Risk model.AuditRisk `json:"risk"`
}

type ValidateSourceOfFundsRequest struct {
	OwnerID string `json:"ownerId"`
	TaxYear string `json:"taxYear,omitempty"`
}

type ValidateSourceOfFundsResponse struct {
	Result model.SourceOfFundsResult `json:"result"`
}

type GetTaxSummaryRangeRequest struct {
	OwnerID  string `json:"ownerId"`
	FromYear string `json:"fromYear"`
	ToYear   string `json:"toYear"`
}

type GetTaxSummaryRangeResponse struct {
	Computations []model.TaxComputation `json:"computations"`
}

type ExportTaxReportRequest struct {
	OwnerID string `json:"ownerId"`
	TaxYear string `json:"taxYear,omitempty"`
	Format  string `json:"format,omitempty"` // "csv" (default) or "json"
}

type ExportTaxReportResponse struct {
	Data        []byte `json:"data"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}
