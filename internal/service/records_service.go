package service

import (
	"context"
	"fmt"

	"connectrpc.com/connect"

	"github.com/lankatax/backend/internal/fiscal"
	"github.com/lankatax/backend/internal/model"
	"github.com/lankatax/backend/internal/valuation"
)

// Record CRUD handlers. These are thin passthroughs to the store; the
// engine never sees records except through LoadSnapshot.

// Entity handlers

func (s *TaxService) CreateEntity(ctx context.Context, req *connect.Request[CreateEntityRequest]) (*connect.Response[EntityResponse], error) {
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name is required"))
	}
	entity := &model.Entity{Name: req.Msg.Name, TIN: req.Msg.TIN}
	if err := s.store.CreateEntity(ctx, entity); err != nil {
		return nil, storeError("create entity", err)
	}
	return connect.NewResponse(&EntityResponse{Entity: entity}), nil
}

func (s *TaxService) GetEntity(ctx context.Context, req *connect.Request[GetEntityRequest]) (*connect.Response[EntityResponse], error) {
	entity, err := s.store.GetEntity(ctx, req.Msg.EntityID)
	if err != nil {
		return nil, storeError("get entity", err)
	}
	return connect.NewResponse(&EntityResponse{Entity: entity}), nil
}

func (s *TaxService) UpdateEntity(ctx context.Context, req *connect.Request[UpdateEntityRequest]) (*connect.Response[EntityResponse], error) {
	if req.Msg.Entity == nil || req.Msg.Entity.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("entity with id is required"))
	}
	if err := s.store.UpdateEntity(ctx, req.Msg.Entity); err != nil {
		return nil, storeError("update entity", err)
	}
	return connect.NewResponse(&EntityResponse{Entity: req.Msg.Entity}), nil
}

func (s *TaxService) DeleteEntity(ctx context.Context, req *connect.Request[DeleteEntityRequest]) (*connect.Response[DeleteResponse], error) {
	if err := s.store.DeleteEntity(ctx, req.Msg.EntityID); err != nil {
		return nil, storeError("delete entity", err)
	}
	return connect.NewResponse(&DeleteResponse{}), nil
}

func (s *TaxService) ListEntities(ctx context.Context, req *connect.Request[ListEntitiesRequest]) (*connect.Response[ListEntitiesResponse], error) {
	entities, nextToken, err := s.store.ListEntities(ctx, req.Msg.PageSize, req.Msg.PageToken)
	if err != nil {
		return nil, storeError("list entities", err)
	}
	return connect.NewResponse(&ListEntitiesResponse{Entities: entities, NextPageToken: nextToken}), nil
}

// Income handlers

func (s *TaxService) CreateIncome(ctx context.Context, req *connect.Request[CreateIncomeRequest]) (*connect.Response[IncomeResponse], error) {
	income := req.Msg.Income
	if income == nil || income.OwnerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("income with ownerId is required"))
	}
	if income.TaxYear == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("taxYear is required"))
	}
	if err := s.store.CreateIncome(ctx, income); err != nil {
		return nil, storeError("create income", err)
	}
	return connect.NewResponse(&IncomeResponse{Income: income}), nil
}

func (s *TaxService) GetIncome(ctx context.Context, req *connect.Request[GetIncomeRequest]) (*connect.Response[IncomeResponse], error) {
	income, err := s.store.GetIncome(ctx, req.Msg.IncomeID)
	if err != nil {
		return nil, storeError("get income", err)
	}
	return connect.NewResponse(&IncomeResponse{Income: income}), nil
}

func (s *TaxService) UpdateIncome(ctx context.Context, req *connect.Request[UpdateIncomeRequest]) (*connect.Response[IncomeResponse], error) {
	if req.Msg.Income == nil || req.Msg.Income.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("income with id is required"))
	}
	if err := s.store.UpdateIncome(ctx, req.Msg.Income); err != nil {
		return nil, storeError("update income", err)
	}
	return connect.NewResponse(&IncomeResponse{Income: req.Msg.Income}), nil
}

func (s *TaxService) DeleteIncome(ctx context.Context, req *connect.Request[DeleteIncomeRequest]) (*connect.Response[DeleteResponse], error) {
	if err := s.store.DeleteIncome(ctx, req.Msg.IncomeID); err != nil {
		return nil, storeError("delete income", err)
	}
	return connect.NewResponse(&DeleteResponse{}), nil
}

func (s *TaxService) ListIncomes(ctx context.Context, req *connect.Request[ListIncomesRequest]) (*connect.Response[ListIncomesResponse], error) {
	incomes, nextToken, err := s.store.ListIncomes(ctx, req.Msg.OwnerID, req.Msg.TaxYear, req.Msg.PageSize, req.Msg.PageToken)
	if err != nil {
		return nil, storeError("list incomes", err)
	}
	return connect.NewResponse(&ListIncomesResponse{Incomes: incomes, NextPageToken: nextToken}), nil
}

// Asset handlers

func (s *TaxService) CreateAsset(ctx context.Context, req *connect.Request[CreateAssetRequest]) (*connect.Response[AssetResponse], error) {
	asset := req.Msg.Asset
	if asset == nil || asset.OwnerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("asset with ownerId is required"))
	}
	if err := s.store.CreateAsset(ctx, asset); err != nil {
		return nil, storeError("create asset", err)
	}
	return connect.NewResponse(&AssetResponse{Asset: asset}), nil
}

func (s *TaxService) GetAsset(ctx context.Context, req *connect.Request[GetAssetRequest]) (*connect.Response[AssetResponse], error) {
	asset, err := s.store.GetAsset(ctx, req.Msg.AssetID)
	if err != nil {
		return nil, storeError("get asset", err)
	}
	return connect.NewResponse(&AssetResponse{Asset: asset}), nil
}

func (s *TaxService) UpdateAsset(ctx context.Context, req *connect.Request[UpdateAssetRequest]) (*connect.Response[AssetResponse], error) {
	if req.Msg.Asset == nil || req.Msg.Asset.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("asset with id is required"))
	}
	if err := s.store.UpdateAsset(ctx, req.Msg.Asset); err != nil {
		return nil, storeError("update asset", err)
	}
	return connect.NewResponse(&AssetResponse{Asset: req.Msg.Asset}), nil
}

func (s *TaxService) DeleteAsset(ctx context.Context, req *connect.Request[DeleteAssetRequest]) (*connect.Response[DeleteResponse], error) {
	if err := s.store.DeleteAsset(ctx, req.Msg.AssetID); err != nil {
		return nil, storeError("delete asset", err)
	}
	return connect.NewResponse(&DeleteResponse{}), nil
}

// ListAssets lists an entity's assets. When the request names a tax year the
// listing is scoped to the assets in view for that fiscal year (the same
// window rule the engine applies) and each asset's year value is attached.
func (s *TaxService) ListAssets(ctx context.Context, req *connect.Request[ListAssetsRequest]) (*connect.Response[ListAssetsResponse], error) {
	assets, nextToken, err := s.store.ListAssets(ctx, req.Msg.OwnerID, req.Msg.PageSize, req.Msg.PageToken)
	if err != nil {
		return nil, storeError("list assets", err)
	}
	var values map[string]float64
	if req.Msg.TaxYear != "" {
		assets = valuation.FilterInScope(assets, req.Msg.TaxYear)
		values = make(map[string]float64, len(assets))
		for _, a := range assets {
			values[a.ID] = valuation.CurrentValue(s.regimes, a, req.Msg.TaxYear)
		}
	}
	return connect.NewResponse(&ListAssetsResponse{Assets: assets, Values: values, NextPageToken: nextToken}), nil
}

func (s *TaxService) AppendBalance(ctx context.Context, req *connect.Request[AppendBalanceRequest]) (*connect.Response[AssetResponse], error) {
	if req.Msg.Balance.TaxYear == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("balance taxYear is required"))
	}
	if err := s.store.AppendBalance(ctx, req.Msg.AssetID, req.Msg.Balance); err != nil {
		return nil, storeError("append balance", err)
	}
	asset, err := s.store.GetAsset(ctx, req.Msg.AssetID)
	if err != nil {
		return nil, storeError("get asset", err)
	}
	return connect.NewResponse(&AssetResponse{Asset: asset}), nil
}

func (s *TaxService) AppendStockBalance(ctx context.Context, req *connect.Request[AppendStockBalanceRequest]) (*connect.Response[AssetResponse], error) {
	if req.Msg.Balance.TaxYear == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("balance taxYear is required"))
	}
	if err := s.store.AppendStockBalance(ctx, req.Msg.AssetID, req.Msg.Balance); err != nil {
		return nil, storeError("append stock balance", err)
	}
	asset, err := s.store.GetAsset(ctx, req.Msg.AssetID)
	if err != nil {
		return nil, storeError("get asset", err)
	}
	return connect.NewResponse(&AssetResponse{Asset: asset}), nil
}

func (s *TaxService) AppendPropertyExpense(ctx context.Context, req *connect.Request[AppendPropertyExpenseRequest]) (*connect.Response[AssetResponse], error) {
	if req.Msg.Expense.TaxYear == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("expense taxYear is required"))
	}
	if err := s.store.AppendPropertyExpense(ctx, req.Msg.AssetID, req.Msg.Expense); err != nil {
		return nil, storeError("append property expense", err)
	}
	asset, err := s.store.GetAsset(ctx, req.Msg.AssetID)
	if err != nil {
		return nil, storeError("get asset", err)
	}
	return connect.NewResponse(&AssetResponse{Asset: asset}), nil
}

func (s *TaxService) AppendJewelleryTransaction(ctx context.Context, req *connect.Request[AppendJewelleryTransactionRequest]) (*connect.Response[AssetResponse], error) {
	if req.Msg.Transaction.TaxYear == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("transaction taxYear is required"))
	}
	if err := s.store.AppendJewelleryTransaction(ctx, req.Msg.AssetID, req.Msg.Transaction); err != nil {
		return nil, storeError("append jewellery transaction", err)
	}
	asset, err := s.store.GetAsset(ctx, req.Msg.AssetID)
	if err != nil {
		return nil, storeError("get asset", err)
	}
	return connect.NewResponse(&AssetResponse{Asset: asset}), nil
}

// Liability handlers

func (s *TaxService) CreateLiability(ctx context.Context, req *connect.Request[CreateLiabilityRequest]) (*connect.Response[LiabilityResponse], error) {
	liability := req.Msg.Liability
	if liability == nil || liability.OwnerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("liability with ownerId is required"))
	}
	if err := s.store.CreateLiability(ctx, liability); err != nil {
		return nil, storeError("create liability", err)
	}
	return connect.NewResponse(&LiabilityResponse{Liability: liability}), nil
}

func (s *TaxService) GetLiability(ctx context.Context, req *connect.Request[GetLiabilityRequest]) (*connect.Response[LiabilityResponse], error) {
	liability, err := s.store.GetLiability(ctx, req.Msg.LiabilityID)
	if err != nil {
		return nil, storeError("get liability", err)
	}
	return connect.NewResponse(&LiabilityResponse{Liability: liability}), nil
}

func (s *TaxService) UpdateLiability(ctx context.Context, req *connect.Request[UpdateLiabilityRequest]) (*connect.Response[LiabilityResponse], error) {
	if req.Msg.Liability == nil || req.Msg.Liability.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("liability with id is required"))
	}
	if err := s.store.UpdateLiability(ctx, req.Msg.Liability); err != nil {
		return nil, storeError("update liability", err)
	}
	return connect.NewResponse(&LiabilityResponse{Liability: req.Msg.Liability}), nil
}

func (s *TaxService) DeleteLiability(ctx context.Context, req *connect.Request[DeleteLiabilityRequest]) (*connect.Response[DeleteResponse], error) {
	if err := s.store.DeleteLiability(ctx, req.Msg.LiabilityID); err != nil {
		return nil, storeError("delete liability", err)
	}
	return connect.NewResponse(&DeleteResponse{}), nil
}

func (s *TaxService) ListLiabilities(ctx context.Context, req *connect.Request[ListLiabilitiesRequest]) (*connect.Response[ListLiabilitiesResponse], error) {
	liabilities, nextToken, err := s.store.ListLiabilities(ctx, req.Msg.OwnerID, req.Msg.PageSize, req.Msg.PageToken)
	if err != nil {
		return nil, storeError("list liabilities", err)
	}
	return connect.NewResponse(&ListLiabilitiesResponse{Liabilities: liabilities, NextPageToken: nextToken}), nil
}

func (s *TaxService) AppendLiabilityPayment(ctx context.Context, req *connect.Request[AppendLiabilityPaymentRequest]) (*connect.Response[LiabilityResponse], error) {
	payment := req.Msg.Payment
	if payment.TaxYear == "" && !payment.Date.IsZero() {
		payment.TaxYear = fiscal.YearOf(payment.Date)
	}
	if payment.TaxYear == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("payment taxYear or date is required"))
	}
	if err := s.store.AppendLiabilityPayment(ctx, req.Msg.LiabilityID, payment); err != nil {
		return nil, storeError("append liability payment", err)
	}
	liability, err := s.store.GetLiability(ctx, req.Msg.LiabilityID)
	if err != nil {
		return nil, storeError("get liability", err)
	}
	return connect.NewResponse(&LiabilityResponse{Liability: liability}), nil
}

// Certificate handlers

func (s *TaxService) CreateCertificate(ctx context.Context, req *connect.Request[CreateCertificateRequest]) (*connect.Response[CertificateResponse], error) {
	cert := req.Msg.Certificate
	if cert == nil || cert.OwnerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("certificate with ownerId is required"))
	}
	if cert.TaxYear == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("taxYear is required"))
	}
	if err := s.store.CreateCertificate(ctx, cert); err != nil {
		return nil, storeError("create certificate", err)
	}
	return connect.NewResponse(&CertificateResponse{Certificate: cert}), nil
}

func (s *TaxService) GetCertificate(ctx context.Context, req *connect.Request[GetCertificateRequest]) (*connect.Response[CertificateResponse], error) {
	cert, err := s.store.GetCertificate(ctx, req.Msg.CertificateID)
	if err != nil {
		return nil, storeError("get certificate", err)
	}
	return connect.NewResponse(&CertificateResponse{Certificate: cert}), nil
}

func (s *TaxService) UpdateCertificate(ctx context.Context, req *connect.Request[UpdateCertificateRequest]) (*connect.Response[CertificateResponse], error) {
	if req.Msg.Certificate == nil || req.Msg.Certificate.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("certificate with id is required"))
	}
	if err := s.store.UpdateCertificate(ctx, req.Msg.Certificate); err != nil {
		return nil, storeError("update certificate", err)
	}
	return connect.NewResponse(&CertificateResponse{Certificate: req.Msg.Certificate}), nil
}

func (s *TaxService) DeleteCertificate(ctx context.Context, req *connect.Request[DeleteCertificateRequest]) (*connect.Response[DeleteResponse], error) {
	if err := s.store.DeleteCertificate(ctx, req.Msg.CertificateID); err != nil {
		return nil, storeError("delete certificate", err)
	}
	return connect.NewResponse(&DeleteResponse{}), nil
}

func (s *TaxService) ListCertificates(ctx context.Context, req *connect.Request[ListCertificatesRequest]) (*connect.Response[ListCertificatesResponse], error) {
	certs, nextToken, err := s.store.ListCertificates(ctx, req.Msg.OwnerID, req.Msg.TaxYear, req.Msg.PageSize, req.Msg.PageToken)
	if err != nil {
		return nil, storeError("list certificates", err)
	}
	return connect.NewResponse(&ListCertificatesResponse{Certificates: certs, NextPageToken: nextToken}), nil
}
