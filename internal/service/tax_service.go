package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"connectrpc.com/connect"

	"github.com/lankatax/backend/internal/engine"
	"github.com/lankatax/backend/internal/fiscal"
	"github.com/lankatax/backend/internal/model"
	"github.com/lankatax/backend/internal/regime"
	"github.com/lankatax/backend/internal/store"
)

// maxSummaryRangeYears bounds multi-year summaries to keep responses small.
const maxSummaryRangeYears = 25

// TaxService exposes record management and the tax/audit-risk computations
// over connect unary procedures.
type TaxService struct {
	store   store.Store
	regimes *regime.Table
}

// NewTaxService creates the service around a store and a regime table.
// Passing the table in (rather than reading a global) is what lets tests
// run against substitute regimes.
func NewTaxService(st store.Store, regimes *regime.Table) *TaxService {
	return &TaxService{store: st, regimes: regimes}
}

// resolveYear defaults an empty tax year to the current fiscal year.
func resolveYear(taxYear string) string {
	if taxYear == "" {
		return fiscal.Current()
	}
	return taxYear
}

// ComputeTax runs the full tax computation for one entity and fiscal year.
func (s *TaxService) ComputeTax(ctx context.Context, req *connect.Request[ComputeTaxRequest]) (*connect.Response[ComputeTaxResponse], error) {
	if req.Msg.OwnerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("ownerId is required"))
	}
	taxYear := resolveYear(req.Msg.TaxYear)

	snap, err := s.store.LoadSnapshot(ctx, req.Msg.OwnerID)
	if err != nil {
		return nil, storeError("load snapshot", err)
	}

	calc := engine.ComputeTax(s.regimes, snap, taxYear, req.Msg.SolarInvestment)
	return connect.NewResponse(&ComputeTaxResponse{Computation: calc}), nil
}

// GetAuditRisk reconciles the year's cash flows and classifies the result.
func (s *TaxService) GetAuditRisk(ctx context.Context, req *connect.Request[GetAuditRiskRequest]) (*connect.Response[GetAuditRiskResponse], error) {
	if req.Msg.OwnerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("ownerId is required"))
	}
	taxYear := resolveYear(req.Msg.TaxYear)

	snap, err := s.store.LoadSnapshot(ctx, req.Msg.OwnerID)
	if err != nil {
		return nil, storeError("load snapshot", err)
	}

	risk := engine.AssessRisk(s.regimes, snap, taxYear)
	return connect.NewResponse(&GetAuditRiskResponse{Risk: risk}), nil
}

// ValidateSourceOfFunds runs the soft completeness check.
func (s *TaxService) ValidateSourceOfFunds(ctx context.Context, req *connect.Request[ValidateSourceOfFundsRequest]) (*connect.Response[ValidateSourceOfFundsResponse], error) {
	if req.Msg.OwnerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("ownerId is required"))
	}
	taxYear := resolveYear(req.Msg.TaxYear)

	snap, err := s.store.LoadSnapshot(ctx, req.Msg.OwnerID)
	if err != nil {
		return nil, storeError("load snapshot", err)
	}

	result := engine.ValidateSourceOfFunds(s.regimes, snap, taxYear)
	return connect.NewResponse(&ValidateSourceOfFundsResponse{Result: result}), nil
}

// GetTaxSummaryRange computes the tax position for each fiscal year in an
// inclusive range, for multi-year display.
func (s *TaxService) GetTaxSummaryRange(ctx context.Context, req *connect.Request[GetTaxSummaryRangeRequest]) (*connect.Response[GetTaxSummaryRangeResponse], error) {
	if req.Msg.OwnerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("ownerId is required"))
	}
	from, err := strconv.Atoi(req.Msg.FromYear)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid fromYear: %s", req.Msg.FromYear))
	}
	to, err := strconv.Atoi(req.Msg.ToYear)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid toYear: %s", req.Msg.ToYear))
	}
	if to < from {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("toYear precedes fromYear"))
	}
	if to-from+1 > maxSummaryRangeYears {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("range must not exceed %d years", maxSummaryRangeYears))
	}

	snap, err := s.store.LoadSnapshot(ctx, req.Msg.OwnerID)
	if err != nil {
		return nil, storeError("load snapshot", err)
	}

	computations := make([]model.TaxComputation, 0, to-from+1)
	for year := from; year <= to; year++ {
		computations = append(computations, engine.ComputeTax(s.regimes, snap, strconv.Itoa(year), 0))
	}
	return connect.NewResponse(&GetTaxSummaryRangeResponse{Computations: computations}), nil
}

// ExportTaxReport renders the computation and risk assessment as CSV or JSON.
func (s *TaxService) ExportTaxReport(ctx context.Context, req *connect.Request[ExportTaxReportRequest]) (*connect.Response[ExportTaxReportResponse], error) {
	if req.Msg.OwnerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("ownerId is required"))
	}
	taxYear := resolveYear(req.Msg.TaxYear)

	snap, err := s.store.LoadSnapshot(ctx, req.Msg.OwnerID)
	if err != nil {
		return nil, storeError("load snapshot", err)
	}

	calc := engine.ComputeTax(s.regimes, snap, taxYear, 0)
	risk := engine.AssessRisk(s.regimes, snap, taxYear)

	format := req.Msg.Format
	if format == "" {
		format = "csv"
	}

	var data []byte
	var contentType, filename string
	switch format {
	case "json":
		payload := struct {
			Computation model.TaxComputation `json:"computation"`
			Risk        model.AuditRisk      `json:"risk"`
		}{calc, risk}
		data, err = json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("marshal JSON: %w", err))
		}
		contentType = "application/json"
		filename = fmt.Sprintf("tax-report-%s.json", taxYear)
	case "csv":
		data = renderReportCSV(calc, risk)
		contentType = "text/csv"
		filename = fmt.Sprintf("tax-report-%s.csv", taxYear)
	default:
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unsupported format: %s", format))
	}

	return connect.NewResponse(&ExportTaxReportResponse{
		Data:        data,
		Filename:    filename,
		ContentType: contentType,
	}), nil
}
