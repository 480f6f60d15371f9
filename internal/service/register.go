package service

import (
	"net/http"

	"connectrpc.com/connect"
)

// ProcedurePrefix is the connect route prefix for every TaxService procedure.
const ProcedurePrefix = "/lankatax.v1.TaxService/"

// RegisterHandlers mounts every TaxService procedure on the mux. The JSON
// codec is always installed; callers add interceptors via opts.
func (s *TaxService) RegisterHandlers(mux *http.ServeMux, opts ...connect.HandlerOption) {
	opts = append(opts, connect.WithCodec(jsonCodec{}))

	handle := func(name string, h http.Handler) {
		mux.Handle(ProcedurePrefix+name, h)
	}

	// Entities
	handle("CreateEntity", connect.NewUnaryHandler(ProcedurePrefix+"CreateEntity", s.CreateEntity, opts...))
	handle("GetEntity", connect.NewUnaryHandler(ProcedurePrefix+"GetEntity", s.GetEntity, opts...))
	handle("UpdateEntity", connect.NewUnaryHandler(ProcedurePrefix+"UpdateEntity", s.UpdateEntity, opts...))
	handle("DeleteEntity", connect.NewUnaryHandler(ProcedurePrefix+"DeleteEntity", s.DeleteEntity, opts...))
	handle("ListEntities", connect.NewUnaryHandler(ProcedurePrefix+"ListEntities", s.ListEntities, opts...))

	// Incomes
	handle("CreateIncome", connect.NewUnaryHandler(ProcedurePrefix+"CreateIncome", s.CreateIncome, opts...))
	handle("GetIncome", connect.NewUnaryHandler(ProcedurePrefix+"GetIncome", s.GetIncome, opts...))
	handle("UpdateIncome", connect.NewUnaryHandler(ProcedurePrefix+"UpdateIncome", s.UpdateIncome, opts...))
	handle("DeleteIncome", connect.NewUnaryHandler(ProcedurePrefix+"DeleteIncome", s.DeleteIncome, opts...))
	handle("ListIncomes", connect.NewUnaryHandler(ProcedurePrefix+"ListIncomes", s.ListIncomes, opts...))

	// Assets
	handle("CreateAsset", connect.NewUnaryHandler(ProcedurePrefix+"CreateAsset", s.CreateAsset, opts...))
	handle("GetAsset", connect.NewUnaryHandler(ProcedurePrefix+"GetAsset", s.GetAsset, opts...))
	handle("UpdateAsset", connect.NewUnaryHandler(ProcedurePrefix+"UpdateAsset", s.UpdateAsset, opts...))
	handle("DeleteAsset", connect.NewUnaryHandler(ProcedurePrefix+"DeleteAsset", s.DeleteAsset, opts...))
	handle("ListAssets", connect.NewUnaryHandler(ProcedurePrefix+"ListAssets", s.ListAssets, opts...))
	handle("AppendBalance", connect.NewUnaryHandler(ProcedurePrefix+"AppendBalance", s.AppendBalance, opts...))
	handle("AppendStockBalance", connect.NewUnaryHandler(ProcedurePrefix+"AppendStockBalance", s.AppendStockBalance, opts...))
	handle("AppendPropertyExpense", connect.NewUnaryHandler(ProcedurePrefix+"AppendPropertyExpense", s.AppendPropertyExpense, opts...))
	handle("AppendJewelleryTransaction", connect.NewUnaryHandler(ProcedurePrefix+"AppendJewelleryTransaction", s.AppendJewelleryTransaction, opts...))

	// Liabilities
	handle("CreateLiability", connect.NewUnaryHandler(ProcedurePrefix+"CreateLiability", s.CreateLiability, opts...))
	handle("GetLiability", connect.NewUnaryHandler(ProcedurePrefix+"GetLiability", s.GetLiability, opts...))
	handle("UpdateLiability", connect.NewUnaryHandler(ProcedurePrefix+"UpdateLiability", s.UpdateLiability, opts...))
	handle("DeleteLiability", connect.NewUnaryHandler(ProcedurePrefix+"DeleteLiability", s.DeleteLiability, opts...))
	handle("ListLiabilities", connect.NewUnaryHandler(ProcedurePrefix+"ListLiabilities", s.ListLiabilities, opts...))
	handle("AppendLiabilityPayment", connect.NewUnaryHandler(ProcedurePrefix+"AppendLiabilityPayment", s.AppendLiabilityPayment, opts...))

	// Certificates
	handle("CreateCertificate", connect.NewUnaryHandler(ProcedurePrefix+"CreateCertificate", s.CreateCertificate, opts...))
	handle("GetCertificate", connect.NewUnaryHandler(ProcedurePrefix+"GetCertificate", s.GetCertificate, opts...))
	handle("UpdateCertificate", connect.NewUnaryHandler(ProcedurePrefix+"UpdateCertificate", s.UpdateCertificate, opts...))
	handle("DeleteCertificate", connect.NewUnaryHandler(ProcedurePrefix+"DeleteCertificate", s.DeleteCertificate, opts...))
	handle("ListCertificates", connect.NewUnaryHandler(ProcedurePrefix+"ListCertificates", s.ListCertificates, opts...))

	// Computations
	handle("ComputeTax", connect.NewUnaryHandler(ProcedurePrefix+"ComputeTax", s.ComputeTax, opts...))
	handle("GetAuditRisk", connect.NewUnaryHandler(ProcedurePrefix+"GetAuditRisk", s.GetAuditRisk, opts...))
	handle("ValidateSourceOfFunds", connect.NewUnaryHandler(ProcedurePrefix+"ValidateSourceOfFunds", s.ValidateSourceOfFunds, opts...))
	handle("GetTaxSummaryRange", connect.NewUnaryHandler(ProcedurePrefix+"GetTaxSummaryRange", s.GetTaxSummaryRange, opts...))
	handle("ExportTaxReport", connect.NewUnaryHandler(ProcedurePrefix+"ExportTaxReport", s.ExportTaxReport, opts...))
}
