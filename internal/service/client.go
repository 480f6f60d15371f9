package service

import "connectrpc.com/connect"

// NewProcedureClient builds a connect client for a single TaxService
// procedure, installing the same JSON codec the server registers. Tooling
// (the seeder, smoke checks) uses this to talk to a running server.
func NewProcedureClient[Req, Res any](httpClient connect.HTTPClient, baseURL, name string) *connect.Client[Req, Res] {
	return connect.NewClient[Req, Res](httpClient, baseURL+ProcedurePrefix+name, connect.WithCodec(jsonCodec{}))
}
