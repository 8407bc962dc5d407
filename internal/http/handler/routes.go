package handler

import "net/http"

type Middleware func(http.Handler) http.Handler

// Routes registers the API on mux. Credential endpoints pass through limit and
// everything that needs a caller passes through auth.
func (h *PricerHandler) Routes(mux *http.ServeMux, auth, limit Middleware) {
	mux.Handle(Register, limit(http.HandlerFunc(h.HandleRegister)))
	mux.Handle(Login, limit(http.HandlerFunc(h.HandleLogin)))
	mux.Handle(Me, auth(http.HandlerFunc(h.HandleMe)))
	mux.Handle(Refresh, auth(http.HandlerFunc(h.HandleRefresh)))
	mux.Handle(Predict, auth(http.HandlerFunc(h.HandlePredict)))
	mux.Handle(ListRecords, auth(http.HandlerFunc(h.HandleListRecords)))
	mux.Handle(DeleteRecord, auth(http.HandlerFunc(h.HandleDeleteRecord)))
}
