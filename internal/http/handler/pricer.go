package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"houseprice/internal/core"
	"houseprice/internal/http/handler/middleware"
	"houseprice/internal/http/payload"
	"houseprice/internal/predict"
	"mime"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

var (
	Register     = "POST /auth/register"
	Login        = "POST /auth/login"
	Me           = "GET /auth/me"
	Refresh      = "POST /auth/refresh"
	Predict      = "POST /api/predict"
	ListRecords  = "GET /api/records"
	DeleteRecord = "DELETE /api/records/{id}"
	Metrics      = "GET /metrics"
)

const tokenType = "bearer"

type PricerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	pricer           PricingService
}

func NewPricerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, pricingService PricingService) *PricerHandler {
	return &PricerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		pricer:           pricingService,
	}
}

func (h *PricerHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.RegisterRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondPayloadError(w, err, "Registration failed", Register, requestId)
		return
	}

	err := h.pricer.Register(r.Context(), req.ToCoreAuthMessage())
	if err != nil {
		resp := Response{Message: "Registration failed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserExists) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"username", req.Username,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]string{"msg": "created"}, http.StatusCreated, requestId)
}

// HandleLogin accepts the OAuth2 password form. A JSON body is accepted as well.
func (h *PricerHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var (
		req payload.LoginRequest
		err error
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		err = h.requestValidator.DecodeJSONPayload(r, &req)
	} else {
		err = h.requestValidator.DecodeFormPayload(r, &req)
	}
	if err != nil {
		h.respondPayloadError(w, err, "Login failed", Login, requestId)
		return
	}

	token, err := h.pricer.Authenticate(r.Context(), req.ToCoreAuthMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = "incorrect username or password"
			w.Header().Set("WWW-Authenticate", "Bearer")
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"username", req.Username,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, TokenResponse{AccessToken: token, TokenType: tokenType}, http.StatusOK, requestId)
}

func (h *PricerHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	username := middleware.Username(r.Context())

	profile, err := h.pricer.Me(r.Context(), username)
	if err != nil {
		resp := Response{Message: "Could not load profile"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) {
			httpCode = http.StatusUnauthorized
			resp.Error = core.ErrUnauthenticated.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to load profile",
			"error", err,
			"username", username,
			"handler", Me,
			"request_id", requestId)
		return
	}

	h.respond(w, profile, http.StatusOK, requestId)
}

func (h *PricerHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	username := middleware.Username(r.Context())

	token, err := h.pricer.Refresh(r.Context(), username)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not refresh token",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to refresh token",
			"error", err,
			"username", username,
			"handler", Refresh,
			"request_id", requestId)
		return
	}

	h.respond(w, TokenResponse{AccessToken: token, TokenType: tokenType}, http.StatusOK, requestId)
}

func (h *PricerHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	username := middleware.Username(r.Context())

	var req payload.PredictRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondPayloadError(w, err, "Prediction failed", Predict, requestId)
		return
	}

	record, err := h.pricer.Predict(r.Context(), req.ToFeatures())
	if err != nil {
		resp := Response{Message: "Prediction failed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, predict.ErrInvalidFeatures) {
			httpCode = http.StatusUnprocessableEntity
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("prediction failed",
			"error", err,
			"username", username,
			"handler", Predict,
			"request_id", requestId)
		return
	}

	h.logs.Infow("prediction served",
		"id", record.ID,
		"price", record.Price,
		"username", username,
		"handler", Predict,
		"request_id", requestId)

	h.respond(w, record, http.StatusOK, requestId)
}

func (h *PricerHandler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	records, err := h.pricer.ListRecords(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve records",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list records",
			"error", err,
			"handler", ListRecords,
			"request_id", requestId)
		return
	}

	h.respond(w, records, http.StatusOK, requestId)
}

func (h *PricerHandler) HandleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 0)
	if err != nil || id == 0 {
		h.respond(w, Response{
			Message: "Delete failed",
			Error:   "record id must be a positive integer",
			Details: map[string]string{"id": "must be a positive integer"},
		}, http.StatusUnprocessableEntity,
			requestId)
		h.logs.Errorw("invalid record id",
			"id", r.PathValue("id"),
			"handler", DeleteRecord,
			"request_id", requestId)
		return
	}

	err = h.pricer.DeleteRecord(r.Context(), uint(id))
	if err != nil {
		resp := Response{Message: "Delete failed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrRecordNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to delete record",
			"error", err,
			"id", id,
			"handler", DeleteRecord,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]uint64{"deleted": id}, http.StatusOK, requestId)
}

// respondPayloadError answers 422 for field validation failures and 400 for
// anything that could not be decoded.
func (h *PricerHandler) respondPayloadError(w http.ResponseWriter, err error, message, route, requestId string) {
	httpCode := http.StatusBadRequest
	resp := Response{
		Message: message,
		Error:   err.Error(),
	}
	if errors.Is(err, payload.ErrInvalidPayload) {
		httpCode = http.StatusUnprocessableEntity
		resp.Error = payload.ErrInvalidPayload.Error()
		resp.Details = payload.FieldErrors(err)
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

// respond encodes before writing the status so an unencodable body turns into
// a 500 rather than a broken 200.
func (h *PricerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"status", code,
			"request_id", requestId)

		body.Reset()
		_ = json.NewEncoder(&body).Encode(Response{Message: oopsErr, Error: "unexpected error occurred"})
		code = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body.Bytes()); err != nil {
		h.logs.Errorw("failed to write response",
			"error", err,
			"request_id", requestId)
	}
}
