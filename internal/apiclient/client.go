package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"houseprice/internal/core"
	"houseprice/internal/predict"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const DefaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
	Details    map[string]string
}

func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
	}

	fields := make([]string, 0, len(e.Details))
	for field, msg := range e.Details {
		fields = append(fields, field+": "+msg)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%s (HTTP %d): %s", e.Message, e.StatusCode, strings.Join(fields, "; "))
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Client talks to the prediction API. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	body, err := json.Marshal(core.AuthMessage{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	return c.do(ctx, http.MethodPost, "/auth/register", "", bytes.NewReader(body), "application/json", nil)
}

// Login uses the OAuth2 password form the API expects.
func (c *Client) Login(ctx context.Context, username, password string) (Token, error) {
	form := url.Values{
		"username":   {username},
		"password":   {password},
		"grant_type": {"password"},
	}

	var token Token
	err := c.do(ctx, http.MethodPost, "/auth/login", "", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", &token)
	return token, err
}

func (c *Client) Me(ctx context.Context, token string) (core.UserProfile, error) {
	var profile core.UserProfile
	err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, "", &profile)
	return profile, err
}

func (c *Client) Refresh(ctx context.Context, token string) (Token, error) {
	var fresh Token
	err := c.do(ctx, http.MethodPost, "/auth/refresh", token, nil, "", &fresh)
	return fresh, err
}

func (c *Client) Predict(ctx context.Context, token string, features predict.Features) (core.PredictionRecord, error) {
	body, err := json.Marshal(features.Values())
	if err != nil {
		return core.PredictionRecord{}, fmt.Errorf("marshal request: %w", err)
	}

	var record core.PredictionRecord
	err = c.do(ctx, http.MethodPost, "/api/predict", token, bytes.NewReader(body), "application/json", &record)
	return record, err
}

func (c *Client) Records(ctx context.Context, token string) ([]core.PredictionRecord, error) {
	records := []core.PredictionRecord{}
	err := c.do(ctx, http.MethodGet, "/api/records", token, nil, "", &records)
	return records, err
}

func (c *Client) Delete(ctx context.Context, token string, id uint) error {
	return c.do(ctx, http.MethodDelete, "/api/records/"+strconv.FormatUint(uint64(id), 10), token, nil, "", nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// newAPIError pulls a human message out of whatever error body the API sent.
func newAPIError(code int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: code,
		Message:    http.StatusText(code),
	}
	if !gjson.ValidBytes(body) {
		if text := strings.TrimSpace(string(body)); text != "" {
			apiErr.Message = text
		}
		return apiErr
	}

	parsed := gjson.ParseBytes(body)
	for _, key := range []string{"error", "detail", "message"} {
		if v := parsed.Get(key); v.Type == gjson.String && v.String() != "" {
			apiErr.Message = v.String()
			break
		}
	}

	if details := parsed.Get("details"); details.IsObject() {
		apiErr.Details = make(map[string]string)
		details.ForEach(func(field, msg gjson.Result) bool {
			apiErr.Details[field.String()] = msg.String()
			return true
		})
	}
	return apiErr
}
