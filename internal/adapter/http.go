package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mvoronin/clinic-sync/internal/config"
	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/internal/utils"
	"github.com/mvoronin/clinic-sync/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with
// the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/register. On success the bearer token is extracted from
// the Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, transportError("register", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return models.User{Login: user.Login, Name: user.Name}, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login; the bearer token from the Authorization response
// header is stored via SetToken and returned with the parsed user ID.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, transportError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

// Ping implements [ServerAdapter]. It GETs the unauthenticated health
// endpoint; any transport failure or non-2xx status maps to an error.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health/")
	if err != nil {
		return transportError("ping", err)
	}

	return mapHTTPError(resp)
}

// Pull implements [ServerAdapter]. It GETs
// GET /api/{collection}/?since={RFC3339} and decodes the record batch
// together with the server clock reading used as the next checkpoint.
func (h *httpServerAdapter) Pull(ctx context.Context, collection models.Collection, since time.Time) (models.PullResponse, error) {
	req := h.authedRequest(ctx)
	if !since.IsZero() {
		req.SetQueryParam("since", since.UTC().Format(time.RFC3339Nano))
	}

	resp, err := req.Get("/api/" + string(collection) + "/")
	if err != nil {
		return models.PullResponse{}, transportError("pull", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PullResponse{}, err
	}

	var pr models.PullResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return models.PullResponse{}, fmt.Errorf("decode pull response: %w", err)
	}

	return pr, nil
}

// Create implements [ServerAdapter]. It POSTs the new record to
// POST /api/{collection}/ with the client local ID as idempotency key.
func (h *httpServerAdapter) Create(ctx context.Context, collection models.Collection, req models.CreateRequest) (models.CreateResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/" + string(collection) + "/")
	if err != nil {
		return models.CreateResponse{}, transportError("create", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreateResponse{}, err
	}

	var cr models.CreateResponse
	if err = json.Unmarshal(resp.Body(), &cr); err != nil {
		return models.CreateResponse{}, fmt.Errorf("decode create response: %w", err)
	}

	return cr, nil
}

// Update implements [ServerAdapter]. It PUTs the edit with its base
// version to PUT /api/{collection}/{remoteID}. Returns a *ConflictError
// (wrapping [ErrVersionConflict]) on HTTP 409.
func (h *httpServerAdapter) Update(ctx context.Context, collection models.Collection, remoteID string, req models.UpdateRequest) (models.UpdateResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/" + string(collection) + "/" + remoteID)
	if err != nil {
		return models.UpdateResponse{}, transportError("update", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpdateResponse{}, err
	}

	var ur models.UpdateResponse
	if err = json.Unmarshal(resp.Body(), &ur); err != nil {
		return models.UpdateResponse{}, fmt.Errorf("decode update response: %w", err)
	}

	return ur, nil
}

// Delete implements [ServerAdapter]. It sends the soft-delete to
// DELETE /api/{collection}/{remoteID}, guarded by baseVersion. Returns a
// *ConflictError (wrapping [ErrVersionConflict]) on HTTP 409.
func (h *httpServerAdapter) Delete(ctx context.Context, collection models.Collection, remoteID string, baseVersion int64) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeleteRequest{BaseVersion: baseVersion}).
		Delete("/api/" + string(collection) + "/" + remoteID)
	if err != nil {
		return transportError("delete", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// transportError classifies request-level failures (DNS, refused
// connection, timeout) as [ErrUnavailable] so the push engine can treat
// them as retryable network errors.
func transportError(op string, err error) error {
	return fmt.Errorf("%s request: %w: %v", op, ErrUnavailable, err)
}
