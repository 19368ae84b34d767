package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/models"
	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 15 * time.Second

// ClientConfig configures [NewHTTPShopClient].
type ClientConfig struct {
	// BaseURL is the server address. A missing scheme defaults to http.
	BaseURL string

	// RequestTimeout bounds each request. Zero means 15s.
	RequestTimeout time.Duration

	// Transport is the underlying round tripper, http.DefaultTransport when nil.
	Transport http.RoundTripper
}

type httpShopClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPShopClient builds a resty-based [ShopClient]. Responses are requested
// brotli-compressed. Returns an error if the base URL is empty or invalid.
func NewHTTPShopClient(cfg ClientConfig, logger *logger.Logger) (ShopClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetTransport(newBrotliTransport(cfg.Transport)).
		SetHeader("Content-Type", "application/json")

	return &httpShopClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
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

func (h *httpShopClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpShopClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignUp implements [ShopClient]. It POSTs to /sign-up and stores the issued
// token.
func (h *httpShopClient) SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().SetContext(ctx).SetBody(req).Post("/sign-up")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("sign-up request: %w", err)
	}

	auth, err := decode[models.AuthResponse](resp, "sign-up")
	if err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	h.logger.Debug().Int64("user_id", auth.User.ID).Msg("sign-up succeeded, token stored")
	return auth, nil
}

// SignIn implements [ShopClient]. It POSTs to /sign-in and stores the issued
// token.
func (h *httpShopClient) SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().SetContext(ctx).SetBody(req).Post("/sign-in")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("sign-in request: %w", err)
	}

	auth, err := decode[models.AuthResponse](resp, "sign-in")
	if err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	h.logger.Debug().Int64("user_id", auth.User.ID).Msg("sign-in succeeded, token stored")
	return auth, nil
}

func (h *httpShopClient) Validate(ctx context.Context) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", h.Token()).
		Get("/validate")
	if err != nil {
		return models.User{}, fmt.Errorf("validate request: %w", err)
	}

	return decode[models.User](resp, "validate")
}

func (h *httpShopClient) ListUsers(ctx context.Context) ([]models.User, error) {
	return get[[]models.User](ctx, h, "/users", "list users")
}

func (h *httpShopClient) GetUser(ctx context.Context, id int64) (models.User, error) {
	return get[models.User](ctx, h, byID("/users", id), "get user")
}

func (h *httpShopClient) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	resp, err := h.client.R().SetContext(ctx).SetBody(req).Patch(byID("/users", id))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}

	return decode[models.User](resp, "update user")
}

func (h *httpShopClient) ListItems(ctx context.Context) ([]models.Item, error) {
	return get[[]models.Item](ctx, h, "/items", "list items")
}

func (h *httpShopClient) GetItem(ctx context.Context, id int64) (models.Item, error) {
	return get[models.Item](ctx, h, byID("/items", id), "get item")
}

func (h *httpShopClient) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	resp, err := h.client.R().SetContext(ctx).SetBody(req).Post("/items")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}

	return decode[models.Item](resp, "create item")
}

func (h *httpShopClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	return get[[]models.Order](ctx, h, "/orders", "list orders")
}

func (h *httpShopClient) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	return get[models.Order](ctx, h, byID("/orders", id), "get order")
}

func (h *httpShopClient) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	resp, err := h.client.R().SetContext(ctx).SetBody(req).Post("/orders")
	if err != nil {
		return models.Order{}, fmt.Errorf("create order request: %w", err)
	}

	return decode[models.Order](resp, "create order")
}

func (h *httpShopClient) DeleteOrder(ctx context.Context, id int64) (models.Order, error) {
	resp, err := h.client.R().SetContext(ctx).Delete(byID("/orders", id))
	if err != nil {
		return models.Order{}, fmt.Errorf("delete order request: %w", err)
	}

	return decode[models.Order](resp, "delete order")
}

func (h *httpShopClient) Health(ctx context.Context) (models.HealthResponse, error) {
	return get[models.HealthResponse](ctx, h, "/health", "health")
}

func get[T any](ctx context.Context, h *httpShopClient, path, op string) (T, error) {
	resp, err := h.client.R().SetContext(ctx).Get(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s request: %w", op, err)
	}

	return decode[T](resp, op)
}

// decode maps a non-2xx response to an error, otherwise unmarshals the body.
func decode[T any](resp *resty.Response, op string) (T, error) {
	var v T
	if err := mapHTTPError(resp); err != nil {
		return v, err
	}

	if err := json.Unmarshal(resp.Body(), &v); err != nil {
		return v, fmt.Errorf("decode %s response: %w", op, err)
	}
	return v, nil
}

func byID(collection string, id int64) string {
	return collection + "/" + strconv.FormatInt(id, 10)
}
