// Package remote es el cliente HTTP de la API de CJStore. Cada endpoint devuelve su DTO
// tipado; las respuestas no 2xx se convierten en *APIError.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
)

// GenericErrorMessage mensaje usado cuando el servidor no devuelve uno legible.
const GenericErrorMessage = "no se pudo completar la solicitud"

const maxBody = 10 << 20

// ErrResponseTooLarge la respuesta supera maxBody; nunca se devuelve truncada.
var ErrResponseTooLarge = errors.New("remote: respuesta demasiado grande")

// APIError respuesta de error del servidor.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api %d: %s", e.Status, e.Message)
}

// StatusOf devuelve el status HTTP de un *APIError, o 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Client cliente de la API. token se consulta en cada request; vacío = sin Authorization.
type Client struct {
	baseURL    string
	token      func() string
	httpClient *http.Client
}

// NewClient baseURL sin el sufijo /api, p. ej. http://localhost:8080.
func NewClient(baseURL string, token func() string) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("remote: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	raw, err := c.send(ctx, method, path, contentType, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	return jsonUnmarshal(raw, out)
}

func jsonUnmarshal(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("remote: deserializar respuesta: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, body)
	if err != nil {
		return nil, fmt.Errorf("remote: crear request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("remote: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("remote: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("remote: leer respuesta: %w", err)
	}
	if len(raw) > maxBody {
		return nil, fmt.Errorf("%w (%s %s)", ErrResponseTooLarge, method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp.StatusCode, raw)
	}
	return raw, nil
}

func decodeError(status int, raw []byte) *APIError {
	apiErr := &APIError{Status: status, Message: GenericErrorMessage}
	var body dto.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Code = body.Code
		if strings.TrimSpace(body.Message) != "" {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}

func escape(s string) string { return url.PathEscape(s) }

// ── Auth ──────────────────────────────────────────────────────────────────────

func (c *Client) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	in := dto.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LinkStore asocia la sesión a una tienda y devuelve el token renovado.
func (c *Client) LinkStore(ctx context.Context, storeID string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	in := map[string]string{"storeId": storeID}
	if err := c.do(ctx, http.MethodPost, "/auth/link-store", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Tiendas ───────────────────────────────────────────────────────────────────

func (c *Client) ListStores(ctx context.Context) ([]dto.StoreResponse, error) {
	var out []dto.StoreResponse
	if err := c.do(ctx, http.MethodGet, "/stores", nil, &out); err != nil {
		return nil, err
	}
	for i := range out {
		withStoreDefaults(&out[i])
	}
	if out == nil {
		out = []dto.StoreResponse{}
	}
	return out, nil
}

func (c *Client) GetStore(ctx context.Context, slug string) (*dto.StoreResponse, error) {
	var out dto.StoreResponse
	if err := c.do(ctx, http.MethodGet, "/stores/"+escape(slug), nil, &out); err != nil {
		return nil, err
	}
	withStoreDefaults(&out)
	return &out, nil
}

func (c *Client) CreateStore(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	var out dto.StoreResponse
	if err := c.do(ctx, http.MethodPost, "/stores", in, &out); err != nil {
		return nil, err
	}
	withStoreDefaults(&out)
	return &out, nil
}

func (c *Client) UpdateStore(ctx context.Context, id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	var out dto.StoreResponse
	if err := c.do(ctx, http.MethodPut, "/stores/"+escape(id), in, &out); err != nil {
		return nil, err
	}
	withStoreDefaults(&out)
	return &out, nil
}

func (c *Client) SuggestSlug(ctx context.Context, name string) (*dto.SlugSuggestionResponse, error) {
	var out dto.SlugSuggestionResponse
	path := "/stores/slug-suggestion?name=" + url.QueryEscape(name)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SlugAvailable(ctx context.Context, slug string) (bool, error) {
	var out dto.SlugSuggestionResponse
	path := "/stores/slug-available?slug=" + url.QueryEscape(slug)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return false, err
	}
	return out.Available, nil
}

// CatalogPDF descarga la lista de precios de la tienda.
func (c *Client) CatalogPDF(ctx context.Context, storeID string) ([]byte, error) {
	return c.send(ctx, http.MethodGet, "/stores/"+escape(storeID)+"/catalog.pdf", "", nil)
}

// ── Productos ─────────────────────────────────────────────────────────────────

func (c *Client) ListProducts(ctx context.Context, storeID string) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, "/products/store/"+escape(storeID), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []dto.ProductResponse{}
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, "/products/"+escape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPost, "/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPut, "/products/"+escape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+escape(id), nil, nil)
}

// ── Storefront ────────────────────────────────────────────────────────────────

// StorefrontQuery filtros de la vitrina pública.
type StorefrontQuery struct {
	Query    string
	Category string
	Sort     string
}

func (c *Client) Storefront(ctx context.Context, slug string, q StorefrontQuery) (*dto.StorefrontResponse, error) {
	params := url.Values{}
	if q.Query != "" {
		params.Set("q", q.Query)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	path := "/storefront/" + escape(slug)
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out dto.StorefrontResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	withStoreDefaults(&out.Store)
	if out.Products == nil {
		out.Products = []dto.ProductResponse{}
	}
	if out.Categories == nil {
		out.Categories = []string{}
	}
	return &out, nil
}

func (c *Client) ProductDetail(ctx context.Context, slug, id string) (*dto.ProductDetailResponse, error) {
	var out dto.ProductDetailResponse
	path := "/storefront/" + escape(slug) + "/products/" + escape(id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	withStoreDefaults(&out.Store)
	return &out, nil
}

func (c *Client) ContactLink(ctx context.Context, slug string) (string, error) {
	var out dto.ContactLinkResponse
	if err := c.do(ctx, http.MethodGet, "/storefront/"+escape(slug)+"/contact", nil, &out); err != nil {
		return "", err
	}
	return out.Link, nil
}

func (c *Client) Features(ctx context.Context) (map[string]bool, error) {
	var out dto.FeaturesResponse
	if err := c.do(ctx, http.MethodGet, "/features", nil, &out); err != nil {
		return nil, err
	}
	if out.Features == nil {
		out.Features = map[string]bool{}
	}
	return out.Features, nil
}

func (c *Client) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	var out dto.DashboardResponse
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, &out); err != nil {
		return nil, err
	}
	withStoreDefaults(&out.Store)
	if out.LowStockProducts == nil {
		out.LowStockProducts = []dto.ProductResponse{}
	}
	return &out, nil
}

// ── Pagos ─────────────────────────────────────────────────────────────────────

func (c *Client) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	var out dto.CreateOrderResponse
	if err := c.do(ctx, http.MethodPost, "/payments/create-order", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyPayment(ctx context.Context, in dto.VerifyPaymentRequest) (bool, error) {
	var out dto.VerifyPaymentResponse
	if err := c.do(ctx, http.MethodPost, "/payments/verify-payment", in, &out); err != nil {
		return false, err
	}
	return out.Verified, nil
}

// withStoreDefaults completa campos que el servidor pudo omitir.
func withStoreDefaults(s *dto.StoreResponse) {
	if s.Theme == "" {
		s.Theme = "light"
	}
}
