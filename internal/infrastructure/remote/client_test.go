package remote_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/infrastructure/remote"
)

func newServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_LoginEnviaCredenciales(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		var in dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "demo@cjstore.com", in.Email)
		writeJSON(w, http.StatusOK, dto.LoginResponse{Token: "tok", User: dto.UserResponse{ID: "u1", StoreID: "s1"}})
	})

	c := remote.NewClient(srv.URL, nil)
	out, err := c.Login(context.Background(), "demo@cjstore.com", "demo123")
	require.NoError(t, err)
	assert.Equal(t, "tok", out.Token)
	assert.Equal(t, "s1", out.User.StoreID)
}

func TestClient_EnviaBearerToken(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, dto.UserResponse{ID: "u1"})
	})

	c := remote.NewClient(srv.URL+"/", func() string { return "abc" })
	me, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", me.ID)
}

func TestClient_ErrorConMensajeDelServidor(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, dto.ErrorResponse{Code: "SLUG_TAKEN", Message: "el slug ya está en uso"})
	})

	c := remote.NewClient(srv.URL, nil)
	_, err := c.CreateStore(context.Background(), dto.CreateStoreRequest{Name: "Fashion Hub"})
	require.Error(t, err)

	var apiErr *remote.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "SLUG_TAKEN", apiErr.Code)
	assert.Equal(t, "el slug ya está en uso", apiErr.Message)
	assert.Equal(t, http.StatusConflict, remote.StatusOf(err))
}

func TestClient_ErrorIlegibleUsaMensajeGenerico(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	})

	c := remote.NewClient(srv.URL, nil)
	_, err := c.ListStores(context.Background())
	var apiErr *remote.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, remote.GenericErrorMessage, apiErr.Message)
	assert.Equal(t, 0, remote.StatusOf(assert.AnError))
}

func TestClient_RellenaCamposFaltantes(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"store":{"id":"s1","slug":"fashion-hub"},"category":"All"}`)
	})

	c := remote.NewClient(srv.URL, nil)
	out, err := c.Storefront(context.Background(), "fashion-hub", remote.StorefrontQuery{})
	require.NoError(t, err)
	assert.Equal(t, "light", out.Store.Theme)
	assert.NotNil(t, out.Products)
	assert.Empty(t, out.Products)
	assert.NotNil(t, out.Categories)
}

func TestClient_StorefrontQueryParams(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/storefront/fashion-hub", r.URL.Path)
		assert.Equal(t, "tee", r.URL.Query().Get("q"))
		assert.Equal(t, "T-Shirts", r.URL.Query().Get("category"))
		assert.Equal(t, "price-asc", r.URL.Query().Get("sort"))
		writeJSON(w, http.StatusOK, dto.StorefrontResponse{Products: []dto.ProductResponse{{ID: "p1", Price: decimal.NewFromInt(599)}}})
	})

	c := remote.NewClient(srv.URL, nil)
	out, err := c.Storefront(context.Background(), "fashion-hub", remote.StorefrontQuery{Query: "tee", Category: "T-Shirts", Sort: "price-asc"})
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.True(t, out.Products[0].Price.Equal(decimal.NewFromInt(599)))
}

func TestClient_DeleteProduct(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/products/p1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	c := remote.NewClient(srv.URL, nil)
	require.NoError(t, c.DeleteProduct(context.Background(), "p1"))
}

func TestClient_UploadImage(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/p1/image", r.URL.Path)
		f, hdr, err := r.FormFile(remote.ImageField)
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "tee.png", hdr.Filename)
		assert.Equal(t, "image/png", hdr.Header.Get("Content-Type"))
		assert.Equal(t, "png", string(data))
		writeJSON(w, http.StatusOK, dto.ImageUploadResponse{Image: "/images/products/s1/p1.png"})
	})

	c := remote.NewClient(srv.URL, nil)
	url, err := c.UploadImage(context.Background(), "p1", "tee.png", "image/png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "/images/products/s1/p1.png", url)
}

func TestClient_ContextCancelado(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dto.FeaturesResponse{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := remote.NewClient(srv.URL, nil)
	_, err := c.Features(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_RespuestaDemasiadoGrandeEsError(t *testing.T) {
	const limit = 10 << 20
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		size := limit
		if strings.Contains(r.URL.Path, "grande") {
			size = limit + 1
		}
		_, _ = w.Write(bytes.Repeat([]byte{'x'}, size))
	})
	c := remote.NewClient(srv.URL, nil)

	pdf, err := c.CatalogPDF(context.Background(), "justo")
	require.NoError(t, err)
	assert.Len(t, pdf, limit)

	pdf, err = c.CatalogPDF(context.Background(), "grande")
	assert.ErrorIs(t, err, remote.ErrResponseTooLarge)
	assert.Nil(t, pdf)
}
