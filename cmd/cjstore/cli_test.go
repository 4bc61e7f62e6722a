package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
)

const testToken = "tok-1"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var demoUser = dto.UserResponse{ID: "u1", OwnerName: "Demo", Email: "demo@cjstore.com", Role: "merchant", StoreID: "s1", Slug: "fashion-hub"}

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	products := []dto.ProductResponse{
		{ID: "p1", StoreID: "s1", Name: "Vestido", Category: "Ropa", Price: decimal.NewFromInt(599), Stock: 50, Active: true},
		{ID: "p2", StoreID: "s1", Name: "Bolso", Category: "Accesorios", Price: decimal.NewFromInt(120), Stock: 0, Active: true},
		{ID: "p3", StoreID: "s1", Name: "Abrigo", Category: "Ropa", Price: decimal.NewFromInt(900), Stock: 3, Active: false},
	}
	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+testToken {
				writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token requerido"})
				return
			}
			h(w, r)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in dto.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Password != "demo123" {
			writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "email o contraseña inválidos"})
			return
		}
		writeJSON(w, http.StatusOK, dto.LoginResponse{Token: testToken, User: demoUser})
	})
	mux.HandleFunc("GET /api/auth/me", authed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, demoUser)
	}))
	mux.HandleFunc("GET /api/products/store/{id}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, products)
	})
	mux.HandleFunc("GET /api/storefront/{slug}/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		for _, p := range products {
			if p.ID != r.PathValue("id") {
				continue
			}
			out := dto.ProductDetailResponse{Product: p, Purchasable: p.Stock > 0}
			if out.Purchasable {
				out.OrderLink = "https://wa.me/5215512345678?text=Hola"
			}
			writeJSON(w, http.StatusOK, out)
			return
		}
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func setupCLI(t *testing.T) {
	t.Helper()
	srv := fakeAPI(t)
	t.Setenv("CJSTORE_API_URL", srv.URL)
	t.Setenv("CJSTORE_SESSION_PATH", filepath.Join(t.TempDir(), "session.db"))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd, cleanup := newRootCmd()
	defer cleanup()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_LoginPersisteSesion(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "whoami")
	require.Error(t, err)

	out, err := run(t, "login", "--email", "demo@cjstore.com", "--password", "demo123")
	require.NoError(t, err)
	assert.Contains(t, out, "Hola, Demo")

	out, err = run(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "demo@cjstore.com")

	_, err = run(t, "logout")
	require.NoError(t, err)
	_, err = run(t, "whoami")
	require.Error(t, err)
}

func TestCLI_LoginFallidoMuestraMensaje(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "login", "--email", "demo@cjstore.com", "--password", "x")
	require.Error(t, err)
	assert.Equal(t, "email o contraseña inválidos", err.Error())
}

func TestCLI_ProductsListFiltraYOrdena(t *testing.T) {
	setupCLI(t)
	_, err := run(t, "login", "--email", "demo@cjstore.com", "--password", "demo123")
	require.NoError(t, err)

	out, err := run(t, "products", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Abrigo")

	out, err = run(t, "products", "list", "--category", "Ropa")
	require.NoError(t, err)
	assert.Contains(t, out, "Vestido")
	assert.NotContains(t, out, "Bolso")
	assert.NotContains(t, out, "Abrigo", "los inactivos no pasan el filtro")

	out, err = run(t, "products", "list", "--sort", "price-asc")
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte("Bolso")), bytes.Index([]byte(out), []byte("Vestido")))
}

func TestCLI_OrderLink(t *testing.T) {
	setupCLI(t)

	out, err := run(t, "order-link", "fashion-hub", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, "https://wa.me/5215512345678")

	_, err = run(t, "order-link", "fashion-hub", "p2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agotado")

	_, err = run(t, "order-link", "fashion-hub", "nope")
	require.Error(t, err)
	assert.Equal(t, "producto no encontrado", err.Error())
}

func TestCLI_ProductsSinSesion(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "products", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cjstore login")
}
