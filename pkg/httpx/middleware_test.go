package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(okHandler(), mark("outer"), mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		method      string
		origin      string
		preflight   bool
		wantStatus  int
		wantAllowed string
	}{
		{"no origin header", []string{"*"}, http.MethodPost, "", false, http.StatusOK, ""},
		{"wildcard", []string{"*"}, http.MethodPost, "https://app.example", false, http.StatusOK, "*"},
		{"listed origin", []string{"https://app.example"}, http.MethodPost, "https://app.example", false, http.StatusOK, "https://app.example"},
		{"unlisted origin", []string{"https://app.example"}, http.MethodPost, "https://evil.example", false, http.StatusOK, ""},
		{"preflight", []string{"*"}, http.MethodOptions, "https://app.example", true, http.StatusNoContent, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCORSConfig()
			cfg.AllowedOrigins = tt.origins
			h := Chain(okHandler(), CORS(cfg))

			req := httptest.NewRequest(tt.method, "/api/register", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.preflight {
				require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
				require.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
			}
		})
	}
}

func TestCORS_VaryAndExposedHeaders(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowedOrigins = []string{" https://app.example ", ""}
	h := Chain(okHandler(), CORS(cfg))

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Values("Vary"), "Origin")
	require.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
}

func TestSecureHeaders(t *testing.T) {
	h := Chain(okHandler(), SecureHeaders(false))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/home", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]string{"message": "ok"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"message":"ok"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Username string `json:"username"`
	}

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"valid", `{"username":"johnwick"}`, false},
		{"unknown fields tolerated", `{"username":"johnwick","extra":1}`, false},
		{"empty", ``, true},
		{"malformed", `{"username":`, true},
		{"trailing data", `{"username":"a"}{"username":"b"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload))
			var dst body
			err := DecodeJSON(httptest.NewRecorder(), req, &dst)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidJSON)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "johnwick", dst.Username)
		})
	}
}
