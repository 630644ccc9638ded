package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/stylesense/internal/config"
	"github.com/jonathan/stylesense/internal/kv"
	"github.com/jonathan/stylesense/internal/server/ratelimit"
	"github.com/jonathan/stylesense/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedChooser always picks the same index.
type fixedChooser int

func (c fixedChooser) IntN(n int) int {
	return int(c) % n
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return newTestServerWith(t, Config{})
}

func newTestServerWith(t *testing.T, cfg Config) *Server {
	t.Helper()
	if cfg.Store == nil {
		cfg.Store = kv.NewMemory()
	}
	if cfg.Chooser == nil {
		cfg.Chooser = fixedChooser(1)
	}
	if cfg.Password == nil {
		cfg.Password = &config.PasswordConfig{BcryptCost: 10}
	}
	if cfg.JWT == nil {
		cfg.JWT = &config.JWTConfig{Secret: testJWTSecret, ExpirationHours: 24}
	}
	if cfg.RateLimit == nil {
		cfg.RateLimit = &ratelimit.Config{Enabled: false}
	}

	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestNew_RequiresDependencies(t *testing.T) {
	pw := &config.PasswordConfig{BcryptCost: 10}
	jwtCfg := &config.JWTConfig{Secret: testJWTSecret, ExpirationHours: 1}

	_, err := New(Config{Password: pw, JWT: jwtCfg})
	assert.Error(t, err)
	_, err = New(Config{Store: kv.NewMemory(), JWT: jwtCfg})
	assert.Error(t, err)
	_, err = New(Config{Store: kv.NewMemory(), Password: pw})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, w)["status"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDPropagated(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestListCategories(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodGet, "/v1/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[CategoriesResponse](t, w)
	assert.Equal(t, types.Categories(), resp.Categories)
	assert.Contains(t, w.Body.String(), `"Casual"`)
}

func TestCategoryOutfits(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodGet, "/v1/categories/summer/outfits", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[types.CategoryOutfits](t, w)
	assert.Equal(t, types.CategorySummer, resp.Category)
	assert.NotEmpty(t, resp.Primary.Items)
	assert.NotEmpty(t, resp.Additional)

	again := doRequest(t, s.Handler(), http.MethodGet, "/v1/categories/Summer/outfits", nil, "")
	assert.Equal(t, w.Body.String(), again.Body.String(), "category-exact mode is deterministic")
}

func TestCategoryOutfits_Unknown(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodGet, "/v1/categories/gala/outfits", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "outfit category not found: gala")
}

func TestTry(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodGet, "/v1/try", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[TryResponse](t, w)
	require.Len(t, resp.Results, 6)
	for i, c := range types.Categories() {
		assert.Equal(t, c, resp.Results[i].Category)
	}
}

func TestReferenceEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodGet, "/v1/reference/skin-tones", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	tones := decode[SkinTonesResponse](t, w)
	require.Len(t, tones.SkinTones, 3)
	assert.Equal(t, types.SkinToneFair, tones.SkinTones[0].SkinTone)

	w = doRequest(t, s.Handler(), http.MethodGet, "/v1/reference/body-types", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	bodies := decode[BodyTypesResponse](t, w)
	require.Len(t, bodies.BodyTypes, 4)
	assert.Equal(t, types.BodyTypePlusSize, bodies.BodyTypes[3].BodyType)
	assert.Contains(t, w.Body.String(), `"dos"`)
}

func TestRecommend(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body any
	}{
		{name: "full attributes", body: types.Attributes{Height: "180", SkinTone: "Dark", Weather: "rainy"}},
		{name: "unknown values", body: map[string]string{"skinTone": "Olive", "bodyType": "Tall"}},
		{name: "empty object", body: map[string]string{}},
		{name: "no body", body: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, s.Handler(), http.MethodPost, "/v1/recommendations", tt.body, "")
			require.Equal(t, http.StatusOK, w.Code)

			got := decode[types.Suggestion](t, w)
			assert.Equal(t, "Business Casual Ensemble", got.OutfitName, "fixed chooser picks index 1 regardless of input")
		})
	}
}

func TestRecommend_MalformedBody(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodPost, "/v1/recommendations", "{not json", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodDelete, "/v1/categories", nil, "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCORS(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodOptions, "/v1/auth/login", nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestRateLimit(t *testing.T) {
	s := newTestServerWith(t, Config{RateLimit: &ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Hour,
	}})

	for i := 0; i < 2; i++ {
		w := doRequest(t, s.Handler(), http.MethodGet, "/v1/categories", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := doRequest(t, s.Handler(), http.MethodGet, "/v1/categories", nil, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "rate_limit_exceeded", decode[map[string]any](t, w)["error"])

	w = doRequest(t, s.Handler(), http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code, "health is never limited")
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
