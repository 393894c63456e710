package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casuarinas/backend/pkg/config"
	"github.com/casuarinas/backend/pkg/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	srv      *Server
	products *repository.MemoryProductRepository
	clients  *repository.MemoryClientRepository
	orders   *repository.MemoryOrderRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	products := repository.NewMemoryProductRepository()
	clients := repository.NewMemoryClientRepository()
	orders := repository.NewMemoryOrderRepository()

	cfg := &config.Config{}
	cfg.Server.Name = "casuarinas-backend-test"

	srv := New(cfg, zap.NewNop(), products, clients, orders, nil, nil)
	srv.SetupRoutes()

	return &testEnv{srv: srv, products: products, clients: clients, orders: orders}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.srv.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
