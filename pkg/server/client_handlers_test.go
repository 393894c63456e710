package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/casuarinas/backend/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedClients(t *testing.T, env *testEnv, clients ...models.Client) {
	t.Helper()
	for i := range clients {
		require.NoError(t, env.clients.Save(context.Background(), &clients[i]))
	}
}

func TestListClientsByLocality(t *testing.T) {
	env := newTestEnv(t)
	seedClients(t, env,
		models.Client{Name: "Ana", Locality: "Pocitos"},
		models.Client{Name: "Bruno", Locality: "Carrasco"},
		models.Client{Name: "Carla", Locality: "Pocitos"},
	)

	w := env.do(t, http.MethodGet, "/api/clients?locality=Pocitos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var filtered []models.Client
	decodeJSON(t, w, &filtered)
	assert.Len(t, filtered, 2)

	// No filter lists everyone
	w = env.do(t, http.MethodGet, "/api/clients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []models.Client
	decodeJSON(t, w, &all)
	assert.Len(t, all, 3)
}

func TestClientCRUD(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/clients", map[string]interface{}{
		"name":     "Ana García",
		"phone":    "099123456",
		"address":  "Av. Brasil 1234",
		"locality": "Pocitos",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Client
	decodeJSON(t, w, &created)
	require.NotZero(t, created.ID)

	w = env.do(t, http.MethodPut, "/api/clients/1", map[string]interface{}{
		"name":     "Ana García",
		"phone":    "099654321",
		"address":  "Av. Brasil 1234",
		"locality": "Pocitos",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Client
	decodeJSON(t, w, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "099654321", updated.Phone)

	w = env.do(t, http.MethodDelete, "/api/clients/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/clients/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestCreateClientRejectsMissingName(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/clients", map[string]interface{}{
		"locality": "Carrasco",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
