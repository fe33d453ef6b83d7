package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "slot_machine/internal/api/dto/game"
	"slot_machine/internal/repository/txnoop"
)

func newTestProvider(t *testing.T) *ServiceProvider {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("LEADERBOARD_DRIVER", "file")
	t.Setenv("SAVE_PATH", filepath.Join(dir, "save.json"))
	t.Setenv("LEADERBOARD_PATH", filepath.Join(dir, "leaderboard.json"))
	t.Setenv("STORE_CONFIG", filepath.Join(dir, "store.yaml"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("PLAYER_NAME", "Router")

	sp := newServiceProvider()
	t.Cleanup(sp.Close)
	return sp
}

func TestRouter_FileStorage(t *testing.T) {
	ctx := context.Background()
	r := newTestProvider(t).Router(ctx)

	call := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
		return rec
	}

	rec := call(http.MethodGet, "/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var state dto.StateResponse
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "Router", state.Player)
	assert.Equal(t, 100, state.State.Balance)

	rec = call(http.MethodPost, "/spin", `{"bet": 5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var spin dto.SpinResponse
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &spin))
	assert.Len(t, spin.Grid, 7)
	assert.Equal(t, 1+len(spin.FreeSpins), spin.State.Stats.Spins)

	assert.Equal(t, http.StatusBadRequest, call(http.MethodPost, "/spin", `{"bet": 0}`).Code)
	assert.Equal(t, http.StatusOK, call(http.MethodGet, "/store", "").Code)
	assert.Equal(t, http.StatusBadRequest, call(http.MethodPost, "/store/buy", `{"item": "nothing"}`).Code)
	assert.Equal(t, http.StatusOK, call(http.MethodGet, "/leaderboard", "").Code)
	assert.Equal(t, http.StatusOK, call(http.MethodGet, "/stats", "").Code)
	assert.Equal(t, http.StatusOK, call(http.MethodPost, "/reset", "").Code)
	assert.Equal(t, http.StatusOK, call(http.MethodPost, "/quit", "").Code)
	assert.NotEmpty(t, call(http.MethodGet, "/state", "").Header().Get("Content-Type"))
}

func TestSessionTXManager_FileStorageIsIndependent(t *testing.T) {
	sp := newTestProvider(t)
	assert.IsType(t, txnoop.Manager{}, sp.SessionTXManager(context.Background()))
}
