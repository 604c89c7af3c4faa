package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaia/planner/internal/cli"
)

// runCommand executes the root command with the given args and scripted
// stdin, returning everything written to stdout.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestCreateCommand_Confirmed(t *testing.T) {
	tripID := uuid.New()
	var created bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/trips", r.URL.Path)
		created = true
		writeJSON(t, w, http.StatusCreated, map[string]uuid.UUID{"trip_id": tripID})
	}))
	t.Cleanup(srv.Close)

	out, err := runCommand(t, "y\n",
		"create", "Florianópolis",
		"--from", "2024-03-10", "--to", "2024-03-15",
		"--invite", "alice@example.com",
		"--api", srv.URL, "--data-dir", t.TempDir(),
	)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Contains(t, out, "Confirmar viagem?")
	assert.Contains(t, out, tripID.String())
}

func TestCreateCommand_Declined(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(srv.Close)

	out, err := runCommand(t, "n\n",
		"create", "Florianópolis",
		"--from", "2024-03-10", "--to", "2024-03-15",
		"--api", srv.URL, "--data-dir", t.TempDir(),
	)

	require.NoError(t, err)
	assert.False(t, called, "declining must not hit the API")
	assert.Contains(t, out, "Viagem não criada.")
}

func TestCreateCommand_ShortDestination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(srv.Close)

	_, err := runCommand(t, "y\n",
		"create", "Flo",
		"--from", "2024-03-10", "--to", "2024-03-15",
		"--api", srv.URL, "--data-dir", t.TempDir(),
	)

	require.Error(t, err)
}

func TestShowCommand(t *testing.T) {
	tripID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/trips/" + tripID.String():
			writeJSON(t, w, http.StatusOK, map[string]any{
				"trip": map[string]any{
					"id":          tripID,
					"destination": "Florianópolis",
					"starts_at":   "2024-03-10T00:00:00Z",
					"ends_at":     "2024-03-11T00:00:00Z",
				},
			})
		case "/trips/" + tripID.String() + "/activities":
			writeJSON(t, w, http.StatusOK, map[string]any{
				"activities": []map[string]any{
					{"date": "2024-03-10", "activities": []map[string]any{
						{"id": uuid.New(), "trip_id": tripID, "title": "City tour", "occurs_at": "2024-03-10T14:00:00Z"},
					}},
					{"date": "2024-03-11", "activities": []map[string]any{}},
				},
			})
		case "/trips/" + tripID.String() + "/participants":
			writeJSON(t, w, http.StatusOK, map[string]any{
				"participants": []map[string]any{
					{"id": uuid.New(), "trip_id": tripID, "name": "Alice", "email": "alice@example.com", "is_confirmed": true},
					{"id": uuid.New(), "trip_id": tripID, "email": "bob@example.com", "is_confirmed": false},
				},
			})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	out, err := runCommand(t, "",
		"show", tripID.String(),
		"--api", srv.URL, "--data-dir", t.TempDir(),
	)

	require.NoError(t, err)
	assert.Contains(t, out, "Florianópolis de 10 a 11 de março.")
	assert.Contains(t, out, "City tour")
	assert.Contains(t, out, "Nenhuma atividade cadastrada nessa data.")
	assert.Contains(t, out, "Alice <alice@example.com> (confirmado)")
	assert.Contains(t, out, "bob@example.com <bob@example.com> (pendente)")
}

func TestTripsCommand_Empty(t *testing.T) {
	out, err := runCommand(t, "", "trips", "--data-dir", t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, out, "Nenhuma viagem salva.")
}

func TestRemoveCommand_Declined(t *testing.T) {
	tripID := uuid.New()
	var deleted bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/trips/"+tripID.String():
			writeJSON(t, w, http.StatusOK, map[string]any{
				"trip": map[string]any{
					"id":          tripID,
					"destination": "Florianópolis",
					"starts_at":   "2024-03-10T00:00:00Z",
					"ends_at":     "2024-03-11T00:00:00Z",
				},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/trips/"+tripID.String()+"/activities":
			writeJSON(t, w, http.StatusOK, map[string]any{"activities": []any{}})
		case r.Method == http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	t.Cleanup(srv.Close)

	out, err := runCommand(t, "n\n",
		"remove", tripID.String(),
		"--api", srv.URL, "--data-dir", t.TempDir(),
	)

	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Contains(t, out, "Viagem mantida.")
}
