package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaia/planner/internal/domain"
	"github.com/rmaia/planner/internal/handler"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create  func(ctx context.Context, destination string, startsAt, endsAt time.Time, inviteEmails []string) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update  func(ctx context.Context, id uuid.UUID, destination string, startsAt, endsAt time.Time) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, destination string, startsAt, endsAt time.Time, inviteEmails []string) (domain.Trip, error) {
	return m.create(ctx, destination, startsAt, endsAt, inviteEmails)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) Update(ctx context.Context, id uuid.UUID, destination string, startsAt, endsAt time.Time) (domain.Trip, error) {
	return m.update(ctx, id, destination, startsAt, endsAt)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into the chi router,
// mirroring how main.go wires it in production. Nil mocks are fine for
// endpoints the test never hits.
func newHTTPHandler(trips handler.TripServicer, activities handler.ActivityServicer, participants handler.ParticipantServicer) http.Handler {
	return handler.NewServer(trips, activities, participants).Routes()
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          uuid.New(),
		Destination: "Florianópolis",
		StartsAt:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func doRequest(t *testing.T, h http.Handler, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

// ---- POST /trips -----------------------------------------------------------

func TestCreateTrip_201(t *testing.T) {
	fixture := tripFixture()
	var gotInvites []string
	trips := &mockTripServicer{
		create: func(_ context.Context, dest string, _, _ time.Time, invites []string) (domain.Trip, error) {
			assert.Equal(t, "Florianópolis", dest)
			gotInvites = invites
			return fixture, nil
		},
	}
	h := newHTTPHandler(trips, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/trips", jsonBody(t, map[string]any{
		"destination":      "Florianópolis",
		"starts_at":        "2024-03-10T00:00:00Z",
		"ends_at":          "2024-03-15T00:00:00Z",
		"emails_to_invite": []string{"alice@example.com"},
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"alice@example.com"}, gotInvites)

	var body struct {
		TripID uuid.UUID `json:"trip_id"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, fixture.ID, body.TripID)
}

func TestCreateTrip_422_Validation(t *testing.T) {
	trips := &mockTripServicer{
		create: func(_ context.Context, _ string, _, _ time.Time, _ []string) (domain.Trip, error) {
			return domain.Trip{}, domain.ValidateDestination("Flo")
		},
	}
	h := newHTTPHandler(trips, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/trips", jsonBody(t, map[string]any{
		"destination": "Flo",
		"starts_at":   "2024-03-10T00:00:00Z",
		"ends_at":     "2024-03-15T00:00:00Z",
	}))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "validation_error", body.Error.Code)
	assert.NotEmpty(t, body.Error.Message)
}

func TestCreateTrip_422_MessagePreservedVerbatim(t *testing.T) {
	// The user-facing detail may itself contain colons or quotes; it must
	// reach the client untouched rather than being truncated by error
	// string parsing.
	const detail = `invalid invite email "Alice: alice@example"`
	trips := &mockTripServicer{
		create: func(_ context.Context, _ string, _, _ time.Time, _ []string) (domain.Trip, error) {
			return domain.Trip{}, domain.Errorf(domain.ErrValidation, detail)
		},
	}
	h := newHTTPHandler(trips, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/trips", jsonBody(t, map[string]any{
		"destination": "Florianópolis",
		"starts_at":   "2024-03-10T00:00:00Z",
		"ends_at":     "2024-03-15T00:00:00Z",
	}))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, detail, body.Error.Message)
}

func TestCreateTrip_400_MalformedBody(t *testing.T) {
	h := newHTTPHandler(&mockTripServicer{}, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/trips", bytes.NewBufferString("{not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTrip_400_UnknownField(t *testing.T) {
	h := newHTTPHandler(&mockTripServicer{}, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/trips", jsonBody(t, map[string]any{
		"destinatino": "Florianópolis",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- GET /trips/{tripID} ---------------------------------------------------

func TestGetTrip_200(t *testing.T) {
	fixture := tripFixture()
	trips := &mockTripServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}
	h := newHTTPHandler(trips, nil, nil)

	rec := doRequest(t, h, http.MethodGet, "/trips/"+fixture.ID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Trip struct {
			ID          uuid.UUID `json:"id"`
			Destination string    `json:"destination"`
			IsConfirmed bool      `json:"is_confirmed"`
		} `json:"trip"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, fixture.ID, body.Trip.ID)
	assert.Equal(t, "Florianópolis", body.Trip.Destination)
}

func TestGetTrip_404(t *testing.T) {
	trips := &mockTripServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	h := newHTTPHandler(trips, nil, nil)

	rec := doRequest(t, h, http.MethodGet, "/trips/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTrip_400_BadID(t *testing.T) {
	h := newHTTPHandler(&mockTripServicer{}, nil, nil)

	rec := doRequest(t, h, http.MethodGet, "/trips/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- PUT /trips/{tripID} ---------------------------------------------------

func TestUpdateTrip_200(t *testing.T) {
	fixture := tripFixture()
	fixture.Destination = "Gramado"
	trips := &mockTripServicer{
		update: func(_ context.Context, id uuid.UUID, dest string, _, _ time.Time) (domain.Trip, error) {
			assert.Equal(t, fixture.ID, id)
			assert.Equal(t, "Gramado", dest)
			return fixture, nil
		},
	}
	h := newHTTPHandler(trips, nil, nil)

	rec := doRequest(t, h, http.MethodPut, "/trips/"+fixture.ID.String(), jsonBody(t, map[string]any{
		"destination": "Gramado",
		"starts_at":   "2024-03-10T00:00:00Z",
		"ends_at":     "2024-03-15T00:00:00Z",
	}))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Trip struct {
			Destination string `json:"destination"`
		} `json:"trip"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "Gramado", body.Trip.Destination)
}

// ---- DELETE /trips/{tripID} ------------------------------------------------

func TestDeleteTrip_204(t *testing.T) {
	id := uuid.New()
	trips := &mockTripServicer{
		delete: func(_ context.Context, got uuid.UUID) error {
			assert.Equal(t, id, got)
			return nil
		},
	}
	h := newHTTPHandler(trips, nil, nil)

	rec := doRequest(t, h, http.MethodDelete, "/trips/"+id.String(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteTrip_404(t *testing.T) {
	trips := &mockTripServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	}
	h := newHTTPHandler(trips, nil, nil)

	rec := doRequest(t, h, http.MethodDelete, "/trips/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- error mapping ---------------------------------------------------------

func TestGetTrip_500_OpaqueError(t *testing.T) {
	trips := &mockTripServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, errors.New("connection refused to 10.0.0.5:5432")
		},
	}
	h := newHTTPHandler(trips, nil, nil)

	rec := doRequest(t, h, http.MethodGet, "/trips/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internal detail must not leak to the client.
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}
