package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/malyshevd/PhotoBooker/internal/domain"
	"github.com/malyshevd/PhotoBooker/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		Name:        "A",
		Email:       "a@b.com",
		Phone:       "123",
		ServiceID:   "svc1",
		BookingDate: "2025-07-10",
		StartTime:   "10:00 AM",
		EndTime:     "12:00",
		Occasion:    "Birthday",
		Notes:       "gate code 4411",
	}
}

func TestClient_Submit_Success(t *testing.T) {
	creds := mocks.NewMockCredentialProvider(t)
	creds.EXPECT().CurrentToken(mock.Anything).Return("tok-123", nil)

	var got domain.BookingRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Booking received"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, creds, newTestLogger(t))

	receipt, err := c.Submit(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, "Booking received", receipt.Message)
	assert.Equal(t, "Bearer tok-123", auth)
	assert.Equal(t, "2025-07-10", got.BookingDate)
	assert.Equal(t, "10:00 AM", got.StartTime)
	assert.Equal(t, "12:00", got.EndTime)
}

func TestClient_Submit_AnonymousWithoutToken(t *testing.T) {
	creds := mocks.NewMockCredentialProvider(t)
	creds.EXPECT().CurrentToken(mock.Anything).Return("", nil)

	var auth string
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, creds, newTestLogger(t))

	receipt, err := c.Submit(context.Background(), testRequest())

	require.NoError(t, err)
	assert.NotNil(t, receipt)
	assert.Empty(t, auth)
	assert.False(t, hasAuth)
}

func TestClient_Submit_TokenLookupFailureDowngrades(t *testing.T) {
	creds := mocks.NewMockCredentialProvider(t)
	creds.EXPECT().CurrentToken(mock.Anything).Return("", assert.AnError)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, creds, newTestLogger(t))

	_, err := c.Submit(context.Background(), testRequest())

	require.NoError(t, err)
}

func TestClient_Submit_ServerErrorMessage(t *testing.T) {
	creds := mocks.NewMockCredentialProvider(t)
	creds.EXPECT().CurrentToken(mock.Anything).Return("", nil)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Slot already taken"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, creds, newTestLogger(t))

	_, err := c.Submit(context.Background(), testRequest())

	require.Error(t, err)
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusConflict, remote.StatusCode)
	assert.Equal(t, "Slot already taken", remote.Message)
}

func TestClient_Submit_ServerErrorWithoutBody(t *testing.T) {
	creds := mocks.NewMockCredentialProvider(t)
	creds.EXPECT().CurrentToken(mock.Anything).Return("", nil)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, creds, newTestLogger(t))

	_, err := c.Submit(context.Background(), testRequest())

	require.Error(t, err)
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Empty(t, remote.Message)
	assert.Contains(t, remote.Error(), "500")
}

func TestClient_Submit_TransportError(t *testing.T) {
	creds := mocks.NewMockCredentialProvider(t)
	creds.EXPECT().CurrentToken(mock.Anything).Return("", nil)

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL, time.Second, creds, newTestLogger(t))

	_, err := c.Submit(context.Background(), testRequest())

	require.Error(t, err)
	var remote *domain.RemoteError
	assert.False(t, errors.As(err, &remote))
}
