package venueapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/adnanhb/MarqueeBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchHalls_BareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/halls/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Grand Hall", "capacity": 100, "base_price": "25000.00", "is_active": true},
			{"id": 2, "name": "Garden Pavilion", "capacity": 60, "base_price": "15000.50", "is_active": false}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	halls, err := c.FetchHalls(context.Background())

	require.NoError(t, err)
	require.Len(t, halls, 2)
	assert.Equal(t, "Grand Hall", halls[0].Name)
	assert.Equal(t, 100, halls[0].Capacity)
	assert.Equal(t, "25000.00", halls[0].BasePrice.StringFixed(2))
	assert.Equal(t, "15000.50", halls[1].BasePrice.StringFixed(2))
	assert.False(t, halls[1].IsActive)
}

func TestClient_FetchMenuItems_ResultsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/menu/items/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"count": 1,
			"next": null,
			"results": [
				{"id": 10, "name": "Chicken Biryani", "price": "500.00", "category": 2, "is_available": true}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	items, err := c.FetchMenuItems(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Chicken Biryani", items[0].Name)
	assert.Equal(t, "500.00", items[0].Price.StringFixed(2))
	assert.True(t, items[0].IsAvailable)
}

func TestClient_FetchHalls_RetriesServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	_, err := c.FetchHalls(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_CreateBooking_Created(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req domain.BookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 1, req.Hall)
		assert.Equal(t, "2026-10-15", req.EventDate)
		assert.Equal(t, "87500.00", req.TotalPrice)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"booking_id": "b-42", "status": "pending"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	conf, err := c.CreateBooking(context.Background(), domain.BookingRequest{
		Hall:       1,
		EventDate:  "2026-10-15",
		EventTime:  "18:00",
		GuestCount: 50,
		EventType:  "wedding",
		TotalPrice: "87500.00",
	})

	require.NoError(t, err)
	assert.Equal(t, "b-42", conf.BookingID)
	assert.Equal(t, "pending", conf.Status)
}

func TestClient_CreateBooking_RejectedWithDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "hall is already booked for this date"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	_, err := c.CreateBooking(context.Background(), domain.BookingRequest{Hall: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSubmissionRejected)
	assert.Contains(t, err.Error(), "hall is already booked for this date")
}

func TestClient_CreateBooking_RejectedWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	_, err := c.CreateBooking(context.Background(), domain.BookingRequest{Hall: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSubmissionRejected)
	assert.Contains(t, err.Error(), "booking request refused")
}

func TestClient_CreateBooking_ServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	_, err := c.CreateBooking(context.Background(), domain.BookingRequest{Hall: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServerFailure)
}

func TestClient_CreateBooking_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse the connection

	c := New(srv.URL, time.Second)

	_, err := c.CreateBooking(context.Background(), domain.BookingRequest{Hall: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetworkFailure)
}

func TestClient_CreateBooking_NoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	_, err := c.CreateBooking(context.Background(), domain.BookingRequest{Hall: 1})

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
