package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/generatik/adspace-booking-backend/internal/booking"
	"github.com/generatik/adspace-booking-backend/internal/pkg/response"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req booking.CreateRequest) (*booking.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockService) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockService) List(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *MockService) Approve(ctx context.Context, id string) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockService) Reject(ctx context.Context, id string) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

const adSpaceID = "3e1f6a00-0000-4000-8000-000000000001"
const bookingID = "3e1f6a00-0000-4000-8000-000000000002"

func newRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), NewHandler(svc))
	return r
}

func perform(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleBooking(status booking.Status) *booking.Booking {
	return &booking.Booking{
		ID:              bookingID,
		AdSpaceID:       adSpaceID,
		AdvertiserName:  "Acme Corp",
		AdvertiserEmail: "contact@acme.com",
		StartDate:       time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC),
		CreatedAt:       time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC),
		Status:          status,
		TotalCost:       2100,
	}
}

func TestCreateBooking(t *testing.T) {
	svc := &MockService{}
	router := newRouter(svc)

	var gotReq booking.CreateRequest
	svc.On("Create", mock.Anything, mock.AnythingOfType("booking.CreateRequest")).
		Run(func(args mock.Arguments) {
			gotReq = args.Get(1).(booking.CreateRequest)
		}).
		Return(sampleBooking(booking.StatusPending), nil)

	w := perform(router, http.MethodPost, "/api/v1/booking-requests", gin.H{
		"adSpaceId":       adSpaceID,
		"advertiserName":  "Acme Corp",
		"advertiserEmail": "contact@acme.com",
		"startDate":       "2026-09-01",
		"endDate":         "2026-09-08",
	})

	require.Equal(t, http.StatusOK, w.Code)

	// dates arrive at the service as UTC midnights
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), gotReq.StartDate)
	assert.Equal(t, time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC), gotReq.EndDate)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, bookingID, resp.ID)
	assert.Equal(t, adSpaceID, resp.AdSpaceID)
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, 2100, resp.TotalCost)
	assert.Contains(t, w.Body.String(), `"startDate":"2026-09-01"`)
	assert.Contains(t, w.Body.String(), `"endDate":"2026-09-08"`)
}

func TestCreateBooking_ValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		svcErr  error
		message string
	}{
		{"missing dates", booking.ErrMissingDates, "startDate and endDate are required"},
		{"past dates", booking.ErrDatesNotFuture, "startDate and endDate must both be in the future"},
		{"end before start", booking.ErrEndBeforeStart, "endDate must be after startDate"},
		{"duplicate advertiser", booking.ErrDuplicateAdvertiser, "Advertiser name or email already exists"},
		{"name overflow", booking.ErrNameTooLong, "Name is too long - max 20 characters permitted"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &MockService{}
			router := newRouter(svc)
			svc.On("Create", mock.Anything, mock.Anything).Return(nil, tc.svcErr)

			w := perform(router, http.MethodPost, "/api/v1/booking-requests", gin.H{
				"adSpaceId":       adSpaceID,
				"advertiserName":  "Acme Corp",
				"advertiserEmail": "contact@acme.com",
				"startDate":       "2000-01-01",
				"endDate":         "2000-01-05",
			})

			require.Equal(t, http.StatusBadRequest, w.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body.Message)
			assert.Equal(t, http.StatusBadRequest, body.Status)
			assert.Equal(t, "Bad Request", body.Error)
			assert.Equal(t, "/api/v1/booking-requests", body.Path)
			assert.NotEmpty(t, body.Timestamp)
		})
	}
}

func TestGetBooking(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &MockService{}
		router := newRouter(svc)
		svc.On("GetByID", mock.Anything, bookingID).Return(sampleBooking(booking.StatusPending), nil)

		w := perform(router, http.MethodGet, "/api/v1/booking-requests/"+bookingID, nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &MockService{}
		router := newRouter(svc)
		svc.On("GetByID", mock.Anything, bookingID).Return(nil, booking.ErrNotFound)

		w := perform(router, http.MethodGet, "/api/v1/booking-requests/"+bookingID, nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		var body response.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "booking not found", body.Message)
		assert.Equal(t, "Not Found", body.Error)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := &MockService{}
		router := newRouter(svc)

		w := perform(router, http.MethodGet, "/api/v1/booking-requests/not-a-uuid", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListBookings(t *testing.T) {
	svc := &MockService{}
	router := newRouter(svc)

	svc.On("List", mock.Anything, booking.Filter{Status: booking.StatusApproved}).
		Return([]*booking.Booking{sampleBooking(booking.StatusApproved)}, nil)

	w := perform(router, http.MethodGet, "/api/v1/booking-requests?status=Approved", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Approved", items[0].Status)
}

func TestApproveBooking(t *testing.T) {
	t.Run("pending booking is approved", func(t *testing.T) {
		svc := &MockService{}
		router := newRouter(svc)
		svc.On("Approve", mock.Anything, bookingID).Return(sampleBooking(booking.StatusApproved), nil)

		w := perform(router, http.MethodPatch, "/api/v1/booking-requests/"+bookingID+"/approve", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"Approved"`)
	})

	t.Run("non-pending booking", func(t *testing.T) {
		svc := &MockService{}
		router := newRouter(svc)
		svc.On("Approve", mock.Anything, bookingID).Return(nil, booking.ErrOnlyPendingApproved)

		w := perform(router, http.MethodPatch, "/api/v1/booking-requests/"+bookingID+"/approve", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body response.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Only pending bookings can be approved", body.Message)
	})
}

func TestRejectBooking_NonPending(t *testing.T) {
	svc := &MockService{}
	router := newRouter(svc)
	svc.On("Reject", mock.Anything, bookingID).Return(nil, booking.ErrOnlyPendingRejected)

	w := perform(router, http.MethodPatch, "/api/v1/booking-requests/"+bookingID+"/reject", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Only pending bookings can be rejected", body.Message)
}
