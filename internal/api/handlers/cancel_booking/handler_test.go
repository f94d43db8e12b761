package cancel_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonBookingService/internal/service/bookings"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	err    error
	called []int64
}

func (f *fakeService) Cancel(ctx context.Context, bookingID int64) error {
	f.called = append(f.called, bookingID)
	return f.err
}

func doRequest(h *Handler, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/cancel", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{}
		rec := doRequest(NewHandler(svc, nopLogger{}), "/api/v1/bookings/10/cancel")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int64{10}, svc.called)

		var resp CancelBookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, "cancelled", resp.Status)
	})

	t.Run("not found or already cancelled", func(t *testing.T) {
		svc := &fakeService{err: bookings.ErrBookingNotFound}
		rec := doRequest(NewHandler(svc, nopLogger{}), "/api/v1/bookings/10/cancel")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid booking id", func(t *testing.T) {
		svc := &fakeService{}
		rec := doRequest(NewHandler(svc, nopLogger{}), "/api/v1/bookings/abc/cancel")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, svc.called)
	})

	t.Run("internal error", func(t *testing.T) {
		svc := &fakeService{err: bookings.ErrInternal}
		rec := doRequest(NewHandler(svc, nopLogger{}), "/api/v1/bookings/10/cancel")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
