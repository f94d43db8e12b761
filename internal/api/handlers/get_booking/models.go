package get_booking

import (
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	ClientID  int64  `json:"clientId"`
	ServiceID int64  `json:"serviceId"`
	MasterID  int64  `json:"masterId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomain конвертирует доменное бронирование в HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID,
		ClientID:  b.ClientID,
		ServiceID: b.ServiceID,
		MasterID:  b.MasterID,
		Date:      b.Date.Format(domain.DateFormat),
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}
