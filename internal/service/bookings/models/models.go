package models

import (
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

// GetPeriodBookingsRequest запрос на получение бронирований за период
type GetPeriodBookingsRequest struct {
	DateFrom time.Time
	DateTo   time.Time
}

// BookingRow строка списка бронирований с присоединёнными именами
type BookingRow struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	ServiceName string `json:"serviceName"`
	MasterName  string `json:"masterName"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingRow `json:"bookings"`
}

// FromDomainBookingList конвертирует доменные проекции в ответ сервиса
func FromDomainBookingList(bookings []*domain.BookingWithNames) *BookingListResponse {
	rows := make([]BookingRow, len(bookings))
	for i, b := range bookings {
		rows[i] = BookingRow{
			ID:          b.ID,
			ClientName:  b.ClientName,
			ClientPhone: b.ClientPhone,
			ServiceName: b.ServiceName,
			MasterName:  b.MasterName,
			Date:        b.Date.Format(domain.DateFormat),
			StartTime:   b.StartTime.String(),
			EndTime:     b.EndTime.String(),
		}
	}
	return &BookingListResponse{Bookings: rows}
}
