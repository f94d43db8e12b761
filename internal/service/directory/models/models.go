package models

import "github.com/m04kA/SalonBookingService/internal/domain"

// ResolveClientRequest запрос на поиск или создание клиента
type ResolveClientRequest struct {
	Name       string
	Phone      string
	TelegramID *int64
}

// ServiceResponse услуга из справочника
type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int    `json:"price"`
}

// MasterResponse мастер из справочника
type MasterResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// FromDomainServices конвертирует доменные услуги в ответ сервиса
func FromDomainServices(services []*domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, len(services))
	for i, s := range services {
		result[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		}
	}
	return result
}

// FromDomainMasters конвертирует доменных мастеров в ответ сервиса
func FromDomainMasters(masters []*domain.Master) []MasterResponse {
	result := make([]MasterResponse, len(masters))
	for i, m := range masters {
		result[i] = MasterResponse{
			ID:             m.ID,
			Name:           m.Name,
			Specialization: m.Specialization,
		}
	}
	return result
}
