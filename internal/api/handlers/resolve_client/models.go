package resolve_client

import "github.com/m04kA/SalonBookingService/internal/service/directory/models"

// ResolveClientRequest HTTP request model
type ResolveClientRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	TelegramID *int64 `json:"telegramId,omitempty"`
}

// ResolveClientResponse HTTP response model
type ResolveClientResponse struct {
	ClientID int64 `json:"clientId"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ResolveClientRequest) ToServiceRequest() *models.ResolveClientRequest {
	return &models.ResolveClientRequest{
		Name:       r.Name,
		Phone:      r.Phone,
		TelegramID: r.TelegramID,
	}
}
