package create_booking

import (
	"time"

	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID  int64            // ID клиента
	ServiceID int64            // ID услуги
	MasterID  int64            // ID мастера
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64            // ID созданного бронирования
	ClientID  int64            // ID клиента
	ServiceID int64            // ID услуги
	MasterID  int64            // ID мастера
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания (start + длительность услуги)
	Status    string           // Статус бронирования

	CreatedAt time.Time // Время создания
}
