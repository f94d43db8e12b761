package get_available_slots

import (
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	MasterID  int64     // ID мастера
	ServiceID int64     // ID услуги (определяет длительность слота)
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	MasterID        int64         // ID мастера
	ServiceID       int64         // ID услуги
	Date            time.Time     // Дата, на которую запрашивались слоты
	DurationMinutes int           // Длительность слота (из услуги)
	Slots           []domain.Slot // Доступные слоты, по возрастанию времени начала
}
