package create_booking

import (
	"time"

	"github.com/yash635644/barber-backend/pkg/types"
)

// Config параметры магазина, нужные для создания онлайн-записи
type Config struct {
	ShopID     int64  // ID магазина
	OwnerPhone string // Номер владельца для уведомлений о новых заявках
	AdminURL   string // Ссылка на админку в уведомлении
}

// Request модель запроса на создание онлайн-записи
type Request struct {
	CustomerName  string           // Имя клиента
	CustomerPhone string           // Телефон клиента
	ServiceName   string           // Название услуги из прайс-листа
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала (например, "10:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID       int64  // ID созданного бронирования
	DateTime string // "2024-06-01 at 10:00"
	Status   string // Всегда Pending
}
