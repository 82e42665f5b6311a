package domain

// Default values
const (
	DefaultServiceDurationMinutes = 30
	DefaultShopID                 = 1
	WalkInPhonePlaceholder        = "N/A"
)

// Business validation constants
const (
	MaxCustomerNameLength = 100
	MaxPhoneLength        = 20
	MaxServiceNameLength  = 100
	MaxHolidayNoteLength  = 500
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// AllStatuses все допустимые статусы бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusDeclined,
	StatusCompleted,
	StatusNoShow,
}

// ScheduledStatuses статусы, которые считаются в "расписании на сегодня"
var ScheduledStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
}

// StrictTransitions допустимые переходы в строгом режиме (bookings.strict_transitions)
// По умолчанию сервис разрешает любые переходы, чтобы администратор мог исправлять ошибки
var StrictTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusDeclined},
	StatusConfirmed: {StatusCompleted, StatusNoShow},
}
