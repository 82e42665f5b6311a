package notifications

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yash635644/barber-backend/internal/domain"
)

const (
	currencySymbol = "₹"
	unknownPrice   = "unknown"
)

// FormatPrice рендерит цену для текста сообщения, nil превращается в "unknown"
func FormatPrice(price *decimal.Decimal) string {
	if price == nil {
		return unknownPrice
	}
	if price.IsInteger() {
		return currencySymbol + price.String()
	}
	return currencySymbol + price.StringFixed(2)
}

// OwnerNewBooking сообщение владельцу о новой онлайн-заявке
func OwnerNewBooking(b *domain.Booking, adminURL string) string {
	var sb strings.Builder
	sb.WriteString("New booking request!\n\n")
	fmt.Fprintf(&sb, "Name: %s\n", b.CustomerName)
	fmt.Fprintf(&sb, "Phone: %s\n", b.CustomerPhone)
	fmt.Fprintf(&sb, "Service: %s\n", b.ServiceName)
	fmt.Fprintf(&sb, "Price: %s\n", FormatPrice(b.ServicePrice))
	fmt.Fprintf(&sb, "When: %s\n", b.DateTime())
	if adminURL != "" {
		fmt.Fprintf(&sb, "\nReview it here: %s", adminURL)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// ForStatus сообщение клиенту о смене статуса
// Второе значение false, если для статуса сообщение не предусмотрено (например, Pending)
func ForStatus(b *domain.Booking, shop *domain.Shop) (string, bool) {
	switch b.Status {
	case domain.StatusConfirmed:
		return confirmed(b, shop), true
	case domain.StatusDeclined:
		return fmt.Sprintf(
			"Hi %s, we're sorry, but we can't take your booking for %s on %s. "+
				"Please pick another time and book again.",
			b.CustomerName, b.ServiceName, b.DateTime(),
		), true
	case domain.StatusCompleted:
		return fmt.Sprintf(
			"Thank you for visiting us, %s! We hope you enjoyed your %s. See you next time!",
			b.CustomerName, b.ServiceName,
		), true
	case domain.StatusNoShow:
		return fmt.Sprintf(
			"Hi %s, we missed you at your %s appointment on %s. "+
				"Reply or book again to reschedule.",
			b.CustomerName, b.ServiceName, b.DateTime(),
		), true
	default:
		return "", false
	}
}

// BookingUpdated сообщение клиенту об изменении записи
func BookingUpdated(b *domain.Booking) string {
	return fmt.Sprintf(
		"Hi %s, your appointment has been updated.\n\nService: %s\nWhen: %s",
		b.CustomerName, b.ServiceName, b.DateTime(),
	)
}

func confirmed(b *domain.Booking, shop *domain.Shop) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s, your booking is confirmed!\n\n", b.CustomerName)
	fmt.Fprintf(&sb, "Service: %s\n", b.ServiceName)
	if b.ServicePrice != nil {
		fmt.Fprintf(&sb, "Price: %s\n", FormatPrice(b.ServicePrice))
	}
	fmt.Fprintf(&sb, "When: %s\n", b.DateTime())
	if loc := location(shop); loc != "" {
		fmt.Fprintf(&sb, "Where: %s\n", loc)
	}
	sb.WriteString("\nPlease arrive 10 minutes early.")
	return sb.String()
}

func location(shop *domain.Shop) string {
	if shop == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	if shop.Name != "" {
		parts = append(parts, shop.Name)
	}
	if shop.Address != "" {
		parts = append(parts, shop.Address)
	}
	return strings.Join(parts, ", ")
}
