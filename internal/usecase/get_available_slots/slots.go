package get_available_slots

import (
	"sort"

	"github.com/yash635644/barber-backend/internal/domain"
	"github.com/yash635644/barber-backend/pkg/types"
)

// occupiedSlots собирает время начала бронирований, которые занимают слот,
// по возрастанию. Повторяющееся время остается: это две записи на один слот
func occupiedSlots(bookings []*domain.Booking) []types.TimeString {
	slots := make([]types.TimeString, 0, len(bookings))
	for _, b := range bookings {
		if !b.OccupiesSlot() || b.StartTime.IsZero() {
			continue
		}
		slots = append(slots, b.StartTime)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].IsBefore(slots[j])
	})

	return slots
}
