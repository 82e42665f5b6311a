package get_shop

import "github.com/yash635644/barber-backend/internal/domain"

// ShopResponse HTTP response model
type ShopResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone,omitempty"`
	OpeningTime string `json:"openingTime,omitempty"`
	ClosingTime string `json:"closingTime,omitempty"`
}

// FromDomainShop конвертирует domain модель в HTTP response
func FromDomainShop(s *domain.Shop) *ShopResponse {
	return &ShopResponse{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		Phone:       s.Phone,
		OpeningTime: s.OpeningTime.String(),
		ClosingTime: s.ClosingTime.String(),
	}
}
