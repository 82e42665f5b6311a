package create_walkin

import (
	"strings"

	createWalkIn "github.com/yash635644/barber-backend/internal/usecase/create_walkin"
	"github.com/yash635644/barber-backend/pkg/types"
)

// CreateWalkInRequest HTTP request model
type CreateWalkInRequest struct {
	Name    string `json:"name"`
	Service string `json:"service"`
	Time    string `json:"time"` // "10:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateWalkInRequest) ToUseCaseRequest() (*createWalkIn.Request, error) {
	var start types.TimeString
	if s := strings.TrimSpace(r.Time); s != "" {
		var err error
		if start, err = types.NewTimeStringFromString(s); err != nil {
			return nil, err
		}
	}

	return &createWalkIn.Request{
		CustomerName: r.Name,
		ServiceName:  r.Service,
		StartTime:    start,
	}, nil
}
