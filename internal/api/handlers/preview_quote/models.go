package preview_quote

import (
	"fmt"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/normalize"
	calculateTotal "github.com/planbeau/booking-service/internal/usecase/calculate_total"
	"github.com/planbeau/booking-service/pkg/types"
)

// PreviewRequest смета по предложениям, переданным целиком (поля в любом из принятых написаний)
type PreviewRequest struct {
	Package       normalize.Record   `json:"package,omitempty"`
	Services      []normalize.Record `json:"services"`
	StartTime     string             `json:"startTime"`
	EndTime       string             `json:"endTime"`
	AttendeeCount int                `json:"attendeeCount"`
	EventLocation string             `json:"eventLocation"`
	Province      string             `json:"province,omitempty"`
}

// ToInput нормализует предложения и разбирает время
func (r *PreviewRequest) ToInput() (calculateTotal.Input, error) {
	in := calculateTotal.Input{
		AttendeeCount: r.AttendeeCount,
		EventLocation: r.EventLocation,
		Province:      r.Province,
	}

	services, err := normalize.Offerings(domain.KindService, r.Services)
	if err != nil {
		return in, fmt.Errorf("services: %w", err)
	}
	in.Services = services

	if len(r.Package) > 0 {
		pkg, err := normalize.Offering(domain.KindPackage, r.Package)
		if err != nil {
			return in, fmt.Errorf("package: %w", err)
		}
		in.Package = &pkg
	}

	if r.StartTime != "" {
		if in.StartTime, err = types.NewTimeStringFromString(r.StartTime); err != nil {
			return in, fmt.Errorf("startTime: %w", err)
		}
	}
	if r.EndTime != "" {
		if in.EndTime, err = types.NewTimeStringFromString(r.EndTime); err != nil {
			return in, fmt.Errorf("endTime: %w", err)
		}
	}

	return in, nil
}
