package validate_booking

import (
	"github.com/planbeau/booking-service/internal/api/handlers"
	"github.com/planbeau/booking-service/internal/domain"
	validateBooking "github.com/planbeau/booking-service/internal/usecase/validate_booking"
)

// ValidateRequest HTTP request model
type ValidateRequest struct {
	handlers.DraftRequest
	Step         string `json:"step"` // event_details | selection | review
	ConfirmEmpty bool   `json:"confirmEmpty"`
}

// ValidateResponse HTTP response model
type ValidateResponse struct {
	Step                 string                            `json:"step"`
	Valid                bool                              `json:"valid"`
	NextStep             string                            `json:"nextStep"`
	Errors               map[string]string                 `json:"errors"`
	RequiresConfirmation bool                              `json:"requiresConfirmation"`
	Warnings             []validateBooking.DurationWarning `json:"warnings"`
	EarliestDate         string                            `json:"earliestDate"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateRequest) ToUseCaseRequest(vendorID int64) (*validateBooking.Request, error) {
	draft, err := r.ToDomainDraft()
	if err != nil {
		return nil, err
	}

	return &validateBooking.Request{
		VendorID:     vendorID,
		Step:         validateBooking.Step(r.Step),
		Draft:        draft,
		ConfirmEmpty: r.ConfirmEmpty,
	}, nil
}

// FromUseCaseResult конвертирует результат use case в HTTP response
func FromUseCaseResult(res *validateBooking.Result) *ValidateResponse {
	errs := make(map[string]string, len(res.Errors))
	for field, msg := range res.Errors {
		errs[field] = msg
	}
	warnings := res.Warnings
	if warnings == nil {
		warnings = []validateBooking.DurationWarning{}
	}

	resp := &ValidateResponse{
		Step:                 string(res.Step),
		Valid:                res.Valid,
		NextStep:             string(res.NextStep),
		Errors:               errs,
		RequiresConfirmation: res.RequiresConfirmation,
		Warnings:             warnings,
	}
	if !res.EarliestDate.IsZero() {
		resp.EarliestDate = res.EarliestDate.Format(domain.DateFormat)
	}
	return resp
}
