package validate_booking

import (
	"maps"
	"slices"
	"time"

	"github.com/planbeau/booking-service/internal/domain"
)

// Step шаг мастера бронирования
type Step string

const (
	StepEventDetails Step = "event_details"
	StepSelection    Step = "selection"
	StepReview       Step = "review"
)

// ParseStep разбирает шаг; пустое значение означает первый шаг
func ParseStep(value string) (Step, bool) {
	switch Step(value) {
	case "", StepEventDetails:
		return StepEventDetails, true
	case StepSelection, StepReview:
		return Step(value), true
	default:
		return "", false
	}
}

// ActionType тип действия пользователя в мастере
type ActionType string

const (
	ActionNext           ActionType = "next"
	ActionBack           ActionType = "back"
	ActionSelectPackage  ActionType = "select_package"
	ActionToggleService  ActionType = "toggle_service"
	ActionConfirmEmpty   ActionType = "confirm_empty"
	ActionDismissWarning ActionType = "dismiss_warning"
)

// Action действие пользователя
type Action struct {
	Type       ActionType
	OfferingID int64     // для select_package (0 = снять выбор) и toggle_service
	Now        time.Time // для next на шаге деталей события
}

// Catalog предложения вендора и его ограничения
type Catalog struct {
	Packages      []domain.Offering
	Services      []domain.Offering
	LeadTimeHours int
}

// State состояние мастера бронирования
type State struct {
	Step                 Step
	Draft                domain.BookingDraft
	Errors               FieldErrors
	Warning              *DurationWarning
	AwaitingConfirmation bool
	Catalog              Catalog
}

// NewState начальное состояние мастера
func NewState(draft domain.BookingDraft, catalog Catalog) State {
	return State{
		Step:    StepEventDetails,
		Draft:   draft,
		Errors:  FieldErrors{},
		Catalog: catalog,
	}
}

// Advance применяет действие к состоянию и возвращает новое состояние.
// Входное состояние не изменяется. Ошибки проверки остаются в State.Errors.
func Advance(state State, action Action) State {
	next := state
	next.Draft.ServiceIDs = slices.Clone(state.Draft.ServiceIDs)
	next.Errors = make(FieldErrors, len(state.Errors))
	maps.Copy(next.Errors, state.Errors)

	switch action.Type {
	case ActionNext:
		return advanceNext(next, action.Now)

	case ActionBack:
		next.Errors = FieldErrors{}
		next.Warning = nil
		next.AwaitingConfirmation = false
		switch state.Step {
		case StepSelection:
			next.Step = StepEventDetails
		case StepReview:
			next.Step = StepSelection
		}
		return next

	case ActionSelectPackage:
		if state.Step != StepSelection {
			return state
		}
		return selectPackage(next, action.OfferingID)

	case ActionToggleService:
		if state.Step != StepSelection {
			return state
		}
		return toggleService(next, action.OfferingID)

	case ActionConfirmEmpty:
		if state.Step == StepSelection && state.AwaitingConfirmation {
			next.AwaitingConfirmation = false
			next.Step = StepReview
		}
		return next

	case ActionDismissWarning:
		next.Warning = nil
		return next

	default:
		return state
	}
}

func advanceNext(state State, now time.Time) State {
	switch state.Step {
	case StepEventDetails:
		errs := ValidateEventDetails(state.Draft, now, state.Catalog.LeadTimeHours)
		state.Errors = errs
		if !errs.HasErrors() {
			state.Step = StepSelection
		}

	case StepSelection:
		pkg, services := state.selected()
		result := ValidateSelection(state.Draft, pkg, services)
		state.Errors = result.Errors
		switch {
		case result.Errors.HasErrors():
		case result.RequiresConfirmation:
			state.AwaitingConfirmation = true
		default:
			state.Step = StepReview
		}
	}

	return state
}

func selectPackage(state State, packageID int64) State {
	delete(state.Errors, FieldPackage)

	if packageID == 0 || (state.Draft.PackageID != nil && *state.Draft.PackageID == packageID) {
		state.Draft.PackageID = nil
		return state
	}

	pkg, ok := findOffering(state.Catalog.Packages, packageID)
	if !ok {
		state.Errors[FieldPackage] = "Selected package is not available"
		return state
	}

	if warning := CheckDurationFit(pkg, state.Draft.StartTime, state.Draft.EndTime); warning != nil {
		state.Warning = warning
		return state
	}

	id := pkg.ID
	state.Draft.PackageID = &id
	state.AwaitingConfirmation = false
	return state
}

func toggleService(state State, serviceID int64) State {
	delete(state.Errors, FieldServices)

	if idx := slices.Index(state.Draft.ServiceIDs, serviceID); idx >= 0 {
		state.Draft.ServiceIDs = slices.Delete(state.Draft.ServiceIDs, idx, idx+1)
		return state
	}

	service, ok := findOffering(state.Catalog.Services, serviceID)
	if !ok {
		state.Errors[FieldServices] = "Selected service is not available"
		return state
	}

	if warning := CheckDurationFit(service, state.Draft.StartTime, state.Draft.EndTime); warning != nil {
		state.Warning = warning
		return state
	}

	state.Draft.ServiceIDs = append(state.Draft.ServiceIDs, service.ID)
	state.AwaitingConfirmation = false
	return state
}

// selected возвращает выбранные пакет и услуги из каталога
func (s State) selected() (*domain.Offering, []domain.Offering) {
	var pkg *domain.Offering
	if s.Draft.PackageID != nil {
		if found, ok := findOffering(s.Catalog.Packages, *s.Draft.PackageID); ok {
			pkg = &found
		}
	}

	services := make([]domain.Offering, 0, len(s.Draft.ServiceIDs))
	for _, id := range s.Draft.ServiceIDs {
		if found, ok := findOffering(s.Catalog.Services, id); ok {
			services = append(services, found)
		}
	}

	return pkg, services
}

func findOffering(offerings []domain.Offering, id int64) (domain.Offering, bool) {
	for _, o := range offerings {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Offering{}, false
}
