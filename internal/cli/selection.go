package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/normalize"
	"github.com/planbeau/booking-service/pkg/types"
)

// selectionFile is the shared shape of quote and draft files.
// Offerings may use any field spelling the catalog accepts.
type selectionFile struct {
	EventName     string             `json:"eventName"`
	EventType     string             `json:"eventType"`
	EventDate     string             `json:"eventDate"`
	StartTime     string             `json:"startTime"`
	EndTime       string             `json:"endTime"`
	AttendeeCount int                `json:"attendeeCount"`
	EventLocation string             `json:"eventLocation"`
	Province      string             `json:"province"`
	Package       normalize.Record   `json:"package"`
	Services      []normalize.Record `json:"services"`
	LeadTimeHours int                `json:"leadTimeHours"`
	ConfirmEmpty  bool               `json:"confirmEmpty"`
}

// selection is a decoded file with offerings in canonical form
type selection struct {
	file     selectionFile
	pkg      *domain.Offering
	services []domain.Offering
}

func decodeSelection(data []byte) (*selection, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var file selectionFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode selection: %w", err)
	}

	services, err := normalize.Offerings(domain.KindService, file.Services)
	if err != nil {
		return nil, fmt.Errorf("services: %w", err)
	}

	sel := &selection{file: file, services: services}
	if len(file.Package) > 0 {
		pkg, err := normalize.Offering(domain.KindPackage, file.Package)
		if err != nil {
			return nil, fmt.Errorf("package: %w", err)
		}
		sel.pkg = &pkg
	}
	return sel, nil
}

// times parses start and end. Empty values stay zero.
func (s *selection) times() (types.TimeString, types.TimeString, error) {
	var start, end types.TimeString
	var err error
	if s.file.StartTime != "" {
		if start, err = types.NewTimeStringFromString(s.file.StartTime); err != nil {
			return "", "", fmt.Errorf("startTime: %w", err)
		}
	}
	if s.file.EndTime != "" {
		if end, err = types.NewTimeStringFromString(s.file.EndTime); err != nil {
			return "", "", fmt.Errorf("endTime: %w", err)
		}
	}
	return start, end, nil
}
