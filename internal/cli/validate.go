package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/usecase/validate_booking"
	"github.com/planbeau/booking-service/pkg/types"
)

type validateOutput struct {
	Valid                bool                               `json:"valid" yaml:"valid"`
	Errors               map[string]string                  `json:"errors" yaml:"errors"`
	RequiresConfirmation bool                               `json:"requiresConfirmation" yaml:"requiresConfirmation"`
	Warnings             []validate_booking.DurationWarning `json:"warnings" yaml:"warnings"`
	EarliestDate         string                             `json:"earliestDate" yaml:"earliestDate"`
}

func validateCmd(opts *options) *cobra.Command {
	var (
		file     string
		timezone string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a booking draft the way the review step does",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return fmt.Errorf("invalid timezone %q: %w", timezone, err)
			}
			data, err := readFile(file)
			if err != nil {
				return err
			}
			sel, err := decodeSelection(data)
			if err != nil {
				return err
			}

			out := checkDraft(sel, time.Now().In(loc))
			if err := opts.render(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return printValidation(w, out)
			}); err != nil {
				return err
			}
			if !out.Valid {
				return fmt.Errorf("draft has %d invalid field(s)", len(out.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Draft JSON file (- for stdin)")
	cmd.Flags().StringVar(&timezone, "tz", "America/Toronto", "Vendor timezone")
	return cmd
}

// checkDraft runs event details, selection and duration checks
func checkDraft(sel *selection, now time.Time) validateOutput {
	draft := domain.BookingDraft{
		EventName:     sel.file.EventName,
		EventType:     sel.file.EventType,
		StartTime:     types.TimeString(strings.TrimSpace(sel.file.StartTime)),
		EndTime:       types.TimeString(strings.TrimSpace(sel.file.EndTime)),
		AttendeeCount: sel.file.AttendeeCount,
		EventLocation: sel.file.EventLocation,
	}
	errs := validate_booking.FieldErrors{}
	if sel.file.EventDate != "" {
		date, err := time.ParseInLocation(domain.DateFormat, sel.file.EventDate, now.Location())
		if err != nil {
			errs[validate_booking.FieldEventDate] = "Event date must be in YYYY-MM-DD format"
		} else {
			draft.EventDate = date
		}
	}
	if sel.pkg != nil {
		draft.PackageID = &sel.pkg.ID
	}
	for _, s := range sel.services {
		draft.ServiceIDs = append(draft.ServiceIDs, s.ID)
	}

	for field, msg := range validate_booking.ValidateEventDetails(draft, now, sel.file.LeadTimeHours) {
		if _, exists := errs[field]; !exists {
			errs[field] = msg
		}
	}

	selection := validate_booking.ValidateSelection(draft, sel.pkg, sel.services)
	maps.Copy(errs, selection.Errors)
	requiresConfirmation := selection.RequiresConfirmation && !sel.file.ConfirmEmpty

	warnings := make([]validate_booking.DurationWarning, 0)
	offerings := slices.Clone(sel.services)
	if sel.pkg != nil {
		offerings = append([]domain.Offering{*sel.pkg}, offerings...)
	}
	for _, o := range offerings {
		if w := validate_booking.CheckDurationFit(o, draft.StartTime, draft.EndTime); w != nil {
			warnings = append(warnings, *w)
		}
	}

	vendor := domain.Vendor{MinLeadTimeHours: sel.file.LeadTimeHours}
	return validateOutput{
		Valid:                !errs.HasErrors() && !requiresConfirmation,
		Errors:               errs,
		RequiresConfirmation: requiresConfirmation,
		Warnings:             warnings,
		EarliestDate:         vendor.EarliestEventDate(now).Format(domain.DateFormat),
	}
}

func printValidation(w io.Writer, out validateOutput) error {
	if out.Valid {
		fmt.Fprintln(w, "Draft is valid")
	}
	for _, field := range slices.Sorted(maps.Keys(out.Errors)) {
		fmt.Fprintf(w, "%s: %s\n", field, out.Errors[field])
	}
	if out.RequiresConfirmation {
		fmt.Fprintln(w, "No package or service selected: confirm to continue without one")
	}
	for _, warning := range out.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning.Message)
	}
	_, err := fmt.Fprintf(w, "Earliest event date: %s\n", out.EarliestDate)
	return err
}
