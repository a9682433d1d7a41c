package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/normalize"
	"github.com/planbeau/booking-service/internal/usecase/get_available_slots"
)

type slotsOutput struct {
	Date  string   `json:"date" yaml:"date"`
	Slots []string `json:"slots" yaml:"slots"`
}

func slotsCmd(opts *options) *cobra.Command {
	var (
		hoursFile string
		date      string
		timezone  string
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List bookable start times for a day of a weekly schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return fmt.Errorf("invalid timezone %q: %w", timezone, err)
			}
			day, err := parseDate(date, loc)
			if err != nil {
				return err
			}

			data, err := readFile(hoursFile)
			if err != nil {
				return err
			}
			records, err := normalize.DecodeRecords(data)
			if err != nil {
				return err
			}
			hours, err := normalize.BusinessHoursList(records)
			if err != nil {
				return err
			}

			out := slotsOutput{Date: day.Format(domain.DateFormat), Slots: []string{}}
			for slot := range get_available_slots.Slots(hours, day) {
				out.Slots = append(out.Slots, slot.String())
			}

			return opts.render(cmd.OutOrStdout(), out, func(w io.Writer) error {
				if len(out.Slots) == 0 {
					_, err := fmt.Fprintf(w, "%s: closed\n", out.Date)
					return err
				}
				_, err := fmt.Fprintf(w, "%s: %s\n", out.Date, strings.Join(out.Slots, " "))
				return err
			})
		},
	}

	cmd.Flags().StringVar(&hoursFile, "hours", "", "Business hours JSON file (- for stdin)")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().StringVar(&timezone, "tz", "America/Toronto", "Vendor timezone")
	return cmd
}

// parseDate accepts YYYY-MM-DD, today and tomorrow
func parseDate(input string, loc *time.Location) (time.Time, error) {
	now := time.Now().In(loc)
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return time.Time{}, fmt.Errorf("--date is required")
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	case "tomorrow":
		t := now.AddDate(0, 0, 1)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
	}
	parsed, err := time.ParseInLocation(domain.DateFormat, input, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", input)
	}
	return parsed, nil
}
