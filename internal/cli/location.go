package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/location"
)

type locationOutput struct {
	Display      string  `json:"display" yaml:"display"`
	City         string  `json:"city,omitempty" yaml:"city,omitempty"`
	Province     string  `json:"province" yaml:"province"`
	ProvinceName string  `json:"provinceName" yaml:"provinceName"`
	Matched      bool    `json:"matched" yaml:"matched"`
	TaxLabel     string  `json:"taxLabel" yaml:"taxLabel"`
	TaxRate      float64 `json:"taxRate" yaml:"taxRate"`
}

func locationCmd(opts *options) *cobra.Command {
	var defaultProv string

	cmd := &cobra.Command{
		Use:   "location <text>",
		Short: "Resolve free-text location to a display name and tax province",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			loc := location.ParseFreeText(text)

			province, matched := location.ResolveProvince(text)
			if !matched {
				province = location.ResolveProvinceOrDefault(text, defaultProv)
			}

			out := locationOutput{
				Display:      loc.Display(),
				City:         loc.City,
				Province:     province.Code,
				ProvinceName: province.Name,
				Matched:      matched,
				TaxLabel:     province.TaxLabel,
				TaxRate:      province.TaxRate,
			}
			return opts.render(cmd.OutOrStdout(), out, func(w io.Writer) error {
				suffix := ""
				if !out.Matched {
					suffix = " (default)"
				}
				_, err := fmt.Fprintf(w, "%s\n%s %s%s: %s\n",
					out.Display, out.Province, out.ProvinceName, suffix, out.TaxLabel)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&defaultProv, "province", domain.DefaultProvinceCode, "Fallback province code")
	return cmd
}
