package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/usecase/calculate_total"
)

type lineItemOutput struct {
	ID        int64   `json:"offeringId" yaml:"offeringId"`
	Kind      string  `json:"kind" yaml:"kind"`
	Name      string  `json:"name" yaml:"name"`
	Pricing   string  `json:"pricingModel" yaml:"pricingModel"`
	UnitPrice float64 `json:"unitPrice" yaml:"unitPrice"`
	Hours     float64 `json:"hours,omitempty" yaml:"hours,omitempty"`
	Amount    float64 `json:"amount" yaml:"amount"`
}

type quoteOutput struct {
	Items         []lineItemOutput `json:"items" yaml:"items"`
	Subtotal      float64          `json:"subtotal" yaml:"subtotal"`
	PlatformFee   float64          `json:"platformFee" yaml:"platformFee"`
	TaxLabel      string           `json:"taxLabel" yaml:"taxLabel"`
	Province      string           `json:"province" yaml:"province"`
	TaxAmount     float64          `json:"taxAmount" yaml:"taxAmount"`
	ProcessingFee float64          `json:"processingFee" yaml:"processingFee"`
	Total         float64          `json:"total" yaml:"total"`
	Currency      string           `json:"currency" yaml:"currency"`
}

func newQuoteOutput(b domain.PriceBreakdown) quoteOutput {
	out := quoteOutput{
		Items:         make([]lineItemOutput, 0, len(b.Items)),
		Subtotal:      b.Subtotal,
		PlatformFee:   b.PlatformFee,
		TaxLabel:      b.TaxLabel,
		Province:      b.Province,
		TaxAmount:     b.TaxAmount,
		ProcessingFee: b.ProcessingFee,
		Total:         b.Total,
		Currency:      b.Currency,
	}
	for _, item := range b.Items {
		out.Items = append(out.Items, lineItemOutput{
			ID:        item.OfferingID,
			Kind:      string(item.Kind),
			Name:      item.Name,
			Pricing:   string(item.PricingModel),
			UnitPrice: item.UnitPrice,
			Hours:     item.Hours,
			Amount:    item.Amount,
		})
	}
	return out
}

func quoteCmd(opts *options) *cobra.Command {
	var (
		file        string
		feePercent  float64
		defaultProv string
		currency    string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a package and service selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readFile(file)
			if err != nil {
				return err
			}
			sel, err := decodeSelection(data)
			if err != nil {
				return err
			}
			start, end, err := sel.times()
			if err != nil {
				return err
			}

			breakdown := calculate_total.Calculate(calculate_total.Input{
				Services:           sel.services,
				Package:            sel.pkg,
				StartTime:          start,
				EndTime:            end,
				AttendeeCount:      sel.file.AttendeeCount,
				PlatformFeePercent: &feePercent,
				Province:           sel.file.Province,
				EventLocation:      sel.file.EventLocation,
				DefaultProvince:    defaultProv,
				Currency:           currency,
			})

			out := newQuoteOutput(breakdown)
			return opts.render(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return printQuote(w, out)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Selection JSON file (- for stdin)")
	cmd.Flags().Float64Var(&feePercent, "fee", domain.DefaultPlatformFeePercent, "Platform fee percent")
	cmd.Flags().StringVar(&defaultProv, "province", domain.DefaultProvinceCode, "Fallback province code")
	cmd.Flags().StringVar(&currency, "currency", domain.DefaultCurrency, "Currency code")
	return cmd
}

func printQuote(w io.Writer, q quoteOutput) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, item := range q.Items {
		detail := item.Pricing
		if item.Hours > 0 {
			detail = fmt.Sprintf("%s, %.2fh", item.Pricing, item.Hours)
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\n", item.Name, detail, item.Amount)
	}
	fmt.Fprintf(tw, "Subtotal\t\t%.2f\n", q.Subtotal)
	fmt.Fprintf(tw, "Platform fee\t\t%.2f\n", q.PlatformFee)
	fmt.Fprintf(tw, "%s\t%s\t%.2f\n", q.TaxLabel, q.Province, q.TaxAmount)
	fmt.Fprintf(tw, "Processing fee\t\t%.2f\n", q.ProcessingFee)
	fmt.Fprintf(tw, "Total\t%s\t%.2f\n", q.Currency, q.Total)
	return tw.Flush()
}
