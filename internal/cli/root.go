// Package cli implements planbeauctl, an offline companion to the booking service:
// quotes, slots and draft checks run the same code as the API against local JSON files.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type options struct {
	outputJSON bool
	output     string
	dbPath     string
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "planbeauctl",
		Short: "Planbeau booking tools: quotes, availability, draft checks",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.outputJSON && opts.output != "" && opts.output != formatJSON {
				return fmt.Errorf("choose either --json or --output %s", opts.output)
			}
			switch opts.output {
			case "", formatText, formatJSON, formatYAML:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (text, json, yaml)", opts.output)
			}
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.outputJSON, "json", false, "Output JSON")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "Output format: text, json or yaml")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Path to the local state database")

	cmd.AddCommand(quoteCmd(opts))
	cmd.AddCommand(slotsCmd(opts))
	cmd.AddCommand(validateCmd(opts))
	cmd.AddCommand(locationCmd(opts))
	cmd.AddCommand(recentCmd(opts))
	return cmd
}

// Execute runs planbeauctl and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// format resolves the output format. Piped stdout defaults to JSON.
func (o *options) format(w io.Writer) string {
	if o.outputJSON {
		return formatJSON
	}
	if o.output != "" {
		return o.output
	}
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return formatJSON
	}
	return formatText
}

// render writes v as JSON or YAML, or calls text for the human format
func (o *options) render(w io.Writer, v any, text func(io.Writer) error) error {
	switch o.format(w) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

func (o *options) databasePath() (string, error) {
	if o.dbPath != "" {
		return o.dbPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "planbeau", "client.db"), nil
}

func readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("--file is required")
	}
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
