package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"vatcheck/internal/api/handler/v1handler"
	"vatcheck/internal/checker"
	"vatcheck/internal/config"
	"vatcheck/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// readInputs returns the VAT numbers to check: args when given, otherwise one
// per non-blank line of the file at path, or of stdin when path is empty.
func readInputs(stdin io.Reader, path string, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	src := stdin
	if path != "" {
		f, err := os.Open(path) //nolint: gosec
		if err != nil {
			return nil, errors.Wrap(err, "could not open input file")
		}
		defer func() {
			_ = f.Close()
		}()
		src = f
	}

	var inputs []string
	s := bufio.NewScanner(src)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read inputs")
	}

	return inputs, nil
}

// printer writes one check result per input.
type printer interface {
	Print(input string, res domain.CheckResult) error
	Flush() error
}

type tablePrinter struct {
	w *tabwriter.Writer
}

func newTablePrinter(w io.Writer) *tablePrinter {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "INPUT\tREQUEST DATE\tVALID\tNAME\tADDRESS\tERROR")

	return &tablePrinter{w: tw}
}

func (p *tablePrinter) Print(input string, res domain.CheckResult) error {
	// addresses come back multi-line
	address := strings.Join(strings.Fields(strings.ReplaceAll(res.Address, "\n", ", ")), " ")
	_, err := fmt.Fprintf(p.w, "%s\t%s\t%t\t%s\t%s\t%s\n",
		input, res.RequestDate, res.Valid, res.Name, address, res.Error)

	return err //nolint: wrapcheck
}

func (p *tablePrinter) Flush() error {
	return p.w.Flush() //nolint: wrapcheck
}

// jsonPrinter writes newline-delimited JSON objects.
type jsonPrinter struct {
	w io.Writer
}

func (p *jsonPrinter) Print(input string, res domain.CheckResult) error {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("input")
	e.Str(input)
	e.FieldStart("result")
	v1handler.EncodeCheckResult(&e, res)
	e.ObjEnd()

	_, err := p.w.Write(append(e.Bytes(), '\n'))

	return err //nolint: wrapcheck
}

func (p *jsonPrinter) Flush() error { return nil }

func newPrinter(format string, w io.Writer) (printer, error) {
	switch format {
	case outputTable:
		return newTablePrinter(w), nil
	case outputJSON:
		return &jsonPrinter{w: w}, nil
	default:
		return nil, errors.Errorf("unknown output format %q", format)
	}
}

// runCheck checks every input in order and prints the results. Lookups are
// sequential so the configured delay between VIES calls is kept.
func runCheck(cmd *cobra.Command, c checker.Checker, format string, inputs []string) error {
	p, err := newPrinter(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	for _, in := range inputs {
		if ctx.Err() != nil {
			break
		}
		if err := p.Print(in, c.Check(ctx, in)); err != nil {
			return err
		}
	}

	return p.Flush()
}

func checkCommand(cfg *config.Config) *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "check [VAT...]",
		Short: "Checks VAT numbers against VIES",
		Long: "Checks each VAT number against the VIES checkVat service and prints one result per input. " +
			"Without arguments, VAT numbers are read one per line from --file or stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputTable && output != outputJSON {
				return errors.Errorf("unknown output format %q", output)
			}

			inputs, err := readInputs(cmd.InOrStdin(), file, args)
			if err != nil {
				return err
			}

			return runCheck(cmd, newChecker(cfg, nil), output, inputs)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read VAT numbers from file, one per line")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table or json")

	return cmd
}
