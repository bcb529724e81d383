package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quadkit/ctrlkit/internal/matrix"
)

// ParseResult holds a successfully parsed matrix literal.
type ParseResult struct {
	Rows     int         `json:"rows"`
	Cols     int         `json:"cols"`
	Elements [][]float64 `json:"elements"`
	Literal  string      `json:"literal"` // normalized rendering
}

// String renders the text form of the result.
func (r ParseResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d matrix %s", r.Rows, r.Cols, r.Literal)
	for i, row := range r.Elements {
		fmt.Fprintf(&b, "\n  row %d: %v", i, row)
	}
	return b.String()
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	var rows, cols int

	cmd := &cobra.Command{
		Use:   "parse <matrix-literal>",
		Short: "Parse a bracketed matrix literal",
		Long: `Parse a bracketed, comma-separated, row-major matrix literal.

Example:
  ctrlkit parse --rows 2 --cols 2 "[1, 2, 3, 4]"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, args[0], rows, cols, cmd)
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "r", 0, "number of rows (required)")
	cmd.Flags().IntVarP(&cols, "cols", "c", 0, "number of columns (required)")
	cmd.MarkFlagRequired("rows")
	cmd.MarkFlagRequired("cols")

	return cmd
}

func runParse(opts *RootOptions, literal string, rows, cols int, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	m, err := matrix.Parse(literal, rows, cols)
	if err != nil {
		var pe *matrix.ParseError
		if errors.As(err, &pe) {
			formatter.Error(ErrCodeParse, err.Error(), map[string]any{
				"code":   string(pe.Code),
				"offset": pe.Pos,
			})
		} else {
			formatter.Error(ErrCodeParse, err.Error(), nil)
		}
		return WrapExitError(ExitFailure, "parse failed", err)
	}

	result := ParseResult{
		Rows:    m.Rows(),
		Cols:    m.Cols(),
		Literal: m.String(),
	}
	for i := 0; i < m.Rows(); i++ {
		result.Elements = append(result.Elements, m.Row(i))
	}

	return formatter.Success(result)
}
