package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quadkit/ctrlkit/internal/config"
)

// Error codes reported in CLI error responses.
const (
	ErrCodeLoad    = "LOAD_FAILED"
	ErrCodeInvalid = "INVALID_PROFILE"
	ErrCodeParse   = "PARSE_FAILED"
	ErrCodeExport  = "EXPORT_FAILED"
	ErrCodeStore   = "STORE_FAILED"
)

// ValidateResult holds the outcome of validating one profile file.
type ValidateResult struct {
	Valid    bool                     `json:"valid"`
	Profile  string                   `json:"profile"`
	Matrices int                      `json:"matrices"`
	Gains    int                      `json:"gains"`
	Errors   []config.ValidationError `json:"errors,omitempty"`
}

// String renders the text form of the result.
func (r ValidateResult) String() string {
	if r.Valid {
		return fmt.Sprintf("profile %q: OK (%d matrices, %d gains)", r.Profile, r.Matrices, r.Gains)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "profile %q: %d error(s)", r.Profile, len(r.Errors))
	for _, e := range r.Errors {
		fmt.Fprintf(&b, "\n  %s: %s", e.Field, e.Message)
	}
	return b.String()
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <profile.yaml>",
		Short: "Validate a gain profile file",
		Long: `Validate a gain profile YAML file.

Checks the profile's structural fields and parses every embedded matrix
literal. All field errors are reported in one pass.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true, // Error output goes through the formatter
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	formatter.VerboseLog("loading profile from %s", path)
	p, err := config.LoadProfile(path)
	if err != nil {
		formatter.Error(ErrCodeLoad, err.Error(), nil)
		return WrapExitError(ExitCommandError, "load failed", err)
	}

	result := ValidateResult{
		Profile:  p.Name,
		Matrices: len(p.Matrices),
		Gains:    len(p.Gains),
		Errors:   p.Validate(),
	}
	result.Valid = len(result.Errors) == 0

	if err := formatter.Success(result); err != nil {
		return err
	}
	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("profile has %d validation error(s)", len(result.Errors)))
	}
	return nil
}
