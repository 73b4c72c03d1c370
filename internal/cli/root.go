package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	strengthService "github.com/jwalitptl/passcheck/internal/service/strength"
	"github.com/jwalitptl/passcheck/pkg/generator"
)

// Clipboard receives copied passwords
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

var (
	errNothingToCopy = errors.New("No password to copy!")
	errCopyFailed    = errors.New("Failed to copy password")
)

type options struct {
	jsonOutput bool
	copy       bool
	length     int
}

type app struct {
	svc       *strengthService.Service
	clipboard Clipboard
	opts      options
}

// NewRootCommand builds the passcheck command tree. A nil clipboard uses the
// system clipboard.
func NewRootCommand(svc *strengthService.Service, cb Clipboard) *cobra.Command {
	if cb == nil {
		cb = systemClipboard{}
	}
	a := &app{svc: svc, clipboard: cb}

	rootCmd := &cobra.Command{
		Use:   "passcheck [password]",
		Short: "Check password strength and generate strong passwords",
		Long: `passcheck scores a password against five requirements (length, uppercase,
lowercase, number, special character) and reports its strength tier along
with suggestions for every unmet requirement.

Without an argument the password is read from the first line of stdin.

Examples:
  passcheck 'Abc12345!'
  echo 'hunter2' | passcheck --json
  passcheck generate --length 24 --copy`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runEvaluate,
	}
	rootCmd.PersistentFlags().BoolVar(&a.opts.jsonOutput, "json", false, "print the result as JSON")
	rootCmd.PersistentFlags().BoolVar(&a.opts.copy, "copy", false, "copy the password to the clipboard")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a password that meets every requirement",
		Args:  cobra.NoArgs,
		RunE:  a.runGenerate,
	}
	generateCmd.Flags().IntVarP(&a.opts.length, "length", "l", generator.DefaultLength,
		fmt.Sprintf("password length (%d-%d)", generator.MinLength, generator.MaxLength))

	requirementsCmd := &cobra.Command{
		Use:   "requirements",
		Short: "List the requirements and strength tiers",
		Args:  cobra.NoArgs,
		RunE:  a.runRequirements,
	}

	rootCmd.AddCommand(generateCmd, requirementsCmd)
	return rootCmd
}

func (a *app) runEvaluate(cmd *cobra.Command, args []string) error {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		p, err := readLine(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = p
	}

	res := a.svc.Evaluate(cmd.Context(), password)
	if a.opts.jsonOutput {
		if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
			return err
		}
	} else {
		renderResult(cmd.OutOrStdout(), res)
	}

	if a.opts.copy {
		return a.copyPassword(cmd, password)
	}
	return nil
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	out, err := a.svc.Generate(cmd.Context(), a.opts.length)
	if err != nil {
		return err
	}

	if a.opts.jsonOutput {
		if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), out.Password)
		fmt.Fprintln(cmd.OutOrStdout())
		renderResult(cmd.OutOrStdout(), out.Result)
	}

	if a.opts.copy {
		return a.copyPassword(cmd, out.Password)
	}
	return nil
}

func (a *app) runRequirements(cmd *cobra.Command, _ []string) error {
	cat := a.svc.Requirements()
	if a.opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), cat)
	}
	renderCatalog(cmd.OutOrStdout(), cat)
	return nil
}

func (a *app) copyPassword(cmd *cobra.Command, password string) error {
	if password == "" {
		return errNothingToCopy
	}
	if err := a.clipboard.WriteAll(password); err != nil {
		return fmt.Errorf("%w: %w", errCopyFailed, err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Password copied!")
	return nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
