package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/service"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newEvaluateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate [password]",
		Short: "Score a password and list what would strengthen it",
		Long: `Scores a password out of 6 and prints its strength tier with suggestions.

Without an argument the password is read from a hidden prompt when stdin is a
terminal, or from the first line of stdin otherwise. Passing the password as an
argument leaves it in your shell history.`,
		Aliases: []string{"check"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				pw, err := readPassword(cmd)
				if err != nil {
					return err
				}
				password = pw
			}

			resp := service.NewStrengthService(a.cfg.Estimate).Evaluate(model.EvaluateRequest{Password: password})

			out := cmd.OutOrStdout()
			if a.cfg.JSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			renderEvaluation(out, resp)
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "print the result as JSON")
	cmd.Flags().Bool("estimate", true, "include a guessability estimate")

	return cmd
}

// readPassword prompts without echo on a terminal and reads one line otherwise.
func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
