package cli

import (
	"errors"
	"fmt"

	"github.com/securepass/securepass-go/internal/charset"
	"github.com/securepass/securepass-go/internal/crypto"
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/service"
	"github.com/securepass/securepass-go/internal/strength"
	"github.com/spf13/cobra"
)

var errInvalidCount = errors.New("count must be at least 1")

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Long: fmt.Sprintf(`Generates passwords containing at least one uppercase letter, lowercase
letter, digit and symbol (%s). Length must be at least %d.`, charset.Symbols, crypto.MinLength),
		Aliases: []string{"gen"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Count < 1 {
				return errInvalidCount
			}

			// The CLI has no upper length bound.
			svc := service.NewGeneratorService(a.gen, a.cfg.Length, 0)

			passwords := make([]string, 0, a.cfg.Count)
			for range a.cfg.Count {
				resp, err := svc.Generate(model.GenerateRequest{Length: a.cfg.Length})
				if err != nil {
					return err
				}
				passwords = append(passwords, resp.Password)
			}

			out := cmd.OutOrStdout()
			for _, pw := range passwords {
				var res *strength.Result
				if a.cfg.Check {
					r := strength.Evaluate(pw)
					res = &r
				}
				renderGenerated(out, pw, res)
			}

			if a.cfg.Copy {
				if err := a.clipboard(passwords[len(passwords)-1]); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
			}
			return nil
		},
	}

	cmd.Flags().IntP("length", "l", 12, "password length")
	cmd.Flags().IntP("count", "n", 1, "number of passwords")
	cmd.Flags().BoolP("copy", "c", false, "copy the last password to the clipboard")
	cmd.Flags().Bool("check", false, "show the strength of each password")

	return cmd
}
