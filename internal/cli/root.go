// Package cli implements the securepass command-line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/securepass/securepass-go/internal/crypto"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set by the linker.
var version = "dev"

// app carries the dependencies shared by all subcommands.
type app struct {
	v       *viper.Viper
	cfg     Config
	cfgFile string

	gen       *crypto.Generator
	clipboard func(string) error
}

func newApp(gen *crypto.Generator) *app {
	return &app{
		v:         viper.New(),
		gen:       gen,
		clipboard: clipboard.WriteAll,
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd(newApp(crypto.NewGenerator(nil))).Execute(); err != nil {
		// Cobra already printed the error.
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "securepass",
		Short: "Evaluate password strength and generate secure passwords",
		Long: `securepass scores passwords against a fixed set of composition rules
and generates random passwords that always satisfy every rule.

Nothing is stored or sent anywhere.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.v, cmd, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	cmd.Version = version
	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./securepass.yaml or $XDG_CONFIG_HOME/securepass/securepass.yaml)")

	cmd.AddCommand(newEvaluateCmd(a))
	cmd.AddCommand(newGenerateCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "securepass %s\n", version)
		},
	}
}
