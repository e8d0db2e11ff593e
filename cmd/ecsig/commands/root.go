// Package commands implements the ecsig command line.
package commands

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/davidjspooner/ecsig/internal/config"
	"github.com/davidjspooner/ecsig/pkg/logevent"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	logLevel   string

	config *config.Config
	logger *slog.Logger
}

func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "ecsig",
		Short:        "Encode, decode and check DER elliptic-curve signatures",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.LogLevel = a.logLevel
				cfg.Level, err = logevent.ParseLevel(a.logLevel)
				if err != nil {
					return fmt.Errorf("could not parse log level: %s", err)
				}
			}
			a.config = cfg
			a.logger = logevent.New(cmd.ErrOrStderr(), cfg.Level)
			cmd.SetContext(logevent.WithLogger(cmd.Context(), a.logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "yaml config file (defaults when empty)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(a.encodeCmd(), a.decodeCmd(), a.batchCmd(), a.verifyCmd(), a.serveCmd())
	return root
}

// parseInteger takes decimal, or hex with a 0x prefix.
func parseInteger(name, text string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(text, 0)
	if !ok {
		return nil, fmt.Errorf("--%s: %q is not an integer", name, text)
	}
	return n, nil
}
