// Package cli exposes the dough and bake solvers as cobra commands reading YAML request files.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"pizza_dough/internal/config"
	"pizza_dough/internal/logger"
	"pizza_dough/internal/repository"
	"pizza_dough/internal/service"
	"pizza_dough/internal/yeast"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// env is the state shared by the subcommands once the configuration is loaded.
type env struct {
	configPath string
	logLevel   string

	cfg config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	cmd := &cobra.Command{
		Use:          "pizza",
		Short:        "Pizza dough leavening and baking calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(e.configPath)
			if err != nil {
				return err
			}
			if e.logLevel != "" {
				cfg.LogLevel = e.logLevel
			}
			e.cfg = cfg
			e.log = logger.New(cfg.LogLevel, cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&e.configPath, "config", "", "configuration file (default configs/config.yml)")
	cmd.PersistentFlags().StringVar(&e.logLevel, "log-level", "", "debug | info | warn | error (overrides log_level)")

	cmd.AddCommand(
		newRecipeCmd(e),
		newBakeCmd(e),
		newScheduleCmd(e),
	)
	return cmd
}

// service builds the solver pipeline for the strain named by the request, or the configured one.
func (e *env) service(strain string) (*service.Service, error) {
	if strain == "" {
		strain = e.cfg.Leavening.Strain
	}
	m, err := yeast.Lookup(strain)
	if err != nil {
		return nil, err
	}
	return service.NewService(m, service.OptionsFromConfig(e.cfg), repository.NewRepository(), e.log)
}
