package cmd

import (
	"fmt"

	"github.com/nikogura/career-risk/pkg/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Create a configuration file with the built-in factor tables so they can
be edited: levels and multipliers per dimension, base risks, clamp
bounds, and the default transition horizon.

Writes to $HOME/.career-risk/config.json unless --config is given.`,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	err = config.InitConfig(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to initialize config")
		return err
	}

	fmt.Println("Config file created. Edit the factor tables to taste.")

	return err
}
