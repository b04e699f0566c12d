package cmd

import (
	"fmt"

	"github.com/nikogura/career-risk/pkg/config"
	"github.com/nikogura/career-risk/pkg/factors"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured attribute levels and their ordinal codes",
	RunE:  runLevels,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(levelsCmd)
}

func runLevels(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	var table *factors.Table
	table, err = factors.NewTable(cfg)
	if err != nil {
		return err
	}

	dimensions := []struct {
		name string
		dim  factors.Dimension
	}{
		{"Skill", factors.Skill},
		{"Education", factors.Education},
		{"Industry", factors.Industry},
		{"Job role", factors.JobRole},
	}

	for _, d := range dimensions {
		fmt.Printf("%s:\n", d.name)
		for code, level := range table.Levels(d.dim) {
			fmt.Printf("  %d  %s\n", code, level)
		}
		fmt.Println()
	}

	return err
}
