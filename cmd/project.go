package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/nikogura/career-risk/pkg/config"
	"github.com/nikogura/career-risk/pkg/engine"
	"github.com/nikogura/career-risk/pkg/factors"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var projectSkill string

//nolint:gochecknoglobals // Cobra boilerplate
var projectEducation string

//nolint:gochecknoglobals // Cobra boilerplate
var projectIndustry string

//nolint:gochecknoglobals // Cobra boilerplate
var projectJobRole string

//nolint:gochecknoglobals // Cobra boilerplate
var projectCurrent float64

//nolint:gochecknoglobals // Cobra boilerplate
var projectHorizon int

//nolint:gochecknoglobals // Cobra boilerplate
var projectJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project systematic risk under a diversification plan",
	Long: `Project how systematic risk falls over a career-diversification plan.

The starting risk comes either from --current or from a fresh assessment
of the four attribute flags. The plan assumes the systematic risk reaches
60% of its starting value (clamped to the configured bounds) at the end
of the transition horizon, falling linearly in between.

Examples:
  career-risk project --current 0.36
  career-risk project --skill Intermediate --education "Bachelor's" --industry Tech --role "Service Provider"
  career-risk project --current 0.36 --horizon 20 --json`,
	RunE: runProject,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.Flags().StringVar(&projectSkill, "skill", "", "Skill level (label or ordinal code)")
	projectCmd.Flags().StringVar(&projectEducation, "education", "", "Education level (label or ordinal code)")
	projectCmd.Flags().StringVar(&projectIndustry, "industry", "", "Industry")
	projectCmd.Flags().StringVar(&projectJobRole, "role", "", "Job role")
	projectCmd.Flags().Float64Var(&projectCurrent, "current", 0, "Current systematic risk (skips assessment)")
	projectCmd.Flags().IntVar(&projectHorizon, "horizon", 0, "Transition horizon in time steps (default from config)")
	projectCmd.Flags().BoolVar(&projectJSON, "json", false, "Emit the trajectory as JSON")
}

func runProject(cmd *cobra.Command, args []string) (err error) {
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

	eng := engine.New(table)

	// Starting risk: explicit --current wins, otherwise assess the
	// attribute flags.
	hCurrent := projectCurrent
	if !cmd.Flags().Changed("current") {
		var attrs engine.Attributes
		attrs, err = resolveAttributes(table, projectSkill, projectEducation, projectIndustry, projectJobRole)
		if err != nil {
			err = errors.Wrap(err, "provide --current or the four attribute flags")
			return err
		}

		hCurrent, err = eng.SystematicRisk(attrs)
		if err != nil {
			return err
		}

		if getVerbose() {
			fmt.Printf("Assessed systematic risk: %.4f\n", hCurrent)
		}
	}

	var horizon int
	horizon, err = resolveHorizon(cmd, table, projectHorizon)
	if err != nil {
		return err
	}

	steps := transitionSteps(horizon)

	var trajectory []engine.TrajectoryPoint
	trajectory, err = eng.ProjectDiversification(hCurrent, horizon, steps)
	if err != nil {
		return err
	}

	if projectJSON {
		err = printTrajectoryJSON(hCurrent, eng.DiversificationTarget(hCurrent), horizon, trajectory)
		return err
	}

	printTrajectory(table, hCurrent, eng.DiversificationTarget(hCurrent), horizon, trajectory)

	return err
}

func printTrajectory(table *factors.Table, hCurrent, target float64, horizon int, trajectory []engine.TrajectoryPoint) {
	const barWidth = 40

	fmt.Println("Diversification Plan")
	fmt.Printf("  Systematic risk: %.4f -> %.4f over %d steps\n\n", hCurrent, target, horizon)

	for _, point := range trajectory {
		fmt.Printf("  %4d  %.4f  %s\n", point.Step, point.Risk, riskBar(point.Risk, table.MaxRisk(), barWidth))
	}
}

func printTrajectoryJSON(hCurrent, target float64, horizon int, trajectory []engine.TrajectoryPoint) (err error) {
	output := struct {
		Current    float64                  `json:"current"`
		Target     float64                  `json:"target"`
		Horizon    int                      `json:"horizon"`
		Trajectory []engine.TrajectoryPoint `json:"trajectory"`
	}{
		Current:    hCurrent,
		Target:     target,
		Horizon:    horizon,
		Trajectory: trajectory,
	}

	var data []byte
	data, err = json.MarshalIndent(output, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal trajectory")
		return err
	}

	fmt.Println(string(data))

	return err
}
