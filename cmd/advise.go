package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nikogura/career-risk/pkg/advisor"
	"github.com/nikogura/career-risk/pkg/config"
	"github.com/nikogura/career-risk/pkg/engine"
	"github.com/nikogura/career-risk/pkg/factors"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var adviseSkill string

//nolint:gochecknoglobals // Cobra boilerplate
var adviseEducation string

//nolint:gochecknoglobals // Cobra boilerplate
var adviseIndustry string

//nolint:gochecknoglobals // Cobra boilerplate
var adviseJobRole string

//nolint:gochecknoglobals // Cobra boilerplate
var adviseHorizon int

//nolint:gochecknoglobals // Cobra boilerplate
var adviseOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Generate diversification advice for an assessment",
	Long: `Assess risk, project the diversification trajectory, and ask Claude for
practical advice tailored to the result.

Requires anthropic_api_key in the config file or the ANTHROPIC_API_KEY
environment variable.

Examples:
  career-risk advise --skill Intermediate --education "Bachelor's" --industry Tech --role "Service Provider"
  career-risk advise --skill 4 --education 3 --industry Finance --role Analyst --output advice.md`,
	RunE: runAdvise,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(adviseCmd)
	adviseCmd.Flags().StringVar(&adviseSkill, "skill", "", "Skill level (label or ordinal code)")
	adviseCmd.Flags().StringVar(&adviseEducation, "education", "", "Education level (label or ordinal code)")
	adviseCmd.Flags().StringVar(&adviseIndustry, "industry", "", "Industry")
	adviseCmd.Flags().StringVar(&adviseJobRole, "role", "", "Job role")
	adviseCmd.Flags().IntVar(&adviseHorizon, "horizon", 0, "Transition horizon in time steps (default from config)")
	adviseCmd.Flags().StringVar(&adviseOutput, "output", "", "Write advice to a markdown file instead of stdout")
}

func runAdvise(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	if cfg.AnthropicAPIKey == "" {
		err = errors.New("anthropic_api_key is required for advise (set in config or ANTHROPIC_API_KEY env var)")
		return err
	}

	var table *factors.Table
	table, err = factors.NewTable(cfg)
	if err != nil {
		return err
	}

	var attrs engine.Attributes
	attrs, err = resolveAttributes(table, adviseSkill, adviseEducation, adviseIndustry, adviseJobRole)
	if err != nil {
		return err
	}

	eng := engine.New(table)

	var profile engine.RiskProfile
	profile, err = eng.Assess(attrs)
	if err != nil {
		return err
	}

	var horizon int
	horizon, err = resolveHorizon(cmd, table, adviseHorizon)
	if err != nil {
		return err
	}

	steps := transitionSteps(horizon)

	var trajectory []engine.TrajectoryPoint
	trajectory, err = eng.ProjectDiversification(profile.Systematic, horizon, steps)
	if err != nil {
		return err
	}

	if getVerbose() {
		fmt.Printf("Requesting advice for H=%.4f V=%.4f over %d steps...\n", profile.Systematic, profile.Idiosyncratic, horizon)
	}

	client := advisor.NewClient(cfg.AnthropicAPIKey, cfg.GetAdviceModel())

	var advice string
	advice, err = client.Advise(ctx, advisor.AdviceRequest{
		Attributes: attrs,
		Profile:    profile,
		Target:     eng.DiversificationTarget(profile.Systematic),
		Horizon:    horizon,
		Trajectory: trajectory,
	})
	if err != nil {
		err = errors.Wrap(err, "failed to generate advice")
		return err
	}

	if adviseOutput != "" {
		err = os.WriteFile(adviseOutput, []byte(advice), 0644)
		if err != nil {
			err = errors.Wrapf(err, "failed to write advice file: %s", adviseOutput)
			return err
		}

		fmt.Printf("Wrote advice to %s\n", adviseOutput)
		return err
	}

	fmt.Println(advice)

	return err
}
