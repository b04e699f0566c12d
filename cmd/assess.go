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
var assessSkill string

//nolint:gochecknoglobals // Cobra boilerplate
var assessEducation string

//nolint:gochecknoglobals // Cobra boilerplate
var assessIndustry string

//nolint:gochecknoglobals // Cobra boilerplate
var assessJobRole string

//nolint:gochecknoglobals // Cobra boilerplate
var assessJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score systematic and idiosyncratic displacement risk",
	Long: `Score AI job-displacement risk from your four attributes.

Attributes can be given as level labels (case-insensitive) or as the
ordinal codes shown by 'career-risk levels'.

Examples:
  career-risk assess --skill Intermediate --education "Bachelor's" --industry Tech --role "Service Provider"
  career-risk assess --skill 2 --education 2 --industry tech --role "service provider"
  career-risk assess --skill Expert --education Graduate --industry Healthcare --role Researcher --json`,
	RunE: runAssess,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(assessCmd)
	assessCmd.Flags().StringVar(&assessSkill, "skill", "", "Skill level (label or ordinal code)")
	assessCmd.Flags().StringVar(&assessEducation, "education", "", "Education level (label or ordinal code)")
	assessCmd.Flags().StringVar(&assessIndustry, "industry", "", "Industry")
	assessCmd.Flags().StringVar(&assessJobRole, "role", "", "Job role")
	assessCmd.Flags().BoolVar(&assessJSON, "json", false, "Emit the assessment as JSON")
}

func runAssess(cmd *cobra.Command, args []string) (err error) {
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

	var attrs engine.Attributes
	attrs, err = resolveAttributes(table, assessSkill, assessEducation, assessIndustry, assessJobRole)
	if err != nil {
		return err
	}

	if getVerbose() {
		fmt.Printf("Assessing %s / %s / %s / %s...\n", attrs.Skill, attrs.Education, attrs.Industry, attrs.JobRole)
	}

	eng := engine.New(table)

	var profile engine.RiskProfile
	profile, err = eng.Assess(attrs)
	if err != nil {
		return err
	}

	if assessJSON {
		err = printAssessmentJSON(attrs, profile)
		return err
	}

	printAssessment(table, attrs, profile)

	return err
}

func printAssessment(table *factors.Table, attrs engine.Attributes, profile engine.RiskProfile) {
	const barWidth = 40

	fmt.Println("AI Job-Displacement Risk")
	fmt.Printf("  Profile: %s skill, %s, %s, %s\n\n", attrs.Skill, attrs.Education, attrs.Industry, attrs.JobRole)
	fmt.Printf("  Systematic    (H): %.4f  %s\n", profile.Systematic, riskBar(profile.Systematic, table.MaxRisk(), barWidth))
	fmt.Printf("  Idiosyncratic (V): %.4f  %s\n", profile.Idiosyncratic, riskBar(profile.Idiosyncratic, table.MaxRisk(), barWidth))
	fmt.Printf("\n  Scores are clamped to [%.2f, %.2f].\n", table.MinRisk(), table.MaxRisk())
}

func printAssessmentJSON(attrs engine.Attributes, profile engine.RiskProfile) (err error) {
	output := struct {
		Attributes engine.Attributes  `json:"attributes"`
		Profile    engine.RiskProfile `json:"profile"`
	}{
		Attributes: attrs,
		Profile:    profile,
	}

	var data []byte
	data, err = json.MarshalIndent(output, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal assessment")
		return err
	}

	fmt.Println(string(data))

	return err
}
