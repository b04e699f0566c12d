package advisor

import (
	"fmt"
	"strings"
)

// buildAdvicePrompt creates the diversification advice prompt.
func buildAdvicePrompt(req AdviceRequest) (prompt string) {
	var trajectory strings.Builder
	for _, point := range req.Trajectory {
		fmt.Fprintf(&trajectory, "  step %d: %.4f\n", point.Step, point.Risk)
	}

	prompt = fmt.Sprintf(`You are an expert career consultant advising a client on reducing their exposure to AI-driven job displacement.

CLIENT PROFILE:
- Skill level: %s
- Education: %s
- Industry: %s
- Job role: %s

COMPUTED RISK ASSESSMENT (each score is on a fixed scale; higher is more exposed):
- Systematic risk (market-wide exposure the client cannot individually control): %.4f
- Idiosyncratic risk (exposure the client can address through personal choices): %.4f

DIVERSIFICATION PLAN:
- Target systematic risk after diversifying: %.4f
- Transition horizon: %d time steps
- Projected systematic risk trajectory:
%s
Write practical, specific advice for this client:
1. Explain in plain language what their systematic vs idiosyncratic scores mean for them
2. Suggest concrete diversification moves (adjacent industries, transferable skills, role shifts) that fit their profile
3. Suggest how to address the idiosyncratic component through upskilling
4. Keep the tone realistic and actionable - no doom, no hype

Return the advice as plain markdown (headings and bullet lists are fine). Do not restate the raw numbers in a table; weave them into the narrative where useful.`,
		req.Attributes.Skill,
		req.Attributes.Education,
		req.Attributes.Industry,
		req.Attributes.JobRole,
		req.Profile.Systematic,
		req.Profile.Idiosyncratic,
		req.Target,
		req.Horizon,
		trajectory.String())

	return prompt
}
