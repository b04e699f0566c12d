package advisor

import "github.com/nikogura/career-risk/pkg/engine"

// AdviceRequest carries a computed risk assessment to the advisor.
type AdviceRequest struct {
	Attributes engine.Attributes        `json:"attributes"`
	Profile    engine.RiskProfile       `json:"profile"`
	Target     float64                  `json:"target"`
	Horizon    int                      `json:"horizon"`
	Trajectory []engine.TrajectoryPoint `json:"trajectory"`
}

// ClaudeRequest represents the Claude API request format.
type ClaudeRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

// ClaudeResponse represents the Claude API response format.
type ClaudeResponse struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Role    string    `json:"role"`
	Content []Content `json:"content"`
	Model   string    `json:"model"`
	Usage   Usage     `json:"usage"`
}

// Message represents a message in the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Content represents content in the response.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Usage represents token usage information.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
