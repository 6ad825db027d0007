package tui

import (
	"fmt"
	"time"
)

// GenerationStats describes one finished model call.
type GenerationStats struct {
	Gateway     string
	Model       string
	InputChars  int
	OutputChars int
	Duration    time.Duration
}

// Cost estimates the call's cost from character counts.
func (s GenerationStats) Cost() float64 {
	return EstimateCost(s.Model, EstimateTokens(s.InputChars), EstimateTokens(s.OutputChars))
}

// RenderGenerationStart returns the line printed before the model call.
func RenderGenerationStart(gateway, model string, inputChars int) string {
	inputTokens := EstimateTokens(inputChars)
	return fmt.Sprintf("%s %s  %s  ~%s input tokens",
		SpinnerStyle.Render("→"),
		StageStyle.Render(gateway),
		ModelStyle.Render(displayModel(model)),
		FormatTokens(inputTokens),
	)
}

// RenderGenerationComplete returns the line printed after a successful call.
func RenderGenerationComplete(stats GenerationStats) string {
	tokens := EstimateTokens(stats.InputChars) + EstimateTokens(stats.OutputChars)
	return fmt.Sprintf("%s %s  %s  ~%s tokens  %s",
		SuccessStyle.Render("✓"),
		StageStyle.Render(stats.Gateway),
		HelpStyle.Render(stats.Duration.Truncate(time.Millisecond).String()),
		FormatTokens(tokens),
		CostStyle.Render(FormatCost(stats.Cost())),
	)
}

// RenderGenerationFailed returns the line printed after a failed call.
func RenderGenerationFailed(gateway string, duration time.Duration) string {
	return fmt.Sprintf("%s %s  %s",
		ErrorStyle.Render("✗"),
		StageStyle.Render(gateway),
		HelpStyle.Render(duration.Truncate(time.Millisecond).String()),
	)
}

func displayModel(model string) string {
	if model == "" {
		return "default model"
	}
	return model
}
