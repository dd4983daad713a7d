package assistant

import (
	"context"
	"fmt"

	"github.com/johnquangdev/yt-research-assistant/internal/domain/entities"
)

// Per-operation sampling temperatures.
const (
	summaryTemperature      = 0.3
	answerTemperature       = 0.2
	actionPointsTemperature = 0.3
)

// Completer sends a single prompt to the completion service and returns the
// first choice content.
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

// Generator builds prompts and calls the completion service. Model output is
// passed through verbatim; format compliance is delegated to the model. No
// retries.
type Generator struct {
	completer Completer
}

// NewGenerator creates a response generator backed by the given completer.
func NewGenerator(completer Completer) *Generator {
	return &Generator{completer: completer}
}

// Summary generates a structured video summary from the timestamped
// transcript, truncated to 3000 characters at prompt-build time.
func (g *Generator) Summary(ctx context.Context, timestampedText string, language entities.Language) (string, error) {
	out, err := g.completer.Complete(ctx, buildSummaryPrompt(timestampedText, language), summaryTemperature)
	if err != nil {
		return "", fmt.Errorf("%w: summary: %v", entities.ErrGenerationFailed, err)
	}
	return out, nil
}

// Answer generates an answer to a question strictly from the given context.
func (g *Generator) Answer(ctx context.Context, question, contextText string, language entities.Language) (string, error) {
	out, err := g.completer.Complete(ctx, buildAnswerPrompt(question, contextText, language), answerTemperature)
	if err != nil {
		return "", fmt.Errorf("%w: answer: %v", entities.ErrGenerationFailed, err)
	}
	return out, nil
}

// ActionPoints generates a bulleted list of actionable insights from the
// given context.
func (g *Generator) ActionPoints(ctx context.Context, contextText string, language entities.Language) (string, error) {
	out, err := g.completer.Complete(ctx, buildActionPointsPrompt(contextText, language), actionPointsTemperature)
	if err != nil {
		return "", fmt.Errorf("%w: action points: %v", entities.ErrGenerationFailed, err)
	}
	return out, nil
}
