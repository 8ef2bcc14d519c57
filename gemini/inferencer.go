// Package gemini implements leadscout.Inferencer using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/leadscout"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is specified.
const DefaultModel = "gemini-2.5-flash"

// Ensure Inferencer implements leadscout.Inferencer at compile time.
var _ leadscout.Inferencer = (*Inferencer)(nil)

// Inferencer implements leadscout.Inferencer using Google Gemini.
type Inferencer struct {
	client *genai.Client
	model  string
}

// NewInferencer creates a new Inferencer. An empty model selects
// DefaultModel.
func NewInferencer(client *genai.Client, model string) *Inferencer {
	if model == "" {
		model = DefaultModel
	}
	return &Inferencer{client: client, model: model}
}

// Infer sends the prompt to the model and returns its reply text.
func (i *Inferencer) Infer(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", leadscout.Errorf(leadscout.EINVALID, "prompt required")
	}

	result, err := i.client.Models.GenerateContent(ctx, i.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", leadscout.Errorf(leadscout.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Extraction and classification both want the most repeatable output the
// model will give, so the temperature sits low.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}
