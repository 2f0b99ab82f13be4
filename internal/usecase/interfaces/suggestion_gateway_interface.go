package interfaces

import "context"

// SuggestionRequest is a single-shot completion request for the suggestion service.
type SuggestionRequest struct {
	SystemPrompt string
	Prompt       string
	Temperature  float32
	MaxTokens    int
	JSONOutput   bool
}

// ISuggestionGateway abstracts the external language-model service (Groq, OpenAI...).
//
// It returns the raw text of the model answer. Callers treat any error as
// "suggestion unavailable" and must not trust the text shape.
type ISuggestionGateway interface {
	Complete(ctx context.Context, req SuggestionRequest) (string, error)
}
