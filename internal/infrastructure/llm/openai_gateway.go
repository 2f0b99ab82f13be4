package llm

import (
	"context"
	"errors"
	"log"

	"pricing_agent/internal/config"
	"pricing_agent/internal/usecase/interfaces"

	"github.com/sashabaranov/go-openai"
)

var (
	ErrMissingSuggestionAPIKey = errors.New("missing LLM_API_KEY")
	ErrEmptyCompletion         = errors.New("suggestion service returned no choices")
)

// OpenAISuggestionGateway talks to any OpenAI-compatible chat completion API.
// Groq is the default target.
type OpenAISuggestionGateway struct {
	client *openai.Client
	model  string
}

var _ interfaces.ISuggestionGateway = (*OpenAISuggestionGateway)(nil)

func NewOpenAISuggestionGateway(cfg config.SuggestionConfig) (*OpenAISuggestionGateway, error) {
	if cfg.APIKey == "" {
		log.Printf("[pricing][gateway] missing LLM_API_KEY")
		return nil, ErrMissingSuggestionAPIKey
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	log.Printf("[pricing][gateway] suggestion client initialized base_url=%s model=%s", clientCfg.BaseURL, cfg.Model)

	return &OpenAISuggestionGateway{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}, nil
}

func (g *OpenAISuggestionGateway) Complete(ctx context.Context, req interfaces.SuggestionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONOutput {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	}

	resp, err := g.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		log.Printf("[pricing][gateway] completion failed model=%s err=%v", g.model, err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
