// Package ai implements the language-model collaborators on the OpenAI chat
// completion API: the bank-statement parser and the monthly insight
// generator. Model output is treated as untrusted in both directions: the
// parser's candidates go through full validation in the reconciler, and a
// completion that carries no usable JSON yields an empty candidate list, not
// an error.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
	"github.com/betok3jr-art/k3_finance_app/internal/dto"
	"github.com/betok3jr-art/k3_finance_app/internal/middleware"
	"github.com/betok3jr-art/k3_finance_app/internal/utils"
)

// Client wraps the OpenAI client for both collaborator ports.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates the collaborator client. An empty model falls back to
// gpt-4o-mini.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Client{client: openai.NewClient(apiKey), model: model}
}

var (
	_ portssvc.StatementParser  = (*Client)(nil)
	_ portssvc.InsightGenerator = (*Client)(nil)
)

const parsePromptTemplate = `Transforme o extrato bancário abaixo em JSON válido, um objeto por transação:

[
  {
    "date": "AAAA-MM-DD",
    "description": "texto",
    "category": "📦 Outros",
    "type": "expense" ou "income",
    "amount": 123.45
  }
]

Responda apenas com o JSON.

Texto do extrato:
"""
%s
"""`

// ParseToCandidates asks the model to structure plain statement text into
// transaction candidates. The completion text is scanned for the first JSON
// array; anything unparseable yields an empty list.
func (c *Client) ParseToCandidates(ctx context.Context, text string) ([]dto.CandidateEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	raw, err := c.complete(ctx, fmt.Sprintf(parsePromptTemplate, text))
	if err != nil {
		return nil, fmt.Errorf("statement parse request failed: %w", err)
	}

	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		logger.Warn("No JSON array in model response")
		return []dto.CandidateEntry{}, nil
	}

	var candidates []dto.CandidateEntry
	if err := json.Unmarshal([]byte(raw[start:end+1]), &candidates); err != nil {
		logger.Warn("Failed to parse model response as JSON", slog.String("error", err.Error()))
		return []dto.CandidateEntry{}, nil
	}
	return candidates, nil
}

const insightPromptTemplate = `Você é um assistente financeiro profissional. Analise os lançamentos abaixo e escreva um resumo objetivo.

Mês: %s

Lançamentos:
%s

Responda em até 3 parágrafos.`

// AnalyzeMonth renders the month's entries into a prompt and returns the
// model's narrative analysis.
func (c *Client) AnalyzeMonth(ctx context.Context, monthLabel string, entries []domain.Entry) (string, error) {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		kind := "Despesa"
		if entry.Kind == domain.Income {
			kind = "Receita"
		}
		lines = append(lines, fmt.Sprintf("%s - %s - %s - %s - %s",
			entry.OccursOn.String(),
			kind,
			entry.Category,
			entry.Description,
			utils.FormatMoney(entry.Amount),
		))
	}

	insight, err := c.complete(ctx, fmt.Sprintf(insightPromptTemplate, monthLabel, strings.Join(lines, "\n")))
	if err != nil {
		return "", fmt.Errorf("insight request failed: %w", err)
	}
	return strings.TrimSpace(insight), nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices from model")
	}
	return resp.Choices[0].Message.Content, nil
}
