// Package ai is the boundary to the hosted large-language model. It exposes
// two flows: the monthly spending summary and the transaction category
// suggestion. The model itself is an external collaborator; this package only
// builds prompts, enforces structured JSON output and validates responses.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"ecodin/internal/config"
	"ecodin/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyResponse   = errors.New("model returned an empty response")
	ErrUnknownCategory = errors.New("model returned a category outside the enumeration")
	ErrUpstreamFailure = errors.New("model request failed")
	ErrMissingAPIKey   = errors.New("AI API key is not configured")
)

// SummaryInput carries the aggregated figures sent to the model.
type SummaryInput struct {
	Income      decimal.Decimal
	Expenses    map[string]decimal.Decimal
	SavingsGoal *decimal.Decimal
}

// SummaryOutput is the structured response of the summary flow.
type SummaryOutput struct {
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
}

// ClientInterface defines the AI boundary contracts
type ClientInterface interface {
	GenerateSummary(ctx context.Context, input SummaryInput) (*SummaryOutput, error)
	SuggestCategory(ctx context.Context, transactionName string) (string, error)
}

// client talks to a Gemini-style generateContent endpoint with JSON-schema
// constrained output.
type client struct {
	cfg     config.AIConfig
	http    *http.Client
	breaker *CircuitBreaker
	logger  *slog.Logger
}

// NewClient creates a new hosted-LLM client
func NewClient(cfg config.AIConfig, breaker *CircuitBreaker, logger *slog.Logger) ClientInterface {
	return &client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		breaker: breaker,
		logger:  logger,
	}
}

// request/response shapes of the generateContent API

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

var summarySchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"summary": {"type": "string"},
		"suggestions": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["summary", "suggestions"]
}`)

var categorySchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"category": {"type": "string"}
	},
	"required": ["category"]
}`)

// GenerateSummary asks the model for a spending-habits summary plus savings
// suggestions, in Portuguese, based on the aggregated figures.
func (c *client) GenerateSummary(ctx context.Context, input SummaryInput) (*SummaryOutput, error) {
	prompt := buildSummaryPrompt(input)

	raw, err := c.generate(ctx, prompt, summarySchema)
	if err != nil {
		return nil, err
	}

	var output SummaryOutput
	if err := json.Unmarshal([]byte(raw), &output); err != nil {
		c.breaker.RecordFailure()
		return nil, fmt.Errorf("failed to decode summary response: %w", err)
	}

	if output.Summary == "" {
		c.breaker.RecordFailure()
		return nil, ErrEmptyResponse
	}

	return &output, nil
}

// SuggestCategory asks the model to pick one expense category for the given
// transaction name. The returned value is validated against the enumeration.
func (c *client) SuggestCategory(ctx context.Context, transactionName string) (string, error) {
	prompt := buildCategoryPrompt(transactionName)

	raw, err := c.generate(ctx, prompt, categorySchema)
	if err != nil {
		return "", err
	}

	var output struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal([]byte(raw), &output); err != nil {
		c.breaker.RecordFailure()
		return "", fmt.Errorf("failed to decode category response: %w", err)
	}

	suggested := strings.TrimSpace(output.Category)
	if !models.IsValidExpenseCategory(suggested) {
		return "", ErrUnknownCategory
	}

	return suggested, nil
}

// generate performs one structured-output model call behind the breaker and
// returns the raw JSON text of the first candidate.
func (c *client) generate(ctx context.Context, prompt string, schema json.RawMessage) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	if c.breaker.IsOpen() {
		return "", ErrCircuitBreakerOpen
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal model request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimSuffix(c.cfg.BaseURL, "/"), c.cfg.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build model request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.breaker.RecordFailure()
		return "", fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		c.breaker.RecordFailure()
		return "", fmt.Errorf("failed to read model response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.breaker.RecordFailure()
		c.logger.Warn("model request rejected",
			"status", resp.StatusCode,
			"model", c.cfg.Model)
		return "", fmt.Errorf("%w: status %d", ErrUpstreamFailure, resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		c.breaker.RecordFailure()
		return "", fmt.Errorf("failed to decode model response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		c.breaker.RecordFailure()
		return "", ErrEmptyResponse
	}

	c.breaker.RecordSuccess()

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}

// buildSummaryPrompt renders the financial-advisor prompt. The expense lines
// are sorted by category name so the prompt is stable for identical input.
func buildSummaryPrompt(input SummaryInput) string {
	var b strings.Builder

	b.WriteString("Você é um consultor financeiro especializado em ajudar as pessoas a entender e melhorar seus hábitos de gastos mensais.\n\n")
	b.WriteString("Com base nas informações financeiras fornecidas, sua tarefa é:\n")
	b.WriteString("1. Gerar um resumo conciso e analítico dos hábitos de gastos do usuário.\n")
	b.WriteString("2. Identificar as principais áreas de gastos e compará-las com a renda.\n")
	b.WriteString("3. Com base na análise, fornecer uma lista de sugestões práticas e acionáveis para ajudar o usuário a economizar dinheiro. As sugestões devem ser claras e diretas.\n")
	b.WriteString("4. Se uma meta de economia foi definida, leve-a em consideração ao fazer suas recomendações.\n\n")
	b.WriteString("Forneça a resposta em português.\n\n")

	fmt.Fprintf(&b, "Renda: %s\n", input.Income.StringFixed(2))
	b.WriteString("Despesas:\n")

	categories := make([]string, 0, len(input.Expenses))
	for category := range input.Expenses {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Fprintf(&b, "- %s: %s\n", category, input.Expenses[category].StringFixed(2))
	}

	if input.SavingsGoal != nil {
		fmt.Fprintf(&b, "Meta de economia: %s\n", input.SavingsGoal.StringFixed(2))
	}

	return b.String()
}

// buildCategoryPrompt renders the category-suggestion prompt with the fixed
// category list injected.
func buildCategoryPrompt(transactionName string) string {
	var b strings.Builder

	b.WriteString("You are a financial assistant. Based on the transaction name, suggest the most appropriate category from the list below.\n\n")
	fmt.Fprintf(&b, "Transaction Name: %s\n\n", transactionName)
	b.WriteString("Categories:\n")

	for _, category := range models.ExpenseCategories {
		fmt.Fprintf(&b, "- %s\n", category)
	}

	return b.String()
}
