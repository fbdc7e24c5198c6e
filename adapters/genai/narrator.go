// Package genai writes ROE narratives with Gemini.
package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/jp903/scout/core"
	"github.com/jp903/scout/pkg/roe"
)

const DefaultModel = "gemini-2.5-flash"

var ErrEmptyResponse = errors.New("model returned no text")

const systemPrompt = `You are a real-estate investment analyst. Given a property's cash-flow figures and
derived return on equity, write two or three plain sentences for the owner: what the
returns mean and whether leverage helps or hurts. Do not restate every number. No markdown.`

// generator is the part of *genai.Models the narrator uses.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Narrator struct {
	models generator
	model  string
}

var _ core.Narrator = (*Narrator)(nil)

// New creates a Gemini API client for apiKey. An empty model means
// DefaultModel.
func New(ctx context.Context, apiKey, model string) (*Narrator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newNarrator(client.Models, model), nil
}

func newNarrator(models generator, model string) *Narrator {
	if model == "" {
		model = DefaultModel
	}
	return &Narrator{models: models, model: model}
}

func (n *Narrator) Narrate(ctx context.Context, a *core.ROEAnalysis) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}

	resp, err := n.models.GenerateContent(ctx, n.model, genai.Text(prompt(a)), config)
	if err != nil {
		return "", fmt.Errorf("generate narrative: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func prompt(a *core.ROEAnalysis) string {
	d := roe.Format(roe.Result{NOI: a.NOI, Equity: a.Equity, UnleveredROE: a.UnleveredROE, LeveredROE: a.LeveredROE})

	var b strings.Builder
	fmt.Fprintf(&b, "Annual rental income: %s\n", roe.FormatMoney(a.AnnualRentalIncome))
	fmt.Fprintf(&b, "Annual expenses: %s\n", roe.FormatMoney(a.AnnualExpenses))
	fmt.Fprintf(&b, "Current market value: %s\n", roe.FormatMoney(a.CurrentMarketValue))
	fmt.Fprintf(&b, "Current loan balance: %s\n", roe.FormatMoney(a.CurrentLoanBalance))
	fmt.Fprintf(&b, "Annual debt service: %s\n", roe.FormatMoney(a.AnnualDebtService))
	fmt.Fprintf(&b, "NOI: %s\nEquity: %s\n", d.NOI, d.Equity)
	fmt.Fprintf(&b, "Unlevered ROE: %s\nLevered ROE: %s\n", d.UnleveredROE, d.LeveredROE)
	if a.Equity == 0 {
		b.WriteString("Equity is zero, so both ROE figures are reported as 0% and are not meaningful.\n")
	}
	return b.String()
}
