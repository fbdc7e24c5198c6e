package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jp903/scout/core"
	"github.com/jp903/scout/pkg/roe"
)

// TemplateNarrator renders a fixed commentary from the derived figures.
type TemplateNarrator struct{}

var _ core.Narrator = TemplateNarrator{}

func (TemplateNarrator) Narrate(_ context.Context, a *core.ROEAnalysis) (string, error) {
	return Narrative(a), nil
}

// Narrative is the deterministic text TemplateNarrator returns. It is also
// the fallback when another narrator fails.
func Narrative(a *core.ROEAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Net operating income is %s on %s of equity.",
		roe.FormatMoney(a.NOI), roe.FormatMoney(a.Equity))

	if a.Equity == 0 {
		b.WriteString(" With no equity in the property, return on equity is not meaningful and is reported as 0%.")
		return b.String()
	}

	fmt.Fprintf(&b, " Unlevered return on equity is %s.", roe.FormatPercent(a.UnleveredROE))
	fmt.Fprintf(&b, " After %s of annual debt service, levered return on equity is %s.",
		roe.FormatMoney(a.AnnualDebtService), roe.FormatPercent(a.LeveredROE))

	switch {
	case a.Equity < 0:
		b.WriteString(" The loan balance exceeds the market value.")
	case a.LeveredROE < 0:
		b.WriteString(" Debt service exceeds net operating income, so the property runs at a loss after financing.")
	}

	return b.String()
}
