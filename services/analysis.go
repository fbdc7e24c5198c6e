package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jp903/scout/core"
	"github.com/jp903/scout/internal/logging"
	"github.com/jp903/scout/pkg/roe"
)

type AnalysisService struct {
	db       core.AnalysisStorage
	narrator core.Narrator
	log      logging.Logger
	now      func() time.Time
}

var _ core.AnalysisHandler = (*AnalysisService)(nil)

// NewAnalysisService uses TemplateNarrator when narrator is nil.
func NewAnalysisService(db core.AnalysisStorage, narrator core.Narrator, log logging.Logger) *AnalysisService {
	if narrator == nil {
		narrator = TemplateNarrator{}
	}
	return &AnalysisService{db: db, narrator: narrator, log: log.With("component", "analysis"), now: time.Now}
}

// Analyze parses the raw figures, derives the returns and stores the record.
// Derived fields always come from Compute, never from the client.
func (s *AnalysisService) Analyze(ctx context.Context, userID string, input core.AnalysisInput) (*core.ROEAnalysis, error) {
	in := roe.Inputs{
		AnnualRentalIncome: roe.ParseNumber(input.AnnualRentalIncome, 0),
		AnnualExpenses:     roe.ParseNumber(input.AnnualExpenses, 0),
		CurrentMarketValue: roe.ParseNumber(input.CurrentMarketValue, 0),
		CurrentLoanBalance: roe.ParseNumber(input.CurrentLoanBalance, 0),
		AnnualDebtService:  roe.ParseNumber(input.AnnualDebtService, 0),
	}
	r, err := roe.Compute(in)
	if errors.Is(err, roe.ErrOutOfRange) {
		return nil, core.ErrFiguresOutOfRange
	}
	if err != nil {
		return nil, fmt.Errorf("compute returns: %w", err)
	}

	a := &core.ROEAnalysis{
		ID:                 uuid.NewString(),
		UserID:             userID,
		AnnualRentalIncome: in.AnnualRentalIncome,
		AnnualExpenses:     in.AnnualExpenses,
		CurrentMarketValue: in.CurrentMarketValue,
		CurrentLoanBalance: in.CurrentLoanBalance,
		AnnualDebtService:  in.AnnualDebtService,
		NOI:                r.NOI,
		Equity:             r.Equity,
		UnleveredROE:       r.UnleveredROE,
		LeveredROE:         r.LeveredROE,
		CreatedAt:          s.now(),
	}

	narrative, err := s.narrator.Narrate(ctx, a)
	if err != nil || narrative == "" {
		s.log.Warn(ctx, "narrator failed, using template", "error", err)
		narrative = Narrative(a)
	}
	a.Narrative = narrative

	if err := s.db.CreateAnalysis(ctx, a); err != nil {
		return nil, fmt.Errorf("store analysis: %w", err)
	}

	return a, nil
}

// ListAnalyses returns the user's records, newest first.
func (s *AnalysisService) ListAnalyses(ctx context.Context, userID string) ([]*core.ROEAnalysis, error) {
	list, err := s.db.ListAnalysesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	return list, nil
}
