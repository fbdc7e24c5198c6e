package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jp903/scout/core"
)

func (a *Adapter) CreateAnalysis(ctx context.Context, r *core.ROEAnalysis) error {
	q := `INSERT INTO roe_analyses (
			id, user_id, annual_rental_income, annual_expenses, current_market_value, current_loan_balance,
			annual_debt_service, noi, equity, unlevered_roe, levered_roe, narrative, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := a.pool.Exec(ctx, q, r.ID, r.UserID, r.AnnualRentalIncome, r.AnnualExpenses, r.CurrentMarketValue,
		r.CurrentLoanBalance, r.AnnualDebtService, r.NOI, r.Equity, r.UnleveredROE, r.LeveredROE, r.Narrative, r.CreatedAt)
	return err
}

func (a *Adapter) ListAnalysesByUser(ctx context.Context, userID string) ([]*core.ROEAnalysis, error) {
	q := `SELECT id, user_id, annual_rental_income, annual_expenses, current_market_value, current_loan_balance,
			annual_debt_service, noi, equity, unlevered_roe, levered_roe, narrative, created_at
		FROM roe_analyses
		WHERE user_id = $1
		ORDER BY created_at DESC, id`

	rows, err := a.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*core.ROEAnalysis, error) {
		r := &core.ROEAnalysis{}
		err := row.Scan(&r.ID, &r.UserID, &r.AnnualRentalIncome, &r.AnnualExpenses, &r.CurrentMarketValue,
			&r.CurrentLoanBalance, &r.AnnualDebtService, &r.NOI, &r.Equity, &r.UnleveredROE, &r.LeveredROE,
			&r.Narrative, &r.CreatedAt)
		return r, err
	})
}
