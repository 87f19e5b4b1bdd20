// Package repository contém a carga do dataset a partir do Postgres, usada
// quando DATABASE_URL está configurada no lugar dos arquivos JSON.
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

const (
	dealsTable      = "deals"
	targetsTable    = "targets"
	repsTable       = "reps"
	activitiesTable = "activities"
	accountsTable   = "accounts"
)

type DatasetRepository interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

type datasetRepository struct {
	conn *postgres.Connection
}

func NewDatasetRepository(conn *postgres.Connection) DatasetRepository {
	return &datasetRepository{
		conn: conn,
	}
}

// Load lê as cinco coleções uma única vez. O banco é apenas a origem da
// carga inicial: o motor de análise nunca volta a consultá-lo.
func (r *datasetRepository) Load(ctx context.Context) (*domain.Dataset, error) {
	ds := &domain.Dataset{}

	var err error
	if ds.Deals, err = r.loadDeals(ctx); err != nil {
		return nil, err
	}
	if ds.Targets, err = r.loadTargets(ctx); err != nil {
		return nil, err
	}
	if ds.Reps, err = r.loadReps(ctx); err != nil {
		return nil, err
	}
	if ds.Activities, err = r.loadActivities(ctx); err != nil {
		return nil, err
	}
	if ds.Accounts, err = r.loadAccounts(ctx); err != nil {
		return nil, err
	}

	return ds, nil
}

func (r *datasetRepository) loadDeals(ctx context.Context) ([]domain.Deal, error) {
	sqlQuery, args, err := squirrel.
		Select("deal_id", "account_id", "rep_id", "stage", "amount", "created_at", "closed_at").
		From(dealsTable).
		OrderBy("deal_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de deals")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de deals")
	}
	defer rows.Close()

	deals := make([]domain.Deal, 0)
	for rows.Next() {
		var (
			deal      domain.Deal
			amount    sql.NullFloat64
			createdAt sql.NullTime
			closedAt  sql.NullTime
		)

		if err := rows.Scan(&deal.DealID, &deal.AccountID, &deal.RepID, &deal.Stage, &amount, &createdAt, &closedAt); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear deal")
		}

		if amount.Valid {
			value := amount.Float64
			deal.Amount = &value
		}
		if createdAt.Valid {
			deal.CreatedAt = domain.Date{Time: createdAt.Time}
		}
		if closedAt.Valid {
			deal.ClosedAt = &domain.Date{Time: closedAt.Time}
		}

		deals = append(deals, deal)
	}

	return deals, rows.Err()
}

func (r *datasetRepository) loadTargets(ctx context.Context) ([]domain.Target, error) {
	sqlQuery, args, err := squirrel.
		Select("month", "target").
		From(targetsTable).
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de targets")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de targets")
	}
	defer rows.Close()

	targets := make([]domain.Target, 0)
	for rows.Next() {
		var target domain.Target
		if err := rows.Scan(&target.Month, &target.Target); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear target")
		}
		targets = append(targets, target)
	}

	return targets, rows.Err()
}

func (r *datasetRepository) loadReps(ctx context.Context) ([]domain.Rep, error) {
	sqlQuery, args, err := squirrel.
		Select("rep_id", "name").
		From(repsTable).
		OrderBy("rep_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de reps")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de reps")
	}
	defer rows.Close()

	reps := make([]domain.Rep, 0)
	for rows.Next() {
		var rep domain.Rep
		if err := rows.Scan(&rep.RepID, &rep.Name); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear rep")
		}
		reps = append(reps, rep)
	}

	return reps, rows.Err()
}

func (r *datasetRepository) loadActivities(ctx context.Context) ([]domain.Activity, error) {
	sqlQuery, args, err := squirrel.
		Select("activity_id", "deal_id", "type", "timestamp").
		From(activitiesTable).
		OrderBy("activity_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de activities")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de activities")
	}
	defer rows.Close()

	activities := make([]domain.Activity, 0)
	for rows.Next() {
		var (
			activity  domain.Activity
			timestamp sql.NullTime
		)
		if err := rows.Scan(&activity.ActivityID, &activity.DealID, &activity.Type, &timestamp); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear activity")
		}
		if timestamp.Valid {
			activity.Timestamp = domain.Date{Time: timestamp.Time}
		}
		activities = append(activities, activity)
	}

	return activities, rows.Err()
}

func (r *datasetRepository) loadAccounts(ctx context.Context) ([]domain.Account, error) {
	sqlQuery, args, err := squirrel.
		Select("account_id", "name", "industry", "segment").
		From(accountsTable).
		OrderBy("account_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de accounts")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de accounts")
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.AccountID, &account.Name, &account.Industry, &account.Segment); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear account")
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}
