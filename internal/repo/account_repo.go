package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/de0k/mobcard-server/internal/model"
	"github.com/de0k/mobcard-server/internal/pkg/dbutil"
	appErr "github.com/de0k/mobcard-server/internal/pkg/errors"
)

type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) get(ctx context.Context, where map[string]interface{}) (*model.Account, error) {
	sqlStr, args, err := builder.BuildSelect("membership", where, []string{"email", "pw"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var acc model.Account
	if err := rows.Scan(&acc.Email, &acc.Password); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *AccountRepo) Get(ctx context.Context, email string) (*model.Account, error) {
	return r.get(ctx, map[string]interface{}{"email": email})
}

// GetByCredentials matches email and password in one query, so a missing row
// and a wrong password are indistinguishable to the caller.
func (r *AccountRepo) GetByCredentials(ctx context.Context, email, password string) (*model.Account, error) {
	return r.get(ctx, map[string]interface{}{"email": email, "pw": password})
}

func (r *AccountRepo) Create(ctx context.Context, acc *model.Account) error {
	data := map[string]interface{}{
		"email": acc.Email,
		"pw":    acc.Password,
	}
	sqlStr, args, err := builder.BuildInsert("membership", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		if dbutil.IsConflict(err) {
			return appErr.ErrConflict
		}
		return err
	}
	return nil
}

// DeleteCascade removes the skin and contact rows that reference the account,
// then the membership row itself, all in one transaction.
func (r *AccountRepo) DeleteCascade(ctx context.Context, email string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	where := map[string]interface{}{"email": email}
	for _, table := range []string{"skin", "contact", "membership"} {
		sqlStr, args, err := builder.BuildDelete(table, where)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		sqlStr, args = dbutil.Finalize(sqlStr, args)
		if _, err := tx.ExecContext(ctx, sqlStr, args...); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
