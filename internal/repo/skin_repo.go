package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/de0k/mobcard-server/internal/model"
	"github.com/de0k/mobcard-server/internal/pkg/dbutil"
	appErr "github.com/de0k/mobcard-server/internal/pkg/errors"
)

type SkinRepo struct {
	db *sql.DB
}

func NewSkinRepo(db *sql.DB) *SkinRepo {
	return &SkinRepo{db: db}
}

func (r *SkinRepo) Get(ctx context.Context, email string) (*model.SkinSelection, error) {
	where := map[string]interface{}{"email": email}
	sqlStr, args, err := builder.BuildSelect("skin", where, []string{"email", "skin"})
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
	var sel model.SkinSelection
	if err := rows.Scan(&sel.Email, &sel.Skin); err != nil {
		return nil, err
	}
	return &sel, nil
}

// Upsert updates the row's code when one exists, otherwise inserts a new row.
func (r *SkinRepo) Upsert(ctx context.Context, email, skin string) error {
	where := map[string]interface{}{"email": email}
	sqlStr, args, err := builder.BuildUpdate("skin", where, map[string]interface{}{"skin": skin})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}
	data := map[string]interface{}{"email": email, "skin": skin}
	sqlStr, args, err = builder.BuildInsert("skin", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}
