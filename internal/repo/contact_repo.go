package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/de0k/mobcard-server/internal/model"
	"github.com/de0k/mobcard-server/internal/pkg/dbutil"
	appErr "github.com/de0k/mobcard-server/internal/pkg/errors"
)

// ContactColumns lists the writable contact columns besides the email key, in
// table order.
var ContactColumns = []string{"name", "hp", "address", "fax", "url", "produc", "rank", "cname", "imgurl"}

type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

func (r *ContactRepo) Get(ctx context.Context, email string) (*model.ContactRecord, error) {
	where := map[string]interface{}{"email": email}
	fields := append([]string{"email"}, ContactColumns...)
	sqlStr, args, err := builder.BuildSelect("contact", where, fields)
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
	var rec model.ContactRecord
	cols := make([]sql.NullString, len(ContactColumns))
	dest := []interface{}{&rec.Email}
	for i := range cols {
		dest = append(dest, &cols[i])
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}
	targets := []**string{
		&rec.Name, &rec.HP, &rec.Address, &rec.Fax, &rec.URL,
		&rec.Produc, &rec.Rank, &rec.CName, &rec.ImgURL,
	}
	for i, col := range cols {
		if col.Valid {
			value := col.String
			*targets[i] = &value
		}
	}
	return &rec, nil
}

// Upsert applies the supplied columns to the existing row, or inserts a new
// row from them when none exists. Columns absent from fields keep their
// stored value. There is no membership pre-check; the foreign key is the only
// guard against orphan rows.
func (r *ContactRepo) Upsert(ctx context.Context, email string, fields map[string]interface{}) error {
	where := map[string]interface{}{"email": email}
	sqlStr, args, err := builder.BuildSelect("contact", where, []string{"email"})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	exists := rows.Next()
	if err := rows.Close(); err != nil {
		return err
	}

	if exists {
		if len(fields) == 0 {
			return nil
		}
		sqlStr, args, err = builder.BuildUpdate("contact", where, fields)
		if err != nil {
			return err
		}
		sqlStr, args = dbutil.Finalize(sqlStr, args)
		_, err = r.db.ExecContext(ctx, sqlStr, args...)
		return err
	}

	data := map[string]interface{}{"email": email}
	for k, v := range fields {
		data[k] = v
	}
	sqlStr, args, err = builder.BuildInsert("contact", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}
