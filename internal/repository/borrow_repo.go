package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inventory_lending/internal/models"

	"github.com/google/uuid"
)

type BorrowSQLite struct {
	db *sql.DB
}

func NewBorrowSQLite(db *sql.DB) *BorrowSQLite { return &BorrowSQLite{db: db} }

var _ BorrowRepo = (*BorrowSQLite)(nil)

const (
	insertBorrowSQL = `INSERT INTO borrow_records (id, item_name, amount, borrow_date, return_date, borrower_name, officer_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectBorrowsSQL    = `SELECT id, item_name, amount, borrow_date, return_date, borrower_name, officer_name, created_at, updated_at FROM borrow_records`
	selectBorrowByIDSQL = `SELECT id, item_name, amount, borrow_date, return_date, borrower_name, officer_name, created_at, updated_at FROM borrow_records WHERE id = ?`

	updateBorrowSQL = `UPDATE borrow_records SET item_name = ?, amount = ?, borrow_date = ?, return_date = ?, borrower_name = ?, officer_name = ?, updated_at = ? WHERE id = ?`
	deleteBorrowSQL = `DELETE FROM borrow_records WHERE id = ?`
)

// Insert persists a new borrow record. No uniqueness checks apply: the same
// item snapshot may be borrowed any number of times.
func (r *BorrowSQLite) Insert(ctx context.Context, b models.BorrowRecord) (models.BorrowRecord, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	} else {
		b.CreatedAt = b.CreatedAt.UTC()
	}
	b.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, insertBorrowSQL,
		b.ID, b.ItemName, b.Amount, b.BorrowDate, b.ReturnDate, b.BorrowerName, b.OfficerName,
		b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return models.BorrowRecord{}, fmt.Errorf("insert borrow record %q: %w", b.ItemName, err)
	}
	return b, nil
}

func (r *BorrowSQLite) List(ctx context.Context) ([]models.BorrowRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectBorrowsSQL)
	if err != nil {
		return nil, fmt.Errorf("list borrow records: %w", err)
	}
	defer rows.Close()

	out := make([]models.BorrowRecord, 0, 16)
	for rows.Next() {
		b, err := scanBorrow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BorrowSQLite) GetByID(ctx context.Context, id string) (models.BorrowRecord, error) {
	b, err := scanBorrow(r.db.QueryRowContext(ctx, selectBorrowByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BorrowRecord{}, ErrNotFound
		}
		return models.BorrowRecord{}, fmt.Errorf("select borrow record %q: %w", id, err)
	}
	return b, nil
}

func (r *BorrowSQLite) Update(ctx context.Context, id string, b models.BorrowRecord) (models.BorrowRecord, error) {
	res, err := r.db.ExecContext(ctx, updateBorrowSQL,
		b.ItemName, b.Amount, b.BorrowDate, b.ReturnDate, b.BorrowerName, b.OfficerName,
		time.Now().UTC(), id)
	if err != nil {
		return models.BorrowRecord{}, fmt.Errorf("update borrow record %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.BorrowRecord{}, fmt.Errorf("rows affected for borrow record %q: %w", id, err)
	}
	if n == 0 {
		return models.BorrowRecord{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *BorrowSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteBorrowSQL, id)
	if err != nil {
		return fmt.Errorf("delete borrow record %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for borrow record %q: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBorrow(s scanner) (models.BorrowRecord, error) {
	var b models.BorrowRecord
	if err := s.Scan(&b.ID, &b.ItemName, &b.Amount, &b.BorrowDate, &b.ReturnDate,
		&b.BorrowerName, &b.OfficerName, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return models.BorrowRecord{}, err
	}
	b.CreatedAt = b.CreatedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()
	return b, nil
}
