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

type ItemSQLite struct {
	db *sql.DB
}

func NewItemSQLite(db *sql.DB) *ItemSQLite { return &ItemSQLite{db: db} }

var _ ItemRepo = (*ItemSQLite)(nil)

const (
	insertItemSQL = `INSERT INTO items (id, name, amount, condition, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`

	selectItemsSQL      = `SELECT id, name, amount, condition, created_at, updated_at FROM items`
	selectItemByIDSQL   = `SELECT id, name, amount, condition, created_at, updated_at FROM items WHERE id = ?`
	selectItemByNameSQL = `SELECT id, name, amount, condition, created_at, updated_at FROM items WHERE name = ?`

	updateItemSQL = `UPDATE items SET name = ?, amount = ?, condition = ?, updated_at = ? WHERE id = ?`
	deleteItemSQL = `DELETE FROM items WHERE id = ?`
)

// Insert persists a new item. If ID or timestamps are empty, they’re set.
func (r *ItemSQLite) Insert(ctx context.Context, it models.Item) (models.Item, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if it.CreatedAt.IsZero() {
		it.CreatedAt = now
	} else {
		it.CreatedAt = it.CreatedAt.UTC()
	}
	it.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, insertItemSQL,
		it.ID, it.Name, it.Amount, it.Condition, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return models.Item{}, fmt.Errorf("insert item %q: %w", it.Name, err)
	}
	return it, nil
}

// List returns every item in natural storage order.
func (r *ItemSQLite) List(ctx context.Context) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx, selectItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	out := make([]models.Item, 0, 16)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single item; ErrNotFound if the id is unknown.
func (r *ItemSQLite) GetByID(ctx context.Context, id string) (models.Item, error) {
	it, err := scanItem(r.db.QueryRowContext(ctx, selectItemByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrNotFound
		}
		return models.Item{}, fmt.Errorf("select item %q: %w", id, err)
	}
	return it, nil
}

// GetByName fetches an item by its name. Returns (nil, nil) if not found.
func (r *ItemSQLite) GetByName(ctx context.Context, name string) (*models.Item, error) {
	it, err := scanItem(r.db.QueryRowContext(ctx, selectItemByNameSQL, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select item by name %q: %w", name, err)
	}
	return &it, nil
}

// Update replaces every mutable field and returns the stored record.
func (r *ItemSQLite) Update(ctx context.Context, id string, it models.Item) (models.Item, error) {
	res, err := r.db.ExecContext(ctx, updateItemSQL,
		it.Name, it.Amount, it.Condition, time.Now().UTC(), id)
	if err != nil {
		return models.Item{}, fmt.Errorf("update item %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Item{}, fmt.Errorf("rows affected for item %q: %w", id, err)
	}
	if n == 0 {
		return models.Item{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes an item permanently; ErrNotFound if the id is unknown.
func (r *ItemSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteItemSQL, id)
	if err != nil {
		return fmt.Errorf("delete item %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for item %q: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (models.Item, error) {
	var it models.Item
	if err := s.Scan(&it.ID, &it.Name, &it.Amount, &it.Condition, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return models.Item{}, err
	}
	it.CreatedAt = it.CreatedAt.UTC()
	it.UpdatedAt = it.UpdatedAt.UTC()
	return it, nil
}
