package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/medstock/internal/domain"
	"github.com/jhoicas/medstock/internal/domain/entity"
	"github.com/jhoicas/medstock/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre SQLite.
type InventoryItemRepo struct {
	db *sql.DB
}

const itemColumns = `id, name, category, location, qty, reorder, expiry, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*entity.InventoryItem, error) {
	var (
		it                   entity.InventoryItem
		expiry               string
		createdAt, updatedAt string
	)
	if err := row.Scan(&it.ID, &it.Name, &it.Category, &it.Location,
		&it.Quantity, &it.Reorder, &expiry, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	d, err := entity.ParseDate(expiry)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", it.ID, err)
	}
	it.Expiry = d
	it.CreatedAt = parseTime(createdAt)
	it.UpdatedAt = parseTime(updatedAt)
	return &it, nil
}

// List devuelve todos los artículos en orden de inserción.
func (r *InventoryItemRepo) List(ctx context.Context) ([]entity.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM inventory_items ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]entity.InventoryItem, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

// GetByID obtiene un artículo; (nil, nil) si no existe.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = ?`, id)
	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// Create inserta un artículo nuevo.
func (r *InventoryItemRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory_items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.Name, it.Category, it.Location,
		it.Quantity.String(), it.Reorder.String(), it.Expiry.String(),
		formatTime(it.CreatedAt), formatTime(it.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// Update reemplaza los campos editables. ErrNotFound si el id no existe.
func (r *InventoryItemRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE inventory_items
		SET name = ?, category = ?, location = ?, qty = ?, reorder = ?, expiry = ?, updated_at = ?
		WHERE id = ?`,
		it.Name, it.Category, it.Location,
		it.Quantity.String(), it.Reorder.String(), it.Expiry.String(),
		formatTime(it.UpdatedAt), it.ID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina por id; no falla si ya no existe.
func (r *InventoryItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
