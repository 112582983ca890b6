package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/medstock/internal/domain"
	"github.com/jhoicas/medstock/internal/domain/entity"
	"github.com/jhoicas/medstock/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre PostgreSQL.
type InventoryItemRepo struct {
	db Querier
}

// NewInventoryItemRepository construye el adaptador de persistencia para artículos.
func NewInventoryItemRepository(db Querier) *InventoryItemRepo {
	return &InventoryItemRepo{db: db}
}

const itemColumns = `id, name, category, location, qty, reorder, expiry, created_at, updated_at`

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var (
		it     entity.InventoryItem
		expiry *time.Time
	)
	if err := row.Scan(&it.ID, &it.Name, &it.Category, &it.Location,
		&it.Quantity, &it.Reorder, &expiry, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	if expiry != nil {
		it.Expiry = entity.DateOf(*expiry)
	}
	return &it, nil
}

// expiryArg NULL cuando el artículo no tiene vencimiento.
func expiryArg(d entity.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.Midnight()
}

// List devuelve todos los artículos en orden de inserción.
func (r *InventoryItemRepo) List(ctx context.Context) ([]entity.InventoryItem, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM inventory_items ORDER BY seq`)
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
	it, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// Create inserta un artículo nuevo.
func (r *InventoryItemRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO inventory_items (`+itemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		it.ID, it.Name, it.Category, it.Location, it.Quantity, it.Reorder, expiryArg(it.Expiry),
		it.CreatedAt, it.UpdatedAt,
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
	tag, err := r.db.Exec(ctx, `
		UPDATE inventory_items
		SET name = $2, category = $3, location = $4, qty = $5, reorder = $6, expiry = $7, updated_at = $8
		WHERE id = $1`,
		it.ID, it.Name, it.Category, it.Location, it.Quantity, it.Reorder, expiryArg(it.Expiry), it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina por id; no falla si ya no existe.
func (r *InventoryItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
