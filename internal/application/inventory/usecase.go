package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/medstock/internal/application/dto"
	"github.com/jhoicas/medstock/internal/domain"
	"github.com/jhoicas/medstock/internal/domain/entity"
	domaininv "github.com/jhoicas/medstock/internal/domain/inventory"
	"github.com/jhoicas/medstock/internal/domain/repository"
)

// InventoryUseCase casos de uso de la pantalla de inventario: listado, alta, edición,
// baja y resumen. La lista se lee completa en cada llamada; no hay caché entre peticiones.
type InventoryUseCase struct {
	repo repository.InventoryItemRepository
	now  func() time.Time
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryItemRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *InventoryUseCase) WithClock(now func() time.Time) *InventoryUseCase {
	uc.now = now
	return uc
}

// Today fecha usada como "hoy" para clasificar vencimientos.
func (uc *InventoryUseCase) Today() time.Time {
	return uc.now()
}

// List devuelve la lista completa de artículos.
func (uc *InventoryUseCase) List(ctx context.Context) ([]entity.InventoryItem, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}
	if items == nil {
		items = []entity.InventoryItem{}
	}
	return items, nil
}

// Create valida presencia de name y qty y persiste el artículo con un ID nuevo.
// El resto de campos no se valida más allá del formato de la fecha.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*entity.InventoryItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !in.Qty.Set {
		return nil, fmt.Errorf("%w: name y qty son requeridos", domain.ErrInvalidInput)
	}
	expiry, err := entity.ParseDate(in.Expiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDate, err)
	}
	reorder := decimal.Zero
	if in.Reorder.Set {
		reorder = in.Reorder.Value
	}
	now := uc.now()
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  strings.TrimSpace(in.Category),
		Location:  strings.TrimSpace(in.Location),
		Quantity:  in.Qty.Value,
		Reorder:   reorder,
		Expiry:    expiry,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update aplica una actualización parcial. Devuelve ErrNotFound si el artículo no existe.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*entity.InventoryItem, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		item.Name = name
	}
	if in.Category != nil {
		item.Category = strings.TrimSpace(*in.Category)
	}
	if in.Location != nil {
		item.Location = strings.TrimSpace(*in.Location)
	}
	if in.Qty.Set {
		item.Quantity = in.Qty.Value
	}
	if in.Reorder.Set {
		item.Reorder = in.Reorder.Value
	}
	if in.Expiry != nil {
		expiry, err := entity.ParseDate(*in.Expiry)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDate, err)
		}
		item.Expiry = expiry
	}
	item.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete elimina un artículo por ID.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}

// Summary calcula las tarjetas del resumen sobre la lista completa.
func (uc *InventoryUseCase) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	items, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	today := uc.now()
	return &dto.SummaryResponse{
		Summary: domaininv.Summarize(items, today),
		Date:    entity.DateOf(today).String(),
	}, nil
}

// Screen datos que necesita la pantalla: el resumen se calcula sobre todo el inventario,
// la tabla solo sobre los artículos que pasan el filtro.
type Screen struct {
	Query   string
	Today   time.Time
	All     []entity.InventoryItem
	Visible []entity.InventoryItem
	Summary domaininv.Summary
}

// LoadScreen lee el inventario y arma los datos de la pantalla para la consulta dada.
func (uc *InventoryUseCase) LoadScreen(ctx context.Context, query string) (*Screen, error) {
	items, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	today := uc.now()
	return &Screen{
		Query:   strings.TrimSpace(query),
		Today:   today,
		All:     items,
		Visible: domaininv.Filter(items, query),
		Summary: domaininv.Summarize(items, today),
	}, nil
}
