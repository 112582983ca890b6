package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/medstock/internal/domain/entity"
	domaininv "github.com/jhoicas/medstock/internal/domain/inventory"
)

// Line una fila del reporte, ya clasificada.
type Line struct {
	Name       string
	Category   string
	Location   string
	Qty        string
	Reorder    string
	Stock      domaininv.StockStatus
	Expiry     domaininv.ExpiryStatus
	ExpiryDate string
}

// Data contenido completo del reporte de inventario.
type Data struct {
	Title       string
	GeneratedOn string
	Query       string
	Summary     domaininv.Summary
	Lines       []Line
}

// Generator puerto para producir el documento (implementado en infrastructure/pdf).
type Generator interface {
	GenerateInventoryReport(ctx context.Context, data Data) ([]byte, error)
}

// ScreenLoader fuente de la lista completa y filtrada (InventoryUseCase).
type ScreenLoader interface {
	List(ctx context.Context) ([]entity.InventoryItem, error)
	Today() time.Time
}

// ReportUseCase genera el PDF del inventario con el mismo filtro y clasificación que la pantalla.
type ReportUseCase struct {
	source    ScreenLoader
	generator Generator
	title     string
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(source ScreenLoader, generator Generator, title string) *ReportUseCase {
	return &ReportUseCase{source: source, generator: generator, title: title}
}

// Build arma los datos del reporte sin generar el documento.
// El resumen cubre todo el inventario; las líneas solo lo que pasa el filtro.
func (uc *ReportUseCase) Build(ctx context.Context, query string) (*Data, error) {
	items, err := uc.source.List(ctx)
	if err != nil {
		return nil, err
	}
	today := uc.source.Today()
	visible := domaininv.Filter(items, query)

	lines := make([]Line, 0, len(visible))
	for _, it := range visible {
		c := domaininv.Classify(it, today)
		lines = append(lines, Line{
			Name:       it.Name,
			Category:   it.Category,
			Location:   it.Location,
			Qty:        it.Quantity.String(),
			Reorder:    it.Reorder.String(),
			Stock:      c.Stock,
			Expiry:     c.Expiry,
			ExpiryDate: it.Expiry.String(),
		})
	}
	return &Data{
		Title:       uc.title,
		GeneratedOn: entity.DateOf(today).String(),
		Query:       query,
		Summary:     domaininv.Summarize(items, today),
		Lines:       lines,
	}, nil
}

// Download genera el PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) Download(ctx context.Context, query string) (pdfBytes []byte, filename string, err error) {
	data, err := uc.Build(ctx, query)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: cargar inventario: %w", err)
	}
	pdfBytes, err = uc.generator.GenerateInventoryReport(ctx, *data)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	return pdfBytes, "inventario-" + data.GeneratedOn + ".pdf", nil
}
