package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/medstock/internal/application/report"
	"github.com/jhoicas/medstock/internal/domain/entity"
	domaininv "github.com/jhoicas/medstock/internal/domain/inventory"
)

type fakeSource struct {
	items []entity.InventoryItem
	err   error
	today time.Time
}

func (f *fakeSource) List(context.Context) ([]entity.InventoryItem, error) { return f.items, f.err }
func (f *fakeSource) Today() time.Time                                       { return f.today }

type fakeGenerator struct {
	got report.Data
}

func (g *fakeGenerator) GenerateInventoryReport(_ context.Context, d report.Data) ([]byte, error) {
	g.got = d
	return []byte("%PDF-fake"), nil
}

var today = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func source() *fakeSource {
	return &fakeSource{today: today, items: []entity.InventoryItem{
		{Name: "Ibuprofeno", Category: "Analgésicos", Quantity: decimal.NewFromInt(5), Reorder: decimal.NewFromInt(10),
			Expiry: entity.DateOf(today).AddDays(30)},
		{Name: "Gasas", Category: "Insumos", Quantity: decimal.NewFromInt(50), Reorder: decimal.NewFromInt(10)},
	}}
}

func TestBuild_FiltraLineasPeroResumeTodo(t *testing.T) {
	uc := report.NewReportUseCase(source(), &fakeGenerator{}, "MedStock")
	data, err := uc.Build(context.Background(), "ibu")
	require.NoError(t, err)

	assert.Equal(t, 2, data.Summary.Total)
	require.Len(t, data.Lines, 1)
	assert.Equal(t, domaininv.StockLow, data.Lines[0].Stock)
	assert.Equal(t, domaininv.ExpiryExpiring, data.Lines[0].Expiry)
	assert.Equal(t, "2026-03-10", data.GeneratedOn)
}

func TestDownload(t *testing.T) {
	gen := &fakeGenerator{}
	uc := report.NewReportUseCase(source(), gen, "MedStock")
	b, name, err := uc.Download(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(b))
	assert.Equal(t, "inventario-2026-03-10.pdf", name)
	assert.Len(t, gen.got.Lines, 2)
	assert.Equal(t, domaininv.ExpiryValid, gen.got.Lines[1].Expiry)
}

func TestDownload_ErrorDeFuente(t *testing.T) {
	src := source()
	src.err = errors.New("db caída")
	_, _, err := report.NewReportUseCase(src, &fakeGenerator{}, "MedStock").Download(context.Background(), "")
	assert.Error(t, err)
}
