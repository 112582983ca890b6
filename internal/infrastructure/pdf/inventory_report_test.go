package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/medstock/internal/application/report"
	domaininv "github.com/jhoicas/medstock/internal/domain/inventory"
	"github.com/jhoicas/medstock/internal/infrastructure/pdf"
)

func TestGenerateInventoryReport(t *testing.T) {
	data := report.Data{
		Title:       "MedStock",
		GeneratedOn: "2026-03-10",
		Summary:     domaininv.Summary{Total: 1, LowStock: 1, Categories: 1},
		Lines: []report.Line{{
			Name: "Ibuprofeno", Category: "Analgésicos", Location: "A1", Qty: "5", Reorder: "10",
			Stock: domaininv.StockLow, Expiry: domaininv.ExpiryValid,
		}},
	}
	b, err := pdf.NewMarotoReportGenerator().GenerateInventoryReport(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestGenerateInventoryReport_SinLineas(t *testing.T) {
	b, err := pdf.NewMarotoReportGenerator().GenerateInventoryReport(context.Background(), report.Data{Title: "MedStock"})
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
