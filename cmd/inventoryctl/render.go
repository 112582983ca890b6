package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jhoicas/medstock/internal/domain/inventory"
	"github.com/jhoicas/medstock/internal/interfaces/view"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00467F")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	lowStyle     = cellStyle.Foreground(lipgloss.Color("#B45309")).Bold(true)
	goodStyle    = cellStyle.Foreground(lipgloss.Color("#15803D"))
	expiredStyle = cellStyle.Foreground(lipgloss.Color("#B91C1C")).Bold(true)
	mutedStyle   = cellStyle.Foreground(lipgloss.Color("#7B8794"))
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B91C1C")).Bold(true)
)

var tableHeaders = []string{"ID", "Name", "Category", "Location", "Qty", "Stock", "Expiry status", "Expiry", "Action"}

// renderTable dibuja la misma proyección de filas que la pantalla web.
// Sin filas dibuja una única fila "No items found.".
func renderTable(w io.Writer, model view.TableModel) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tableHeaders...)

	if model.Empty {
		t.Row(model.Message)
	}
	for _, r := range model.Rows {
		action := "VIEW ONLY"
		if r.CanDelete() {
			action = "delete"
		}
		t.Row(r.ID, r.Name, r.Category, r.Location, r.QtyDisplay, r.Stock.Label, r.Expiry.Label, r.ExpiryDate, action)
	}

	rows := model.Rows
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if row < 0 || row >= len(rows) {
			return mutedStyle
		}
		switch col {
		case 5:
			return pillStyle(rows[row].Stock.Label)
		case 6:
			return pillStyle(rows[row].Expiry.Label)
		case 8:
			if !rows[row].CanDelete() {
				return mutedStyle
			}
		}
		return cellStyle
	})
	fmt.Fprintln(w, t.Render())
}

func pillStyle(label string) lipgloss.Style {
	switch label {
	case string(inventory.StockLow), string(inventory.ExpiryExpiring):
		return lowStyle
	case string(inventory.ExpiryExpired):
		return expiredStyle
	default:
		return goodStyle
	}
}

// renderSummary tarjetas del resumen en una línea.
func renderSummary(w io.Writer, s inventory.Summary) {
	card := func(label string, n int) string {
		return cardStyle.Render(label + "\n" + lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(n)))
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total items", s.Total),
		card("Low stock", s.LowStock),
		card("Expiring ≤ 90 days", s.ExpiringSoon),
		card("Expired", s.Expired),
		card("Categories", s.Categories),
	))
}

func renderError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}
