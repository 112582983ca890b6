package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/medstock/internal/domain/entity"
	"github.com/jhoicas/medstock/internal/infrastructure/sqlite"
)

var seedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

const legacyInventory = `[
  {"id": 1712345678901, "name": "Gasas", "category": "Curación", "location": "A1", "qty": "5", "reorder": 10, "expiry": "2026-04-01"},
  {"id": "1712345678902", "name": "Jeringas", "category": "Inyectables", "location": "B2", "qty": 40, "reorder": "", "expiry": ""},
  {"name": "Alcohol", "qty": "2.5", "reorder": "1", "expiry": "01/04/2026"},
  {"name": "", "qty": 1},
  {"name": "Guantes", "qty": "muchos"}
]`

func TestDecodeItems(t *testing.T) {
	items, warnings, err := decodeItems(strings.NewReader(legacyInventory), seedNow)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Len(t, warnings, 3)

	assert.Equal(t, "1712345678901", items[0].ID)
	assert.True(t, items[0].Quantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, items[0].Reorder.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, entity.NewDate(2026, time.April, 1), items[0].Expiry)

	assert.Equal(t, "1712345678902", items[1].ID)
	assert.True(t, items[1].Reorder.IsZero())
	assert.True(t, items[1].Expiry.IsZero())

	// fecha ilegible: se importa sin vencimiento y con id derivado del contenido
	assert.Equal(t, "Alcohol", items[2].Name)
	assert.NotEmpty(t, items[2].ID)
	again, _, err := decodeItems(strings.NewReader(legacyInventory), seedNow)
	require.NoError(t, err)
	assert.Equal(t, items[2].ID, again[2].ID)
	assert.True(t, items[2].Expiry.IsZero())
	assert.True(t, items[2].Quantity.Equal(decimal.RequireFromString("2.5")))
}

func TestLegacyID_SinIDDistingueFilas(t *testing.T) {
	a := legacyItem{Name: "Gasas", Category: "Curación", Qty: []byte(`5`)}
	b := legacyItem{Name: "Gasas", Category: "Curación", Location: "B2", Qty: []byte(`5`)}
	assert.Equal(t, legacyID(a), legacyID(a))
	assert.NotEqual(t, legacyID(a), legacyID(b))
	assert.Equal(t, "42", legacyID(legacyItem{ID: json.Number("42")}))
	assert.Equal(t, "abc", legacyID(legacyItem{ID: " abc "}))
}

func TestDecodeItems_JSONInvalido(t *testing.T) {
	_, _, err := decodeItems(strings.NewReader(`{"no": "lista"}`), seedNow)
	assert.Error(t, err)
}

func TestSourceReader_Latin1(t *testing.T) {
	// "Curación" en ISO-8859-1: ó = 0xF3
	raw := []byte(`[{"id":"1","name":"Gasas","category":"Curaci` + "\xf3" + `n","qty":1}]`)
	items, _, err := decodeItems(sourceReader(bytes.NewReader(raw), true), seedNow)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Curación", items[0].Category)
}

func TestDecodeUsers(t *testing.T) {
	in := `[
	  {"username": "ana", "password": "secreta", "role": "user"},
	  {"username": "jefe", "password": "x", "role": "ADMIN"},
	  {"username": "", "password": "x"}
	]`
	users, warnings, err := decodeUsers(strings.NewReader(in), seedNow)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Len(t, warnings, 1)

	// el rol guardado no se respeta: el único admin es ADMIN_USERNAME
	assert.Equal(t, entity.RoleUser, users[0].Role)
	assert.Equal(t, entity.RoleUser, users[1].Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("secreta")))
}

func TestImport_OmiteExistentes(t *testing.T) {
	ctx := context.Background()
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.ApplyMigrations())

	items, _, err := decodeItems(strings.NewReader(legacyInventory), seedNow)
	require.NoError(t, err)

	created, skipped, err := importItems(ctx, s.Items(), items)
	require.NoError(t, err)
	assert.Equal(t, 3, created)
	assert.Zero(t, skipped)

	// segunda corrida sobre el mismo archivo: incluye la fila sin id (Alcohol)
	again, _, err := decodeItems(strings.NewReader(legacyInventory), seedNow)
	require.NoError(t, err)
	created, skipped, err = importItems(ctx, s.Items(), again)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Equal(t, 3, skipped)

	stored, err := s.Items().List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 3)

	users, _, err := decodeUsers(strings.NewReader(`[{"username":"ana","password":"p"}]`), seedNow)
	require.NoError(t, err)
	_, _, err = importUsers(ctx, s.Users(), users)
	require.NoError(t, err)
	created, skipped, err = importUsers(ctx, s.Users(), users)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Equal(t, 1, skipped)
}
