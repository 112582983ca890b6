package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/medstock/internal/application/dto"
	"github.com/jhoicas/medstock/internal/domain/entity"
)

// legacyItem fila de inventory.json. qty y reorder llegan como número o string;
// id es un timestamp en milisegundos (número o string).
type legacyItem struct {
	ID       any             `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Location string          `json:"location"`
	Qty      json.RawMessage `json:"qty"`
	Reorder  json.RawMessage `json:"reorder"`
	Expiry   string          `json:"expiry"`
}

// legacyUser fila de users.json (password en texto plano).
type legacyUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // se ignora
}

// sourceReader envuelve r con el decodificador ISO-8859-1 cuando el archivo no es UTF-8.
func sourceReader(r io.Reader, latin1 bool) io.Reader {
	if latin1 {
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	return r
}

// decodeItems convierte inventory.json en artículos. Las filas inválidas no abortan:
// se devuelven como avisos y se omiten.
func decodeItems(r io.Reader, now time.Time) ([]entity.InventoryItem, []string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var rows []legacyItem
	if err := dec.Decode(&rows); err != nil {
		return nil, nil, fmt.Errorf("decodificar inventario: %w", err)
	}

	items := make([]entity.InventoryItem, 0, len(rows))
	var warnings []string
	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("fila %d: sin nombre", i+1))
			continue
		}
		var qty, reorder dto.Quantity
		if err := decodeQuantity(row.Qty, &qty); err != nil || !qty.Set {
			warnings = append(warnings, fmt.Sprintf("fila %d (%s): qty inválido", i+1, name))
			continue
		}
		if err := decodeQuantity(row.Reorder, &reorder); err != nil {
			warnings = append(warnings, fmt.Sprintf("fila %d (%s): reorder inválido, se usa 0", i+1, name))
		}
		expiry, err := entity.ParseDate(row.Expiry)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("fila %d (%s): %v, se importa sin vencimiento", i+1, name, err))
		}
		items = append(items, entity.InventoryItem{
			ID:        legacyID(row),
			Name:      name,
			Category:  strings.TrimSpace(row.Category),
			Location:  strings.TrimSpace(row.Location),
			Quantity:  qty.Value,
			Reorder:   reorder.Value,
			Expiry:    expiry,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return items, warnings, nil
}

func decodeQuantity(raw json.RawMessage, q *dto.Quantity) error {
	if len(raw) == 0 {
		*q = dto.Quantity{}
		return nil
	}
	return q.UnmarshalJSON(raw)
}

// legacyNamespace espacio UUID v5 para las filas importadas sin id.
var legacyNamespace = uuid.MustParse("6f1c2b7e-3d4a-5e8f-9a0b-1c2d3e4f5a6b")

// legacyID conserva el id original para no romper enlaces existentes. Sin id se deriva un
// UUID v5 del contenido de la fila, así una segunda importación del mismo archivo lo omite.
func legacyID(row legacyItem) string {
	switch id := row.ID.(type) {
	case json.Number:
		return id.String()
	case string:
		if s := strings.TrimSpace(id); s != "" {
			return s
		}
	}
	key := strings.Join([]string{
		strings.TrimSpace(row.Name),
		strings.TrimSpace(row.Category),
		strings.TrimSpace(row.Location),
		string(bytes.TrimSpace(row.Qty)),
		string(bytes.TrimSpace(row.Reorder)),
		strings.TrimSpace(row.Expiry),
	}, "|")
	return uuid.NewSHA1(legacyNamespace, []byte(key)).String()
}

// decodeUsers convierte users.json en usuarios con el password ya hasheado (bcrypt).
// Todos entran como RoleUser: el administrador solo se crea desde ADMIN_USERNAME.
func decodeUsers(r io.Reader, now time.Time) ([]entity.User, []string, error) {
	var rows []legacyUser
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, nil, fmt.Errorf("decodificar usuarios: %w", err)
	}

	users := make([]entity.User, 0, len(rows))
	var warnings []string
	for i, row := range rows {
		username := strings.TrimSpace(row.Username)
		if username == "" || row.Password == "" {
			warnings = append(warnings, fmt.Sprintf("usuario %d: username o password vacío", i+1))
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(row.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, nil, fmt.Errorf("hash %s: %w", username, err)
		}
		users = append(users, entity.User{
			ID:           uuid.New().String(),
			Username:     username,
			PasswordHash: string(hash),
			Role:         entity.RoleUser,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return users, warnings, nil
}
