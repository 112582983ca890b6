package repository

import (
	"context"

	"github.com/jhoicas/medstock/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByUsername devuelve (nil, nil) si el usuario no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// UpsertAdmin crea o actualiza el administrador configurado al arrancar.
	UpsertAdmin(ctx context.Context, user *entity.User) error
}
