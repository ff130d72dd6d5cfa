package services

import (
	"context"

	"github.com/nexoteam/directorio-api/internal/appconfig"
	"github.com/nexoteam/directorio-api/internal/events"
	"go.mongodb.org/mongo-driver/bson"
)

// Store is the storage surface the services depend on. *db.DirectorioDB
// implements it; tests substitute a mock.
type Store interface {
	InsertUsuario(ctx context.Context, doc bson.M) (bson.M, error)
	GetUsuarios(ctx context.Context) ([]bson.M, error)
	GetUsuario(ctx context.Context, id string) (bson.M, error)
	UpdateUsuario(ctx context.Context, id string, campos bson.M) (bson.M, error)
	DeleteUsuario(ctx context.Context, id string) error

	InsertGrupo(ctx context.Context, doc bson.M) (bson.M, error)
	GetGrupos(ctx context.Context) ([]bson.M, error)
	GetGrupo(ctx context.Context, id string) (bson.M, error)
	DeleteGrupo(ctx context.Context, id string) error
	AddIntegrante(ctx context.Context, grupoID, usuarioID string) error

	Ping(ctx context.Context) error
}

// Service contains all shared dependencies for handlers.
type Service struct {
	Config    *appconfig.Config
	DB        Store
	Publisher events.Notifier
}
