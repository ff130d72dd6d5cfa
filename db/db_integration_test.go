//go:build integration

package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/nexoteam/directorio-api/internal/appconfig"
	"github.com/nexoteam/directorio-api/internal/events"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// setupMongoContainer starts a MongoDB container and returns a connected
// DirectorioDB plus a cleanup function.
func setupMongoContainer(t *testing.T) (*DirectorioDB, func()) {
	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("could not start container: %s", err)
	}

	host, _ := mongoC.Host(ctx)
	port, _ := mongoC.MappedPort(ctx, "27017/tcp")

	cfg := appconfig.DatabaseConfig{
		URI:      fmt.Sprintf("mongodb://%s:%s", host, port.Port()),
		Name:     "directorio_test",
		Usuarios: "usuarios",
		Grupos:   "grupos",
	}

	logger := zerolog.Nop()
	database, err := NewDirectorioDB(cfg, &events.NoopNotifier{}, &logger)
	if err != nil {
		t.Fatalf("could not connect to mongo container: %s", err)
	}

	cleanup := func() {
		database.Close()
		mongoC.Terminate(ctx)
	}
	return database, cleanup
}

func TestUsuarioLifecycle(t *testing.T) {
	database, cleanup := setupMongoContainer(t)
	defer cleanup()
	ctx := context.Background()

	// Create: the returned document carries the assigned id
	usuario, err := database.InsertUsuario(ctx, bson.M{
		"nombre": "Ana", "apellido": "García", "telefono": "5551234", "edad": 30,
		"ciudad": "Bogotá",
	})
	require.NoError(t, err)
	oid, ok := usuario["_id"].(primitive.ObjectID)
	require.True(t, ok)

	// Round trip: fetching by the returned id yields the stored document
	fetched, err := database.GetUsuario(ctx, oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Ana", fetched["nombre"])
	assert.Equal(t, "Bogotá", fetched["ciudad"])

	// Partial merge: only telefono changes, nombre survives
	updated, err := database.UpdateUsuario(ctx, oid.Hex(), bson.M{"telefono": "5559999"})
	require.NoError(t, err)
	assert.Equal(t, "5559999", updated["telefono"])
	assert.Equal(t, "Ana", updated["nombre"])

	// Empty update is a plain re-read
	same, err := database.UpdateUsuario(ctx, oid.Hex(), bson.M{})
	require.NoError(t, err)
	assert.Equal(t, "5559999", same["telefono"])

	// Delete, then the same id is gone; a second delete is also not-found
	err = database.DeleteUsuario(ctx, oid.Hex())
	require.NoError(t, err)

	_, err = database.GetUsuario(ctx, oid.Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	err = database.DeleteUsuario(ctx, oid.Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsuarioIdentifierErrors(t *testing.T) {
	database, cleanup := setupMongoContainer(t)
	defer cleanup()
	ctx := context.Background()

	// Malformed id fails as a plain error, not as ErrNotFound
	_, err := database.GetUsuario(ctx, "no-es-un-id")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	// Well-formed but unknown id is not-found
	_, err = database.GetUsuario(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUsuarios_EmptyCollection(t *testing.T) {
	database, cleanup := setupMongoContainer(t)
	defer cleanup()

	usuarios, err := database.GetUsuarios(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, usuarios)
	assert.Len(t, usuarios, 0)
}

func TestGrupoMembership(t *testing.T) {
	database, cleanup := setupMongoContainer(t)
	defer cleanup()
	ctx := context.Background()

	grupo, err := database.InsertGrupo(ctx, bson.M{
		"nombreGrupo": "Ventas", "integrantes": []interface{}{},
	})
	require.NoError(t, err)
	oid := grupo["_id"].(primitive.ObjectID)

	// Adding the same member twice leaves it in the list exactly once
	require.NoError(t, database.AddIntegrante(ctx, oid.Hex(), "usuario-123"))
	require.NoError(t, database.AddIntegrante(ctx, oid.Hex(), "usuario-123"))

	fetched, err := database.GetGrupo(ctx, oid.Hex())
	require.NoError(t, err)
	integrantes := fetched["integrantes"].(bson.A)
	assert.Len(t, integrantes, 1)
	assert.Equal(t, "usuario-123", integrantes[0])

	// Unknown group gets not-found and creates nothing
	err = database.AddIntegrante(ctx, primitive.NewObjectID().Hex(), "usuario-123")
	assert.ErrorIs(t, err, ErrNotFound)

	grupos, err := database.GetGrupos(ctx)
	require.NoError(t, err)
	assert.Len(t, grupos, 1)
}

func TestInitCollections_Idempotent(t *testing.T) {
	database, cleanup := setupMongoContainer(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, database.InitCollections(ctx))

	// Running it again against existing collections is not an error
	require.NoError(t, database.InitCollections(ctx))
}
