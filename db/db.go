package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nexoteam/directorio-api/internal/appconfig"
	"github.com/nexoteam/directorio-api/internal/events"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotFound is returned when a well-formed identifier matches no document.
// Every other storage error, including a malformed identifier, surfaces as a
// plain wrapped error.
var ErrNotFound = errors.New("documento no encontrado")

type DirectorioDB struct {
	Client   *mongo.Client
	Usuarios *mongo.Collection
	Grupos   *mongo.Collection
	Events   events.Notifier
	Log      *zerolog.Logger
}

// NewDirectorioDB is a constructor that connects to MongoDB and initializes
// DirectorioDB with the two collection handles. The caller exits the process
// on error; there is no retry policy.
func NewDirectorioDB(cfg appconfig.DatabaseConfig, notifier events.Notifier, log *zerolog.Logger) (*DirectorioDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Error().Err(err).Msg("Failed to open database connection")
		return nil, err
	}

	// Check we are actually connected
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Error().Err(err).Msg("Database connection failed during ping")
		return nil, err
	}

	database := client.Database(cfg.Name)

	return &DirectorioDB{
		Client:   client,
		Usuarios: database.Collection(cfg.Usuarios),
		Grupos:   database.Collection(cfg.Grupos),
		Events:   notifier,
		Log:      log,
	}, nil
}

func (db *DirectorioDB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Client.Disconnect(ctx); err != nil {
		return err
	}
	db.Log.Info().Msg("database connection closed")

	db.Events.Close()
	db.Log.Info().Msg("event publisher closed")

	return nil
}

// Ping reports whether the database is reachable.
func (db *DirectorioDB) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// InitCollections ensures the two collections exist. Mongo creates
// collections lazily on first insert, so this only matters for fresh
// deployments that want them visible up front.
func (db *DirectorioDB) InitCollections(ctx context.Context) error {
	database := db.Usuarios.Database()

	for _, name := range []string{db.Usuarios.Name(), db.Grupos.Name()} {
		err := database.CreateCollection(ctx, name)
		if err != nil {
			var cmdErr mongo.CommandError
			if errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceExists" {
				db.Log.Debug().Str("collection", name).Msg("collection already exists")
				continue
			}
			return fmt.Errorf("error creating collection %s: %w", name, err)
		}
		db.Log.Info().Str("collection", name).Msg("collection created")
	}

	return nil
}
