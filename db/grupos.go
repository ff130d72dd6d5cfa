package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertGrupo inserts a group document and returns it with the assigned _id.
// The caller is responsible for normalizing integrantes to a list first.
func (db *DirectorioDB) InsertGrupo(ctx context.Context, doc bson.M) (bson.M, error) {
	res, err := db.Grupos.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("error inserting grupo: %w", err)
	}
	doc["_id"] = res.InsertedID
	return doc, nil
}

// GetGrupos retrieves every group document.
func (db *DirectorioDB) GetGrupos(ctx context.Context) ([]bson.M, error) {
	cursor, err := db.Grupos.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error retrieving grupos: %w", err)
	}

	grupos := []bson.M{}
	if err := cursor.All(ctx, &grupos); err != nil {
		return nil, fmt.Errorf("error decoding grupos: %w", err)
	}
	return grupos, nil
}

// GetGrupo retrieves a single group document by its hex identifier.
func (db *DirectorioDB) GetGrupo(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("id de grupo no válido: %w", err)
	}

	var grupo bson.M
	err = db.Grupos.FindOne(ctx, bson.M{"_id": oid}).Decode(&grupo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving grupo: %w", err)
	}
	return grupo, nil
}

// DeleteGrupo removes a group document.
func (db *DirectorioDB) DeleteGrupo(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("id de grupo no válido: %w", err)
	}

	res, err := db.Grupos.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting grupo: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddIntegrante adds a user id string to the group's integrantes list with
// $addToSet, so adding an already-present member is a no-op. The id is stored
// as given; it is never checked against the usuarios collection.
func (db *DirectorioDB) AddIntegrante(ctx context.Context, grupoID, usuarioID string) error {
	oid, err := primitive.ObjectIDFromHex(grupoID)
	if err != nil {
		return fmt.Errorf("id de grupo no válido: %w", err)
	}

	res, err := db.Grupos.UpdateByID(ctx, oid, bson.M{
		"$addToSet": bson.M{"integrantes": usuarioID},
	})
	if err != nil {
		return fmt.Errorf("error adding integrante: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
