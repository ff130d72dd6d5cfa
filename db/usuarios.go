package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Usuario documents are schema-less, so they travel through this layer as
// bson.M. Identifier strings come straight from request paths; a string that
// fails ObjectIDFromHex is returned as a plain error, deliberately
// indistinguishable from any other storage error.

// InsertUsuario inserts a user document and returns it with the assigned _id.
func (db *DirectorioDB) InsertUsuario(ctx context.Context, doc bson.M) (bson.M, error) {
	res, err := db.Usuarios.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("error inserting usuario: %w", err)
	}
	doc["_id"] = res.InsertedID
	return doc, nil
}

// GetUsuarios retrieves every user document.
func (db *DirectorioDB) GetUsuarios(ctx context.Context) ([]bson.M, error) {
	cursor, err := db.Usuarios.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error retrieving usuarios: %w", err)
	}

	usuarios := []bson.M{}
	if err := cursor.All(ctx, &usuarios); err != nil {
		return nil, fmt.Errorf("error decoding usuarios: %w", err)
	}
	return usuarios, nil
}

// GetUsuario retrieves a single user document by its hex identifier.
func (db *DirectorioDB) GetUsuario(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("id de usuario no válido: %w", err)
	}

	var usuario bson.M
	err = db.Usuarios.FindOne(ctx, bson.M{"_id": oid}).Decode(&usuario)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving usuario: %w", err)
	}
	return usuario, nil
}

// UpdateUsuario applies a partial $set merge and re-reads the document. The
// two round trips are not atomic: a concurrent writer can land between them
// and the returned document reflects whatever is stored at read time. An
// empty field set skips the $set and only re-reads.
func (db *DirectorioDB) UpdateUsuario(ctx context.Context, id string, campos bson.M) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("id de usuario no válido: %w", err)
	}

	if len(campos) > 0 {
		res, err := db.Usuarios.UpdateByID(ctx, oid, bson.M{"$set": campos})
		if err != nil {
			return nil, fmt.Errorf("error updating usuario: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, ErrNotFound
		}
	}

	var usuario bson.M
	err = db.Usuarios.FindOne(ctx, bson.M{"_id": oid}).Decode(&usuario)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving updated usuario: %w", err)
	}
	return usuario, nil
}

// DeleteUsuario removes a user document. Deleting an already-deleted
// identifier reports ErrNotFound, the same as a never-existing one.
func (db *DirectorioDB) DeleteUsuario(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("id de usuario no válido: %w", err)
	}

	res, err := db.Usuarios.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting usuario: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
