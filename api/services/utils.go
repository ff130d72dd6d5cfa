package services

import (
	"encoding/json"
	"net/http"

	"github.com/nexoteam/directorio-api/internal/events"
	"github.com/nexoteam/directorio-api/models"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}) {

	w.Header().Set("Content-Type", "application/json")

	// We don't want to cache API responses so the client receives most curent data
	w.Header().Set("Cache-Control", "max-age=0")

	w.WriteHeader(statusCode)

	if response != nil {
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}

// HandleErrResponse writes a mensaje/detalle error body with the given status.
func HandleErrResponse(w http.ResponseWriter, statusCode int, mensaje string, err error) {
	response := models.Response{Mensaje: mensaje}
	if err != nil {
		response.Detalle = err.Error()
	}
	WriteResponse(w, statusCode, response)
}

// esFalsy mirrors the truthiness rule applied to required fields: nil, empty
// string, false and numeric zero all count as missing. JSON numbers decode as
// float64, so that is the only numeric case.
func esFalsy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	default:
		return false
	}
}

// camposPresentes reports whether every required field has a truthy value.
func camposPresentes(doc map[string]interface{}, campos []string) bool {
	for _, campo := range campos {
		if esFalsy(doc[campo]) {
			return false
		}
	}
	return true
}

// hexID renders a document's assigned identifier as its 24-hex wire form.
func hexID(doc bson.M) string {
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}

// notify publishes a lifecycle event. Best-effort: a publish failure is
// logged and the HTTP response is unaffected.
func notify(logger *zerolog.Logger, publisher events.Notifier, recurso, accion, id string) {
	payload := events.EventPayload{Recurso: recurso, Accion: accion, ID: id}
	if err := publisher.Notify(payload); err != nil {
		logger.Warn().Err(err).Str("recurso", recurso).Str("accion", accion).
			Msg("failed to publish lifecycle event")
	}
}
