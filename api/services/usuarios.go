package services

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/nexoteam/directorio-api/db"
	"github.com/nexoteam/directorio-api/models"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateUsuarioService stores a new user document. The body is an arbitrary
// JSON object; it only has to carry truthy values for the required fields,
// everything else is stored verbatim.
func CreateUsuarioService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var doc bson.M
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		logger.Error().Err(err).Msg("invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, "El cuerpo de la petición no es JSON válido", err)
		return
	}

	if !camposPresentes(doc, models.UsuarioRequiredFields) {
		HandleErrResponse(w, http.StatusBadRequest,
			"Los campos nombre, apellido, telefono y edad son obligatorios", nil)
		return
	}

	usuario, err := svc.DB.InsertUsuario(r.Context(), doc)
	if err != nil {
		logger.Error().Err(err).Msg("failed to insert usuario")
		HandleErrResponse(w, http.StatusInternalServerError, "Error al crear el usuario", err)
		return
	}

	notify(logger, svc.Publisher, "usuario", "crear", hexID(usuario))
	WriteResponse(w, http.StatusCreated, usuario)
}

// GetUsuariosService returns every user document.
func GetUsuariosService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	usuarios, err := svc.DB.GetUsuarios(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("failed to list usuarios")
		HandleErrResponse(w, http.StatusInternalServerError, "Error al obtener los usuarios", err)
		return
	}

	WriteResponse(w, http.StatusOK, usuarios)
}

// GetUsuarioService returns one user document by path id. A well-formed id
// with no match is 404; a malformed id surfaces from the storage layer as a
// generic error and maps to 400, the same as any other storage failure.
func GetUsuarioService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	id := mux.Vars(r)["id"]

	usuario, err := svc.DB.GetUsuario(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		HandleErrResponse(w, http.StatusNotFound, "Usuario no encontrado", nil)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to get usuario")
		HandleErrResponse(w, http.StatusBadRequest, "Error al obtener el usuario", err)
		return
	}

	WriteResponse(w, http.StatusOK, usuario)
}

// UpdateUsuarioService applies a partial merge: only the fields present in
// the body are overwritten. The response carries the re-read document.
func UpdateUsuarioService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	id := mux.Vars(r)["id"]

	var campos bson.M
	if err := json.NewDecoder(r.Body).Decode(&campos); err != nil {
		logger.Error().Err(err).Msg("invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, "El cuerpo de la petición no es JSON válido", err)
		return
	}

	usuario, err := svc.DB.UpdateUsuario(r.Context(), id, campos)
	if errors.Is(err, db.ErrNotFound) {
		HandleErrResponse(w, http.StatusNotFound, "Usuario no encontrado", nil)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to update usuario")
		HandleErrResponse(w, http.StatusBadRequest, "Error al actualizar el usuario", err)
		return
	}

	notify(logger, svc.Publisher, "usuario", "actualizar", id)
	WriteResponse(w, http.StatusOK, usuario)
}

// DeleteUsuarioService removes a user document. Deleting twice reports 404
// the second time; group member lists referencing the id keep the stale id.
func DeleteUsuarioService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	id := mux.Vars(r)["id"]

	err := svc.DB.DeleteUsuario(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		HandleErrResponse(w, http.StatusNotFound, "Usuario no encontrado", nil)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to delete usuario")
		HandleErrResponse(w, http.StatusBadRequest, "Error al eliminar el usuario", err)
		return
	}

	notify(logger, svc.Publisher, "usuario", "eliminar", id)
	WriteResponse(w, http.StatusNoContent, nil)
}
