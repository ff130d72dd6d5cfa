package services

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/nexoteam/directorio-api/db"
	"github.com/nexoteam/directorio-api/models"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
)

var validate = validator.New()

// CreateGrupoService stores a new group document. integrantes is silently
// coerced to an empty list unless the client supplied a list.
func CreateGrupoService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var doc bson.M
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		logger.Error().Err(err).Msg("invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, "El cuerpo de la petición no es JSON válido", err)
		return
	}

	if esFalsy(doc["nombreGrupo"]) {
		HandleErrResponse(w, http.StatusBadRequest, "El campo nombreGrupo es obligatorio", nil)
		return
	}

	if _, ok := doc["integrantes"].([]interface{}); !ok {
		doc["integrantes"] = []interface{}{}
	}

	grupo, err := svc.DB.InsertGrupo(r.Context(), doc)
	if err != nil {
		logger.Error().Err(err).Msg("failed to insert grupo")
		HandleErrResponse(w, http.StatusInternalServerError, "Error al crear el grupo", err)
		return
	}

	notify(logger, svc.Publisher, "grupo", "crear", hexID(grupo))
	WriteResponse(w, http.StatusCreated, grupo)
}

// GetGruposService returns every group document.
func GetGruposService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	grupos, err := svc.DB.GetGrupos(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("failed to list grupos")
		HandleErrResponse(w, http.StatusInternalServerError, "Error al obtener los grupos", err)
		return
	}

	WriteResponse(w, http.StatusOK, grupos)
}

// GetGrupoService returns one group document by path id, with the same
// 404/400 split as usuarios.
func GetGrupoService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	id := mux.Vars(r)["id"]

	grupo, err := svc.DB.GetGrupo(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		HandleErrResponse(w, http.StatusNotFound, "Grupo no encontrado", nil)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to get grupo")
		HandleErrResponse(w, http.StatusBadRequest, "Error al obtener el grupo", err)
		return
	}

	WriteResponse(w, http.StatusOK, grupo)
}

// DeleteGrupoService removes a group document.
func DeleteGrupoService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	id := mux.Vars(r)["id"]

	err := svc.DB.DeleteGrupo(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		HandleErrResponse(w, http.StatusNotFound, "Grupo no encontrado", nil)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to delete grupo")
		HandleErrResponse(w, http.StatusBadRequest, "Error al eliminar el grupo", err)
		return
	}

	notify(logger, svc.Publisher, "grupo", "eliminar", id)
	WriteResponse(w, http.StatusNoContent, nil)
}

// AgregarUsuarioService appends a user id string to a group's integrantes
// list. Adding a member that is already present succeeds without changing the
// list. The id is not validated against the usuarios collection.
func AgregarUsuarioService(svc *Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	idGrupo := mux.Vars(r)["idGrupo"]

	var payload models.MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Error().Err(err).Msg("invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, "El cuerpo de la petición no es JSON válido", err)
		return
	}

	if err := validate.Struct(&payload); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, "El campo idUsuario es obligatorio", nil)
		return
	}

	err := svc.DB.AddIntegrante(r.Context(), idGrupo, payload.IDUsuario)
	if errors.Is(err, db.ErrNotFound) {
		HandleErrResponse(w, http.StatusNotFound, "Grupo no encontrado", nil)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("idGrupo", idGrupo).Msg("failed to add integrante")
		HandleErrResponse(w, http.StatusBadRequest, "Error al agregar el usuario al grupo", err)
		return
	}

	notify(logger, svc.Publisher, "grupo", "agregar-integrante", idGrupo)
	WriteResponse(w, http.StatusOK, models.Response{Mensaje: "Usuario agregado al grupo"})
}
