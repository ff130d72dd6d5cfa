package handlers

import (
	"net/http"

	"github.com/nexoteam/directorio-api/api/services"
)

func CreateGrupo(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CreateGrupoService(svc, w, r)
	}
}

func GetGrupos(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetGruposService(svc, w, r)
	}
}

func GetGrupo(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetGrupoService(svc, w, r)
	}
}

func DeleteGrupo(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DeleteGrupoService(svc, w, r)
	}
}

func AgregarUsuario(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.AgregarUsuarioService(svc, w, r)
	}
}

func Salud(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.SaludService(svc, w, r)
	}
}
