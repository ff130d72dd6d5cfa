package handlers

import (
	"net/http"

	"github.com/nexoteam/directorio-api/api/services"
)

func CreateUsuario(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CreateUsuarioService(svc, w, r)
	}
}

func GetUsuarios(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetUsuariosService(svc, w, r)
	}
}

func GetUsuario(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetUsuarioService(svc, w, r)
	}
}

func UpdateUsuario(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.UpdateUsuarioService(svc, w, r)
	}
}

func DeleteUsuario(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DeleteUsuarioService(svc, w, r)
	}
}
