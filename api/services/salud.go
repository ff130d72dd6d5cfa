package services

import (
	"net/http"

	"github.com/rs/zerolog"
)

type estadoResponse struct {
	Estado  string `json:"estado"`
	Detalle string `json:"detalle,omitempty"`
}

// SaludService reports whether the service can reach its database.
func SaludService(svc *Service, w http.ResponseWriter, r *http.Request) {
	if err := svc.DB.Ping(r.Context()); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("database unreachable")
		WriteResponse(w, http.StatusServiceUnavailable,
			estadoResponse{Estado: "fuera de servicio", Detalle: err.Error()})
		return
	}

	WriteResponse(w, http.StatusOK, estadoResponse{Estado: "ok"})
}
