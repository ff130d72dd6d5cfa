package cmd

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/nexoteam/directorio-api/api/handlers"
	"github.com/nexoteam/directorio-api/api/middleware"
	"github.com/nexoteam/directorio-api/api/services"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, connect the database and set up logging
		commonSetUp()
		defer directorioDB.Close()

		// Create routes
		r := mux.NewRouter()

		service := &services.Service{
			Config:    appCfg,
			DB:        directorioDB,
			Publisher: directorioDB.Events,
		}

		// Register the routes
		api := r.PathPrefix(appCfg.BasePath).Subrouter()

		// Apply the middleware to the API routes
		api.Use(middleware.WithLogger)

		// Usuario routes
		api.HandleFunc("/usuarios", handlers.CreateUsuario(service)).Methods(http.MethodPost)
		api.HandleFunc("/usuarios", handlers.GetUsuarios(service)).Methods(http.MethodGet)
		api.HandleFunc("/usuarios/{id}", handlers.GetUsuario(service)).Methods(http.MethodGet)
		api.HandleFunc("/usuarios/{id}", handlers.UpdateUsuario(service)).Methods(http.MethodPut)
		api.HandleFunc("/usuarios/{id}", handlers.DeleteUsuario(service)).Methods(http.MethodDelete)

		// Grupo routes
		api.HandleFunc("/grupos", handlers.CreateGrupo(service)).Methods(http.MethodPost)
		api.HandleFunc("/grupos", handlers.GetGrupos(service)).Methods(http.MethodGet)
		api.HandleFunc("/grupos/{id}", handlers.GetGrupo(service)).Methods(http.MethodGet)
		api.HandleFunc("/grupos/{id}", handlers.DeleteGrupo(service)).Methods(http.MethodDelete)
		api.HandleFunc("/grupos/{idGrupo}/agregar-usuario", handlers.AgregarUsuario(service)).Methods(http.MethodPost)

		// Health route
		api.HandleFunc("/salud", handlers.Salud(service)).Methods(http.MethodGet)

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			r); err != nil {

			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 3000, "port to run the server on")
}
