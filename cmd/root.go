package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nexoteam/directorio-api/db"
	"github.com/nexoteam/directorio-api/internal/appconfig"
	"github.com/nexoteam/directorio-api/internal/events"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	configPath string
	host       string
	port       int

	appCfg       *appconfig.Config
	directorioDB *db.DirectorioDB
)

var rootCmd = &cobra.Command{
	Use:   "directorio-api",
	Short: "Directorio API",
	Long:  `Directorio API is an HTTP service managing usuarios and grupos backed by MongoDB.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn",
		"sets the log level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml",
		"path to the config file")
}

// commonSetUp configures logging, loads the config, wires the event notifier
// and connects to the database. Any failure is fatal: the server must never
// start half-initialized.
func commonSetUp() {
	setLogging(logLevel)

	var err error
	appCfg, err = appconfig.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var notifier events.Notifier = &events.NoopNotifier{}
	if appCfg.Pulsar.URL != "" {
		notifier, err = events.NewEventPublisher(appCfg.Pulsar.URL, appCfg.Pulsar.TopicProducer)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize event publisher")
		}
	}

	logger := log.Logger
	directorioDB, err = db.NewDirectorioDB(appCfg.Database, notifier, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to the database")
	}
}

func setLogging(level string) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
