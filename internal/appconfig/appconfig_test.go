package appconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig_RendersEnvVars(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	path := writeConfig(t, `
host: localhost
basePath: /api
database:
  uri: "{{ .MONGO_URI }}"
  name: directorio
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "directorio", cfg.Database.Name)
	assert.Equal(t, "/api", cfg.BasePath)
}

func TestLoadConfig_DefaultsCollectionNames(t *testing.T) {
	path := writeConfig(t, `
database:
  uri: mongodb://localhost:27017
  name: directorio
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "usuarios", cfg.Database.Usuarios)
	assert.Equal(t, "grupos", cfg.Database.Grupos)
}

func TestLoadConfig_MissingRequiredField(t *testing.T) {
	path := writeConfig(t, `
database:
  name: directorio
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
