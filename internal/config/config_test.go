package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-table-server/internal/util"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	contents := []byte("jwt:\n  secret: from-the-file\nlog:\n  level: debug\n")
	assert.NoError(t, os.WriteFile(configFile, contents, 0600))

	restore := util.SetEnv("HTS_CONFIG_FILE", configFile)
	defer restore()

	assert.NoError(t, Load())
	assert.Equal(t, "from-the-file", Instance().JWT.Secret)
	assert.Equal(t, "debug", Instance().Log.Level)
}

func TestLoad_missingFileGeneratesSecret(t *testing.T) {
	restore := util.SetEnv("HTS_CONFIG_FILE", filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	defer restore()

	assert.NoError(t, Load())
	assert.NotEmpty(t, Instance().JWT.Secret)

	first := Instance().JWT.Secret
	assert.NoError(t, Load())
	assert.NotEqual(t, first, Instance().JWT.Secret)
}
