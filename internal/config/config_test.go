package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "berber"
password = "from-file"
dbname = "randevu"

[logs]
level = "debug"

[kafka]
enabled = true
brokers = ["kafka:9092"]
topic = "appointments"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout, "default keeps unset fields")
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "s3cret", cfg.Bootstrap.AdminPassword)
	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t,
		"host=db port=5433 user=berber password=from-env dbname=randevu sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "[kafka]\nenabled = true\nbrokers = []\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, "[server]\nhttp_port = 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
