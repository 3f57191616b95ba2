package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  name: jobs-api
  env: test
  http:
    host: 127.0.0.1
    port: 9090
log:
  level: debug
  json: true
jwt:
  secret: unit-test-secret
  issuer: jobs-api
  accesstokenttlmin: 60
db:
  driver: postgres
  dsn: host=localhost user=t dbname=t
  automigrate: true
redis:
  addr: 127.0.0.1:6379
  db: 1
auth:
  demo_user_id: demo123
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	c := Load(path)

	assert.Equal(t, "jobs-api", c.App.Name)
	assert.Equal(t, 9090, c.App.HTTP.Port)
	assert.True(t, c.Log.JSON)
	assert.Equal(t, "unit-test-secret", c.JWT.Secret)
	assert.Equal(t, "postgres", c.DB.Driver)
	assert.True(t, c.DB.AutoMigrate)
	assert.Equal(t, "127.0.0.1:6379", c.Redis.Addr)
	assert.Equal(t, 1, c.Redis.DB)
	assert.Equal(t, "demo123", c.Auth.DemoUserID)
}

func TestLoad_RateLimitDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	c := Load(path)

	// 未配置时落到 10 次 / 15 分钟
	assert.Equal(t, 10, c.Auth.LoginRateMax)
	assert.Equal(t, 15, c.Auth.LoginRateWindowMin)
}
