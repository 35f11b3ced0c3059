package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: develop
  serviceName: captions
  log:
    level: debug
http:
  port: 8080
webhook:
  signingSecret: ""
  tolerance: 2m
pubsub:
  provider: local
  topicId: identity-events
media:
  bucketUrl: file:///tmp/media
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("WEBHOOK_SIGNINGSECRET", "whsec_dGVzdA==")
	t.Setenv("PUBSUB_TOPICID", "override-topic")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	require.NotNil(t, cfg.Webhook)
	assert.Equal(t, "whsec_dGVzdA==", cfg.Webhook.SigningSecret)
	assert.Equal(t, 2*time.Minute, cfg.Webhook.Tolerance)
	require.NotNil(t, cfg.PubSub)
	assert.Equal(t, "override-topic", cfg.PubSub.TopicID)
	require.NotNil(t, cfg.Media)
	assert.Equal(t, "file:///tmp/media", cfg.Media.BucketURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Identity)
	require.NotNil(t, cfg.Webhook)
	assert.Equal(t, defaultWebhookTolerance, cfg.Webhook.Tolerance)
	require.NotNil(t, cfg.PubSub)
	assert.Empty(t, cfg.PubSub.Provider)
	require.NotNil(t, cfg.Media)
	assert.Equal(t, defaultSignedURLTTL, cfg.Media.SignedURLTTL)
	require.NotNil(t, cfg.QRCode)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Webhook: &WebhookConfig{Tolerance: time.Minute},
		Media:   &MediaConfig{SignedURLTTL: time.Hour},
	}
	cfg.HTTP.MaxRequestBodySize = "4MB"

	applyDefaults(cfg)

	assert.Equal(t, "4MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, time.Minute, cfg.Webhook.Tolerance)
	assert.Equal(t, time.Hour, cfg.Media.SignedURLTTL)
}
