package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"captions/config"
	"captions/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.PubSubConfig
		wantErr bool
	}{
		{name: "local", cfg: config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://w/push"}},
		{name: "local without endpoint", cfg: config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google", cfg: config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p", TopicID: "t"}},
		{name: "google without topic", cfg: config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown", cfg: config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewEventPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("inline mode without provider", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)

		publisher, err := NewEventPublisher(PublisherParams{
			Lc: lc, Ctx: context.Background(), Config: &config.Config{}, Logger: logger,
		})

		require.NoError(t, err)
		assert.Nil(t, publisher)
	})

	t.Run("local provider closes on stop", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{PubSub: &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://localhost:8081/push",
		}}

		publisher, err := NewEventPublisher(PublisherParams{
			Lc: lc, Ctx: context.Background(), Config: cfg, Logger: logger,
		})

		require.NoError(t, err)
		require.NotNil(t, publisher)
		lc.RequireStart().RequireStop()
	})
}
