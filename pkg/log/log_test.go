package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	received := uuid.New().String()

	tests := []struct {
		name     string
		received string
		reuse    bool
	}{
		{name: "reaproveita o ID enviado pelo painel", received: received, reuse: true},
		{name: "gera um ID quando nada é enviado", received: ""},
		{name: "gera um ID quando o enviado não é UUID", received: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, id := WithCorrelationID(context.Background(), tt.received)

			assert.Equal(t, id, GetCorrelationID(ctx))
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
			if tt.reuse {
				assert.Equal(t, tt.received, id)
			} else {
				assert.NotEqual(t, tt.received, id)
			}
		})
	}
}

func TestGetCorrelationID_SemValor(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestKeepInDevelopment(t *testing.T) {
	assert.True(t, keepInDevelopment("resource"))
	assert.True(t, keepInDevelopment("user_id"))
	assert.True(t, keepInDevelopment("sync_cron"))
	assert.False(t, keepInDevelopment("user_agent"))
}
