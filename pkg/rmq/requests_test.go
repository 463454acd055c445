package rmq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikrivosheev/rabbitmq-http-client/pkg/rmq"
)

func TestNewQueueSettings(t *testing.T) {
	t.Parallel()
	t.Run("injects the queue type argument", func(t *testing.T) {
		t.Parallel()

		settings := rmq.NewQueueSettings(rmq.QueueTypeClassic, true, false, nil)

		assert.Equal(t, rmq.QueueTypeClassic, settings.Type)
		assert.True(t, settings.Durable)
		assert.False(t, settings.AutoDelete)

		queueType, ok := settings.Arguments.Get("x-queue-type")
		require.True(t, ok)
		assert.Equal(t, "classic", queueType)
	})

	t.Run("never mutates caller arguments", func(t *testing.T) {
		t.Parallel()

		args := rmq.NewArguments().Set("x-max-length", 1000)
		settings := rmq.NewQueueSettings(rmq.QueueTypeQuorum, true, false, args)

		_, ok := args.Get("x-queue-type")
		assert.False(t, ok, "caller arguments must stay untouched")

		maxLength, ok := settings.Arguments.Get("x-max-length")
		require.True(t, ok)
		assert.Equal(t, 1000, maxLength)

		settings.Arguments.Set("x-max-length", 5)
		maxLength, _ = args.Get("x-max-length")
		assert.Equal(t, 1000, maxLength, "settings must hold a copy")
	})
}

func TestQueueSettingsConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings rmq.QueueSettings
		wantType string
	}{
		{name: "quorum", settings: rmq.NewQuorumQueue(nil), wantType: "quorum"},
		{name: "stream", settings: rmq.NewStream(nil), wantType: "stream"},
		{name: "durable classic", settings: rmq.NewDurableClassicQueue(nil), wantType: "classic"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, tt.settings.Durable)
			assert.False(t, tt.settings.AutoDelete)

			queueType, ok := tt.settings.Arguments.Get("x-queue-type")
			require.True(t, ok)
			assert.Equal(t, tt.wantType, queueType)
		})
	}
}

func TestNewExchangeSettings(t *testing.T) {
	t.Parallel()

	args := rmq.NewArguments().Set("alternate-exchange", "unrouted")
	settings := rmq.NewExchangeSettings(rmq.ExchangeTypeTopic, true, false, args)

	assert.Equal(t, rmq.ExchangeTypeTopic, settings.Type)
	assert.True(t, settings.Durable)

	settings.Arguments.Set("alternate-exchange", "changed")
	original, _ := args.Get("alternate-exchange")
	assert.Equal(t, "unrouted", original, "settings must hold a copy")
}

func TestNewDurableExchange(t *testing.T) {
	t.Parallel()

	settings := rmq.NewDurableExchange(rmq.ExchangeTypeFanout, nil)

	assert.Equal(t, rmq.ExchangeTypeFanout, settings.Type)
	assert.True(t, settings.Durable)
	assert.False(t, settings.AutoDelete)
	assert.Nil(t, settings.Arguments)
}
