package commander_test

import (
	"context"
	"testing"

	"github.com/shlomaa/distributors-import/pkg/v1/commander"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitRabbitMQSenderSend(t *testing.T) {
	body := []byte(`{"action":"import","partnerId":123}`)

	tests := map[string]struct {
		publisherError error
		wantErr        error
	}{
		"ok": {},
		"publisher error": {
			publisherError: assert.AnError,
			wantErr:        assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			publisher := &recordingPublisher{err: tt.publisherError}

			sender := commander.NewRabbitMQSender(publisher, "partner-import.commands")
			err := sender.Send(context.TODO(), body)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			assert.Equal(t, "partner-import.commands", publisher.routingKey)
			assert.Equal(t, body, publisher.published)
		})
	}
}

type recordingPublisher struct {
	routingKey string
	published  []byte
	err        error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, msg []byte) error {
	p.routingKey = routingKey
	p.published = msg
	return p.err
}
