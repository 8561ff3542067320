//go:build unit

package mq

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	closed    bool
	publishes []string
	err       error
}

func (c *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, _ amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.publishes = append(c.publishes, key)
	return nil
}

func (c *fakeChannel) IsClosed() bool { return c.closed }

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// dialer hands out the given channels in order.
func dialer(dials *int, chans ...*fakeChannel) dialFunc {
	return func() (channel, io.Closer, error) {
		if *dials >= len(chans) {
			return nil, nil, errors.New("broker unreachable")
		}
		ch := chans[*dials]
		*dials++
		return ch, nopCloser{}, nil
	}
}

func TestPublisherRedial(t *testing.T) {
	ctx := context.Background()

	t.Run("publish on a closed channel redials and retries once", func(t *testing.T) {
		var dials int
		dead := &fakeChannel{err: amqp.ErrClosed}
		fresh := &fakeChannel{}
		p := newPublisher("petstay.events", dialer(&dials, dead, fresh))
		require.NoError(t, p.connect())

		err := p.Publish(ctx, uuid.New(), "booking.room.created", []byte(`{}`))

		require.NoError(t, err)
		assert.Equal(t, 2, dials)
		assert.True(t, dead.closed)
		assert.Equal(t, []string{"booking.room.created"}, fresh.publishes)
	})

	t.Run("channel closed by the broker between publishes", func(t *testing.T) {
		var dials int
		first := &fakeChannel{}
		second := &fakeChannel{}
		p := newPublisher("petstay.events", dialer(&dials, first, second))
		require.NoError(t, p.connect())
		require.NoError(t, p.Publish(ctx, uuid.New(), "booking.sitter.created", nil))

		first.closed = true
		require.NoError(t, p.Publish(ctx, uuid.New(), "booking.sitter.confirmed", nil))

		assert.Equal(t, []string{"booking.sitter.created"}, first.publishes)
		assert.Equal(t, []string{"booking.sitter.confirmed"}, second.publishes)
	})

	t.Run("broker still down", func(t *testing.T) {
		var dials int
		dead := &fakeChannel{err: amqp.ErrClosed}
		p := newPublisher("petstay.events", dialer(&dials, dead))
		require.NoError(t, p.connect())

		err := p.Publish(ctx, uuid.New(), "payment.charge_requested", nil)

		assert.ErrorContains(t, err, "broker unreachable")
		assert.ErrorContains(t, err, "payment.charge_requested")
	})

	t.Run("other publish errors do not redial", func(t *testing.T) {
		var dials int
		flaky := &fakeChannel{err: errors.New("frame too large")}
		p := newPublisher("petstay.events", dialer(&dials, flaky))
		require.NoError(t, p.connect())

		err := p.Publish(ctx, uuid.New(), "booking.room.created", nil)

		assert.Error(t, err)
		assert.Equal(t, 1, dials)
	})
}
