package destination

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaborage/go-beams/level"
)

type fakePublisher struct {
	published [][]byte
	exchanges []string
	keys      []string
	err       error
	closed    bool
}

func (p *fakePublisher) Publish(_ context.Context, exchange, routingKey string, body []byte) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, body)
	p.exchanges = append(p.exchanges, exchange)
	p.keys = append(p.keys, routingKey)
	return nil
}

func (p *fakePublisher) Close() error {
	p.closed = true
	return nil
}

func TestAMQPLog(t *testing.T) {
	pub := &fakePublisher{}
	d := NewAMQP(pub, "logs", "app.info")
	d.SetFormat("$L: $M")

	d.Log(infoEvent("queued"))

	require.Len(t, pub.published, 1)
	assert.Equal(t, "INFO: queued", string(pub.published[0]))
	assert.Equal(t, "logs", pub.exchanges[0])
	assert.Equal(t, "app.info", pub.keys[0])
	assert.NoError(t, d.Flush())
}

func TestAMQPIsAsyncByDefault(t *testing.T) {
	d := NewAMQP(&fakePublisher{}, "logs", "app")
	assert.True(t, d.Async())
}

func TestAMQPRespectsFilters(t *testing.T) {
	pub := &fakePublisher{}
	d := NewAMQP(pub, "logs", "app")
	d.SetMinLevel(level.Error)

	d.Log(infoEvent("dropped"))
	assert.Empty(t, pub.published)
}

func TestAMQPFlushReportsAndClearsError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker gone")}
	d := NewAMQP(pub, "logs", "app")

	d.Log(infoEvent("lost"))

	err := d.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker gone")

	// The error is cleared once reported.
	assert.NoError(t, d.Flush())
}

func TestAMQPClose(t *testing.T) {
	pub := &fakePublisher{}
	d := NewAMQP(pub, "logs", "app")

	require.NoError(t, d.Close())
	assert.True(t, pub.closed)
}
