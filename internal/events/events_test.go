package events

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	p := NewKafkaPublisherWithWriter(w)
	p.Now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	event := map[string]any{"type": "order_placed", "order_id": "SS-2026-1234"}
	require.NoError(t, p.Publish(context.Background(), TopicOrder, "SS-2026-1234", event))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, TopicOrder, msg.Topic)
	assert.Equal(t, "SS-2026-1234", string(msg.Key))

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, "order_placed", got["type"])
	assert.Equal(t, "2026-01-02T03:04:05Z", got["occurred_at"])
	assert.NotEmpty(t, got["event_id"])

	assert.NotContains(t, event, "event_id")

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_Errors(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{err: errors.New("broker down")}
	p := NewKafkaPublisherWithWriter(w)

	err := p.Publish(context.Background(), TopicCart, "k", map[string]any{"type": "x"})
	assert.ErrorContains(t, err, "broker down")

	err = p.Publish(context.Background(), TopicCart, "k", map[string]any{"bad": make(chan int)})
	assert.ErrorContains(t, err, "json.Marshal")
}

func TestEmit(t *testing.T) {
	t.Parallel()

	rec := &Recorder{}
	Emit(context.Background(), rec, TopicCart, "cart", map[string]any{"type": "line_added"})
	Emit(context.Background(), rec, TopicAdmin, "1", map[string]any{"type": "admin_approved"})
	Emit(context.Background(), nil, TopicAdmin, "1", map[string]any{"type": "ignored"})

	assert.Equal(t, []string{"line_added"}, rec.Types(TopicCart))
	assert.Equal(t, []string{"admin_approved"}, rec.Types(TopicAdmin))
	assert.Len(t, rec.Events(), 2)

	// failures are swallowed
	failing := NewKafkaPublisherWithWriter(&fakeWriter{err: errors.New("down")})
	Emit(context.Background(), failing, TopicCart, "cart", map[string]any{"type": "line_added"})
}

func TestKafkaPublisher_Integration(t *testing.T) {
	broker := strings.Split(os.Getenv("KAFKA_BROKERS"), ",")[0]
	if broker == "" {
		t.Skip("KAFKA_BROKERS not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	topic := TopicOrder
	conn, err := kafka.DialLeader(ctx, "tcp", broker, topic, 0)
	require.NoError(t, err)
	end, err := conn.ReadLastOffset()
	require.NoError(t, err)
	_ = conn.Close()

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   []string{broker},
		Topic:     topic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  10e6,
		MaxWait:   time.Second,
	})
	defer r.Close()
	require.NoError(t, r.SetOffset(end))

	p := NewKafkaPublisher([]string{broker})
	defer p.Close()
	require.NoError(t, p.Publish(ctx, topic, "it", map[string]any{"type": "order_placed"}))

	m, err := r.ReadMessage(ctx)
	require.NoError(t, err)

	var event map[string]any
	require.NoError(t, json.Unmarshal(m.Value, &event))
	assert.Equal(t, "order_placed", event["type"])
}
