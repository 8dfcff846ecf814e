package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaMessages(t *testing.T) {
	events := []Event{NewEvent(EventInsert, 42, 7), NewEvent(EventRemove, 42, 8)}
	msgs, err := kafkaMessages(events)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	for i, m := range msgs {
		assert.Equal(t, "42", string(m.Key))
		e, err := Decode(m.Value)
		require.NoError(t, err)
		assert.Equal(t, events[i].Seq, e.Seq)
		assert.Equal(t, events[i].Type, e.Type)
	}
}
