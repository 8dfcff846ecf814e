package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// EventVersion is the schema version written into every event.
const EventVersion = 1

// EventType names the mutation an event describes.
type EventType string

const (
	EventInsert EventType = "insert"
	EventRemove EventType = "remove"
)

var ErrBadEvent = errors.New("feed: malformed event")

// Event is one committed mutation of the set.
type Event struct {
	V    int       `json:"v"`
	Type EventType `json:"type"`
	Key  int64     `json:"key"`
	Seq  uint64    `json:"seq"`
	Time int64     `json:"time"`
}

func NewEvent(t EventType, key int64, seq uint64) Event {
	return Event{
		V:    EventVersion,
		Type: t,
		Key:  key,
		Seq:  seq,
		Time: time.Now().UnixNano(),
	}
}

// Encode returns the wire form of the event.
func (e Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey keeps all events of one key on one partition so their
// order survives.
func (e Event) PartitionKey() []byte {
	return strconv.AppendInt(nil, e.Key, 10)
}

// Decode parses and checks an encoded event.
func Decode(b []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(b, &e); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrBadEvent, err)
	}
	if e.V != EventVersion {
		return Event{}, fmt.Errorf("%w: version %d", ErrBadEvent, e.V)
	}
	switch e.Type {
	case EventInsert, EventRemove:
	default:
		return Event{}, fmt.Errorf("%w: type %q", ErrBadEvent, e.Type)
	}
	if e.Seq == 0 {
		return Event{}, fmt.Errorf("%w: zero sequence", ErrBadEvent)
	}
	return e, nil
}
