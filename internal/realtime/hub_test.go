package realtime_test

import (
	"testing"
	"time"

	"github.com/vojtechokenka/nokturo/internal/comments"
	"github.com/vojtechokenka/nokturo/internal/logger"
	"github.com/vojtechokenka/nokturo/internal/models"
	"github.com/vojtechokenka/nokturo/internal/realtime"
)

func insertEvent(id string) comments.ChangeEvent {
	return comments.ChangeEvent{
		Type: comments.EventInsert,
		New:  &models.TextComment{CommentID: id, ProductID: "prod-1", Content: "note"},
	}
}

// TestHubPublishReachesSubscribers verifies channel-scoped delivery
func TestHubPublishReachesSubscribers(t *testing.T) {
	hub := realtime.NewHub(logger.NewNop())

	c1 := hub.Subscribe("prod-1")
	c2 := hub.Subscribe("prod-1")
	other := hub.Subscribe("prod-2")
	defer hub.Unsubscribe(c1)
	defer hub.Unsubscribe(c2)
	defer hub.Unsubscribe(other)

	hub.Publish("prod-1", insertEvent("c1"))

	for _, c := range []*realtime.Client{c1, c2} {
		select {
		case msg := <-c.Outbound:
			if msg.Channel != "prod-1" || msg.Event.New.CommentID != "c1" {
				t.Errorf("Unexpected message: %+v", msg)
			}
		case <-time.After(time.Second):
			t.Fatal("Expected the message delivered")
		}
	}

	select {
	case msg := <-other.Outbound:
		t.Errorf("Expected no delivery on another channel, got %+v", msg)
	default:
	}
}

// TestHubUnsubscribe verifies removal closes Done and is idempotent
func TestHubUnsubscribe(t *testing.T) {
	hub := realtime.NewHub(logger.NewNop())
	c := hub.Subscribe("prod-1")

	hub.Unsubscribe(c)
	select {
	case <-c.Done():
	case <-time.After(time.Second):
		t.Fatal("Expected Done closed after Unsubscribe")
	}

	// Second call must not panic on the already-closed channels.
	hub.Unsubscribe(c)

	if n := hub.Subscribers("prod-1"); n != 0 {
		t.Errorf("Expected 0 subscribers, got %d", n)
	}

	// Publishing to an empty channel is a no-op.
	hub.Publish("prod-1", insertEvent("c1"))
}

// TestHubSlowConsumerDrops verifies a full outbound buffer sheds messages
// instead of blocking the publisher
func TestHubSlowConsumerDrops(t *testing.T) {
	hub := realtime.NewHub(logger.NewNop())
	c := hub.Subscribe("prod-1")
	defer hub.Unsubscribe(c)

	// Nobody reads Outbound: overfill the buffer.
	for i := 0; i < 64; i++ {
		hub.Publish("prod-1", insertEvent("burst"))
	}

	drained := 0
	for {
		select {
		case <-c.Outbound:
			drained++
			continue
		default:
		}
		break
	}

	if drained == 0 || drained > 16 {
		t.Errorf("Expected between 1 and the buffer size of messages, got %d", drained)
	}
}

// TestHubSubscribers verifies the per-channel count
func TestHubSubscribers(t *testing.T) {
	hub := realtime.NewHub(logger.NewNop())

	c1 := hub.Subscribe("prod-1")
	c2 := hub.Subscribe("prod-1")
	if n := hub.Subscribers("prod-1"); n != 2 {
		t.Errorf("Expected 2 subscribers, got %d", n)
	}

	hub.Unsubscribe(c1)
	if n := hub.Subscribers("prod-1"); n != 1 {
		t.Errorf("Expected 1 subscriber, got %d", n)
	}
	hub.Unsubscribe(c2)
	if n := hub.Subscribers("prod-1"); n != 0 {
		t.Errorf("Expected 0 subscribers, got %d", n)
	}
}
