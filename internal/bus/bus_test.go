package bus

import (
	"context"
	"testing"
	"time"
)

func TestSessionKey(t *testing.T) {
	msg := InboundMessage{Channel: "telegram", ChatID: "456"}
	if got := msg.SessionKey(); got != "telegram:456" {
		t.Errorf("SessionKey = %q, want telegram:456", got)
	}
}

func TestDispatchOutbound_RoutesToSubscriber(t *testing.T) {
	b := NewMessageBus(10)

	received := make(chan OutboundMessage, 1)
	b.SubscribeOutbound("webui", func(msg OutboundMessage) {
		received <- msg
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.DispatchOutbound(ctx)

	b.Outbound <- OutboundMessage{Channel: "webui", ChatID: "web-1", Content: "hi"}

	select {
	case msg := <-received:
		if msg.ChatID != "web-1" || msg.Content != "hi" {
			t.Errorf("got %+v", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for dispatch")
	}
}

func TestDispatchOutbound_DropsUnknownChannel(t *testing.T) {
	b := NewMessageBus(10)

	received := make(chan OutboundMessage, 1)
	b.SubscribeOutbound("telegram", func(msg OutboundMessage) {
		received <- msg
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.DispatchOutbound(ctx)

	b.Outbound <- OutboundMessage{Channel: "nope", ChatID: "1", Content: "lost"}
	b.Outbound <- OutboundMessage{Channel: "telegram", ChatID: "2", Content: "kept"}

	select {
	case msg := <-received:
		if msg.Content != "kept" {
			t.Errorf("content = %q, want kept", msg.Content)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for dispatch")
	}
}

func TestDispatchOutbound_StopsOnCancel(t *testing.T) {
	b := NewMessageBus(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.DispatchOutbound(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("DispatchOutbound did not stop on cancel")
	}
}
