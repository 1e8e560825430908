// hub.go
//
// Block document engine for the Nokturo studio application
// Copyright (c) 2026 Vojtech Okenka <vojtech@okenka.dev>
//
// This file is part of nokturo.
// nokturo is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// nokturo is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with nokturo.
// If not, see <https://www.gnu.org/licenses/>.

// Package realtime fans comment change events out to websocket clients.
// Channels are keyed by product id, so every viewer of a product page
// shares one channel.
package realtime

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vojtechokenka/nokturo/internal/comments"
	"github.com/vojtechokenka/nokturo/internal/logger"
)

const outboundBuffer = 16

// Message is what goes over the wire to each subscriber.
type Message struct {
	Channel string               `json:"channel"`
	Event   comments.ChangeEvent `json:"event"`
}

// Client is one connected subscriber. The hub only writes to Outbound and
// never closes it from the publish path; Close is the one place it closes.
type Client struct {
	ID       uuid.UUID
	Channel  string
	Outbound chan Message
	done     chan struct{}
}

// Done is closed when the hub removes the client.
func (c *Client) Done() <-chan struct{} { return c.done }

// Hub routes messages to subscribers by channel. Slow consumers lose
// messages rather than backing up producers.
type Hub struct {
	mu            sync.RWMutex
	log           *logger.Logger
	subscriptions map[string]map[*Client]bool
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		log:           log.With("component", "Hub"),
		subscriptions: make(map[string]map[*Client]bool),
	}
}

// Subscribe registers a new client on the given channel.
func (h *Hub) Subscribe(channel string) *Client {
	c := &Client{
		ID:       uuid.New(),
		Channel:  channel,
		Outbound: make(chan Message, outboundBuffer),
		done:     make(chan struct{}),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.subscriptions[channel]
	if !ok {
		clients = make(map[*Client]bool)
		h.subscriptions[channel] = clients
	}
	clients[c] = true

	h.log.Debugw("client subscribed", "clientID", c.ID, "channel", channel)
	return c
}

// Unsubscribe removes the client and closes its channels. Safe to call
// more than once.
func (h *Hub) Unsubscribe(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.subscriptions[c.Channel]
	if !ok {
		return
	}
	if !clients[c] {
		return
	}
	delete(clients, c)
	if len(clients) == 0 {
		delete(h.subscriptions, c.Channel)
	}
	close(c.done)
	close(c.Outbound)

	h.log.Debugw("client unsubscribed", "clientID", c.ID, "channel", c.Channel)
}

// Publish delivers ev to every subscriber of the channel. Full outbound
// buffers drop the message for that client.
func (h *Hub) Publish(channel string, ev comments.ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.subscriptions[channel]
	if !ok {
		return
	}
	msg := Message{Channel: channel, Event: ev}
	for c := range clients {
		select {
		case c.Outbound <- msg:
		default:
			h.log.Warnw("dropping message, outbound buffer full", "clientID", c.ID, "channel", channel)
		}
	}
}

// Subscribers reports how many clients are on a channel.
func (h *Hub) Subscribers(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscriptions[channel])
}
