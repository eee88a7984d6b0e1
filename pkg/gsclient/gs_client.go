// Package gsclient maintains the websocket link to the ground-station
// handler: follow status out, operator commands in.
package gsclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type Client struct {
	serverURL   string
	sendChan    chan interface{}
	receiveChan chan interface{}
}

type MessageType string

const (
	MTUndefined = ""
	MTPos       = "pos"
	MTLog       = "log"
	MTStatus    = "status"
	MTCmd       = "cmd"
)

type Message struct {
	Type    MessageType
	Content []byte
}

func New(serverURL string) *Client {
	return &Client{
		serverURL:   serverURL,
		sendChan:    make(chan interface{}, 1),
		receiveChan: make(chan interface{}, 1),
	}
}

func (c *Client) SendMessage(message Message) {
	c.sendChan <- message
}

// TrySendMessage queues the message if the link can take it and drops it
// otherwise. Callers on the flight path must never block on the link.
func (c *Client) TrySendMessage(message Message) bool {
	select {
	case c.sendChan <- message:
		return true
	default:
		return false
	}
}

func (c *Client) ReceiveMessage(ctx context.Context) Message {
	select {
	case <-ctx.Done():
		return Message{}
	case msgInterface := <-c.receiveChan:
		msg, ok := (msgInterface).(Message)
		if !ok {
			return Message{}
		}
		return msg
	}
}

func (c *Client) Run(ctx context.Context) {
	logrus.Warnf("started ground station client")
	const reconnectInterval = 5 * time.Second
	timer := time.NewTimer(0)
	wsURL := "ws" + strings.TrimPrefix(c.serverURL, "http") + "follower/ws/"
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			logrus.Warnf("stopped ground station client")
			return
		case <-timer.C:
			c.serveConnection(ctx, wsURL)
			timer.Reset(reconnectInterval)
		}
	}
}

// serveConnection dials once and blocks until the connection dies, so the
// reconnect timer never stacks live connections.
func (c *Client) serveConnection(ctx context.Context, wsURL string) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		logrus.Error(fmt.Errorf("error connecting to ground station web socket: %w", err))
		return
	}
	defer func() { _ = conn.Close() }()

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Unblock the read loop when the context goes away.
	go func() {
		<-connCtx.Done()
		_ = conn.Close()
	}()

	go c.sendMessages(connCtx, conn)
	c.receiveMessages(connCtx, conn)
}

func (c *Client) receiveMessages(ctx context.Context, conn *websocket.Conn) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			var msg Message
			if err := conn.ReadJSON(&msg); err != nil {
				if ctx.Err() == nil {
					logrus.Error(fmt.Errorf("error reading message from web socket: %w", err))
				}
				return
			}
			select {
			case c.receiveChan <- msg:
			case <-time.After(200 * time.Millisecond):
				continue
			}
		}
	}
}

func (c *Client) sendMessages(ctx context.Context, conn *websocket.Conn) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-c.sendChan:
			if err := conn.WriteJSON(msg); err != nil {
				logrus.Error(fmt.Errorf("error writing message to web socket: %w", err))
				return
			}
		}
	}
}
