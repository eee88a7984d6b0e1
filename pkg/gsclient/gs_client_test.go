package gsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type ClientSuite struct {
	suite.Suite
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) TestSendAndReceive() {
	upgrader := websocket.Upgrader{}
	received := make(chan Message, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/follower/ws/" {
			http.NotFound(w, r)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()

		_ = conn.WriteJSON(Message{Type: MTCmd, Content: []byte("land")})

		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		received <- msg

		// Hold the connection open until the client goes away.
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	client := New(srv.URL + "/")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	go client.Run(ctx)

	client.SendMessage(Message{Type: MTLog, Content: []byte("in air")})

	select {
	case msg := <-received:
		s.Equal(MessageType(MTLog), msg.Type)
		s.Equal([]byte("in air"), msg.Content)
	case <-ctx.Done():
		s.Fail("server never received the message")
	}

	msg := client.ReceiveMessage(ctx)
	s.Equal(MessageType(MTCmd), msg.Type)
	s.Equal([]byte("land"), msg.Content)
}

func (s *ClientSuite) TestRunReturnsOnCancel() {
	upgrader := websocket.Upgrader{}
	connected := make(chan struct{})

	// A handler that holds the connection open and never writes.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()
		close(connected)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	client := New(srv.URL + "/")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		client.Run(ctx)
		close(done)
	}()

	select {
	case <-connected:
	case <-time.After(2 * time.Second):
		s.Fail("client never connected")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("client did not stop after context cancellation")
	}
}

func (s *ClientSuite) TestReceiveMessageHonorsContext() {
	client := New("http://localhost:1/")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Equal(Message{}, client.ReceiveMessage(ctx))
}
