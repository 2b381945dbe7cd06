package network

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"tether/protocol"
	"tether/room"
)

const (
	readLimit    = 1 << 20
	pongWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	writeWait    = 10 * time.Second
	sendBacklog  = 64
)

// Server bridges websockets and rooms: it upgrades connections, runs the
// hello handshake, and pumps messages between the socket and the room inbox.
type Server struct {
	manager  *room.Manager
	upgrader websocket.Upgrader
}

func NewServer(m *room.Manager) *Server {
	return &Server{
		manager: m,
		upgrader: websocket.Upgrader{
			// Dev setting; lock the origin down for a real deployment.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleWS serves one client session on /ws/{code}.
func (s *Server) HandleWS(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")
	rm := s.manager.GetOrCreate(code)
	if rm == nil {
		http.Error(w, "missing room code", http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	wc := newWSConn(conn)
	go wc.writePump()

	// The first message must be a hello.
	hello, err := readHello(conn)
	if err != nil {
		log.Println("handshake:", err)
		wc.Close()
		return
	}

	reply := make(chan room.JoinResult, 1)
	select {
	case rm.Inbox <- room.Join{Conn: wc, Name: hello.Name, Reply: reply}:
	case <-rm.Done():
		_ = wc.Close()
		return
	}

	var res room.JoinResult
	select {
	case res = <-reply:
	case <-rm.Done():
		// The room shut down with the join still queued; its drain loop
		// answers with a zero result, so give that a moment to land.
		select {
		case res = <-reply:
		case <-time.After(time.Second):
		}
	}
	if res.PlayerID == "" {
		log.Println("join refused: room closed")
		_ = wc.Close()
		return
	}

	welcome, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		PlayerID: res.PlayerID,
		Pilot:    res.Pilot,
		TickHz:   protocol.SimTickHz,
	})
	if err == nil {
		_ = wc.Send(welcome)
	}

	s.readLoop(conn, rm, res.PlayerID)
	select {
	case rm.Inbox <- room.Leave{PlayerID: res.PlayerID}:
	case <-rm.Done():
	}
}

func readHello(conn *websocket.Conn) (protocol.Hello, error) {
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return protocol.Hello{}, err
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return protocol.Hello{}, err
	}
	return protocol.DecodePayload[protocol.Hello](env)
}

func (s *Server) readLoop(conn *websocket.Conn, rm *room.Room, playerID string) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			continue
		}
		if env.T != protocol.MsgInput {
			continue
		}
		in, err := protocol.DecodePayload[protocol.Input](env)
		if err != nil {
			continue
		}
		select {
		case rm.Inbox <- room.Input{PlayerID: playerID, Input: in}:
		case <-rm.Done():
			return
		}
	}
}

// wsConn adapts a websocket to room.Conn. Sends go through a buffered
// channel drained by a single writer goroutine, since gorilla connections
// allow only one concurrent writer.
type wsConn struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func newWSConn(conn *websocket.Conn) *wsConn {
	return &wsConn{
		conn: conn,
		send: make(chan []byte, sendBacklog),
		done: make(chan struct{}),
	}
}

func (w *wsConn) Send(b []byte) error {
	select {
	case w.send <- b:
		return nil
	case <-w.done:
		return websocket.ErrCloseSent
	default:
		// Backlog full means the client stopped reading; snapshots are
		// disposable, the next one supersedes this one anyway.
		return nil
	}
}

func (w *wsConn) Close() error {
	w.once.Do(func() { close(w.done) })
	return w.conn.Close()
}

func (w *wsConn) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case b := <-w.send:
			_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := w.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				w.Close()
				return
			}
		case <-ticker.C:
			_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := w.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				w.Close()
				return
			}
		case <-w.done:
			return
		}
	}
}
