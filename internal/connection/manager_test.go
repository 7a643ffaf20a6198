package connection

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kitedesk/kitedesk/internal/protocol"
)

func testManagerConfig(url string) ManagerConfig {
	cfg := DefaultManagerConfig()
	cfg.URL = url
	cfg.PingInterval = 50 * time.Millisecond
	cfg.ReconnectDelay = 50 * time.Millisecond
	return cfg
}

// waitFor polls cond until it holds or the timeout expires.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestManager_ConnectAndReceive(t *testing.T) {
	server := mockWSServer(t, func(conn *websocket.Conn) {
		frame := `{"type": "tick_update", "data": [{"symbol": "RELIANCE", "exchange": "NSE", "cmp": 2950.0}]}`
		if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
			return
		}
		time.Sleep(time.Second)
	})
	defer server.Close()

	m := NewManager(testManagerConfig(wsURL(server)), nil)
	defer m.Stop()

	if err := m.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if m.Status().State != StateOpen {
		t.Errorf("state = %v, want open", m.Status().State)
	}

	select {
	case ev := <-m.Events():
		upd, ok := ev.(protocol.TickUpdate)
		if !ok {
			t.Fatalf("expected TickUpdate, got %T", ev)
		}
		if len(upd.Ticks) != 1 || upd.Ticks[0].Symbol != "RELIANCE" {
			t.Errorf("unexpected ticks: %+v", upd.Ticks)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestManager_ConnectIdempotent(t *testing.T) {
	server := mockWSServer(t, func(conn *websocket.Conn) {
		time.Sleep(time.Second)
	})
	defer server.Close()

	m := NewManager(testManagerConfig(wsURL(server)), nil)
	defer m.Stop()

	if err := m.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if err := m.Connect(); err != nil {
		t.Errorf("second Connect should be a no-op, got %v", err)
	}
}

func TestManager_ExplicitConnectFailureNoRetry(t *testing.T) {
	// A server that refuses the upgrade: every dial attempt is counted and
	// fails the handshake.
	var dials atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dials.Add(1)
		http.Error(w, "no", http.StatusInternalServerError)
	}))
	defer server.Close()

	m := NewManager(testManagerConfig(wsURL(server)), nil)
	defer m.Stop()

	if err := m.Connect(); err == nil {
		t.Fatal("expected dial error")
	}
	if m.Status().State != StateClosed {
		t.Errorf("state = %v, want closed", m.Status().State)
	}

	// An explicit Connect failure must not start the retry loop.
	time.Sleep(200 * time.Millisecond)
	if n := dials.Load(); n != 1 {
		t.Errorf("dials = %d, want 1", n)
	}
	if m.Status().State != StateClosed {
		t.Errorf("state after wait = %v, want closed", m.Status().State)
	}
}

func TestManager_ReconnectsAfterDrop(t *testing.T) {
	var conns atomic.Int32
	server := mockWSServer(t, func(conn *websocket.Conn) {
		n := conns.Add(1)
		if n == 1 {
			// First connection drops immediately.
			return
		}
		time.Sleep(time.Second)
	})
	defer server.Close()

	m := NewManager(testManagerConfig(wsURL(server)), nil)
	defer m.Stop()

	if err := m.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	waitFor(t, 3*time.Second, func() bool {
		return conns.Load() >= 2 && m.Status().State == StateOpen
	}, "manager did not reconnect after drop")
}

func TestManager_AuthRequiredTerminates(t *testing.T) {
	var conns atomic.Int32
	server := mockWSServer(t, func(conn *websocket.Conn) {
		conns.Add(1)
		frame := `{"type": "error", "code": "AUTH_REQUIRED", "message": "login expired"}`
		if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
			return
		}
		time.Sleep(time.Second)
	})
	defer server.Close()

	m := NewManager(testManagerConfig(wsURL(server)), nil)
	defer m.Stop()

	if err := m.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	// The error frame is forwarded before the session goes terminal.
	select {
	case ev := <-m.Events():
		se, ok := ev.(protocol.ServerError)
		if !ok {
			t.Fatalf("expected ServerError, got %T", ev)
		}
		if !se.AuthRequired() {
			t.Error("expected AuthRequired error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for error event")
	}

	waitFor(t, 2*time.Second, func() bool {
		return m.Status().State == StateTerminated
	}, "manager did not reach terminated state")

	// No automatic reconnection from the terminal state.
	time.Sleep(300 * time.Millisecond)
	if n := conns.Load(); n != 1 {
		t.Errorf("connections = %d, want 1", n)
	}
	if m.Status().Err != ErrTerminated {
		t.Errorf("Err = %v, want ErrTerminated", m.Status().Err)
	}
}

func TestManager_ReconnectClearsTermination(t *testing.T) {
	var conns atomic.Int32
	server := mockWSServer(t, func(conn *websocket.Conn) {
		n := conns.Add(1)
		if n == 1 {
			frame := `{"type": "error", "code": "AUTH_REQUIRED", "message": "login expired"}`
			conn.WriteMessage(websocket.TextMessage, []byte(frame))
			time.Sleep(100 * time.Millisecond)
			return
		}
		time.Sleep(time.Second)
	})
	defer server.Close()

	m := NewManager(testManagerConfig(wsURL(server)), nil)
	defer m.Stop()

	if err := m.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	<-m.Events() // drain the forwarded error
	waitFor(t, 2*time.Second, func() bool {
		return m.Status().State == StateTerminated
	}, "manager did not terminate")

	if err := m.Reconnect(); err != nil {
		t.Fatalf("Reconnect failed: %v", err)
	}
	if m.Status().State != StateOpen {
		t.Errorf("state = %v, want open", m.Status().State)
	}
	if conns.Load() != 2 {
		t.Errorf("connections = %d, want 2", conns.Load())
	}
}

func TestManager_PingSent(t *testing.T) {
	pings := make(chan string, 10)
	server := mockWSServer(t, func(conn *websocket.Conn) {
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			pings <- string(msg)
		}
	})
	defer server.Close()

	m := NewManager(testManagerConfig(wsURL(server)), nil)
	defer m.Stop()

	if err := m.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	select {
	case msg := <-pings:
		if msg != `{"type":"ping"}` {
			t.Errorf("ping frame = %s", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for ping frame")
	}
}

func TestManager_StopDuringConnect(t *testing.T) {
	// A server that floods frames right after the handshake, so a read loop
	// started during teardown immediately has something to forward.
	server := mockWSServer(t, func(conn *websocket.Conn) {
		for {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"heartbeat"}`)); err != nil {
				return
			}
		}
	})
	defer server.Close()

	// Race Connect against Stop at varying offsets. Stop must either beat
	// Connect (which then returns ErrStopped) or wait for the loops it
	// started; it must never close the event channel under a live forward.
	for i := 0; i < 30; i++ {
		m := NewManager(testManagerConfig(wsURL(server)), nil)

		done := make(chan error, 1)
		go func() {
			done <- m.Connect()
		}()

		time.Sleep(time.Duration(i%4) * time.Millisecond)
		m.Stop()

		if err := <-done; err != nil && err != ErrStopped {
			t.Fatalf("Connect = %v, want nil or ErrStopped", err)
		}

		// The channel is closed exactly once, after the loops are down.
		for range m.Events() {
		}
	}
}

func TestManager_StopClosesEvents(t *testing.T) {
	server := mockWSServer(t, func(conn *websocket.Conn) {
		time.Sleep(time.Second)
	})
	defer server.Close()

	m := NewManager(testManagerConfig(wsURL(server)), nil)
	if err := m.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	m.Stop()
	m.Stop() // idempotent

	select {
	case _, ok := <-m.Events():
		if ok {
			t.Error("expected closed events channel")
		}
	case <-time.After(time.Second):
		t.Fatal("events channel not closed")
	}

	if err := m.Connect(); err != ErrStopped {
		t.Errorf("Connect after Stop = %v, want ErrStopped", err)
	}
}
