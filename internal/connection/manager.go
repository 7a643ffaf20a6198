package connection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kitedesk/kitedesk/internal/protocol"
)

// Manager owns the lifecycle of one push connection: connect, keep-alive,
// close, and reconnect scheduling. All timer handles are fields of the
// manager, created and cancelled only by its own transitions.
//
// Ordinary disconnects schedule a retry on a fixed delay, indefinitely. An
// AUTH_REQUIRED error frame moves the manager to StateTerminated and
// suppresses every automatic attempt until Reconnect() is called. A dial
// failure from an explicit Connect() is returned to the caller without
// starting the retry loop; dial failures during automatic recovery keep the
// loop going.
type Manager struct {
	cfg    ManagerConfig
	logger *slog.Logger

	// Decoded frames for the Message Router.
	events chan protocol.Event

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu         sync.Mutex
	state      State
	lastErr    error
	client     Client
	suppressed bool // no automatic reconnection until Reconnect()
	stopped    bool
	retryTimer *time.Timer   // pending reconnect, nil when none
	pingStop   chan struct{} // stops the current keep-alive loop, nil when none
}

// NewManager creates a connection manager. It does not connect.
func NewManager(cfg ManagerConfig, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		cfg:    cfg,
		logger: logger,
		events: make(chan protocol.Event, cfg.EventBufferSize),
		ctx:    ctx,
		cancel: cancel,
		state:  StateIdle,
	}
}

// Events returns the decoded frame channel. It is closed by Stop.
func (m *Manager) Events() <-chan protocol.Event {
	return m.events
}

// Status returns the current lifecycle state.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Status{State: m.state, Err: m.lastErr}
}

// Connect opens the push connection. It is idempotent: a call while a
// connection is open or in flight is a no-op. A dial failure is returned
// without scheduling a retry.
func (m *Manager) Connect() error {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return ErrStopped
	}
	if m.state == StateOpen || m.state == StateConnecting {
		m.mu.Unlock()
		return nil
	}
	m.state = StateConnecting
	m.mu.Unlock()

	// Short correlation ID so one attempt's log lines group together.
	logger := m.logger.With("attempt", uuid.NewString()[:8])
	logger.Debug("connecting", "url", m.cfg.URL)

	cl := NewClient(ClientConfig{
		URL:              m.cfg.URL,
		HandshakeTimeout: m.cfg.HandshakeTimeout,
		WriteTimeout:     m.cfg.WriteTimeout,
		BufferSize:       m.cfg.EventBufferSize,
	}, logger)

	if err := cl.Connect(m.ctx); err != nil {
		m.mu.Lock()
		m.state = StateClosed
		m.lastErr = err
		m.mu.Unlock()
		logger.Warn("dial failed", "error", err)
		return fmt.Errorf("connect %s: %w", m.cfg.URL, err)
	}

	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		cl.Close()
		return ErrStopped
	}
	m.client = cl
	m.state = StateOpen
	m.lastErr = nil
	stop := make(chan struct{})
	m.pingStop = stop
	// The Add must happen under the same lock that Stop takes before its
	// Wait, so Stop can never observe the open state with the group still at
	// zero and close the event channel under a late-started readLoop.
	m.wg.Add(2)
	m.mu.Unlock()

	logger.Info("connected")

	go m.readLoop(cl)
	go m.pingLoop(cl, stop)

	return nil
}

// Reconnect re-enables automatic reconnection, discards any existing
// connection and pending retry, and connects immediately.
func (m *Manager) Reconnect() error {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return ErrStopped
	}
	m.suppressed = false
	m.stopRetryLocked()
	m.stopKeepAliveLocked()
	cl := m.client
	m.client = nil
	m.state = StateIdle
	m.lastErr = nil
	m.mu.Unlock()

	if cl != nil {
		cl.Close()
	}

	return m.Connect()
}

// Stop tears the manager down: disables reconnection, cancels all timers,
// and closes the connection and event channel. Safe to call multiple times.
func (m *Manager) Stop() {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	m.stopped = true
	m.suppressed = true
	m.stopRetryLocked()
	m.stopKeepAliveLocked()
	cl := m.client
	m.client = nil
	m.state = StateClosed
	m.mu.Unlock()

	m.cancel()
	if cl != nil {
		cl.Close()
	}
	m.wg.Wait()
	close(m.events)

	m.logger.Info("connection manager stopped")
}

// readLoop decodes inbound frames and forwards them until the connection
// drops. Malformed payloads are logged and dropped; the connection stays up.
func (m *Manager) readLoop(cl Client) {
	defer m.wg.Done()

	for {
		select {
		case <-m.ctx.Done():
			return

		case err := <-cl.Errors():
			m.handleDisconnect(cl, err)
			return

		case data, ok := <-cl.Messages():
			if !ok {
				m.handleDisconnect(cl, errors.New("connection closed"))
				return
			}

			ev, err := protocol.Decode(data)
			if err != nil {
				m.logger.Warn("dropping malformed frame", "error", err)
				continue
			}
			if ev == nil {
				// Unknown frame type, ignored for forward compatibility.
				continue
			}

			if se, ok := ev.(protocol.ServerError); ok && se.AuthRequired() {
				m.forward(ev)
				m.terminate(cl, se)
				return
			}

			m.forward(ev)
		}
	}
}

// pingLoop sends the outbound liveness frame while the connection is open.
func (m *Manager) pingLoop(cl Client, stop <-chan struct{}) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			if err := cl.Send(protocol.Ping()); err != nil {
				m.logger.Debug("keepalive send failed", "error", err)
				return
			}
		}
	}
}

func (m *Manager) forward(ev protocol.Event) {
	select {
	case m.events <- ev:
	case <-m.ctx.Done():
	default:
		m.logger.Warn("event buffer full, dropping frame")
	}
}

// handleDisconnect transitions to StateClosed and schedules a retry unless
// reconnection is suppressed. Stale clients already replaced by Reconnect or
// Stop are ignored.
func (m *Manager) handleDisconnect(cl Client, err error) {
	cl.Close()

	m.mu.Lock()
	if m.client != cl {
		m.mu.Unlock()
		return
	}
	m.client = nil
	m.stopKeepAliveLocked()
	if m.stopped || m.state == StateTerminated {
		m.mu.Unlock()
		return
	}
	m.state = StateClosed
	suppressed := m.suppressed
	if !suppressed {
		m.scheduleRetryLocked()
	}
	m.mu.Unlock()

	m.logger.Warn("connection lost", "error", err, "retrying", !suppressed)
}

// terminate handles the AUTH_REQUIRED signal: terminal state, no retries.
func (m *Manager) terminate(cl Client, se protocol.ServerError) {
	m.logger.Error("authentication required, session closed",
		"code", se.Code,
		"message", se.Message,
	)

	m.mu.Lock()
	m.suppressed = true
	m.state = StateTerminated
	m.lastErr = ErrTerminated
	m.stopRetryLocked()
	m.stopKeepAliveLocked()
	if m.client == cl {
		m.client = nil
	}
	m.mu.Unlock()

	cl.Close()
}

func (m *Manager) scheduleRetryLocked() {
	if m.retryTimer != nil {
		return
	}
	m.retryTimer = time.AfterFunc(m.cfg.ReconnectDelay, m.retry)
}

func (m *Manager) retry() {
	m.mu.Lock()
	m.retryTimer = nil
	if m.stopped || m.suppressed {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	if err := m.Connect(); err != nil {
		m.mu.Lock()
		if !m.stopped && !m.suppressed {
			m.scheduleRetryLocked()
		}
		m.mu.Unlock()
	}
}

func (m *Manager) stopRetryLocked() {
	if m.retryTimer != nil {
		m.retryTimer.Stop()
		m.retryTimer = nil
	}
}

func (m *Manager) stopKeepAliveLocked() {
	if m.pingStop != nil {
		close(m.pingStop)
		m.pingStop = nil
	}
}
