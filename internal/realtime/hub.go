package realtime

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Room keys. A job room groups everyone engaged with one job; a user room is
// the durable per-user channel for offers and notifications.
func JobRoom(jobID string) string   { return "job:" + jobID }
func UserRoom(userID string) string { return "user:" + userID }

// DefaultSessionBuffer is the per-session outbound event buffer. Publish
// never blocks: events beyond a full buffer are dropped and counted.
const DefaultSessionBuffer = 64

// Session is one connected client. Events() feeds the transport writer.
type Session struct {
	id     string
	userID string

	events chan Event
	closed chan struct{}
	once   sync.Once
}

func (s *Session) ID() string            { return s.id }
func (s *Session) UserID() string        { return s.userID }
func (s *Session) Events() <-chan Event  { return s.events }
func (s *Session) Done() <-chan struct{} { return s.closed }

func (s *Session) close() {
	s.once.Do(func() { close(s.closed) })
}

// Hub owns room membership and fan-out. Membership tables are guarded by a
// single RWMutex; publishing holds only the read lock and hands each member a
// non-blocking send.
type Hub struct {
	mu       sync.RWMutex
	rooms    map[string]map[string]*Session // room key → session id → session
	sessions map[string]*Session

	logger     *slog.Logger
	bufferSize int
	dropped    atomic.Int64
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithSessionBuffer sets the per-session event buffer size.
func WithSessionBuffer(n int) HubOption {
	return func(h *Hub) { h.bufferSize = n }
}

func NewHub(logger *slog.Logger, opts ...HubOption) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Hub{
		rooms:      make(map[string]map[string]*Session),
		sessions:   make(map[string]*Session),
		logger:     logger,
		bufferSize: DefaultSessionBuffer,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register creates a session for an authenticated user and joins it to the
// user's own room.
func (h *Hub) Register(userID string) *Session {
	s := &Session{
		id:     uuid.NewString(),
		userID: userID,
		events: make(chan Event, h.bufferSize),
		closed: make(chan struct{}),
	}

	h.mu.Lock()
	h.sessions[s.id] = s
	h.joinLocked(UserRoom(userID), s)
	h.mu.Unlock()

	return s
}

// Unregister removes the session from every room and closes it.
func (h *Hub) Unregister(sessionID string) {
	h.mu.Lock()
	s, ok := h.sessions[sessionID]
	if ok {
		delete(h.sessions, sessionID)
		for key, members := range h.rooms {
			delete(members, sessionID)
			if len(members) == 0 {
				delete(h.rooms, key)
			}
		}
	}
	h.mu.Unlock()

	if ok {
		s.close()
	}
}

// Join adds a session to a room. Unknown sessions are ignored.
func (h *Hub) Join(sessionID, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[sessionID]
	if !ok {
		return
	}
	h.joinLocked(room, s)
}

// Leave removes a session from a room.
func (h *Hub) Leave(sessionID, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(members, sessionID)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

func (h *Hub) joinLocked(room string, s *Session) {
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[string]*Session)
		h.rooms[room] = members
	}
	members[s.id] = s
}

// PublishToJob delivers an event to every member of the job's room.
func (h *Hub) PublishToJob(jobID string, ev Event) {
	h.publish(JobRoom(jobID), ev)
}

// PublishToUser delivers an event to every session in the user's room.
func (h *Hub) PublishToUser(userID string, ev Event) {
	h.publish(UserRoom(userID), ev)
}

func (h *Hub) publish(room string, ev Event) {
	h.mu.RLock()
	members := h.rooms[room]
	targets := make([]*Session, 0, len(members))
	for _, s := range members {
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	for _, s := range targets {
		select {
		case s.events <- ev:
		default:
			// Slow consumer: drop rather than stall the publisher.
			h.dropped.Add(1)
			h.logger.Warn("realtime event dropped",
				slog.String("room", room),
				slog.String("session_id", s.id),
				slog.String("type", string(ev.Type)),
			)
		}
	}
}

// Dropped returns how many events were discarded due to full session buffers.
func (h *Hub) Dropped() int64 { return h.dropped.Load() }

// RoomSize returns the current member count of a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// SessionCount returns the number of connected sessions.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
