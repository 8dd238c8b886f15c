package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"

	"fieldjobs/internal/auth"
	"fieldjobs/internal/domain/entities"
)

// ActiveJobLister supplies the non-terminal jobs a user participates in so a
// fresh session can auto-join their rooms.
type ActiveJobLister interface {
	ListActiveByUser(ctx context.Context, userID string) ([]entities.Job, error)
}

// Client frames. The first frame must be an auth op; afterwards the client
// may join or leave job rooms explicitly (job detail UI flows).
const (
	opAuth     = "auth"
	opJobJoin  = "job:join"
	opJobLeave = "job:leave"
)

type clientFrame struct {
	Op    string `json:"op"`
	Token string `json:"token,omitempty"`
	JobID string `json:"jobId,omitempty"`
}

type authAck struct {
	OK        bool   `json:"ok"`
	SessionID string `json:"sessionId,omitempty"`
	Error     string `json:"error,omitempty"`
}

const authDeadline = 10 * time.Second

// Server terminates WebSocket connections and bridges them onto the Hub.
type Server struct {
	hub    *Hub
	auth   auth.Authenticator
	jobs   ActiveJobLister
	logger *slog.Logger
}

func NewServer(hub *Hub, authenticator auth.Authenticator, jobs ActiveJobLister, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{hub: hub, auth: authenticator, jobs: jobs, logger: logger}
}

// Handle upgrades the request and runs the session until the peer
// disconnects.
func (s *Server) Handle(w http.ResponseWriter, r *http.Request) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	// Auth must arrive as the first frame.
	_ = conn.SetReadDeadline(time.Now().Add(authDeadline))
	data, err := wsutil.ReadClientText(conn)
	if err != nil {
		return
	}
	_ = conn.SetReadDeadline(time.Time{})

	var frame clientFrame
	if err := json.Unmarshal(data, &frame); err != nil || frame.Op != opAuth {
		s.writeJSON(conn, authAck{Error: "first frame must be auth"})
		return
	}

	identity, err := s.auth.Authenticate(r.Context(), frame.Token)
	if err != nil || !identity.Active {
		s.writeJSON(conn, authAck{Error: "invalid token"})
		return
	}

	session := s.hub.Register(identity.ID)
	defer s.hub.Unregister(session.ID())

	s.writeJSON(conn, authAck{OK: true, SessionID: session.ID()})

	// Convenience: join the rooms of every non-terminal job this user is
	// part of, so reconnecting clients pick up in-flight jobs without an
	// explicit join per job.
	if jobs, listErr := s.jobs.ListActiveByUser(r.Context(), identity.ID); listErr == nil {
		for _, j := range jobs {
			s.hub.Join(session.ID(), JobRoom(j.ID))
		}
	} else {
		s.logger.Warn("active job auto-join failed",
			slog.String("user_id", identity.ID),
			slog.String("error", listErr.Error()),
		)
	}

	s.logger.Info("realtime session connected",
		slog.String("session_id", session.ID()),
		slog.String("user_id", identity.ID),
	)

	// Writer: the only goroutine writing to the socket after the ack.
	writeDone := make(chan struct{})
	go func() {
		defer close(writeDone)
		for {
			select {
			case ev := <-session.Events():
				payload, marshalErr := json.Marshal(ev)
				if marshalErr != nil {
					continue
				}
				if writeErr := wsutil.WriteServerText(conn, payload); writeErr != nil {
					return
				}
			case <-session.Done():
				return
			}
		}
	}()

	// Reader: client room ops until disconnect.
	for {
		data, readErr := wsutil.ReadClientText(conn)
		if readErr != nil {
			break
		}
		var op clientFrame
		if err := json.Unmarshal(data, &op); err != nil {
			continue
		}
		switch op.Op {
		case opJobJoin:
			if op.JobID != "" {
				s.hub.Join(session.ID(), JobRoom(op.JobID))
			}
		case opJobLeave:
			if op.JobID != "" {
				s.hub.Leave(session.ID(), JobRoom(op.JobID))
			}
		}
	}

	s.hub.Unregister(session.ID())
	<-writeDone
	s.logger.Info("realtime session disconnected", slog.String("session_id", session.ID()))
}

func (s *Server) writeJSON(w io.Writer, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	// Best-effort: the peer may already be gone.
	_ = wsutil.WriteServerText(w, payload)
}
