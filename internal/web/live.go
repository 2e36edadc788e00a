package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/hana-site/internal/content"
	"github.com/ziadkadry99/hana-site/internal/view"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Live channel message types.
const (
	msgScroll  = "scroll"
	msgSelect  = "select"
	msgSubmit  = "submit"
	msgReset   = "reset"
	msgState   = "state"
	msgBlocked = "blocked"
	msgError   = "error"
)

// liveRequest is the incoming WebSocket message format.
type liveRequest struct {
	Type     string               `json:"type"` // scroll, select, submit or reset
	Offset   int                  `json:"offset,omitempty"`
	Category string               `json:"category,omitempty"`
	Form     view.ReservationForm `json:"form"`
}

// liveResponse is the outgoing WebSocket message format.
type liveResponse struct {
	Type   string             `json:"type"` // state, blocked or error
	State  *view.State        `json:"state,omitempty"`
	Items  []content.MenuItem `json:"items,omitempty"`
	Fields map[string]string  `json:"fields,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// handleLive drives one visitor's controller over a websocket. The
// connection owns its controller and scroll listener; the listener is
// detached however the loop ends.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("live view: websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	logger := s.logger.With("conn", uuid.NewString())

	var writeErr error
	render := func(st view.State) {
		if writeErr == nil {
			writeErr = sendState(conn, st)
		}
	}
	ctrl := view.NewController(view.Initial().WithActiveCategory(s.tabParam(r)), render)
	listener, detach := view.AttachScroll(ctrl, s.cfg.ScrollThreshold)
	defer detach()

	logger.Debug("live view opened", "tab", ctrl.State().ActiveCategory, "threshold", listener.Threshold())
	defer logger.Debug("live view closed")

	if err := sendState(conn, ctrl.State()); err != nil {
		logger.Debug("live view: initial write", "error", err)
		return
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("live view: websocket read", "error", err)
			}
			return
		}

		var req liveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			writeErr = sendError(conn, "invalid message format")
		} else if err := s.handleLiveMessage(conn, ctrl, listener, req); err != nil && writeErr == nil {
			writeErr = err
		}

		if writeErr != nil {
			logger.Debug("live view: websocket write", "error", writeErr)
			return
		}
	}
}

// handleLiveMessage applies one client event. State changes are pushed by
// the controller's render callback; rejections are written here, as is the
// acknowledgement of a submit that leaves the state unchanged.
func (s *Server) handleLiveMessage(conn *websocket.Conn, ctrl *view.Controller, listener *view.ScrollListener, req liveRequest) error {
	switch req.Type {
	case msgScroll:
		listener.OnScroll(req.Offset)
	case msgSelect:
		if err := ctrl.SetActiveCategory(content.Category(req.Category)); err != nil {
			return sendError(conn, err.Error())
		}
	case msgSubmit:
		already := ctrl.State().ReservationSubmitted
		_, err := ctrl.SubmitReservation(req.Form)
		var blocked *view.BlockedError
		if errors.As(err, &blocked) {
			return sendResponse(conn, liveResponse{Type: msgBlocked, Fields: blocked.Fields})
		}
		if err == nil && already {
			return sendState(conn, ctrl.State())
		}
	case msgReset:
		ctrl.ResetReservation()
	default:
		return sendError(conn, "unknown message type: "+req.Type)
	}
	return nil
}

func sendState(conn *websocket.Conn, st view.State) error {
	return sendResponse(conn, liveResponse{Type: msgState, State: &st, Items: st.Items()})
}

func sendError(conn *websocket.Conn, message string) error {
	return sendResponse(conn, liveResponse{Type: msgError, Error: message})
}

func sendResponse(conn *websocket.Conn, resp liveResponse) error {
	return conn.WriteJSON(resp)
}
