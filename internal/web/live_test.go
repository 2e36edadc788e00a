package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/hana-site/internal/content"
	"github.com/ziadkadry99/hana-site/internal/view"
)

func dialLive(t *testing.T, query string) *websocket.Conn {
	t.Helper()
	srv := newTestServer(t, Config{})
	server := httptest.NewServer(srv.Router())
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/view" + query
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}
	return conn
}

func readResponse(t *testing.T, conn *websocket.Conn) liveResponse {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var resp liveResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	return resp
}

func send(t *testing.T, conn *websocket.Conn, req liveRequest) {
	t.Helper()
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func expectState(t *testing.T, conn *websocket.Conn) view.State {
	t.Helper()
	resp := readResponse(t, conn)
	if resp.Type != msgState || resp.State == nil {
		t.Fatalf("expected state message, got %+v", resp)
	}
	return *resp.State
}

func TestLiveInitialState(t *testing.T) {
	conn := dialLive(t, "")

	resp := readResponse(t, conn)
	if resp.Type != msgState || resp.State == nil {
		t.Fatalf("expected initial state, got %+v", resp)
	}
	if *resp.State != view.Initial() {
		t.Errorf("initial state = %+v", *resp.State)
	}
	if len(resp.Items) != len(content.Menu(content.CategoryRamen)) {
		t.Errorf("expected %d ramen items, got %d", len(content.Menu(content.CategoryRamen)), len(resp.Items))
	}
}

func TestLiveInitialTab(t *testing.T) {
	conn := dialLive(t, "?tab=small-plates")

	st := expectState(t, conn)
	if st.ActiveCategory != content.CategorySmallPlates {
		t.Errorf("active = %q, want small-plates", st.ActiveCategory)
	}
}

func TestLiveScroll(t *testing.T) {
	conn := dialLive(t, "")
	expectState(t, conn)

	// Below the threshold nothing changes, so the next message must come
	// from the crossing offset.
	send(t, conn, liveRequest{Type: msgScroll, Offset: 10})
	send(t, conn, liveRequest{Type: msgScroll, Offset: 30})
	if st := expectState(t, conn); !st.Scrolled {
		t.Error("expected scrolled at the threshold")
	}

	send(t, conn, liveRequest{Type: msgScroll, Offset: 400})
	send(t, conn, liveRequest{Type: msgScroll, Offset: 29})
	if st := expectState(t, conn); st.Scrolled {
		t.Error("expected unscrolled below the threshold")
	}
}

func TestLiveSelect(t *testing.T) {
	conn := dialLive(t, "")
	expectState(t, conn)

	send(t, conn, liveRequest{Type: msgSelect, Category: "drinks"})
	resp := readResponse(t, conn)
	if resp.State == nil || resp.State.ActiveCategory != content.CategoryDrinks {
		t.Fatalf("expected drinks state, got %+v", resp)
	}
	if len(resp.Items) != 4 {
		t.Errorf("expected 4 drinks, got %d", len(resp.Items))
	}
	for _, item := range resp.Items {
		if item.Name == "Tonkotsu Hana" {
			t.Error("ramen item in drinks state")
		}
	}

	send(t, conn, liveRequest{Type: msgSelect, Category: "sushi"})
	if resp := readResponse(t, conn); resp.Type != msgError {
		t.Errorf("expected error for unknown category, got %+v", resp)
	}
}

func completeForm() view.ReservationForm {
	return view.ReservationForm{
		Name:      "Aiko",
		Email:     "aiko@example.com",
		Phone:     "0400 000 000",
		Date:      "2026-11-02",
		Time:      "6:00pm",
		PartySize: "3-4",
	}
}

func TestLiveSubmitAndReset(t *testing.T) {
	conn := dialLive(t, "")
	expectState(t, conn)

	send(t, conn, liveRequest{Type: msgSubmit, Form: view.ReservationForm{Name: "Aiko"}})
	resp := readResponse(t, conn)
	if resp.Type != msgBlocked {
		t.Fatalf("expected blocked, got %+v", resp)
	}
	if _, ok := resp.Fields[view.FieldEmail]; !ok {
		t.Errorf("expected email in blocked fields: %v", resp.Fields)
	}
	if _, ok := resp.Fields[view.FieldName]; ok {
		t.Error("name was filled and should not be blocked")
	}

	send(t, conn, liveRequest{Type: msgSubmit, Form: completeForm()})
	if st := expectState(t, conn); !st.ReservationSubmitted {
		t.Error("expected confirmation after a valid submit")
	}

	send(t, conn, liveRequest{Type: msgReset})
	if st := expectState(t, conn); st.ReservationSubmitted {
		t.Error("expected form after reset")
	}
}

func TestLiveRepeatSubmit(t *testing.T) {
	conn := dialLive(t, "?tab=drinks")
	expectState(t, conn)

	send(t, conn, liveRequest{Type: msgSubmit, Form: completeForm()})
	if st := expectState(t, conn); !st.ReservationSubmitted {
		t.Fatal("expected confirmation after the first submit")
	}

	// The state does not change, but the submit is still acknowledged.
	send(t, conn, liveRequest{Type: msgSubmit, Form: completeForm()})
	st := expectState(t, conn)
	if !st.ReservationSubmitted || st.ActiveCategory != content.CategoryDrinks {
		t.Errorf("unexpected state after a repeat submit: %+v", st)
	}
}

func TestLiveMalformedMessages(t *testing.T) {
	conn := dialLive(t, "")
	expectState(t, conn)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	if resp := readResponse(t, conn); resp.Type != msgError || resp.Error != "invalid message format" {
		t.Errorf("unexpected response %+v", resp)
	}

	send(t, conn, liveRequest{Type: "dance"})
	if resp := readResponse(t, conn); resp.Type != msgError || !strings.Contains(resp.Error, "dance") {
		t.Errorf("unexpected response %+v", resp)
	}
}
