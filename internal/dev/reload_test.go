package dev

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialReload(t *testing.T, rs *ReloadServer) *websocket.Conn {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	waitForClients(t, rs, 1)
	return conn
}

func waitForClients(t *testing.T, rs *ReloadServer, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if rs.ClientCount() == n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("ClientCount() = %d, want %d", rs.ClientCount(), n)
}

func readMessage(t *testing.T, conn *websocket.Conn) ReloadMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	return msg
}

func TestReloadNotify(t *testing.T) {
	rs := NewReloadServer()
	defer rs.Close()
	conn := dialReload(t, rs)

	rs.NotifyReload()
	if msg := readMessage(t, conn); msg.Type != ReloadTypeFull {
		t.Errorf("type = %q, want %q", msg.Type, ReloadTypeFull)
	}

	rs.NotifyCSS("site.css")
	msg := readMessage(t, conn)
	if msg.Type != ReloadTypeCSS || msg.File != "site.css" {
		t.Errorf("msg = %+v, want css reload for site.css", msg)
	}

	rs.NotifyError("syntax error")
	msg = readMessage(t, conn)
	if msg.Type != ReloadTypeError || msg.Error != "syntax error" {
		t.Errorf("msg = %+v, want error message", msg)
	}

	rs.ClearError()
	if msg := readMessage(t, conn); msg.Type != ReloadTypeClear {
		t.Errorf("type = %q, want %q", msg.Type, ReloadTypeClear)
	}
}

func TestReloadClientDisconnect(t *testing.T) {
	rs := NewReloadServer()
	defer rs.Close()
	conn := dialReload(t, rs)

	conn.Close()
	waitForClients(t, rs, 0)

	// Broadcasting to no clients is a no-op.
	rs.NotifyReload()
}

func TestReloadClose(t *testing.T) {
	rs := NewReloadServer()
	dialReload(t, rs)

	rs.Close()
	if rs.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d after Close, want 0", rs.ClientCount())
	}
}

func TestReloadClientScriptEndpoint(t *testing.T) {
	if !strings.Contains(ReloadClientScript, ReloadPath) {
		t.Errorf("client script does not reference %s", ReloadPath)
	}
}
