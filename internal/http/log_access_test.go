package handlers_test

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"testing"

	"resellx/internal/domain"
)

type accessLogEntry struct {
	Level  string                 `json:"level"`
	Action string                 `json:"action"`
	Fields map[string]interface{} `json:"fields"`
}

type lockedBuf struct {
	b  *bytes.Buffer
	mu *sync.Mutex
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func captureLogs(t *testing.T, fn func()) []accessLogEntry {
	t.Helper()
	var buf bytes.Buffer
	var mu sync.Mutex
	oldW := log.Writer()
	oldFlags := log.Flags()
	log.SetOutput(&lockedBuf{b: &buf, mu: &mu})
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	}()

	fn()

	var entries []accessLogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var e accessLogEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

func TestAccessDenialsAreLogged(t *testing.T) {
	app, _, _ := newTestApp(t)
	userTok := registerAndToken(t, app, "buyer@x.com", domain.RoleUser)

	entries := captureLogs(t, func() {
		// no header
		if _, err := app.Test(jsonReq("POST", "/products", `{}`)); err != nil {
			t.Fatal(err)
		}
		// bad token
		req := jsonReq("POST", "/products", `{}`)
		req.Header.Set("Authorization", "Bearer junk")
		if _, err := app.Test(req); err != nil {
			t.Fatal(err)
		}
		// wrong role
		req = jsonReq("POST", "/products", `{}`)
		req.Header.Set("Authorization", "Bearer "+userTok)
		if _, err := app.Test(req); err != nil {
			t.Fatal(err)
		}
	})

	want := map[string]bool{
		"access.denied.nocred": false,
		"access.denied.token":  false,
		"access.denied.role":   false,
	}
	for _, e := range entries {
		if _, ok := want[e.Action]; ok {
			want[e.Action] = true
			if e.Level != "warn" {
				t.Fatalf("denial %s logged at level %q, want warn", e.Action, e.Level)
			}
		}
	}
	for action, seen := range want {
		if !seen {
			t.Fatalf("expected a %s log entry; got %+v", action, entries)
		}
	}
}
