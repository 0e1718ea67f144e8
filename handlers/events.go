// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/electorate/cliparse"
	"github.com/danielhkuo/electorate/election"
	"github.com/danielhkuo/electorate/middleware"
)

// EventsHandler streams election notification events to observers as
// server-sent events.
type EventsHandler struct {
	elect *election.Election
	cfg   cliparse.Config
}

func NewEventsHandler(elect *election.Election, cfg cliparse.Config) *EventsHandler {
	return &EventsHandler{elect: elect, cfg: cfg}
}

type eventFrame struct {
	Event string        `json:"event"`
	Args  []interface{} `json:"args,omitempty"`
}

// Stream handles GET /election/events
//
// Subscribes to every election event and forwards each as one SSE
// frame until the client disconnects. Events fire inside election
// commits, so the listener hands frames to a buffered channel and
// drops on overflow rather than stalling a mutating operation on a
// slow consumer.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	frames := make(chan eventFrame, 64)
	ob := h.elect.Events()

	listeners := make(map[string]func(...interface{}), len(election.EventNames()))
	for _, name := range election.EventNames() {
		name := name
		fn := func(args ...interface{}) {
			select {
			case frames <- eventFrame{Event: name, Args: normalizeArgs(args)}:
			default:
				slog.Warn("event stream consumer too slow, dropping event", "event", name)
			}
		}
		listeners[name] = fn
		ob.On(name, fn)
	}
	defer func() {
		for name, fn := range listeners {
			ob.Off(name, fn)
		}
	}()

	slog.Info("event stream opened", "remote", r.RemoteAddr)

	for {
		select {
		case <-r.Context().Done():
			slog.Info("event stream closed", "remote", r.RemoteAddr)
			return
		case frame := <-frames:
			payload, err := json.Marshal(frame)
			if err != nil {
				slog.Error("failed to encode event frame", "event", frame.Event, "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", frame.Event, payload)
			flusher.Flush()
		}
	}
}

// normalizeArgs rewrites event arguments into JSON-friendly values.
func normalizeArgs(args []interface{}) []interface{} {
	out := make([]interface{}, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case election.Phase:
			out[i] = v.String()
		case election.Principal:
			out[i] = string(v)
		default:
			out[i] = a
		}
	}
	return out
}
