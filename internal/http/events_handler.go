package http

import (
	"fmt"
	"net/http"

	"github.com/Brandbong/Vedham/internal/bus"
)

type EventsHandler struct {
	bus *bus.Bus
}

func NewEventsHandler(bus *bus.Bus) *EventsHandler {
	return &EventsHandler{bus: bus}
}

// GET /api/cart/events
//
// Server-sent events stream: one "cartUpdated" event per cart mutation.
// Signals are coalesced through a 1-slot channel so a slow client can never
// block the publisher; subscribers only ever need "something changed", not a
// count.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "streaming_unsupported", "streaming unsupported")
		return
	}

	// Subscribe before the headers go out, so a client that saw the stream
	// open can rely on every later mutation being delivered.
	changed := make(chan struct{}, 1)
	cancel := h.bus.Subscribe(func() {
		select {
		case changed <- struct{}{}:
		default: // a signal is already pending, one re-read covers both
		}
	})
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-changed:
			fmt.Fprint(w, "event: cartUpdated\ndata: {}\n\n")
			flusher.Flush()
		}
	}
}
