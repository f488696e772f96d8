package game

import (
	"fmt"
	"strings"
)

// History is the ordered record of executed events.
type History struct {
	events []Event
}

type HistoryOptions struct {
	// Delimiter joins entries; empty means a newline.
	Delimiter         string
	Ordinals          bool
	SkipPlayerChanges bool
}

func (h *History) append(e Event) { h.events = append(h.events, e) }

func (h *History) remove(e Event) {
	for i, ev := range h.events {
		if ev == e {
			h.events = append(h.events[:i:i], h.events[i+1:]...)
			return
		}
	}
}

func (h *History) Events() []Event { return append([]Event(nil), h.events...) }

func (h *History) Len() int { return len(h.events) }

// Entries renders each event, honouring the filtering and numbering options.
func (h *History) Entries(opts HistoryOptions) []string {
	var out []string
	for _, e := range h.events {
		if _, ok := e.(*PlayerChange); ok && opts.SkipPlayerChanges {
			continue
		}
		entry := e.Notation()
		if opts.Ordinals {
			entry = fmt.Sprintf("%d. %s", len(out)+1, entry)
		}
		out = append(out, entry)
	}
	return out
}

func (h *History) Notation(opts HistoryOptions) string {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = "\n"
	}
	return strings.Join(h.Entries(opts), delimiter)
}
