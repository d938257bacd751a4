package game

import "time"

// LogEntry is one public game-log line.
type LogEntry struct {
	At     time.Time `json:"at"`
	Round  int       `json:"round"`
	Phase  Phase     `json:"phase"`
	Event  string    `json:"event"`
	Actor  string    `json:"actor"`
	Detail string    `json:"detail,omitempty"`
}

const maxLogEntries = 50

// logEvent appends to the bounded game log, dropping the oldest entry once
// the buffer is full. Assumes the room lock is held.
func (r *Room) logEvent(event, actor, detail string) {
	entry := LogEntry{
		At:     time.Now(),
		Round:  r.Round,
		Phase:  r.Phase,
		Event:  event,
		Actor:  actor,
		Detail: detail,
	}
	r.gameLog = append(r.gameLog, entry)
	if len(r.gameLog) > maxLogEntries {
		r.gameLog = r.gameLog[len(r.gameLog)-maxLogEntries:]
	}
}
