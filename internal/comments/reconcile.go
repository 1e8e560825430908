package comments

import "github.com/vojtechokenka/nokturo/internal/models"

// Reconciliation of externally delivered change events against the local
// comment cache. Delivery is at-least-once with no ordering guarantee, so
// every application must be idempotent.

// EventType of a change notification.
type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// ChangeEvent is one delivered change. New is set for inserts and updates,
// Old for deletes (and optionally updates).
type ChangeEvent struct {
	Type EventType           `json:"eventType"`
	New  *models.TextComment `json:"new,omitempty"`
	Old  *models.TextComment `json:"old,omitempty"`
}

// Apply reconciles one event into the list and returns the new list.
// Duplicate inserts are dropped by id. Updates that arrive without a fresh
// author join preserve the locally-known author profile. Deletes remove by
// id and are a no-op when the id is already gone.
func Apply(list []models.TextComment, ev ChangeEvent) []models.TextComment {
	switch ev.Type {
	case EventInsert:
		if ev.New == nil {
			return list
		}
		for _, c := range list {
			if c.CommentID == ev.New.CommentID {
				return list
			}
		}
		out := make([]models.TextComment, 0, len(list)+1)
		out = append(out, list...)
		out = append(out, *ev.New)
		return out

	case EventUpdate:
		if ev.New == nil {
			return list
		}
		out := make([]models.TextComment, len(list))
		copy(out, list)
		for i, c := range out {
			if c.CommentID != ev.New.CommentID {
				continue
			}
			next := *ev.New
			if next.Author == nil {
				next.Author = c.Author
			}
			out[i] = next
			return out
		}
		// Unknown id: treat as an insert we missed.
		return append(out, *ev.New)

	case EventDelete:
		id := ""
		if ev.Old != nil {
			id = ev.Old.CommentID
		} else if ev.New != nil {
			id = ev.New.CommentID
		}
		if id == "" {
			return list
		}
		out := make([]models.TextComment, 0, len(list))
		for _, c := range list {
			if c.CommentID != id {
				out = append(out, c)
			}
		}
		return out
	}
	return list
}
