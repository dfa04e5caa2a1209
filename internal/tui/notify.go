package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// notifyKind classifies a transient status message.
type notifyKind int

const (
	notifyLoading notifyKind = iota
	notifyError
	notifySuccess
)

// notifyExpireMsg dismisses a notification when its display time is up.
// seq guards against expiring a newer message of the same kind.
type notifyExpireMsg struct {
	kind notifyKind
	seq  int
}

// notification is a single transient message slot.
type notification struct {
	text    string
	seq     int
	visible bool
}

// notifier is the notification surface: at most one visible message per
// kind, each superseded by the next message of the same kind. Error and
// success messages auto-dismiss after the configured lifetime; the loading
// indicator stays until explicitly hidden.
type notifier struct {
	slots map[notifyKind]*notification
	ttl   time.Duration
}

func newNotifier(ttl time.Duration) notifier {
	return notifier{
		slots: map[notifyKind]*notification{
			notifyLoading: {},
			notifyError:   {},
			notifySuccess: {},
		},
		ttl: ttl,
	}
}

// show displays a message of the given kind, superseding any message of the
// same kind. For error and success it returns a Cmd that expires the
// message after the TTL; for loading it returns nil.
func (n *notifier) show(kind notifyKind, text string) tea.Cmd {
	slot := n.slots[kind]
	slot.seq++
	slot.text = text
	slot.visible = true

	if kind == notifyLoading {
		return nil
	}
	seq := slot.seq
	return tea.Tick(n.ttl, func(time.Time) tea.Msg {
		return notifyExpireMsg{kind: kind, seq: seq}
	})
}

// hide dismisses the current message of the given kind.
func (n *notifier) hide(kind notifyKind) {
	n.slots[kind].visible = false
}

// expire handles a notifyExpireMsg, ignoring it if the slot has been
// superseded since the timer was scheduled.
func (n *notifier) expire(msg notifyExpireMsg) {
	slot := n.slots[msg.kind]
	if slot.seq == msg.seq {
		slot.visible = false
	}
}

// get returns the visible message of the given kind, or "" if none.
func (n *notifier) get(kind notifyKind) string {
	slot := n.slots[kind]
	if !slot.visible {
		return ""
	}
	return slot.text
}
