// Package notify shows short best-effort messages to the user.
package notify

import "github.com/gen2brain/beeep"

// Title is the notification title used by the desktop notifier.
const Title = "Godspeed CLI"

// Notifier displays a short message to the user. Implementations are
// fire-and-forget; the caller never learns whether delivery worked.
type Notifier interface {
	Notify(message string)
}

// Desktop sends OS desktop notifications.
type Desktop struct{}

// Notify implements Notifier. Delivery failures are ignored; the tool
// keeps working when no notification daemon is available.
func (Desktop) Notify(message string) {
	_ = beeep.Notify(Title, message, "")
}

// Discard drops every message.
type Discard struct{}

// Notify implements Notifier.
func (Discard) Notify(string) {}
