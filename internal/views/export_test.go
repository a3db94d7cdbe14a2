package views

import "time"

// SetClockForTest overrides the chat list's time source.
func SetClockForTest(v *ChatListView, clock func() time.Time) {
	v.clock = clock
}
