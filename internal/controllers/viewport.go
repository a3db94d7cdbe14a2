package controllers

import "sync"

// PixelViewport implements the at-bottom query for embedders that render
// messages in a scrollable pane. "At bottom" tolerates a small gap so a
// reader a few pixels off the end still gets auto-scrolled when new
// messages land.
type PixelViewport struct {
	mu        sync.Mutex
	tolerance int

	scrollTop     int
	viewHeight    int
	contentHeight int

	pin func()
}

// NewPixelViewport creates a viewport with the given bottom tolerance in
// pixels. pin is invoked whenever the controller wants the pane scrolled
// to the newest message.
func NewPixelViewport(tolerance int, pin func()) *PixelViewport {
	return &PixelViewport{tolerance: tolerance, pin: pin}
}

// SetGeometry records the pane's current scroll position and sizes. The
// embedder calls it from its scroll and resize handlers.
func (v *PixelViewport) SetGeometry(scrollTop, viewHeight, contentHeight int) {
	v.mu.Lock()
	v.scrollTop = scrollTop
	v.viewHeight = viewHeight
	v.contentHeight = contentHeight
	v.mu.Unlock()
}

// AtBottom reports whether the pane is within tolerance of the end.
func (v *PixelViewport) AtBottom() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.contentHeight-(v.scrollTop+v.viewHeight) <= v.tolerance
}

// PinToBottom asks the embedder to scroll to the newest message.
func (v *PixelViewport) PinToBottom() {
	if v.pin != nil {
		v.pin()
	}
}
