package controllers

import "sync"

// Composer holds the message draft and decides what a return keypress
// does: a plain return submits the draft, a modified return inserts a
// literal newline instead.
type Composer struct {
	mu    sync.Mutex
	draft string
}

// Append adds typed text to the draft.
func (c *Composer) Append(text string) {
	c.mu.Lock()
	c.draft += text
	c.mu.Unlock()
}

// HandleReturn processes a return keypress. When modified is true the
// draft gains a newline and nothing is submitted; otherwise the current
// draft is returned for submission and cleared.
func (c *Composer) HandleReturn(modified bool) (content string, submit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if modified {
		c.draft += "\n"
		return "", false
	}

	content = c.draft
	c.draft = ""
	return content, true
}

// Draft returns the current draft text.
func (c *Composer) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Reset clears the draft.
func (c *Composer) Reset() {
	c.mu.Lock()
	c.draft = ""
	c.mu.Unlock()
}
