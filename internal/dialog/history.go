package dialog

// History is the ordered sequence of visited directories plus an offset
// from the most recent entry. Offset 0 means the head of the stack; the
// current directory is stack[len(stack)-1-offset]. Visiting a new
// directory from a back-navigated position discards the abandoned
// forward branch, the same way browser history does.
type History struct {
	stack  []string
	offset int
}

// Current returns the directory at the cursor, or false when the
// history is empty.
func (h *History) Current() (string, bool) {
	if len(h.stack) == 0 {
		return "", false
	}
	return h.stack[len(h.stack)-1-h.offset], true
}

// NavigateTo records a visit to path. Visiting the current directory is
// a no-op. When the cursor sits behind the head, every entry past the
// cursor is dropped before path is pushed.
func (h *History) NavigateTo(path string) {
	if cur, ok := h.Current(); ok && cur == path {
		return
	}

	if h.offset > 0 && len(h.stack) > h.offset {
		h.stack = h.stack[:len(h.stack)-h.offset]
	}

	h.stack = append(h.stack, path)
	h.offset = 0
}

// Back moves the cursor one entry towards the oldest visit. It reports
// false at the boundary instead of failing; callers disable the
// affordance with CanGoBack.
func (h *History) Back() bool {
	if !h.CanGoBack() {
		return false
	}
	h.offset++
	return true
}

// Forward moves the cursor one entry towards the most recent visit.
func (h *History) Forward() bool {
	if !h.CanGoForward() {
		return false
	}
	h.offset--
	return true
}

// CanGoBack reports whether an older entry exists
func (h *History) CanGoBack() bool {
	return h.offset+1 < len(h.stack)
}

// CanGoForward reports whether a newer entry exists
func (h *History) CanGoForward() bool {
	return h.offset > 0
}

// Len returns the number of recorded visits
func (h *History) Len() int {
	return len(h.stack)
}

// Reset drops all recorded visits
func (h *History) Reset() {
	h.stack = nil
	h.offset = 0
}
