package view

// ScrollListener turns viewport scroll offsets into the controller's
// scrolled flag. Every offset is handled; there is no debounce.
type ScrollListener struct {
	ctrl      *Controller
	threshold int
	last      bool
	attached  bool
}

// AttachScroll binds a listener to ctrl and returns it with its detach
// function. Callers defer the detach so it runs on every exit path. Detach
// is idempotent and a detached listener ignores further offsets.
func AttachScroll(ctrl *Controller, threshold int) (*ScrollListener, func()) {
	if threshold <= 0 {
		threshold = DefaultScrollThreshold
	}
	l := &ScrollListener{
		ctrl:      ctrl,
		threshold: threshold,
		last:      ctrl.State().Scrolled,
		attached:  true,
	}
	return l, l.detach
}

// OnScroll records a new vertical offset. The controller is only touched
// when the offset crosses the threshold.
func (l *ScrollListener) OnScroll(offset int) {
	if !l.attached {
		return
	}
	scrolled := ScrolledAt(offset, l.threshold)
	if scrolled == l.last {
		return
	}
	l.last = scrolled
	l.ctrl.SetScrolled(scrolled)
}

// Attached reports whether the listener still feeds its controller.
func (l *ScrollListener) Attached() bool { return l.attached }

// Threshold returns the offset at which the header switches style.
func (l *ScrollListener) Threshold() int { return l.threshold }

func (l *ScrollListener) detach() {
	l.attached = false
}
