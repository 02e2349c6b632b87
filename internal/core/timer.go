package core

// Timer is a repeating tick timer that fires a fixed number of times.
// It fires first after delay ticks and then every delay ticks.
type Timer struct {
	delay     int
	count     int
	fired     int
	remaining int
	armed     bool
}

// Arm (re)starts the timer to fire count times, every delay ticks.
// A delay below one tick is treated as one tick.
func (t *Timer) Arm(delay, count int) {
	if delay < 1 {
		delay = 1
	}
	t.delay = delay
	t.count = count
	t.fired = 0
	t.remaining = delay
	t.armed = count > 0
}

// Tick advances the timer by one tick and reports whether it fired.
func (t *Timer) Tick() bool {
	if !t.armed {
		return false
	}
	t.remaining--
	if t.remaining > 0 {
		return false
	}
	t.fired++
	t.remaining = t.delay
	if t.fired >= t.count {
		t.armed = false
	}
	return true
}

// Armed reports whether the timer still has fires left.
func (t *Timer) Armed() bool { return t.armed }

// Fired returns how many times the timer fired since it was armed.
func (t *Timer) Fired() int { return t.fired }

// Stop disarms the timer.
func (t *Timer) Stop() { t.armed = false }
