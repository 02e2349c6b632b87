package core

import "testing"

func TestTimerFiresCountTimes(t *testing.T) {
	var tm Timer
	tm.Arm(3, 2)

	var fires []int
	for tick := 1; tick <= 12; tick++ {
		if tm.Tick() {
			fires = append(fires, tick)
		}
	}

	if len(fires) != 2 || fires[0] != 3 || fires[1] != 6 {
		t.Errorf("fired at %v, expected [3 6]", fires)
	}
	if tm.Armed() {
		t.Error("timer still armed after last fire")
	}
	if tm.Fired() != 2 {
		t.Errorf("Fired() = %d, expected 2", tm.Fired())
	}
}

func TestTimerUnarmed(t *testing.T) {
	var tm Timer
	for i := 0; i < 10; i++ {
		if tm.Tick() {
			t.Fatal("zero timer fired")
		}
	}

	tm.Arm(0, 1)
	if !tm.Tick() {
		t.Error("sub-tick delay should fire on the first tick")
	}

	tm.Arm(2, 5)
	tm.Stop()
	if tm.Tick() || tm.Tick() {
		t.Error("stopped timer fired")
	}
}
