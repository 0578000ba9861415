package ui

import "testing"

func TestProgressBar_Update(t *testing.T) {
	p := NewProgressBar(4)

	p.Update(1, 1, 0)
	if got := p.bar.State().CurrentPercent; got < 0.49 || got > 0.51 {
		t.Errorf("expected bar at half after 2 of 4 tests, got %.2f", got)
	}

	p.Update(2, 1, 1)
	p.Finish()
	if !p.bar.IsFinished() {
		t.Error("expected bar finished after all tests counted")
	}
}
