package multiplayer

import "testing"

type tally struct {
	Turn   int
	Scores map[string]int
}

func TestMirrorProposeShowsLocal(t *testing.T) {
	m := Mirror[tally]{Remote: tally{Turn: 1}}
	if m.Diverged() {
		t.Fatal("fresh mirror should not be diverged")
	}

	m = m.Propose(tally{Turn: 2})
	if !m.Diverged() || m.Current().Turn != 2 {
		t.Errorf("Current() = %+v, want optimistic turn 2", m.Current())
	}
	if m.Remote.Turn != 1 {
		t.Errorf("Propose changed Remote to %+v", m.Remote)
	}
}

func TestReconcilePolledAlwaysWins(t *testing.T) {
	tests := []struct {
		name   string
		mirror Mirror[tally]
		polled tally
	}{
		{"no local", Mirror[tally]{Remote: tally{Turn: 1}}, tally{Turn: 3}},
		{"stale local", Mirror[tally]{Remote: tally{Turn: 1}}.Propose(tally{Turn: 2}), tally{Turn: 1}},
		{"newer local", Mirror[tally]{Remote: tally{Turn: 1}}.Propose(tally{Turn: 5}), tally{Turn: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.mirror, tt.polled)
			if got.Diverged() {
				t.Error("Reconcile kept the optimistic slot")
			}
			if got.Current().Turn != tt.polled.Turn {
				t.Errorf("Current() = %+v, want polled %+v", got.Current(), tt.polled)
			}
		})
	}
}

func TestMirrorConfirmAndDiscard(t *testing.T) {
	m := Mirror[tally]{Remote: tally{Turn: 1}}.Propose(tally{Turn: 2})

	if d := m.Discard(); d.Diverged() || d.Current().Turn != 1 {
		t.Errorf("Discard() = %+v", d)
	}
	if c := m.Confirm(tally{Turn: 2}); c.Diverged() || c.Remote.Turn != 2 {
		t.Errorf("Confirm() = %+v", c)
	}
}
