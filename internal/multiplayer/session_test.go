package multiplayer

import "testing"

func TestChannelSessionDropsOldest(t *testing.T) {
	s := NewChannelSession("s1", 2)
	s.Send(SyncErrorEvent{Message: "a"})
	s.Send(SyncErrorEvent{Message: "b"})
	s.Send(SyncErrorEvent{Message: "c"})

	var got []string
	for len(s.Events()) > 0 {
		got = append(got, (<-s.Events()).(SyncErrorEvent).Message)
	}
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("buffered %v, want [b c]", got)
	}

	s.Close()
	s.Close()
	s.Send(SyncErrorEvent{Message: "late"})
	if len(s.Events()) != 0 {
		t.Error("closed session accepted an event")
	}
}

func TestSessionRegistry(t *testing.T) {
	r := NewSessionRegistry()
	r.Register(NewChannelSession("a", 1))
	r.Register(NewChannelSession("b", 1))

	if r.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", r.Count())
	}
	if _, ok := r.Get("a"); !ok {
		t.Error("Get(a) missing")
	}
	r.Unregister("a")
	if _, ok := r.Get("a"); ok || r.Count() != 1 || len(r.IDs()) != 1 {
		t.Errorf("after Unregister: count %d, ids %v", r.Count(), r.IDs())
	}
}
