package quickdraw

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/multiplayer"
	"github.com/vovakirdan/tui-portal/internal/registry"
	"github.com/vovakirdan/tui-portal/internal/roomsync"
	"github.com/vovakirdan/tui-portal/internal/roomsync/roomtest"
)

var grace = identity.Player{ID: "p-grace", Name: "Grace"}

func TestStartNeedsHostAndSecondPlayer(t *testing.T) {
	rs := NewRoom(ada)
	if err := rs.CanStart(ada.ID); !errors.Is(err, ErrNeedPlayers) {
		t.Fatalf("solo host start error = %v, want ErrNeedPlayers", err)
	}
	rs, ok := Admit(grace)(rs)
	if !ok {
		t.Fatal("Admit() did not add the guest")
	}
	if _, again := Admit(grace)(rs); again {
		t.Error("Admit() added the same player twice")
	}
	if err := rs.CanStart(grace.ID); !errors.Is(err, ErrNotHost) {
		t.Errorf("guest start error = %v, want ErrNotHost", err)
	}
	if _, ok := Start(grace.ID, []int{1, 2})(rs); ok {
		t.Error("Start() accepted the guest")
	}

	started, ok := Start(ada.ID, []int{4, 2, 9})(rs)
	if !ok {
		t.Fatal("Start() rejected the host")
	}
	if started.Status != core.StatusPlaying {
		t.Errorf("status = %v, want playing", started.Status)
	}
	if diff := cmp.Diff([]int{4, 2, 9}, started.Order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if rs.Status != core.StatusLobby {
		t.Error("Start() mutated its input")
	}
	if err := started.CanStart(ada.ID); !errors.Is(err, core.ErrGameOver) {
		t.Errorf("restart error = %v, want ErrGameOver", err)
	}
}

func TestRecordMergesPerPlayer(t *testing.T) {
	rs, _ := Admit(grace)(NewRoom(ada))
	rs, _ = Start(ada.ID, []int{0, 1})(rs)

	rs, ok := Record(ada.ID, 90, false)(rs)
	if !ok {
		t.Fatal("Record() ignored a new score")
	}
	if _, again := Record(ada.ID, 90, false)(rs); again {
		t.Error("Record() reported a change for the same score")
	}
	rs, _ = Record(grace.ID, 40, true)(rs)
	if diff := cmp.Diff(map[string]int{ada.ID: 90, grace.ID: 40}, rs.Scores); diff != "" {
		t.Fatalf("scores mismatch (-want +got):\n%s", diff)
	}
	if rs.Status != core.StatusPlaying {
		t.Fatalf("room finished with one player still answering")
	}

	rs, _ = Record(ada.ID, 150, true)(rs)
	if rs.Status != core.StatusFinished {
		t.Errorf("status = %v after everyone finished, want finished", rs.Status)
	}
	if got := rs.Standings(); got[0].ID != ada.ID {
		t.Errorf("leader = %s, want %s", got[0].ID, ada.ID)
	}

	if _, ok := Rematch(grace.ID)(rs); ok {
		t.Error("Rematch() accepted the guest")
	}
	lobby, ok := Rematch(ada.ID)(rs)
	if !ok {
		t.Fatal("Rematch() rejected the host")
	}
	if lobby.Status != core.StatusLobby || len(lobby.Finished) != 0 || lobby.Scores[ada.ID] != 0 {
		t.Errorf("rematch state = %+v", lobby)
	}
}

func newOnline(t *testing.T, srv *roomtest.Server, p identity.Player) *OnlineGame {
	t.Helper()
	quiet := log.New(io.Discard)
	g := NewOnline(registry.OnlineEnv{
		Rooms: roomsync.Options{
			BaseURL:      srv.BaseURL(),
			PollInterval: 10 * time.Millisecond,
			Logger:       quiet,
		},
		Session: multiplayer.SessionID(p.ID),
		Logger:  quiet,
	})
	g.Reset(core.RuntimeConfig{Player: p, Seed: 11})
	t.Cleanup(g.Close)
	return g
}

func pump(t *testing.T, g *OnlineGame, cond func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !cond() {
		select {
		case evt := <-g.Events():
			g.Handle(evt)
		case <-deadline:
			t.Fatal("timed out waiting for room state")
		}
	}
}

func TestOnlineScoresReachEveryPlayer(t *testing.T) {
	srv := roomtest.NewServer()
	t.Cleanup(srv.Close)
	ctx := context.Background()

	host := newOnline(t, srv, ada)
	guest := newOnline(t, srv, grace)

	code, err := host.Host(ctx)
	if err != nil {
		t.Fatalf("Host() failed: %v", err)
	}
	if res := host.Apply(core.Start()); res.Accepted {
		t.Error("start accepted without a second player")
	}
	if err := guest.Join(ctx, code); err != nil {
		t.Fatalf("Join() failed: %v", err)
	}
	pump(t, host, func() bool { return len(host.Room().Players) == 2 })

	if res := guest.Apply(core.Start()); res.Accepted {
		t.Error("guest started the match")
	}
	if res := host.Apply(core.Start()); !res.Accepted {
		t.Fatalf("host start rejected: %q", res.State.Hint)
	}
	pump(t, host, func() bool { return host.Local().Stage == StageAsking && !host.room.Pending() })
	pump(t, guest, func() bool { return guest.Local().Stage == StageAsking })

	hc, _ := host.Local().Challenge()
	gc, _ := guest.Local().Challenge()
	if hc != gc {
		t.Fatalf("players got different pictures: %v vs %v", hc.Emoji, gc.Emoji)
	}

	if res := host.Apply(core.Select(hc.Correct)); !res.Accepted {
		t.Fatalf("answer rejected: %q", res.State.Hint)
	}
	if host.Local().Score != 100 {
		t.Errorf("local score = %d, want 100", host.Local().Score)
	}
	pump(t, guest, func() bool { return guest.Room().Scores[ada.ID] == 100 })
	if got := guest.State().Scores[ada.ID]; got != 100 {
		t.Errorf("guest sees host score %d, want 100", got)
	}
}
