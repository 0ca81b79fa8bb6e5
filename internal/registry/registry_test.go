package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-portal/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                       { return g.id }
func (g *stubGame) Title() string                    { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig)         {}
func (g *stubGame) Apply(core.Input) core.StepResult { return core.StepResult{} }
func (g *stubGame) Controls() core.Controls          { return core.Controls{Kind: core.ControlsNone} }
func (g *stubGame) Wake() (core.Wake, bool)          { return core.Wake{}, false }
func (g *stubGame) Render(*core.Frame)               {}
func (g *stubGame) State() core.GameState            { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("created %q", g.ID())
	}
	if !Exists("stub-b") || Exists("stub-missing") {
		t.Error("Exists() disagrees with registrations")
	}
	if _, err := Create("stub-missing"); err == nil {
		t.Error("Create() of unknown game succeeded")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "stub-") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) || info.Online {
				t.Errorf("info = %+v", info)
			}
		}
	}
	if strings.Join(ids, ",") != "stub-a,stub-b" {
		t.Errorf("List() order = %v", ids)
	}
	if SupportsOnline("stub-a") {
		t.Error("stub claims an online mode")
	}
	if _, err := CreateOnline("stub-a", OnlineEnv{}); err == nil {
		t.Error("CreateOnline() of a solo game succeeded")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	tests := []struct {
		name string
		fn   func()
	}{
		{name: "duplicate", fn: func() { Register("stub-dup", func() Game { return &stubGame{} }) }},
		{name: "online without base", fn: func() { RegisterOnline("stub-none", nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			tt.fn()
		})
	}
}
