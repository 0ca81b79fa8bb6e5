// Package quickdraw implements the picture association quiz: name the
// picture before the countdown runs out. It is played solo or in a room
// where everyone answers the same pictures and scores are shared.
package quickdraw

import (
	"errors"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-portal/internal/config"
	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/rules"
)

// tick is the countdown resolution.
const tick = time.Second

// ErrRevealing rejects answers while the result of a round shows.
var ErrRevealing = errors.New("next picture coming up")

// Stage is where a session is within its rounds.
type Stage int

const (
	StageLobby  Stage = iota // waiting for a room match to start
	StageAsking              // countdown running
	StageReveal              // answer shown before the next round
	StageDone
)

// State is one player's run through the rounds.
type State struct {
	Player   identity.Player
	Settings config.QuickDrawConfig
	Order    []int // index into Challenges per round
	Round    int   // 1-based
	Stage    Stage
	TimeLeft int
	Picked   int // option picked this round, -1 on timeout
	Gained   int // points from the current round
	Score    int
	Timer    core.Timer
}

// Deal returns the challenge order for seed: a shuffle of the pool cut to
// rounds pictures.
func Deal(seed int64, rounds int) []int {
	order := core.Permutation(seed, 0, len(Challenges))
	return order[:min(rounds, len(order))]
}

// NewState starts a solo run.
func NewState(p identity.Player, seed int64, cfg config.QuickDrawConfig) State {
	return Begin(NewLobby(p, cfg), Deal(seed, cfg.Rounds))
}

// NewLobby returns a run that waits for Begin.
func NewLobby(p identity.Player, cfg config.QuickDrawConfig) State {
	return State{Player: p, Settings: cfg, Stage: StageLobby, Picked: -1}
}

// Begin starts round one with order.
func Begin(s State, order []int) State {
	s.Order = order
	s.Score = 0
	s.Round = 0
	return s.nextRound()
}

func (s State) nextRound() State {
	if s.Round >= len(s.Order) {
		s.Stage = StageDone
		s.Timer = s.Timer.Cancel()
		return s
	}
	s.Round++
	s.Stage = StageAsking
	s.TimeLeft = s.Settings.RoundSeconds
	s.Picked = -1
	s.Gained = 0
	s.Timer = s.Timer.Schedule(tick)
	return s
}

// Challenge returns the picture of the current round.
func (s State) Challenge() (Challenge, bool) {
	if s.Round < 1 || s.Round > len(s.Order) {
		return Challenge{}, false
	}
	return Challenges[s.Order[s.Round-1]], true
}

// Phase derives the session phase.
func (s State) Phase() core.Phase {
	switch {
	case s.Player.IsZero():
		return core.PhaseAwaitingPlayer
	case s.Stage == StageLobby:
		return core.PhaseLobby
	case s.Stage == StageDone:
		return core.PhaseTerminal
	default:
		return core.PhaseActive
	}
}

// Apply answers the current picture or advances the clock when a wake
// fires. A correct answer earns TimedPoints of the seconds left; a wrong
// answer or a timeout earns nothing and still moves on after the reveal.
func Apply(s State, in core.Input) (State, error) {
	switch s.Phase() {
	case core.PhaseAwaitingPlayer:
		return s, core.ErrNoPlayer
	case core.PhaseLobby:
		return s, core.ErrLobby
	case core.PhaseTerminal:
		return s, core.ErrGameOver
	}

	switch in.Kind {
	case core.InputWake:
		if !s.Timer.Fires(in) {
			return s, core.ErrStaleWake
		}
		return s.advance(), nil
	case core.InputSelect:
		return s.answer(in.Index)
	default:
		return s, core.ErrUnsupported
	}
}

func (s State) advance() State {
	if s.Stage == StageReveal {
		return s.nextRound()
	}
	s.TimeLeft--
	if s.TimeLeft > 0 {
		s.Timer = s.Timer.Schedule(tick)
		return s
	}
	s.TimeLeft = 0
	s.Stage = StageReveal
	s.Timer = s.Timer.Schedule(s.Settings.RevealDelay)
	return s
}

func (s State) answer(option int) (State, error) {
	if s.Stage != StageAsking {
		return s, ErrRevealing
	}
	c, _ := s.Challenge()
	if option < 0 || option >= len(c.Options) {
		return s, core.ErrUnsupported
	}
	s.Picked = option
	if option == c.Correct {
		s.Gained = rules.TimedPoints(s.TimeLeft)
		s.Score += s.Gained
	}
	s.Stage = StageReveal
	s.Timer = s.Timer.Schedule(s.Settings.RevealDelay)
	return s, nil
}

// Summary reports the session for the platform.
func (s State) Summary() core.GameState {
	gs := core.GameState{
		Status:   core.StatusPlaying,
		Phase:    s.Phase(),
		Round:    s.Round,
		Score:    s.Score,
		TimeLeft: s.TimeLeft,
	}
	switch s.Stage {
	case StageLobby:
		gs.Status = core.StatusLobby
	case StageDone:
		gs.Status = core.StatusFinished
		gs.Outcome = core.OutcomeWon
	}
	return gs
}

// Render draws the current round.
func (s State) Render(f *core.Frame) {
	switch s.Stage {
	case StageLobby:
		return
	case StageDone:
		f.Line(core.Colored("Game over! ", core.ColorGreen), core.Span{Text: "Score " + strconv.Itoa(s.Score), Bold: true})
		return
	}

	c, _ := s.Challenge()
	f.Line(
		core.Plain("Round "+strconv.Itoa(s.Round)+"/"+strconv.Itoa(len(s.Order))),
		core.Colored("   ⏱ "+strconv.Itoa(s.TimeLeft)+"s", timeColor(s.TimeLeft)),
		core.Colored("   Score "+strconv.Itoa(s.Score), core.ColorCyan),
	)
	f.Blank()
	f.Text("      " + c.Emoji)
	f.Blank()

	opts := make([]core.Span, 0, len(c.Options))
	for i, o := range c.Options {
		col := core.ColorDefault
		if s.Stage == StageReveal {
			switch {
			case i == c.Correct:
				col = core.ColorGreen
			case i == s.Picked:
				col = core.ColorRed
			default:
				col = core.ColorGray
			}
		}
		opts = append(opts, core.SlotSpan(i, " "+o+" ", col))
	}
	f.Line(opts...)

	if s.Stage == StageReveal {
		f.Blank()
		switch {
		case s.Picked == c.Correct:
			f.Line(core.Colored("Correct! +"+strconv.Itoa(s.Gained), core.ColorGreen))
		case s.Picked < 0:
			f.Line(core.Colored("Time's up! It was "+c.Answer(), core.ColorRed))
		default:
			f.Line(core.Colored("Wrong! It was "+c.Answer(), core.ColorRed))
		}
	}
}

func timeColor(left int) core.Color {
	if left <= 3 {
		return core.ColorRed
	}
	return core.ColorYellow
}
