package session

import (
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"whack/internal/config"
	"whack/internal/grid"
)

type State int

const (
	Active State = iota // Clock running, clicks scored
	Ended               // Time is up; terminal
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Ended:
		return "ended"
	}
	return "unknown"
}

// Cue is played on every hit.
type Cue interface {
	Pop()
}

// Session tracks one timed round: score, accuracy and the countdown.
// It is driven from a single frame loop and is not safe for concurrent use.
type Session struct {
	id       string
	cfg      config.Config
	grid     *grid.Grid
	cue      Cue
	state    State
	score    int
	clicks   int
	hits     int
	timeLeft int
	carry    time.Duration
}

// New validates cfg, builds the grid and places the initial targets.
func New(cfg config.Config, rng grid.Rand, cue Cue) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cue == nil {
		cue = nopCue{}
	}
	s := &Session{
		id:       uuid.NewString(),
		cfg:      cfg,
		grid:     grid.New(cfg, rng),
		cue:      cue,
		state:    Active,
		timeLeft: cfg.RoundDuration,
	}
	for i := 0; i < cfg.NumTargets; i++ {
		s.grid.Spawn()
	}
	log.Printf("[Session %s] started: %d targets on %d cells, %ds\n", s.id, cfg.NumTargets, cfg.TotalCells(), cfg.RoundDuration)
	return s, nil
}

// Tick advances the countdown by elapsed. Every full second crossed costs one
// second of play; the remainder carries into the next call.
func (s *Session) Tick(elapsed time.Duration) {
	if s.state != Active || elapsed <= 0 {
		return
	}
	s.carry += elapsed
	for s.carry >= time.Second && s.timeLeft > 0 {
		s.carry -= time.Second
		s.timeLeft--
	}
	if s.timeLeft == 0 {
		s.end()
	}
}

func (s *Session) end() {
	s.state = Ended
	s.carry = 0
	log.Printf("[Session %s] ended: score=%d hits=%d clicks=%d accuracy=%.1f%%\n", s.id, s.score, s.hits, s.clicks, s.Accuracy())
}

// Click resolves a pointer press at p and reports whether it hit a target.
// A hit vacates the cell before respawning, so the new target lands elsewhere.
func (s *Session) Click(p grid.Point) bool {
	if s.state != Active {
		return false
	}
	s.clicks++
	idx, ok := s.grid.HitTest(p)
	if !ok {
		return false
	}
	s.hits++
	s.score++
	s.cue.Pop()
	s.grid.Remove(idx)
	if _, ok := s.grid.Spawn(idx); !ok {
		// The vacated cell was the only free one.
		s.grid.Spawn()
	}
	return true
}

// Accuracy is the hit percentage rounded to one decimal, 0 before any click.
func (s *Session) Accuracy() float64 {
	if s.clicks == 0 {
		return 0
	}
	pct := float64(s.hits) / float64(s.clicks) * 100
	return math.Round(pct*10) / 10
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Active() bool {
	return s.state == Active
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Hits() int {
	return s.hits
}

func (s *Session) TotalClicks() int {
	return s.clicks
}

func (s *Session) TimeLeft() int {
	return s.timeLeft
}

func (s *Session) Grid() *grid.Grid {
	return s.grid
}

func (s *Session) Config() config.Config {
	return s.cfg
}

type nopCue struct{}

func (nopCue) Pop() {}
