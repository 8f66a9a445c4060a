package session

import (
	"fmt"

	"whack/internal/grid"
)

// Snapshot is what a frontend needs to draw one frame. Once the session has
// ended it doubles as the final result.
type Snapshot struct {
	Cells    []grid.Cell
	Score    int
	Hits     int
	Clicks   int
	TimeLeft int
	Accuracy float64
	Active   bool
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Cells:    s.grid.Cells(),
		Score:    s.score,
		Hits:     s.hits,
		Clicks:   s.clicks,
		TimeLeft: s.timeLeft,
		Accuracy: s.Accuracy(),
		Active:   s.Active(),
	}
}

// Clock formats TimeLeft as mm:ss.
func (s Snapshot) Clock() string {
	return fmt.Sprintf("%02d:%02d", s.TimeLeft/60, s.TimeLeft%60)
}
