package sound

// Cue is a fire-and-forget sound the game can trigger.
type Cue interface {
	Pop()
}

type NopCue struct{}

func (NopCue) Pop() {}

// CueFunc adapts a plain function to Cue.
type CueFunc func()

func (f CueFunc) Pop() { f() }

// Muted returns a silent cue when muted is set, c otherwise.
func Muted(c Cue, muted bool) Cue {
	if muted || c == nil {
		return NopCue{}
	}
	return c
}
