package game

// Phase represents the stage of the current hand
type Phase int

const (
	Waiting Phase = iota
	PreFlop
	Flop
	Turn
	River
	Showdown
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Waiting:
		return "waiting"
	case PreFlop:
		return "pre_flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// IsBetting reports whether players can act in this phase
func (p Phase) IsBetting() bool {
	switch p {
	case PreFlop, Flop, Turn, River:
		return true
	case Waiting, Showdown, GameOver:
		return false
	default:
		return false
	}
}

// next returns the street that follows p and how many community cards it deals
func (p Phase) next() (Phase, int) {
	switch p {
	case PreFlop:
		return Flop, 3
	case Flop:
		return Turn, 1
	case Turn:
		return River, 1
	case River:
		return Showdown, 0
	case Waiting, Showdown, GameOver:
		return p, 0
	default:
		return p, 0
	}
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case AllIn:
		return "all_in"
	default:
		return "unknown"
	}
}

// ParseAction converts the wire name of an action back to an Action
func ParseAction(s string) (Action, bool) {
	switch s {
	case "fold":
		return Fold, true
	case "check":
		return Check, true
	case "call":
		return Call, true
	case "raise":
		return Raise, true
	case "all_in", "allin":
		return AllIn, true
	default:
		return 0, false
	}
}

// ValidAction describes one legal action for the current actor. For Raise the
// amounts are the raise increment on top of the call; for Call and AllIn they
// are the chips that would go in.
type ValidAction struct {
	Action    Action
	MinAmount int
	MaxAmount int
}
