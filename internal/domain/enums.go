package domain

import "fmt"

// Axis names the three kinds of group on the board.
type Axis int

const (
	AxisRow Axis = iota
	AxisCol
	AxisBox
)

func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "row"
	case AxisCol:
		return "col"
	case AxisBox:
		return "box"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// MarshalText renders the axis by name in JSON payloads.
func (a Axis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Axis) UnmarshalText(b []byte) error {
	switch string(b) {
	case "row":
		*a = AxisRow
	case "col":
		*a = AxisCol
	case "box":
		*a = AxisBox
	default:
		return fmt.Errorf("unknown axis %q", b)
	}
	return nil
}

// StrategyTier limits how far the hinter looks ahead.
type StrategyTier int

const (
	StrategyGreedy    StrategyTier = iota // best immediate points
	StrategyLookahead                     // keep the rest of the hand placeable
)

func (t StrategyTier) String() string {
	switch t {
	case StrategyGreedy:
		return "greedy"
	case StrategyLookahead:
		return "lookahead"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// MarshalText renders the tier by name in JSON payloads.
func (t StrategyTier) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *StrategyTier) UnmarshalText(b []byte) error {
	switch string(b) {
	case "greedy":
		*t = StrategyGreedy
	case "lookahead":
		*t = StrategyLookahead
	default:
		return fmt.Errorf("unknown strategy tier %q", b)
	}
	return nil
}
