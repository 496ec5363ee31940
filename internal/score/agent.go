// Package score tracks points, streak and combo across placements.
package score

import "fmt"

// Rules holds the point values of a game.
type Rules struct {
	GroupPoints  int `yaml:"group_points" json:"groupPoints"`   // once per placement clearing at least one group
	StreakPoints int `yaml:"streak_points" json:"streakPoints"` // times the streak before this placement
	ComboPoints  int `yaml:"combo_points" json:"comboPoints"`   // per group beyond the first
}

// DefaultRules returns the standard Woodoku point values.
func DefaultRules() Rules {
	return Rules{GroupPoints: 18, StreakPoints: 10, ComboPoints: 28}
}

// Agent is a reducer over (score, streak) driven by placement outcomes.
// It is not safe for concurrent use.
type Agent struct {
	rules  Rules
	score  int
	streak int
	combo  int
}

func NewAgent(r Rules) *Agent { return &Agent{rules: r} }

// CalculateWinning folds one placement into the agent and returns the points
// it earned. cells must be positive and groups non-negative; anything else is
// a caller bug and panics.
func (a *Agent) CalculateWinning(cells, groups int) int {
	if cells <= 0 || groups < 0 {
		panic(fmt.Sprintf("score: precondition violated: cells=%d groups=%d", cells, groups))
	}
	before := a.score

	a.score += cells
	if groups > 0 {
		a.score += a.rules.GroupPoints
		if a.streak > 0 {
			a.score += a.rules.StreakPoints * a.streak
		}
		a.streak++
	} else {
		a.streak = 0
	}

	a.combo = groups - 1
	if a.combo > 0 {
		a.score += a.rules.ComboPoints * a.combo
	}
	return a.score - before
}

func (a *Agent) Score() int  { return a.score }
func (a *Agent) Streak() int { return a.streak }

// Combo is groups-1 of the last placement; -1 after a placement that cleared nothing.
func (a *Agent) Combo() int { return a.combo }

func (a *Agent) Rules() Rules { return a.rules }

// Clone returns an independent copy.
func (a *Agent) Clone() *Agent {
	c := *a
	return &c
}
