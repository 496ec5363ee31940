package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAgentStartsAtZero(t *testing.T) {
	a := NewAgent(DefaultRules())
	assert.Equal(t, 0, a.Score())
	assert.Equal(t, 0, a.Streak())
	assert.Equal(t, 0, a.Combo())
}

func TestCalculateWinning_Sequences(t *testing.T) {
	type step struct {
		cells, groups                int
		score, streak, combo, earned int
	}
	cases := []struct {
		name  string
		steps []step
	}{
		{"blocks only", []step{
			{cells: 1, groups: 0, score: 1, streak: 0, combo: -1, earned: 1},
			{cells: 5, groups: 0, score: 6, streak: 0, combo: -1, earned: 5},
		}},
		{"streak builds", []step{
			{cells: 2, groups: 1, score: 20, streak: 1, combo: 0, earned: 20},
			{cells: 1, groups: 1, score: 49, streak: 2, combo: 0, earned: 29},
			{cells: 3, groups: 1, score: 49 + 3 + 18 + 20, streak: 3, combo: 0, earned: 41},
		}},
		{"combo", []step{
			{cells: 1, groups: 3, score: 75, streak: 1, combo: 2, earned: 75},
		}},
		{"streak broken", []step{
			{cells: 2, groups: 1, score: 20, streak: 1, combo: 0, earned: 20},
			{cells: 1, groups: 0, score: 21, streak: 0, combo: -1, earned: 1},
			{cells: 1, groups: 1, score: 40, streak: 1, combo: 0, earned: 19},
		}},
		{"streak and combo together", []step{
			{cells: 1, groups: 1, score: 19, streak: 1, combo: 0, earned: 19},
			{cells: 4, groups: 2, score: 19 + 4 + 18 + 10 + 28, streak: 2, combo: 1, earned: 60},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAgent(DefaultRules())
			for i, s := range tc.steps {
				earned := a.CalculateWinning(s.cells, s.groups)
				assert.Equal(t, s.earned, earned, "step %d earned", i)
				assert.Equal(t, s.score, a.Score(), "step %d score", i)
				assert.Equal(t, s.streak, a.Streak(), "step %d streak", i)
				assert.Equal(t, s.combo, a.Combo(), "step %d combo", i)
			}
		})
	}
}

func TestCalculateWinning_GroupBonusIsFlat(t *testing.T) {
	one := NewAgent(DefaultRules())
	one.CalculateWinning(1, 1)
	three := NewAgent(DefaultRules())
	three.CalculateWinning(1, 3)
	// the only difference is the combo bonus
	assert.Equal(t, 2*28, three.Score()-one.Score())
}

func TestCalculateWinning_CustomRules(t *testing.T) {
	a := NewAgent(Rules{GroupPoints: 1, StreakPoints: 2, ComboPoints: 3})
	a.CalculateWinning(1, 1)
	a.CalculateWinning(1, 2)
	assert.Equal(t, (1+1)+(1+1+2*1+3*1), a.Score())
	assert.Equal(t, Rules{GroupPoints: 1, StreakPoints: 2, ComboPoints: 3}, a.Rules())
}

func TestCalculateWinning_PreconditionPanics(t *testing.T) {
	a := NewAgent(DefaultRules())
	assert.Panics(t, func() { a.CalculateWinning(0, 0) })
	assert.Panics(t, func() { a.CalculateWinning(-1, 1) })
	assert.Panics(t, func() { a.CalculateWinning(1, -1) })
	assert.Equal(t, 0, a.Score())
}

func TestClone(t *testing.T) {
	a := NewAgent(DefaultRules())
	a.CalculateWinning(2, 1)
	c := a.Clone()
	c.CalculateWinning(1, 1)
	assert.Equal(t, 20, a.Score())
	assert.Equal(t, 1, a.Streak())
	assert.Equal(t, 49, c.Score())
}
