// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stats

import (
	"errors"
	"math"
)

var (
	// ErrNegativeCount is returned for a result count below zero.
	ErrNegativeCount = errors.New("result counts must not be negative")

	// ErrDegenerateDistribution is returned when some game results were
	// played but one of the result types never occurred, which makes an
	// empirical probability 0 or 1 and the draw elo fit undefined.
	ErrDegenerateDistribution = errors.New("invalid outcome distribution: wins, losses, and draws must all be non-zero")

	// ErrCountOverflow is returned when the total number of games doesn't
	// fit in an int.
	ErrCountOverflow = errors.New("total number of games overflows")
)

// Counts is the number of wins, losses, and draws from a match.
type Counts struct {
	Wins, Losses, Draws int
}

// Total returns the number of games played. It wraps around for counts
// rejected by ValidateCounts with ErrCountOverflow.
func (c Counts) Total() int {
	return c.Wins + c.Losses + c.Draws
}

// Empty reports whether no games have been played.
func (c Counts) Empty() bool {
	return c.Wins == 0 && c.Losses == 0 && c.Draws == 0
}

// Probability returns the measured wdl probabilities. It must not be called
// with empty counts.
func (c Counts) Probability() Probability {
	N := float64(c.Wins) + float64(c.Losses) + float64(c.Draws) // total number of games
	return Probability{
		Win:  float64(c.Wins) / N,   // measured win probability
		Loss: float64(c.Losses) / N, // measured loss probability
		Draw: float64(c.Draws) / N,  // measured draw probability
	}
}

// ValidateCounts checks that an llr calculated from the given counts will be
// well defined. An empty set of counts is valid, since its llr is zero.
func ValidateCounts(c Counts) error {
	switch {
	case c.Wins < 0, c.Losses < 0, c.Draws < 0:
		return ErrNegativeCount
	case c.Empty():
		return nil
	case c.Wins > math.MaxInt-c.Losses, c.Wins+c.Losses > math.MaxInt-c.Draws:
		return ErrCountOverflow
	case c.Wins == 0, c.Losses == 0, c.Draws == 0:
		return ErrDegenerateDistribution
	default:
		return nil
	}
}

// LLR does a sequential probability ratio test calculation on the given
// number of wins, losses, and draws and returns the log-likelihood ratio for
// whether elo1 is a better fit for the data than elo0. A positive llr favours
// elo1 and a negative one favours elo0.
//
// The draw elo is fitted once from the measured probabilities and shared by
// both hypotheses. No checks are done on the counts: if any of them is zero
// while others are not, the result is the ±Inf or NaN produced by the float
// arithmetic. Use ValidateCounts to reject such inputs beforehand.
func LLR(c Counts, elo0, elo1 float64) (llr float64) {
	if c.Empty() {
		return 0
	}

	dlo := FitDrawElo(c.Probability())

	p0 := BayesElo{Elo: elo0, DrawElo: dlo}.Probabilities() // elo0 WDL probabilities
	p1 := BayesElo{Elo: elo1, DrawElo: dlo}.Probabilities() // elo1 WDL probabilities

	// log-likelihood ratio (llr)
	return float64(c.Wins)*logRatio(p1.Win, p0.Win) +
		float64(c.Losses)*logRatio(p1.Loss, p0.Loss) +
		float64(c.Draws)*logRatio(p1.Draw, p0.Draw)
}

// logRatio is ln(a/b), written as a difference so that swapping a and b
// negates the result exactly.
func logRatio(a, b float64) float64 {
	return math.Log(a) - math.Log(b)
}
