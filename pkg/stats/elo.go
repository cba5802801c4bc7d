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

import "math"

// Sigmoid is the logistic curve on the elo scale, 1 / (1 + 10^(x/400)).
// It approaches 1 as x goes to -∞ and 0 as x goes to +∞, and saturates to
// exactly one of those values for very large |x|.
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Pow(10, x/400))
}

// Probability is a win-loss-draw probability triple.
type Probability struct {
	Win, Loss, Draw float64
}

// Valid reports whether every probability of the triple lies in (0, 1), which
// is required for the log-likelihood of any result to be finite.
func (p Probability) Valid() bool {
	return inUnit(p.Win) && inUnit(p.Loss) && inUnit(p.Draw)
}

func inUnit(x float64) bool {
	return x > 0 && x < 1
}

// BayesElo is an elo difference along with the draw elo which controls how
// much of the probability mass is given to draws.
type BayesElo struct {
	Elo     float64
	DrawElo float64
}

// Probabilities converts the bayesian elo to its wdl probabilities. The draw
// probability is the residual of the other two, so the triple always sums
// to one, though it may be negative for an unfitted draw elo below zero.
func (b BayesElo) Probabilities() Probability {
	w := Sigmoid(b.DrawElo - b.Elo) // win probability sigmoid
	l := Sigmoid(b.DrawElo + b.Elo) // loss probability sigmoid
	return Probability{
		Win:  w,
		Loss: l,
		Draw: 1 - w - l, // draw probability curve
	}
}

// FitDrawElo fits the draw elo to the given empirical wdl probabilities.
func FitDrawElo(p Probability) float64 {
	return 200 * math.Log10((1-1/p.Win)*(1-1/p.Loss))
}

// FitBayesElo converts the wdl probabilities to its bayesian elo.
func FitBayesElo(p Probability) BayesElo {
	w, l := p.Win, p.Loss
	return BayesElo{
		Elo:     200 * math.Log10((w/l)*((1-l)/(1-w))),
		DrawElo: FitDrawElo(p),
	}
}
