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

// Bounds are the stopping bounds of an sprt. The test stops with H0 accepted
// once the llr falls to Lower and with H1 accepted once it rises to Upper.
type Bounds struct {
	Lower, Upper float64
}

// StoppingBounds calculates the stopping bounds of an sprt from its type I
// and type II error probabilities, alpha and beta respectively.
func StoppingBounds(alpha, beta float64) Bounds {
	return Bounds{
		Lower: math.Log(beta / (1 - alpha)),
		Upper: math.Log((1 - beta) / alpha),
	}
}

// Verdict is the state of an sprt given its current llr.
type Verdict int

const (
	Continue Verdict = iota // Not enough evidence yet
	AcceptH0                // elo0 is accepted
	AcceptH1                // elo1 is accepted
)

// String returns a string representation of the given Verdict.
func (verdict Verdict) String() string {
	switch verdict {
	case AcceptH0:
		return "H0 Accepted"
	case AcceptH1:
		return "H1 Accepted"
	default:
		return "Continue Playing"
	}
}

// Decide classifies the llr against the bounds. Both bounds are inclusive,
// and Upper is checked first. A NaN llr never crosses either bound.
func (bounds Bounds) Decide(llr float64) Verdict {
	switch {
	case llr >= bounds.Upper:
		return AcceptH1
	case llr <= bounds.Lower:
		return AcceptH0
	default:
		return Continue
	}
}
