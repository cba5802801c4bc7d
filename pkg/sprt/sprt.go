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

package sprt

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/llr/pkg/internal/util"
	"laptudirm.com/x/llr/pkg/stats"
)

var (
	ErrInvalidConfig = errors.New("invalid sprt configuration")
	ErrNonFiniteLLR  = errors.New("llr is not a finite number")
)

// Digits is the number of significant digits used in reports.
const Digits = 3

// New validates the given configuration and returns the test it describes.
func New(config Config) (*SPRT, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var sprt SPRT
	sprt.Config = config
	sprt.bounds = stats.StoppingBounds(config.Alpha, config.Beta)

	return &sprt, nil
}

// SPRT is a sequential probability ratio test between the elo0 and elo1
// hypotheses with its stopping bounds already calculated.
type SPRT struct {
	Config

	bounds stats.Bounds
}

// Bounds returns the stopping bounds of the test.
func (sprt *SPRT) Bounds() stats.Bounds {
	return sprt.bounds
}

// LLR returns the log-likelihood ratio of the games played so far.
func (sprt *SPRT) LLR() float64 {
	return stats.LLR(sprt.Counts(), sprt.Config.Elo0, sprt.Config.Elo1)
}

// Result evaluates the test. An error is returned if the llr is not finite,
// which is possible for elo hypotheses large enough to saturate the model's
// probabilities.
func (sprt *SPRT) Result() (Result, error) {
	counts := sprt.Counts()
	llr := sprt.LLR()

	log := logrus.WithFields(logrus.Fields{
		"wins":   counts.Wins,
		"losses": counts.Losses,
		"draws":  counts.Draws,
		"elo0":   sprt.Config.Elo0,
		"elo1":   sprt.Config.Elo1,
	})

	if !counts.Empty() {
		fit := stats.FitBayesElo(counts.Probability())
		log = log.WithFields(logrus.Fields{
			"bayes-elo": fit.Elo,
			"draw-elo":  fit.DrawElo,
		})
	}

	log.WithFields(logrus.Fields{
		"llr":   llr,
		"lower": sprt.bounds.Lower,
		"upper": sprt.bounds.Upper,
	}).Debug("Evaluated sprt")

	if math.IsNaN(llr) || math.IsInf(llr, 0) {
		return Result{}, fmt.Errorf("%w: got %v for elo0 %v and elo1 %v",
			ErrNonFiniteLLR, llr, sprt.Config.Elo0, sprt.Config.Elo1)
	}

	return Result{
		LLR:     llr,
		Bounds:  sprt.bounds,
		Verdict: sprt.bounds.Decide(llr),
	}, nil
}

// Result is the outcome of evaluating an sprt.
type Result struct {
	LLR     float64
	Bounds  stats.Bounds
	Verdict stats.Verdict
}

// String returns the result's report line, without the verdict.
func (result Result) String() string {
	return fmt.Sprintf(
		"LLR: %s (%s, %s)",
		util.FormatSignificant(result.LLR, Digits),
		util.FormatSignificant(result.Bounds.Lower, Digits),
		util.FormatSignificant(result.Bounds.Upper, Digits),
	)
}

// Report writes the llr, the stopping bounds, and the verdict to w.
func (result Result) Report(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", result, result.Verdict)
	return err
}
