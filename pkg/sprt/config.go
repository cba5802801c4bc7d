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
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"laptudirm.com/x/llr/pkg/stats"
)

// Default values of the test parameters.
const (
	DefaultElo0  = 0
	DefaultElo1  = 5
	DefaultAlpha = 0.05
	DefaultBeta  = 0.05
)

// Config contains everything needed to evaluate an sprt.
type Config struct {
	Elo0 float64 `flag:"elo0" validate:"finite"` // The null elo hypothesis.
	Elo1 float64 `flag:"elo1" validate:"finite"` // The alternate elo hypothesis.

	// Confidence bounds for Error types I and II.
	Alpha float64 `flag:"alpha" validate:"gt=0,lt=1"`
	Beta  float64 `flag:"beta" validate:"gt=0,lt=1"`

	State State
}

// State contains the results of the games played so far.
type State struct {
	Wins   int `flag:"wins" validate:"gte=0"`
	Losses int `flag:"losses" validate:"gte=0"`
	Draws  int `flag:"draws" validate:"gte=0"`
}

// DefaultConfig returns the configuration of a test with no games played.
func DefaultConfig() Config {
	return Config{
		Elo0:  DefaultElo0,
		Elo1:  DefaultElo1,
		Alpha: DefaultAlpha,
		Beta:  DefaultBeta,
	}
}

// Counts returns the game results of the test's State.
func (config *Config) Counts() stats.Counts {
	return stats.Counts{
		Wins:   config.State.Wins,
		Losses: config.State.Losses,
		Draws:  config.State.Draws,
	}
}

// Validate checks that the configuration describes a test whose llr is well
// defined. The parameters are checked first and then the game results.
func (config *Config) Validate() error {
	if err := validate.Struct(config); err != nil {
		return formatValidationError(err)
	}

	if err := stats.ValidateCounts(config.Counts()); err != nil {
		return fmt.Errorf("wins %d, losses %d, draws %d: %w",
			config.State.Wins, config.State.Losses, config.State.Draws, err)
	}

	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by the name of the flag which sets them.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("flag"); name != "" {
			return name
		}
		return field.Name
	})

	_ = v.RegisterValidation("finite", validateFinite)

	return v
}

func validateFinite(fl validator.FieldLevel) bool {
	x := fl.Field().Float()
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// formatValidationError turns validator errors into a single readable error,
// one clause for each invalid field.
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	clauses := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		var constraint string
		switch e.Tag() {
		case "finite":
			constraint = "must be a finite number"
		case "gt":
			constraint = "must be greater than " + e.Param()
		case "lt":
			constraint = "must be less than " + e.Param()
		case "gte":
			constraint = "must not be less than " + e.Param()
		default:
			constraint = "is invalid"
		}

		clauses = append(clauses, fmt.Sprintf("--%s %v %s", e.Field(), e.Value(), constraint))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(clauses, "; "))
}
