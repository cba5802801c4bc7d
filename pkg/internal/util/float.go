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

package util

import (
	"math"
	"strconv"
	"strings"
)

// FormatSignificant formats x rounded to the given number of significant
// digits. Trailing zeros are dropped, but a number in fixed notation always
// keeps at least one digit after the decimal point, so 0 is "0.0" and 12 is
// "12.0". Scientific notation is used when the decimal exponent of the
// rounded number is below -4 or leaves no room for that digit, so 100 with
// three digits is "1e+02".
func FormatSignificant(x float64, digits int) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, +1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	if digits < 1 {
		digits = 1
	}

	// Rounding can carry into a new digit (9.996 -> 1.00e+01), so the
	// notation is picked using the exponent of the rounded number.
	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(x, 'e', digits-1, 64), "e")
	exp, _ := strconv.Atoi(exponent)

	if exp < -4 || exp >= digits-1 {
		return trimZeros(mantissa) + "e" + exponent
	}

	fixed := trimZeros(strconv.FormatFloat(x, 'f', digits-1-exp, 64))
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}

	return fixed
}

// trimZeros removes the trailing zeros after a decimal point, along with
// the point itself if nothing is left after it.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}

	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}
