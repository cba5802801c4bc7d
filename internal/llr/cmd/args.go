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

package cmd

import "strings"

// pflag only supports single character shorthands, so the two character
// ones are rewritten into their long forms before parsing.
var shorthands = map[string]string{
	"-e0": "--elo0",
	"-e1": "--elo1",
}

// ExpandShorthands replaces the multi-character shorthand flags in args with
// their long names. Both the "-e0 5" and the "-e0=5" forms are supported.
// Arguments after a "--" terminator are left as they are.
func ExpandShorthands(args []string) []string {
	expanded := make([]string, 0, len(args))

	for i, arg := range args {
		if arg == "--" {
			return append(expanded, args[i:]...)
		}

		name, value, hasValue := strings.Cut(arg, "=")
		if long, found := shorthands[name]; found {
			arg = long
			if hasValue {
				arg += "=" + value
			}
		}

		expanded = append(expanded, arg)
	}

	return expanded
}
