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

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"laptudirm.com/x/llr/pkg/sprt"
)

// Root returns the llr command. The llr report is written to the command's
// output, while logs go to logrus and never mix with it.
func Root() *cobra.Command {
	config := sprt.DefaultConfig()

	root := &cobra.Command{
		Use:   "llr",
		Short: "Calculate the log-likelihood ratio of an SPRT",
		Long: heredoc.Doc(`llr calculates the log-likelihood ratio of a sequential
			probability ratio test from the number of wins, losses, and
			draws played so far, and compares it to the test's stopping
			bounds to decide between the elo0 and elo1 hypotheses.

			The draw elo is fitted from the results, so at least one
			game of each kind is needed once any game has been played.

			The stopping bounds are derived from the error rates alpha
			(type I) and beta (type II). The test accepts elo1 once the
			llr reaches the upper bound, accepts elo0 once it reaches
			the lower bound, and continues otherwise.

			With --trace, the parsed configuration and the intermediate
			values of the calculation are logged to stderr. The report
			on stdout is not affected.`),
		Example: heredoc.Doc(`
			$ llr -w 300 -l 200 -d 500
			LLR: 2.05 (-2.94, 2.94)
			Continue Playing

			$ llr --wins 2000 --losses 1800 --draws 6200 -e0 0 -e1 5
			LLR: 3.63 (-2.94, 2.94)
			H1 Accepted`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.WithField("config", fmt.Sprintf("%+v", config)).Debug("Parsed sprt configuration")

			test, err := sprt.New(config)
			if err != nil {
				return err
			}

			result, err := test.Result()
			if err != nil {
				return err
			}

			return result.Report(cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().BoolP("trace", "t", false, "log intermediate values to stderr")
	bindFlags(root.Flags(), &config)

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\nRun '%s --help' for usage.", err, cmd.CommandPath())
	})

	return root
}

// bindFlags registers the test's flags on the given flag set, storing their
// values into config. The defaults are taken from config.
func bindFlags(flags *pflag.FlagSet, config *sprt.Config) {
	flags.SortFlags = false

	// game results
	flags.IntVarP(&config.State.Wins, "wins", "w", config.State.Wins, "number of wins")
	flags.IntVarP(&config.State.Losses, "losses", "l", config.State.Losses, "number of losses")
	flags.IntVarP(&config.State.Draws, "draws", "d", config.State.Draws, "number of draws")

	// hypotheses, also available as -e0 and -e1
	flags.Float64Var(&config.Elo0, "elo0", config.Elo0, "lower elo hypothesis (-e0)")
	flags.Float64Var(&config.Elo1, "elo1", config.Elo1, "upper elo hypothesis (-e1)")

	// error rates
	flags.Float64VarP(&config.Alpha, "alpha", "a", config.Alpha, "type I error probability")
	flags.Float64VarP(&config.Beta, "beta", "b", config.Beta, "type II error probability")
}
