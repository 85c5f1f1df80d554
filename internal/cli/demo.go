package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fulgidus/mathutils/pkg/combinatorics"
)

var (
	demoFirst  = []int64{1, 2}
	demoSecond = []int64{3, 4, 5}
	demoChecks = []int64{5, 10, 13}
)

type demoResult struct {
	Product []combinatorics.Pair[int64, int64] `json:"product" yaml:"product"`
	Primes  []primeResult                      `json:"primes" yaml:"primes"`
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the example product and primality checks",
		Long: `Print the product of [1, 2] and [3, 4, 5], then check 5, 10 and 13
for primality.`,
		Args: cobra.NoArgs,
		RunE: a.runDemo,
	}
}

func (a *app) runDemo(cmd *cobra.Command, args []string) error {
	result := demoResult{
		Product: combinatorics.CartesianProduct(demoFirst, demoSecond),
		Primes:  checkAll(demoChecks),
	}

	a.logger.Info("Running demo")

	return render(cmd.OutOrStdout(), a.cfg.Output.Format, result, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "cartesianProduct(%v, %v):\n", demoFirst, demoSecond); err != nil {
			return err
		}
		if err := writeLines(w, result.Product); err != nil {
			return err
		}
		for _, r := range result.Primes {
			if _, err := fmt.Fprintf(w, "isPrime(%d) = %t\n", r.N, r.Prime); err != nil {
				return err
			}
		}
		return nil
	})
}
