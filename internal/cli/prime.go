package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fulgidus/mathutils/pkg/primality"
)

// primeResult is one checked number in json and yaml output.
type primeResult struct {
	N     int64 `json:"n" yaml:"n"`
	Prime bool  `json:"prime" yaml:"prime"`
}

func (r primeResult) String() string {
	return fmt.Sprintf("%d: %t", r.N, r.Prime)
}

func newPrimeCmd(a *app) *cobra.Command {
	var onlyPrimes bool

	cmd := &cobra.Command{
		Use:   "prime N...",
		Short: "Check whether integers are prime",
		Long: `Check each integer argument for primality by trial division.

Negative numbers must follow "--" so they are not read as flags.

Example:
  mathutils prime 5 10 13
  mathutils prime --only-primes 1 2 3 4 5
  mathutils prime -- -7 0 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPrime(cmd, args, onlyPrimes)
		},
	}

	cmd.Flags().BoolVar(&onlyPrimes, "only-primes", false, "print only the arguments that are prime")

	return cmd
}

func (a *app) runPrime(cmd *cobra.Command, args []string, onlyPrimes bool) error {
	numbers, err := parseIntegers(args)
	if err != nil {
		return err
	}

	if onlyPrimes {
		primes := primality.Filter(numbers)
		a.logger.Debug("Filtered primes",
			zap.Int("checked", len(numbers)),
			zap.Int("primes", len(primes)),
		)
		return render(cmd.OutOrStdout(), a.cfg.Output.Format, primes, func(w io.Writer) error {
			return writeLines(w, primes)
		})
	}

	results := checkAll(numbers)
	for _, r := range results {
		a.logger.Debug("Checked primality", zap.Int64("n", r.N), zap.Bool("prime", r.Prime))
	}

	return render(cmd.OutOrStdout(), a.cfg.Output.Format, results, func(w io.Writer) error {
		return writeLines(w, results)
	})
}

func checkAll(numbers []int64) []primeResult {
	results := make([]primeResult, 0, len(numbers))
	for _, n := range numbers {
		results = append(results, primeResult{N: n, Prime: primality.IsPrime(n)})
	}
	return results
}

func parseIntegers(args []string) ([]int64, error) {
	numbers := make([]int64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidInteger, arg)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
