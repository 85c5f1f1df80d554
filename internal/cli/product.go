package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fulgidus/mathutils/pkg/combinatorics"
)

func newProductCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "product LIST LIST",
		Short: "Print the Cartesian product of two comma-separated lists",
		Long: `Print every ordered pair (a, b) with a from the first list and b from
the second, the first list varying slowest.

Elements that parse as integers are treated as numbers, anything else as
text. An empty argument is an empty list.

Example:
  mathutils product 1,2 3,4,5
  mathutils product -o json a,b,c 1,2`,
		Args: cobra.ExactArgs(2),
		RunE: a.runProduct,
	}
}

func (a *app) runProduct(cmd *cobra.Command, args []string) error {
	first := parseList(args[0])
	second := parseList(args[1])

	pairs := combinatorics.CartesianProduct(first, second)

	a.logger.Debug("Computed cartesian product",
		zap.Int("first_len", len(first)),
		zap.Int("second_len", len(second)),
		zap.Int("pairs", len(pairs)),
	)

	return render(cmd.OutOrStdout(), a.cfg.Output.Format, pairs, func(w io.Writer) error {
		return writeLines(w, pairs)
	})
}

// parseList splits a comma-separated argument into int64 and string elements.
func parseList(arg string) []any {
	if strings.TrimSpace(arg) == "" {
		return []any{}
	}

	parts := strings.Split(arg, ",")
	elems := make([]any, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if n, err := strconv.ParseInt(part, 10, 64); err == nil {
			elems = append(elems, n)
			continue
		}
		elems = append(elems, part)
	}
	return elems
}
