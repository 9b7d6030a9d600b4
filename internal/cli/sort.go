package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/finite"
	"github.com/roach88/finite/internal/manifest"
)

// SortReport holds the sorted series in manifest order.
type SortReport struct {
	Manifest string         `json:"manifest"`
	Series   []SortedSeries `json:"series"`
}

// SortedSeries is one series with its values ordered.
type SortedSeries struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort <manifest>",
		Short: "Sort every series under the total order",
		Long: `Print each series of a manifest sorted under the total order

    -Inf < finite values < +Inf < NaN

Unlike primitive float comparison, this order ranks every value, so series
containing NaN sort deterministically: NaN always lands at the end.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runSort(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	m, err := manifest.Load(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	report := SortReport{Manifest: path, Series: make([]SortedSeries, 0, len(m.Series))}
	for _, series := range m.Series {
		values := make([]float64, 0, len(series.Values))
		for _, sample := range series.Values {
			v, err := sample.Parse()
			if err != nil {
				formatter.Error(manifest.ErrCodeBadManifest, err.Error(), nil)
				return WrapExitError(ExitCommandError, "malformed manifest", err)
			}
			values = append(values, v)
		}

		slices.SortFunc(values, finite.CompareRaw[float64])

		texts := make([]string, len(values))
		for i, v := range values {
			texts[i] = finite.New(v).String()
		}
		report.Series = append(report.Series, SortedSeries{Name: series.Name, Values: texts})
	}

	return outputSortReport(formatter, report)
}

func outputSortReport(f *OutputFormatter, report SortReport) error {
	if f.JSON() {
		return f.Success(report)
	}

	for _, s := range report.Series {
		fmt.Fprintf(f.Writer, "%s: %s\n", s.Name, strings.Join(s.Values, " "))
	}
	return nil
}
