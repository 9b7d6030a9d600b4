package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/finite"
	"github.com/roach88/finite/internal/audit"
	"github.com/roach88/finite/internal/manifest"
)

// CheckReport is the result of validating one manifest.
type CheckReport struct {
	Manifest string        `json:"manifest"`
	RunToken string        `json:"run_token,omitempty"`
	Series   []SeriesCheck `json:"series"`
	Samples  int           `json:"samples"`
	Rejected int           `json:"rejected"`
}

// SeriesCheck is the per-series breakdown.
type SeriesCheck struct {
	Name    string        `json:"name"`
	Samples int           `json:"samples"`
	Clean   int           `json:"clean"`
	Rejects []SampleCheck `json:"rejects,omitempty"`
}

// SampleCheck is one rejected sample.
type SampleCheck struct {
	Index int    `json:"index"`
	Value string `json:"value"`
	Code  string `json:"code"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "check <manifest>",
		Short: "Validate every sample in a manifest",
		Long: `Run every sample of a manifest through the finiteness check.

Each sample either validates into a clean value or is rejected with the
sentinel that disqualified it (NAN, POS_INF, NEG_INF). Rejects never abort
the run; they are counted, reported, and optionally recorded to an audit
database. Exit code is 1 when any sample was rejected, 2 on command errors.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], dbPath, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "record rejects to this SQLite audit database")

	return cmd
}

func runCheck(opts *RootOptions, path, dbPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	m, err := manifest.Load(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Loaded %d series from %s", len(m.Series), path)

	report := CheckReport{Manifest: path, Series: make([]SeriesCheck, 0, len(m.Series))}
	for _, series := range m.Series {
		sc := SeriesCheck{Name: series.Name, Samples: len(series.Values)}
		for i, sample := range series.Values {
			v, err := sample.Parse()
			if err != nil {
				// Unparseable text is a manifest defect, not a reject.
				formatter.Error(manifest.ErrCodeBadManifest, err.Error(), nil)
				return WrapExitError(ExitCommandError, "malformed manifest", err)
			}

			if _, err := finite.Checked(v); err != nil {
				code := "INVALID"
				var ive *finite.InvalidValueError
				if errors.As(err, &ive) {
					code = string(ive.Code)
				}
				sc.Rejects = append(sc.Rejects, SampleCheck{
					Index: i,
					Value: finite.New(v).String(),
					Code:  code,
				})
				continue
			}
			sc.Clean++
		}
		report.Samples += sc.Samples
		report.Rejected += len(sc.Rejects)
		report.Series = append(report.Series, sc)
	}

	if dbPath != "" && report.Rejected > 0 {
		token, err := recordRejects(cmd.Context(), dbPath, path, report)
		if err != nil {
			formatter.Error("E104", err.Error(), nil)
			return WrapExitError(ExitCommandError, "recording rejects", err)
		}
		report.RunToken = token
		formatter.VerboseLog("Recorded %d rejects under run %s", report.Rejected, token)
	}

	if err := outputCheckReport(formatter, report); err != nil {
		return err
	}

	if report.Rejected > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d samples rejected", report.Rejected, report.Samples))
	}
	return nil
}

// recordRejects writes all rejects to the audit store under a fresh run
// token and returns the token.
func recordRejects(ctx context.Context, dbPath, manifestPath string, report CheckReport) (string, error) {
	store, err := audit.Open(dbPath)
	if err != nil {
		return "", err
	}
	defer store.Close()

	token := audit.NewRunToken()
	for _, series := range report.Series {
		for _, r := range series.Rejects {
			rec := audit.Reject{
				RunToken:  token,
				Manifest:  manifestPath,
				Series:    series.Name,
				SampleIdx: r.Index,
				Value:     r.Value,
				Code:      r.Code,
			}
			if err := store.WriteReject(ctx, rec); err != nil {
				return "", err
			}
		}
	}
	return token, nil
}

func outputCheckReport(f *OutputFormatter, report CheckReport) error {
	if f.JSON() {
		return f.Success(report)
	}

	for _, sc := range report.Series {
		fmt.Fprintf(f.Writer, "%s: %d samples, %d clean, %d rejected\n", sc.Name, sc.Samples, sc.Clean, len(sc.Rejects))
		for _, r := range sc.Rejects {
			fmt.Fprintf(f.Writer, "  [%d] %s (%s)\n", r.Index, r.Value, r.Code)
		}
	}
	if report.Rejected > 0 {
		fmt.Fprintf(f.Writer, "rejected %d of %d samples\n", report.Rejected, report.Samples)
	} else {
		fmt.Fprintf(f.Writer, "all %d samples clean\n", report.Samples)
	}
	return nil
}

// outputLoadError renders a manifest load failure and maps it to exit 2.
func outputLoadError(f *OutputFormatter, err error) error {
	var le *manifest.LoadError
	if errors.As(err, &le) {
		f.Error(le.Code, le.Message, nil)
		return WrapExitError(ExitCommandError, "loading manifest", err)
	}
	f.Error("E100", err.Error(), nil)
	return WrapExitError(ExitCommandError, "loading manifest", err)
}
