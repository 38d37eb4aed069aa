package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"golang.org/x/sync/errgroup"

	"github.com/haivivi/speechprint/pkg/audio/resampler"
	"github.com/haivivi/speechprint/pkg/audio/wavfile"
	"github.com/haivivi/speechprint/pkg/cli"
	"github.com/haivivi/speechprint/pkg/fingerprint"
)

// Report is the output record for one input file.
type Report struct {
	File       string   `json:"file" yaml:"file"`
	Algorithm  string   `json:"algorithm" yaml:"algorithm"`
	SampleRate int      `json:"sample_rate" yaml:"sample_rate"`
	Duration   float64  `json:"duration" yaml:"duration"`
	Rows       int      `json:"rows" yaml:"rows"`
	Cols       int      `json:"cols" yaml:"cols"`
	Ones       int      `json:"ones" yaml:"ones"`
	Bits       []string `json:"bits" yaml:"bits"`

	matrix *fingerprint.BinaryMatrix
}

// extractor computes a fingerprint of a mono waveform.
type extractor func(samples []float64, sampleRate int) (*fingerprint.BinaryMatrix, error)

// job describes one extraction run over a list of files.
type job struct {
	algorithm string
	rate      int // resample target, 0 keeps the file's rate
	jobs      int
	extract   extractor
}

// run fingerprints every file with at most j.jobs files in flight. Reports
// keep the order of files. The first failure cancels the remaining work.
func (j job) run(ctx context.Context, files []string) ([]*Report, error) {
	reports := make([]*Report, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(j.jobs, 1))
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := j.one(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (j job) one(path string) (*Report, error) {
	a, err := wavfile.Load(path)
	if err != nil {
		return nil, err
	}
	samples, rate := a.Samples, a.SampleRate
	if j.rate > 0 && j.rate != rate {
		if samples, err = resampler.Resample(samples, rate, j.rate); err != nil {
			return nil, err
		}
		slog.Debug("resampled", "file", path, "from", rate, "to", j.rate)
		rate = j.rate
	}

	m, err := j.extract(samples, rate)
	if err != nil {
		return nil, err
	}
	rows, cols := m.Dims()
	slog.Debug("fingerprint", "file", path, "algorithm", j.algorithm, "rows", rows, "cols", cols)
	return &Report{
		File:       path,
		Algorithm:  j.algorithm,
		SampleRate: rate,
		Duration:   a.Duration(),
		Rows:       rows,
		Cols:       cols,
		Ones:       m.Ones(),
		Bits:       m.Strings(),
		matrix:     m,
	}, nil
}

// writeReports renders reports to stderr when display is set, then writes
// them in the --format format. A single file yields a single report.
func writeReports(reports []*Report, display bool) error {
	if display {
		displayReports(reports)
	}

	if formatOutput == string(cli.FormatRaw) {
		var sb strings.Builder
		for _, r := range reports {
			if len(reports) > 1 {
				fmt.Fprintf(&sb, "# %s\n", r.File)
			}
			for _, row := range r.Bits {
				sb.WriteString(row)
				sb.WriteByte('\n')
			}
		}
		return outputResult(sb.String())
	}
	if len(reports) == 1 {
		return outputResult(reports[0])
	}
	return outputResult(reports)
}

func displayReports(reports []*Report) {
	width := 120
	if w, _, err := term.GetSize(os.Stderr.Fd()); err == nil && w > 0 {
		width = w
	}
	styles := cli.NewStyles(cli.DefaultTheme)
	for _, r := range reports {
		status := r.Algorithm + " " + cli.FormatDuration(r.Duration)
		fmt.Fprintln(os.Stderr, cli.RenderMatrix(r.matrix, r.File, status, width, styles))
	}
}
