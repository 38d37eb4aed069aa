package commands

import (
	"github.com/spf13/cobra"

	"github.com/haivivi/speechprint/pkg/fingerprint"
)

var fbeOpts bandEnergyFlags

var fbeCmd = &cobra.Command{
	Use:   "fbe <file.wav>...",
	Short: "Compute band-energy fingerprints",
	Long: `Compute band-energy fingerprints of WAV files.

Each frame is projected onto a Bark-spaced filterbank; the sign of a
time/band second difference of the log energies gives one bit per band
pair. The output has one row per frame and bands-1 columns.

Examples:
  speechprint fbe speech.wav
  speechprint fbe --bands 21 --window-type hamming --display speech.wav
  speechprint fbe -f params.yaml --format raw a.wav b.wav`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveProfile()
		if err != nil {
			return err
		}
		cfg, err := fbeOpts.resolve(cmd.Flags(), p)
		if err != nil {
			return err
		}
		rate, err := fbeOpts.targetRate(cmd.Flags(), p)
		if err != nil {
			return err
		}

		reports, err := job{
			algorithm: "fbe",
			rate:      rate,
			jobs:      fbeOpts.jobs,
			extract: func(samples []float64, sampleRate int) (*fingerprint.BinaryMatrix, error) {
				return fingerprint.ExtractBandEnergy(samples, sampleRate, cfg)
			},
		}.run(cmd.Context(), args)
		if err != nil {
			return err
		}
		return writeReports(reports, cfg.Display)
	},
}

func init() {
	fbeOpts.register(fbeCmd.Flags())
	rootCmd.AddCommand(fbeCmd)
}
