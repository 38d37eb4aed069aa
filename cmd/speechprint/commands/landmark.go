package commands

import (
	"github.com/spf13/cobra"

	"github.com/haivivi/speechprint/pkg/fingerprint"
)

var landmarkOpts landmarkFlags

var landmarkCmd = &cobra.Command{
	Use:   "landmark <file.wav>...",
	Short: "Compute landmark fingerprints",
	Long: `Compute landmark fingerprints of WAV files.

The magnitude spectrogram is cut into height×width tiles and the maximum of
each tile is marked. The output has fft-points/2+1 rows (frequency bins)
and one column per frame.

Examples:
  speechprint landmark speech.wav
  speechprint landmark --height 32 --width 16 --format json speech.wav`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveProfile()
		if err != nil {
			return err
		}
		cfg, err := landmarkOpts.resolve(cmd.Flags(), p)
		if err != nil {
			return err
		}
		rate, err := landmarkOpts.targetRate(cmd.Flags(), p)
		if err != nil {
			return err
		}

		reports, err := job{
			algorithm: "landmark",
			rate:      rate,
			jobs:      landmarkOpts.jobs,
			extract: func(samples []float64, sampleRate int) (*fingerprint.BinaryMatrix, error) {
				return fingerprint.ExtractLandmarks(samples, sampleRate, cfg)
			},
		}.run(cmd.Context(), args)
		if err != nil {
			return err
		}
		return writeReports(reports, cfg.Display)
	},
}

func init() {
	landmarkOpts.register(landmarkCmd.Flags())
	rootCmd.AddCommand(landmarkCmd)
}
