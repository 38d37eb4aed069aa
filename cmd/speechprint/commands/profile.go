package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/speechprint/pkg/cli"
	"github.com/haivivi/speechprint/pkg/fingerprint"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage parameter profiles",
	Long: `Manage named parameter profiles.

Profiles are stored in ~/.speechprint/config.yaml. The current profile is
used by fbe and landmark unless -p names another one.`,
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or replace a profile",
	Long: `Add or replace a profile.

The profile starts from the built-in defaults. A file given with -f may
override any part of it:

  description: narrowband telephone speech
  sample_rate: 8000
  fbe:
    n_bands: 21
    high_freq: 3400
  landmark:
    height: 32

Examples:
  speechprint profile add default
  speechprint profile add narrow -f narrow.yaml --rate 8000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		fbe := fingerprint.DefaultBandEnergyConfig()
		lm := fingerprint.DefaultLandmarkConfig()
		p := &cli.Profile{BandEnergy: &fbe, Landmark: &lm}
		if inputFile != "" {
			if err := cli.LoadRequest(inputFile, p); err != nil {
				return fmt.Errorf("load profile: %w", err)
			}
		}
		if cmd.Flags().Changed("description") {
			p.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("rate") {
			p.SampleRate, _ = cmd.Flags().GetInt("rate")
		}
		if p.SampleRate < 0 {
			return fmt.Errorf("sample_rate must be >= 0, got %d", p.SampleRate)
		}

		cfg, err := getConfig()
		if err != nil {
			return err
		}
		if err := cfg.AddProfile(name, p); err != nil {
			return err
		}
		cli.PrintSuccess("Profile '%s' saved", name)
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		if err := cfg.DeleteProfile(args[0]); err != nil {
			return err
		}
		cli.PrintSuccess("Profile '%s' deleted", args[0])
		return nil
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the current profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		if err := cfg.UseProfile(args[0]); err != nil {
			return err
		}
		cli.PrintSuccess("Switched to profile '%s'", args[0])
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		names := cfg.ListProfiles()
		if len(names) == 0 {
			cli.PrintInfo("No profiles configured")
			return nil
		}
		for _, name := range names {
			marker := "  "
			if name == cfg.CurrentProfile {
				marker = "* "
			}
			fmt.Printf("%s%s\n", marker, name)
		}
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a profile (default: the current one)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		name := profileName
		if len(args) == 1 {
			name = args[0]
		}
		p, err := cfg.ResolveProfile(name)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("no current profile set")
		}
		return outputResult(p)
	},
}

func init() {
	profileAddCmd.Flags().String("description", "", "profile description")
	profileAddCmd.Flags().Int("rate", 0, "resample input to this rate (0 keeps the file's rate)")

	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
