// Package main is the entry point for the alankar CLI
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/james-see/alankar/pkg/alankar"
	"github.com/james-see/alankar/pkg/api"
	"github.com/james-see/alankar/pkg/config"
	"github.com/james-see/alankar/pkg/export"
	"github.com/james-see/alankar/pkg/tui"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfg = loadConfig()

	scaleText  string
	presetName string
	direction  string
	shortLoop  bool
	outputFile string
	tonic      uint8
	tempo      float64
	serverPort int
)

func loadConfig() *config.Config {
	_ = godotenv.Load()
	return config.Load()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "alankar",
	Short: "Generate alankar exercise sequences for a raag scale",
	Long: `alankar shifts a seed phrase one scale-step at a time through a scale
and prints every step, ascending and descending.

Notation: S R G M P D N are the middle octave, lowercase letters the octave
below and an apostrophe after an uppercase letter (S') the octave above.
Any other character is carried through unchanged.

Examples:
  alankar generate SGMDN
  alankar generate "SRG" --preset bhupali -d up
  alankar generate SG -s SRGMPDN --short-loop
  alankar midi SGMDN -o sgmdn.mid
  alankar presets
  alankar tui
  alankar serve --port 8080`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
}

var generateCmd = &cobra.Command{
	Use:   "generate <pattern>",
	Short: "Print the alankar for a seed pattern",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

var midiCmd = &cobra.Command{
	Use:   "midi <pattern>",
	Short: "Write the alankar for a seed pattern as a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE:  runMIDI,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in raag presets",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	// Generation flags shared by generate and midi
	for _, cmd := range []*cobra.Command{generateCmd, midiCmd} {
		cmd.Flags().StringVarP(&scaleText, "scale", "s", cfg.Scale, "Scale letters for the middle octave")
		cmd.Flags().StringVarP(&presetName, "preset", "p", "", "Raag preset name (overrides --scale)")
		cmd.Flags().StringVarP(&direction, "direction", "d", "both", "Direction: up, down or both")
		cmd.Flags().BoolVarP(&shortLoop, "short-loop", "l", false, "Stop when the last note reaches S instead of after a full octave")
	}

	// midi command
	midiCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .mid file path (required)")
	midiCmd.Flags().Uint8Var(&tonic, "tonic", cfg.Tonic, "MIDI note number of middle S")
	midiCmd.Flags().Float64Var(&tempo, "tempo", cfg.Tempo, "Tempo in BPM")
	_ = midiCmd.MarkFlagRequired("output")

	// serve command
	serveCmd.Flags().IntVarP(&serverPort, "port", "P", cfg.Port, "Server port")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(midiCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func buildFromFlags(pattern string) (*alankar.Result, error) {
	mode, err := alankar.ParseMode(direction)
	if err != nil {
		return nil, err
	}
	return alankar.Build(alankar.Options{
		Scale:     scaleText,
		Preset:    presetName,
		Pattern:   pattern,
		Mode:      mode,
		ShortLoop: shortLoop,
	})
}

func runGenerate(cmd *cobra.Command, args []string) error {
	res, err := buildFromFlags(args[0])
	if err != nil {
		return err
	}
	return alankar.Render(cmd.OutOrStdout(), res)
}

func runMIDI(cmd *cobra.Command, args []string) error {
	res, err := buildFromFlags(args[0])
	if err != nil {
		return err
	}

	exporter := export.NewMIDIExporter(tonic, tempo)
	if err := exporter.WriteMIDIFile(res, outputFile); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s -> %s\n", res.Seed.String(), outputFile)
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	for _, p := range alankar.Presets() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-8s %s\n", p.Name, p.Scale, p.Description)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run(cfg.Scale)
}

func runServe(cmd *cobra.Command, args []string) error {
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
			Release:     "alankar@" + version,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize Sentry: %v\n", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	serverCfg := *cfg
	serverCfg.Port = serverPort
	return api.StartServer(&serverCfg)
}
