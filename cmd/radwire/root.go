package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vitalvas/radwire/pkg/config"
	"github.com/vitalvas/radwire/pkg/dictionary"
	"github.com/vitalvas/radwire/pkg/inspect"
	"github.com/vitalvas/radwire/pkg/log"
	"github.com/vitalvas/radwire/pkg/packet"
)

// app carries the state shared by every subcommand once the configuration
// has been loaded.
type app struct {
	configFile string
	logLevel   string
	jsonOutput bool

	cfg    *config.Config
	logger *log.DefaultLogger
	dict   *dictionary.Dictionary
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "radwire",
		Short: "Decode RADIUS packets without interpreting them",
		Long: `radwire decodes the RADIUS wire format (RFC 2865) into its header and
attribute records. It reads hex strings, binary files, pcap/pcapng captures
or live UDP traffic and prints each packet with attribute names taken from
the built-in and user supplied dictionaries.

Authenticators are never verified and attribute values are never decrypted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "print packets as JSON lines")

	rootCmd.AddCommand(newDecodeCmd(a))
	rootCmd.AddCommand(newPcapCmd(a))
	rootCmd.AddCommand(newListenCmd(a))

	return rootCmd
}

func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.logger = log.New(cfg.Log)

	dict := dictionary.NewStandard()
	if len(cfg.Dictionary.Paths) > 0 || cfg.Dictionary.Dir != "" {
		source := &dictionary.FileSource{
			Paths: cfg.Dictionary.Paths,
			Dir:   cfg.Dictionary.Dir,
		}
		dict, err = source.Load(ctx, dict)
		if err != nil {
			return fmt.Errorf("failed to load dictionary: %w", err)
		}
	}
	a.dict = dict

	a.logger.WithFields(map[string]interface{}{
		"attributes": dict.Len(),
	}).Debug("dictionary ready")

	return nil
}

// printView writes one decoded packet in the selected output format
func (a *app) printView(w io.Writer, view *packet.PacketView) error {
	summary := inspect.Summarize(view, a.dict)
	if a.jsonOutput {
		return inspect.WriteJSON(w, summary)
	}
	return inspect.WriteText(w, summary)
}
