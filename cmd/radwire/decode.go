package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitalvas/radwire/pkg/packet"
)

func newDecodeCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "decode [hex...]",
		Short: "Decode RADIUS packets from hex strings or a binary file",
		Long: `Decode one or more RADIUS packets.

Each argument is a hex string holding one or more concatenated packets.
Whitespace, colons and a leading 0x are ignored. With --file the raw bytes of
the file are decoded instead. Without arguments hex is read from stdin.

Examples:
  radwire decode 01670057...
  radwire decode --file request.bin --json
  xxd -p request.bin | radwire decode`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := decodeInputs(cmd.InOrStdin(), file, args)
			if err != nil {
				return err
			}
			return a.runDecode(cmd.OutOrStdout(), inputs)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "binary file holding raw packets")

	return cmd
}

func decodeInputs(stdin io.Reader, file string, args []string) ([][]byte, error) {
	if file != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("--file cannot be combined with hex arguments")
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		return [][]byte{data}, nil
	}

	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		args = []string{string(data)}
	}

	inputs := make([][]byte, 0, len(args))
	for i, arg := range args {
		data, err := parseHex(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		inputs = append(inputs, data)
	}

	return inputs, nil
}

// parseHex accepts hex with optional 0x prefix, whitespace and colon
// separators.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, s)

	if cleaned == "" {
		return nil, fmt.Errorf("no hex data")
	}

	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return data, nil
}

func (a *app) runDecode(w io.Writer, inputs [][]byte) error {
	failed := 0

	for i, data := range inputs {
		views, err := packet.DecodeAll(data)
		for _, view := range views {
			if err := a.printView(w, view); err != nil {
				return err
			}
		}

		if err != nil {
			failed++
			a.logger.WithFields(map[string]interface{}{
				"input": i + 1,
				"kind":  packet.KindOf(err).String(),
			}).Errorf("decode failed: %v", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed to decode", failed, len(inputs))
	}
	return nil
}
