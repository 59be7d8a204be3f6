package cli

import (
	"fmt"
	"os"
	"stegno/internal/logging"
	"stegno/pkg/carrier"
	"stegno/pkg/config"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

const (
	defaultOutputFile = "out.bmp"
)

func readCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "read <input>",
		Short:   "Read the message hidden in a carrier file",
		Example: "stegno read out.bmp",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := ExtractMessageFromFile(args[0], a.carrierConfig, a.logger)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), message)
			return err
		},
	}
}

type writeOpts struct {
	message    string
	outputFile string
}

func writeCommand(a *app) *cobra.Command {
	opts := writeOpts{}

	writeCmd := &cobra.Command{
		Use:     "write <input>",
		Short:   "Hide a message in a carrier file",
		Example: "stegno write image.bmp --message \"meet at dawn\" --output out.bmp",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := NewSpinner(cmd.ErrOrStderr())
			s.Prefix = "Hiding message "
			s.Start()
			err := InjectMessageIntoFile(args[0], opts.outputFile, opts.message, a.carrierConfig, a.logger)
			s.Stop()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with a %s message hidden in it\n",
				opts.outputFile, humanize.Bytes(uint64(len(opts.message))))
			return err
		},
	}

	writeCmd.Flags().StringVarP(&opts.message, "message", "m", "", "Message to hide. Must not contain the sentinel byte")
	writeCmd.Flags().StringVarP(&opts.outputFile, "output", "o", defaultOutputFile, "Path for the carrier with the hidden message. The input is not touched")

	MarkFlagsRequired(writeCmd, "message")

	return writeCmd
}

func capacityCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "capacity <input>",
		Short:   "Show how long a message a carrier file can hold",
		Example: "stegno capacity image.bmp",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			carrierBytes, err := readCarrier(args[0])
			if err != nil {
				return err
			}
			capacity := carrier.Capacity(len(carrierBytes))
			a.logger.Debug("Computed carrier capacity", "carrier", args[0], "carrier_size", len(carrierBytes), "capacity", capacity)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s can hide up to %s (%d bytes) in %s of carrier\n", args[0],
				humanize.Bytes(uint64(capacity)), capacity, humanize.Bytes(uint64(len(carrierBytes))))
			return err
		},
	}
}

func InjectMessageIntoFile(inputPath, outputPath, message string, cConfig config.CarrierConfig, logger *logging.Logger) error {
	carrierBytes, err := readCarrier(inputPath)
	if err != nil {
		return err
	}

	encoder, err := carrier.NewEncoder(cConfig)
	if err != nil {
		return err
	}

	injected, err := encoder.Inject(carrierBytes, message)
	if err != nil {
		return fmt.Errorf("hiding message in %s: %w", inputPath, err)
	}

	if err = writeCarrier(outputPath, injected); err != nil {
		return err
	}

	stats := encoder.Stats()
	logger.Debug("Message injected", "input", inputPath, "output", outputPath, "bits_written", stats.BitsWritten,
		"carrier_size", humanize.Bytes(uint64(stats.CarrierSize)), "injection", stats.Injection.String())
	return nil
}

func ExtractMessageFromFile(inputPath string, cConfig config.CarrierConfig, logger *logging.Logger) (string, error) {
	carrierBytes, err := readCarrier(inputPath)
	if err != nil {
		return "", err
	}

	decoder, err := carrier.NewDecoder(cConfig)
	if err != nil {
		return "", err
	}

	message, err := decoder.Extract(carrierBytes)
	if err != nil {
		return "", fmt.Errorf("reading message from %s: %w", inputPath, err)
	}

	stats := decoder.Stats()
	logger.Debug("Message extracted", "input", inputPath, "bytes_scanned", stats.BytesScanned,
		"carrier_size", humanize.Bytes(uint64(stats.CarrierSize)), "extraction", stats.Extraction.String())
	return message, nil
}

// Carriers are read and written whole; the codec works on complete buffers.
func readCarrier(path string) ([]byte, error) {
	carrierBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading carrier: %w", err)
	}
	return carrierBytes, nil
}

func writeCarrier(path string, carrierBytes []byte) error {
	if err := os.WriteFile(path, carrierBytes, 0664); err != nil {
		return fmt.Errorf("writing carrier: %w", err)
	}
	return nil
}
