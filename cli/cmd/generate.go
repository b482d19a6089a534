package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Sheesh1006/service-backend/cli/pkg/output"
	coreauth "github.com/Sheesh1006/service-backend/core/auth"
	"github.com/Sheesh1006/service-backend/core/notesclient"
	"github.com/Sheesh1006/service-backend/core/transport"
)

var (
	generateVideo        string
	generatePresentation string
	generateOut          string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate notes from a lecture video",
	Long: `Upload a lecture video and an optional presentation to the relay and
write the resulting PDF. Use --out - to write the PDF to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		format, err := output.GetFormatFromCmd(cmd)
		if err != nil {
			return err
		}
		fragment, err := cfg.Relay.FragmentSize()
		if err != nil {
			return err
		}

		dst, err := openOutput(generateOut)
		if err != nil {
			return err
		}

		video, err := os.Open(generateVideo)
		if err != nil {
			return fmt.Errorf("failed to open video: %w", err)
		}
		defer video.Close()

		var presentation io.Reader
		if generatePresentation != "" {
			f, err := os.Open(generatePresentation)
			if err != nil {
				return fmt.Errorf("failed to open presentation: %w", err)
			}
			defer f.Close()
			presentation = f
		}

		opts := notesclient.Options{FragmentBytes: fragment}
		if cfg.Auth.Token != "" {
			opts.Token = coreauth.StaticToken(cfg.Auth.Token)
		}
		client := notesclient.New(transport.NewH2CClient(), cfg.Relay.Endpoint, opts)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if cfg.Relay.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Relay.Timeout)
			defer cancel()
		}

		start := time.Now()
		doc, err := client.Generate(ctx, video, presentation)
		if err != nil {
			return fmt.Errorf("failed to generate notes: %w", err)
		}

		if err := writeOutput(dst, generateOut, doc); err != nil {
			return err
		}

		return report(format, output.Result{
			Path:    generateOut,
			Bytes:   len(doc),
			Elapsed: time.Since(start),
		})
	},
}

// openOutput checks the destination before any work is done. Binary output
// is never written to a terminal.
func openOutput(path string) (io.Writer, error) {
	if path == "" {
		return nil, errors.New("--out must not be empty")
	}
	if path == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("refusing to write PDF to a terminal, redirect stdout or use --out")
		}
		return os.Stdout, nil
	}
	return nil, nil
}

func writeOutput(dst io.Writer, path string, doc []byte) error {
	if dst != nil {
		_, err := dst.Write(doc)
		return err
	}
	if err := os.WriteFile(path, doc, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// report prints the result to stdout, or to stderr when stdout carries the
// document.
func report(format output.Format, result output.Result) error {
	formatter := output.New(format)
	if result.Path == "-" {
		formatter.SetWriter(os.Stderr)
	}
	return formatter.Output(result)
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateVideo, "video", "", "lecture video file")
	generateCmd.Flags().StringVar(&generatePresentation, "presentation", "", "presentation file (optional)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "notes.pdf", "output PDF path, - for stdout")
	generateCmd.MarkFlagRequired("video")
	output.AddFormatFlag(generateCmd)
}
