package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Sheesh1006/service-backend/cli/pkg/notesfile"
	"github.com/Sheesh1006/service-backend/cli/pkg/output"
	"github.com/Sheesh1006/service-backend/relay/pkg/render"
)

var (
	renderInput  string
	renderImages []string
	renderOut    string
	renderFont   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render notes from a YAML file",
	Long: `Lay out timestamps, summary segments and images from a notes file
into the same PDF the relay produces, without contacting any service.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		format, err := output.GetFormatFromCmd(cmd)
		if err != nil {
			return err
		}
		dst, err := openOutput(renderOut)
		if err != nil {
			return err
		}

		notes, err := notesfile.Load(renderInput)
		if err != nil {
			return err
		}
		doc, err := notes.Document(renderImages...)
		if err != nil {
			return err
		}

		font := renderFont
		if font == "" {
			font = cfg.Render.FontPath
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		renderer, err := render.NewRenderer(font, logger)
		if err != nil {
			return fmt.Errorf("failed to load font: %w", err)
		}

		start := time.Now()
		pdf, err := renderer.Render(doc)
		if err != nil {
			return fmt.Errorf("failed to render notes: %w", err)
		}
		if err := writeOutput(dst, renderOut, pdf); err != nil {
			return err
		}

		return report(format, output.Result{
			Path:       renderOut,
			Bytes:      len(pdf),
			Segments:   len(doc.Summary),
			Timestamps: len(doc.Timestamps),
			Images:     len(doc.Images),
			Elapsed:    time.Since(start),
		})
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "notes.yaml", "notes file")
	renderCmd.Flags().StringArrayVar(&renderImages, "image", nil, "extra image to append (repeatable)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "notes.pdf", "output PDF path, - for stdout")
	renderCmd.Flags().StringVar(&renderFont, "font", "", "TrueType font with Cyrillic coverage")
	output.AddFormatFlag(renderCmd)
}
