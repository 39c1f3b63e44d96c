// Command imagedit sends a prompt and a source image to the Gemini image
// API, streams the response, and writes returned images to disk.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mhpenta/imagedit"
	"github.com/mhpenta/imagedit/provider/gemini"
)

var (
	modelFlag string
	sizeFlag  string
	verbose   bool
	quiet     bool

	rootCmd = &cobra.Command{
		Use:   "imagedit \"<prompt>\" <image-path> [output-path]",
		Short: "Edit images with Gemini",
		Long: `imagedit sends a text prompt and a source image to the Gemini image API,
streams the response, and writes any returned images to disk.

The output path may be a file (an extension is appended if missing) or an
existing directory. When omitted, images are written next to the source
image with auto-generated names.

Requires the ` + imagedit.EnvAPIKey + ` environment variable (a local .env
file is also read).`,
		Example: `  imagedit "replace the background with white" shirt.png
  imagedit "watercolor style" photo.jpg out/result.png
  imagedit "make it 3D" render.png --model pro --size 2K`,
		Args:          cobra.RangeArgs(2, 3),
		SilenceErrors: true,
		RunE:          run,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&modelFlag, "model", "m", "flash", "model: flash, pro, or a full model name")
	rootCmd.Flags().StringVarP(&sizeFlag, "size", "s", "1K", "image size: 1K, 2K, 4K (2K/4K require pro)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress commentary, print only saved paths")
}

func main() {
	// Load .env if present; a missing file is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Argument-count failures above still print usage; errors from here on
	// are runtime failures and should not.
	cmd.SilenceUsage = true

	prompt := args[0]
	imagePath := args[1]
	outputPath := ""
	if len(args) > 2 {
		outputPath = args[2]
	}

	// Preconditions, checked before any client construction or network
	// activity.
	if _, err := os.Stat(imagePath); err != nil {
		return fmt.Errorf("image file not found: %s", imagePath)
	}
	apiKey, err := imagedit.APIKeyFromEnv()
	if err != nil {
		return fmt.Errorf("%w\nSet it with: export %s=your_api_key_here", err, imagedit.EnvAPIKey)
	}

	model, info, err := resolveModel(modelFlag)
	if err != nil {
		return err
	}
	size, err := resolveSize(sizeFlag, info)
	if err != nil {
		return err
	}

	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	ctx := cmd.Context()
	provider, err := gemini.New(ctx, apiKey)
	if err != nil {
		return err
	}
	editor := imagedit.NewEditor(provider,
		imagedit.WithLogger(newLogger(verbose)),
		imagedit.WithDefaultModel(model),
	)
	defer editor.Close()

	config := imagedit.DefaultConfig()
	config.Size = size

	input := imagedit.InputImage{
		Data:     imageData,
		MIMEType: imagedit.MIMETypeForPath(imagePath),
	}

	saved := color.New(color.FgGreen)
	consumer := &imagedit.Consumer{
		Plan: imagedit.NewOutputPlan(imagePath, outputPath),
		Text: commentaryWriter(),
		OnSave: func(path string, bytes int) {
			if quiet {
				fmt.Println(path)
				return
			}
			saved.Printf("File saved to: %s (%d bytes)\n", path, bytes)
		},
	}

	if !quiet {
		fmt.Println("Generating image with Gemini, please wait...")
	}

	written, err := consumer.Run(editor.EditStream(ctx, input, prompt, config))
	if err != nil {
		return err
	}

	if quiet {
		return nil
	}
	if len(written) == 0 {
		color.New(color.FgYellow).Println("No image data returned.")
		return nil
	}
	fmt.Println("\nDone! All generated images have been saved.")
	return nil
}

// resolveModel maps an alias (flash, pro) or API model name to a model and
// its info. Unlisted full model names pass through without size constraints.
func resolveModel(name string) (imagedit.Model, imagedit.ModelInfo, error) {
	for _, info := range []imagedit.ModelInfo{gemini.FlashImageInfo, gemini.ProImageInfo} {
		if name == info.Name || name == info.APIModelName {
			return imagedit.Model(info.APIModelName), info, nil
		}
	}
	if strings.Contains(name, "-") {
		return imagedit.Model(name), imagedit.ModelInfo{APIModelName: name}, nil
	}
	return "", imagedit.ModelInfo{}, fmt.Errorf("unknown model %q (valid: flash, pro, or a full model name)", name)
}

func resolveSize(name string, info imagedit.ModelInfo) (imagedit.ImageSize, error) {
	size := imagedit.ImageSize(name)
	switch size {
	case imagedit.ImageSize1K, imagedit.ImageSize2K, imagedit.ImageSize4K:
	default:
		return "", fmt.Errorf("invalid size %q (valid: 1K, 2K, 4K)", name)
	}
	if len(info.SupportedSizes) > 0 && !info.SupportsSize(size) {
		return "", fmt.Errorf("size %s is not supported by %s", size, info.APIModelName)
	}
	return size, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		TimeFormat: time.Kitchen,
		Level:      level,
	})
	return slog.New(handler)
}

func commentaryWriter() io.Writer {
	if quiet {
		return io.Discard
	}
	return os.Stdout
}
