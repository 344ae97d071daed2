package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/binodji2005/nistha-free-ai-image-generator/internal/domain"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/generator"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/providers/pollinations"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/share"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/storage"
)

var (
	genStyle   string
	genAspect  string
	genOut     string
	genBaseURL string
	genTimeout time.Duration
	genURLOnly bool
	genExample bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [prompt...]",
	Short: "Generate one image and save it",
	Example: `  imagegen generate "a red bicycle" --style sketch --aspect 16:9
  imagegen generate --example --out ./images`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&genStyle, "style", "s", domain.DefaultStyle, "image style")
	f.StringVarP(&genAspect, "aspect", "a", domain.DefaultAspectRatio, "aspect ratio (see `imagegen options`)")
	f.StringVarP(&genOut, "out", "o", ".", "output directory")
	f.StringVar(&genBaseURL, "base-url", envOr("IMAGE_SERVICE_BASE_URL", pollinations.DefaultBaseURL), "image service endpoint")
	f.DurationVar(&genTimeout, "timeout", 0, "request timeout, 0 for none")
	f.BoolVar(&genURLOnly, "url-only", false, "print the request url without fetching")
	f.BoolVar(&genExample, "example", false, "use a random example prompt")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")
	if genExample && strings.TrimSpace(prompt) == "" {
		prompt = domain.RandomExample()
	}

	logger := newLogger()
	client := pollinations.NewClient(pollinations.Options{
		BaseURL: genBaseURL,
		Timeout: genTimeout,
		Logger:  &logger,
	})
	images := storage.NewBlobs()
	gen := generator.New(client, images,
		generator.WithBaseURL(client.BaseURL()),
		generator.WithLogger(logger),
	)
	if err := gen.SelectStyle(genStyle); err != nil {
		return err
	}
	if err := gen.SelectAspectRatio(genAspect); err != nil {
		return err
	}

	if genURLOnly {
		trimmed := strings.TrimSpace(prompt)
		if trimmed == "" {
			return errors.New(domain.ValidationMessage)
		}
		snap := gen.Snapshot()
		fmt.Fprintln(cmd.OutOrStdout(), generator.BuildURL(client.BaseURL(), domain.GenerationRequest{
			Prompt:      trimmed,
			Style:       snap.Style,
			AspectRatio: snap.AspectRatio,
		}))
		return nil
	}

	logVerbose("%s", generator.LoadingMessage)
	snap, err := gen.Submit(cmd.Context(), prompt)
	if err != nil {
		return errors.New(snap.State.Message)
	}

	blob, err := images.Get(snap.State.Image)
	if err != nil {
		return fmt.Errorf("load result: %w", err)
	}
	store, err := storage.NewFileStore(genOut)
	if err != nil {
		return err
	}
	path, err := store.Save(cmd.Context(), share.DownloadFilename(time.Now()), blob.Data)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), share.DownloadFailed.Message)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, share.DownloadSucceeded.Message)
	fmt.Fprintf(out, "  Prompt:  %s\n", snap.State.Prompt)
	fmt.Fprintf(out, "  Style:   %s\n", snap.Style)
	fmt.Fprintf(out, "  Aspect:  %s\n", snap.AspectRatio)
	if blob.Width > 0 {
		fmt.Fprintf(out, "  Size:    %dx%d\n", blob.Width, blob.Height)
	}
	fmt.Fprintf(out, "  Saved:   %s\n", path)
	return nil
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[imagegen] "+format+"\n", args...)
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
