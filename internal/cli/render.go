package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lo48576/fbx-objects-depviz/pkg/cache"
	"github.com/lo48576/fbx-objects-depviz/pkg/errors"
	"github.com/lo48576/fbx-objects-depviz/pkg/render"
)

// renderCacheTTL bounds how long rendered artifacts are kept. Renders are
// pure functions of the DOT text, so the TTL only limits disk growth.
const renderCacheTTL = 30 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path, derived from input when empty
	format  string   // output format: "svg" or "png"
	filters []string // filter document paths, applied in order
	all     bool     // emit hidden nodes and edges too
	noCache bool     // disable the artifact cache
}

// newRenderCmd creates the render command for rasterizing a document or a
// ready DOT file.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: string(render.SVG)}

	cmd := &cobra.Command{
		Use:   "render [document.json|graph.dot]",
		Short: "Render an FBX object document to SVG or PNG",
		Long: `Render an FBX object document (or a ready DOT file) to an image.

JSON inputs go through the same pipeline as the dot command before
rendering. Inputs with a .dot extension are rendered as-is.

Rendered artifacts are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png")
	cmd.Flags().StringArrayVar(&opts.filters, "filter", nil, "filter document (TOML or JSON), repeatable")
	cmd.Flags().BoolVar(&opts.all, "all", false, "emit hidden nodes and edges too")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runRender builds the DOT text, renders it through graphviz with the
// artifact cache in front, and writes the image.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	format, err := render.ParseFormat(opts.format)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	dot, err := loadDOT(ctx, input, opts)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()

	data, cacheHit, err := renderCached(ctx, dot, format, opts.noCache)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	output := opts.output
	if output == "" {
		output = outputPath(input, string(format))
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	logger.Debug("rendered", "format", format, "bytes", len(data), "cached", cacheHit)
	printSuccess("Rendered %s", filepath.Base(input))
	printStats(0, 0, cacheHit)
	printFile(output)
	return nil
}

// loadDOT returns the DOT text for the input: .dot files are read verbatim,
// everything else goes through the document pipeline.
func loadDOT(ctx context.Context, input string, opts *renderOpts) (string, error) {
	if filepath.Ext(input) == ".dot" {
		if len(opts.filters) > 0 {
			printWarning("--filter is ignored for .dot inputs")
		}
		data, err := os.ReadFile(input)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read DOT %s", input)
		}
		return string(data), nil
	}

	dot, _, err := buildDOT(ctx, input, opts.filters, opts.all)
	return dot, err
}

// renderCached renders DOT text with a cache lookup in front. The second
// return reports whether the artifact came from the cache.
func renderCached(ctx context.Context, dot string, format render.Format, noCache bool) ([]byte, bool, error) {
	c := newCache(noCache)
	defer c.Close()

	keyer := cache.NewDefaultKeyer()
	key := keyer.RenderKey(cache.Hash([]byte(dot)), cache.RenderKeyOpts{Format: string(format)})

	if data, hit, err := c.Get(ctx, key); err == nil && hit {
		return data, true, nil
	}

	data, err := render.Render(ctx, dot, format)
	if err != nil {
		return nil, false, err
	}

	// Cache write failures only cost the next run a re-render.
	if err := c.Set(ctx, key, data, renderCacheTTL); err != nil {
		loggerFromContext(ctx).Debug("cache write failed", "err", err)
	}
	return data, false, nil
}

// outputPath derives the output file name from the input path and format,
// e.g. "scene.json" renders to "scene.svg".
func outputPath(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}
