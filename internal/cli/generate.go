package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/meshkit/derivgen/compiler/gen"
	"github.com/meshkit/derivgen/compiler/scan"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Parse the differencing tables and emit the dispatch code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := LoadConfig(path, cmd.Flags())
			if err != nil {
				return err
			}
			setupLogging(cfg.Verbose)
			if cfg.Watch {
				return watch(cmd.Context(), cfg)
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().String("input", "tables_cleaned.cxx", "table source file")
	cmd.Flags().String("target", "generated", "output directory")
	cmd.Flags().String("package", gen.DefaultPackage, "package name of the emitted files")
	cmd.Flags().String("header", "", "custom header comment for the emitted files")
	cmd.Flags().Bool("manifest", true, "write the stencil request manifest")
	cmd.Flags().Bool("strict", false, "verify table homogeneity before generating")
	cmd.Flags().Bool("watch", false, "watch the input file and regenerate on change")
	return cmd
}

// run executes one full scan -> model -> emit pass.
func run(ctx context.Context, cfg *Config) error {
	start := time.Now()

	f, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	blocks, err := scan.Scan(f)
	if err != nil {
		return err
	}
	reg, err := gen.BuildRegistry(blocks)
	if err != nil {
		return err
	}

	opts := []gen.Option{
		gen.WithTarget(cfg.Target),
		gen.WithPackage(cfg.Package),
		gen.WithFields(cfg.Fields...),
		gen.WithManifest(cfg.Manifest),
		gen.WithStrict(cfg.Strict),
	}
	if cfg.Header != "" {
		opts = append(opts, gen.WithHeader(cfg.Header))
	}
	g, err := gen.NewGenerator(reg, opts...)
	if err != nil {
		return err
	}
	if err := g.Generate(ctx); err != nil {
		return err
	}

	slog.Info("generation complete",
		"tables", len(reg.Tables()),
		"requests", len(g.Requests()),
		"target", cfg.Target,
		"elapsed", time.Since(start))
	return nil
}

// watch regenerates whenever the input file changes. A failing run is
// logged and the loop keeps going; only watcher failures or context
// cancellation end it.
func watch(ctx context.Context, cfg *Config) error {
	if err := run(ctx, cfg); err != nil {
		slog.Error("generation failed", "error", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory, not the file: editors replace files on save,
	// which silently drops a watch placed on the file itself.
	if err := w.Add(filepath.Dir(cfg.Input)); err != nil {
		return err
	}
	slog.Info("watching for changes", "input", cfg.Input)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(cfg.Input) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			slog.Info("input changed, regenerating", "event", ev.Op.String())
			if err := run(ctx, cfg); err != nil {
				slog.Error("generation failed", "error", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "error", err)
		}
	}
}
