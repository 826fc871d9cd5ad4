package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ryancerium/scarp/internal/gen"
)

var (
	wroteColor = color.New(color.FgGreen, color.Bold)
	dryColor   = color.New(color.FgBlue, color.Bold)
	staleColor = color.New(color.FgYellow, color.Bold)
)

type config struct {
	Out     string `toml:"out"`
	Package string `toml:"package"`
	Import  string `toml:"import"`
}

type options struct {
	config
	configPath string
	dryRun     bool
	check      bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := options{config: config{
		Out:     ".",
		Package: "scarp",
		Import:  "github.com/ryancerium/scarp",
	}}

	cmd := &cobra.Command{
		Use:           "scarpgen [all|convert|primitive|string]...",
		Short:         "Generate the scarp tagged primitive sources",
		ValidArgs:     []string{"all", "convert", "primitive", "string"},
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.configPath != "" {
				if err := mergeConfig(cmd, opts.configPath, &opts.config); err != nil {
					return err
				}
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Out, "out", opts.Out, "package directory to write into")
	flags.StringVar(&opts.Package, "package", opts.Package, "package clause of generated files")
	flags.StringVar(&opts.Import, "import", opts.Import, "import path generated tests use for the package")
	flags.StringVar(&opts.configPath, "config", "", "TOML manifest with out, package and import keys")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "render and report without writing")
	flags.BoolVar(&opts.check, "check", false, "fail if any file on disk differs from its rendering")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every rendered file")
	cmd.MarkFlagsMutuallyExclusive("dry-run", "check")

	return cmd
}

// mergeConfig fills cfg from the manifest at path. Keys whose flag was set
// explicitly keep the flag value.
func mergeConfig(cmd *cobra.Command, path string, cfg *config) error {
	var file config
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return fmt.Errorf("%s: parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	set := func(key string, dst *string, v string) {
		if meta.IsDefined(key) && !cmd.Flags().Changed(key) {
			*dst = v
		}
	}
	set("out", &cfg.Out, file.Out)
	set("package", &cfg.Package, file.Package)
	set("import", &cfg.Import, file.Import)
	return nil
}

func run(stdout, stderr io.Writer, opts options, args []string) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	targets := make([]gen.Target, 0, len(args))
	for _, arg := range args {
		t, err := gen.ParseTarget(arg)
		if err != nil {
			return err
		}
		targets = append(targets, t)
	}

	g, err := gen.New(
		gen.WithPackage(opts.Package),
		gen.WithImportPath(opts.Import),
		gen.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	files, err := g.Render(targets...)
	if err != nil {
		return err
	}

	switch {
	case opts.check:
		if err := gen.Check(opts.Out, files); err != nil {
			staleColor.Fprintln(stdout, "stale")
			return err
		}
		wroteColor.Fprintf(stdout, "up to date: %d files\n", len(files))
	case opts.dryRun:
		for _, f := range files {
			dryColor.Fprint(stdout, "would write ")
			fmt.Fprintf(stdout, "%s (%d bytes)\n", f.Name, len(f.Content))
		}
	default:
		if err := gen.Write(opts.Out, files); err != nil {
			return err
		}
		for _, f := range files {
			wroteColor.Fprint(stdout, "wrote ")
			fmt.Fprintln(stdout, f.Name)
		}
	}
	return nil
}
