package extension

import (
	"context"
	"os"
	"path/filepath"

	"go.scnd.dev/open/sdkgen/command/sdkgen/app"
	"go.scnd.dev/open/sdkgen/command/sdkgen/index"
	"go.scnd.dev/open/sdkgen/package/span"
	"go.scnd.dev/open/sdkgen/package/telemetry"
	"go.uber.org/fx"
)

type Command struct {
	Beta bool   `help:"Include provisional extensions, which may change between SDK versions." short:"b"`
	Spec string `arg:"" optional:"" help:"Registry location: file path, http(s) URL or s3://bucket/key."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app index.App, command *Command) error {
	// * load configuration
	if err := app.Load(); err != nil {
		return err
	}

	// * wire components
	var err error
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(
			func() index.App { return app },
			func() *Command { return command },
			func(app index.App) (*telemetry.Telemetry, error) { return telemetry.New(app.Config()) },
			NewLoader,
			NewGenerator,
		),
		fx.Invoke(func(generator *Generator, telemetry *telemetry.Telemetry) {
			err = generator.Generate(context.Background())
			if shutdownErr := telemetry.Shutdown(context.Background()); shutdownErr != nil {
				app.Logger().Warn("unable to flush telemetry", "err", shutdownErr)
			}
		}),
	)
	if fxErr := fxApp.Err(); fxErr != nil {
		return span.NewError(nil, "unable to initialize extension generator", fxErr)
	}

	return err
}

type Generator struct {
	App       index.App
	Command   *Command
	Loader    *Loader
	Telemetry *telemetry.Telemetry
	Layer     *span.Layer
}

func NewGenerator(app index.App, command *Command, loader *Loader, telemetry *telemetry.Telemetry) *Generator {
	return &Generator{
		App:       app,
		Command:   command,
		Loader:    loader,
		Telemetry: telemetry,
		Layer:     telemetry.Layer("generator", "extension"),
	}
}

func (r *Generator) Options() *Options {
	config := r.App.Config().Extension
	options := &Options{
		Api:             *config.Api,
		Beta:            r.Command.Beta || (config.Beta != nil && *config.Beta),
		CommandVersions: config.CommandVersions,
		Excludes:        make(map[string]bool),
		DefinePrefix:    *config.DefinePrefix,
		PointerPrefix:   *config.PointerPrefix,
	}
	for _, exclude := range config.Excludes {
		if exclude != nil {
			options.Excludes[*exclude] = true
		}
	}
	return options
}

func (r *Generator) Generate(ctx context.Context) error {
	s, ctx := r.Layer.With(ctx)
	defer s.End()

	options := r.Options()
	logger := r.App.Logger()

	// * load registry
	reg, err := r.Loader.Load(ctx, r.Command.Spec)
	if err != nil {
		return s.Error("unable to load registry", err)
	}

	// * index and resolve groups
	idx := NewIndex(reg, options)
	idx.Resolve()
	s.Variable("groups", len(idx.Groups.Keys()))
	logger.Debug("indexed command groups", "groups", len(idx.Groups.Keys()), "instance", len(idx.Instance))

	if *r.App.Verbose() {
		if err := PrintGroups(os.Stderr, idx, options); err != nil {
			logger.Warn("unable to print group tree", "err", err)
		}
	}

	// * emit blocks
	emission, err := Emit(reg, idx, options)
	if err != nil {
		return s.Error("unable to emit code blocks", err)
	}
	for kind, count := range emission.Counts {
		r.Telemetry.Instrument.CommandRecord(ctx, int64(count), string(kind))
	}

	// * patch targets
	written, err := r.Patch(ctx, emission.Blocks.Map())
	if err != nil {
		return s.Error("unable to patch targets", err)
	}

	logger.Info(
		"generated extension code",
		"version", reg.HeaderVersion(options.Api),
		"device", emission.Counts[KindDevice],
		"instance", emission.Counts[KindInstance],
		"global", emission.Counts[KindGlobal],
		"written", written,
	)

	return nil
}

func (r *Generator) Targets() []string {
	targets := make([]string, 0)
	for _, target := range r.App.Config().Extension.Targets {
		if target == nil {
			continue
		}
		path := *target
		if !filepath.IsAbs(path) {
			path = filepath.Join(*r.App.Directory(), path)
		}
		targets = append(targets, path)
	}
	return targets
}
