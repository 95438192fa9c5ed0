package docgen

import (
	"context"
	"os"
	"path/filepath"

	"go.scnd.dev/open/sdkgen/command/sdkgen/app"
	"go.scnd.dev/open/sdkgen/command/sdkgen/index"
	"go.scnd.dev/open/sdkgen/command/sdkgen/procedure/printer"
	"go.scnd.dev/open/sdkgen/package/span"
	"go.scnd.dev/open/sdkgen/package/telemetry"
	"go.scnd.dev/open/sdkgen/utility/patch"
	"go.uber.org/fx"
)

type Command struct {
	Root string `arg:"" optional:"" help:"Root folder to document, defaults to the working directory."`
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
		return span.NewError(nil, "unable to initialize documentation generator", fxErr)
	}

	return err
}

type Generator struct {
	App       index.App
	Command   *Command
	Telemetry *telemetry.Telemetry
	Layer     *span.Layer
}

func NewGenerator(app index.App, command *Command, telemetry *telemetry.Telemetry) *Generator {
	return &Generator{
		App:       app,
		Command:   command,
		Telemetry: telemetry,
		Layer:     telemetry.Layer("generator", "docgen"),
	}
}

func (r *Generator) Root() string {
	if r.Command.Root != "" {
		return r.Command.Root
	}
	return *r.App.Directory()
}

func (r *Generator) Generate(ctx context.Context) error {
	s, ctx := r.Layer.With(ctx)
	defer s.End()

	config := r.App.Config().Docgen
	logger := r.App.Logger()
	root := r.Root()
	s.Variable("root", root)

	// * scan folders
	folders, err := Scan(root, values(config.Excludes), values(config.Extensions))
	if err != nil {
		return s.Error("unable to scan folders", err)
	}

	tree := &printer.Node{Name: root}
	documented := 0
	for _, folder := range folders {
		logger.Debug("parsing sub-folder", "path", folder.Path)

		// * extract documentation
		headers, err := r.Document(folder)
		if err != nil {
			return s.Error("unable to document folder", err)
		}
		if len(headers) == 0 {
			continue
		}

		// * write readme
		path := filepath.Join(folder.Path, *config.Readme)
		written, err := WriteReadme(path, Readme(headers))
		if err != nil {
			return s.Error("unable to write readme", err)
		}
		if written {
			logger.Info("generated readme", "path", path, "headers", len(headers))
		} else {
			logger.Debug("readme unchanged", "path", path)
		}

		r.Telemetry.Instrument.HeaderRecord(ctx, int64(len(headers)), folder.Path)
		documented += len(headers)

		node := tree.Add(folder.Path)
		for _, header := range headers {
			node.Add(header.Name)
		}
	}

	if *r.App.Verbose() {
		if err := printer.PrintTree(os.Stderr, tree); err != nil {
			logger.Warn("unable to print folder tree", "err", err)
		}
	}

	logger.Info("generated documentation", "folders", len(tree.Children), "headers", documented)
	return nil
}

// Document extracts every header of the folder that is not marked to be skipped.
func (r *Generator) Document(folder *Folder) ([]*Header, error) {
	logger := r.App.Logger()
	headers := make([]*Header, 0, len(folder.Headers))
	for _, name := range folder.Headers {
		path := filepath.Join(folder.Path, name)
		document, err := extractFile(path)
		if err != nil {
			return nil, err
		}
		if document.Skip {
			logger.Info("skipping file", "path", path)
			continue
		}
		for _, warning := range document.Warnings {
			logger.Warn("legacy doxygen comment, use a @DOC_START block", "path", path, "line", warning.Line, "content", warning.Content)
		}
		headers = append(headers, &Header{
			Name:     name,
			Document: document,
		})
	}
	return headers, nil
}

func extractFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Extract(file)
}

// WriteReadme replaces the readme when its content differs.
func WriteReadme(path string, content string) (bool, error) {
	file := &patch.File{
		Path:    path,
		Mode:    0o644,
		Patched: content,
	}

	// * keep content and permissions of an existing readme
	info, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	if err == nil {
		original, err := os.ReadFile(path)
		if err != nil {
			return false, err
		}
		file.Mode = info.Mode().Perm()
		file.Original = string(original)
		if !file.Changed() {
			return false, nil
		}
	}
	if err := file.Write(); err != nil {
		return false, err
	}
	return true, nil
}

func values(items []*string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		if item != nil {
			result = append(result, *item)
		}
	}
	return result
}
