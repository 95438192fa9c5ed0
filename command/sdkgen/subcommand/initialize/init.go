package initialize

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.scnd.dev/open/sdkgen/command/sdkgen/app"
	"go.scnd.dev/open/sdkgen/command/sdkgen/common/config"
	"go.scnd.dev/open/sdkgen/command/sdkgen/index"
	"go.scnd.dev/open/sdkgen/command/sdkgen/template"
	"go.scnd.dev/open/sdkgen/package/span"
)

type Command struct {
	Force bool `help:"Overwrite an existing configuration." short:"f"`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app index.App, command *Command) error {
	layer := span.NewLayer(nil, "initialize", "command")
	s, _ := layer.With(context.Background())
	defer s.End()

	path := filepath.Join(*app.Directory(), config.FileName)
	s.Variable("path", path)

	// * check existing configuration
	_, err := os.Stat(path)
	if err == nil && !command.Force {
		return s.Error("configuration already exists, use --force to overwrite", nil)
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return s.Error("unable to check configuration", err)
	}

	// * write template
	if err := os.WriteFile(path, template.StructureConfig, 0o644); err != nil {
		return s.Error("unable to write configuration", err)
	}

	app.Logger().Info("configuration written", "path", path)
	return nil
}
