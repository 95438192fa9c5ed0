package app

import (
	"github.com/bsthun/gut"
	"github.com/charmbracelet/log"
	"go.scnd.dev/open/sdkgen/command/sdkgen/common/config"
	"go.scnd.dev/open/sdkgen/command/sdkgen/index"
	"go.scnd.dev/open/sdkgen/command/sdkgen/template"
	"go.scnd.dev/open/sdkgen/package/logging"
	"go.scnd.dev/open/sdkgen/package/span"
)

type App struct {
	verbose   *bool
	directory *string
	config    *index.Config
	logger    *log.Logger
}

func New(verbose bool, directory string) *App {
	return &App{
		verbose:   gut.Ptr(verbose),
		directory: gut.Ptr(directory),
		config:    nil,
		logger:    logging.New(verbose),
	}
}

func (r *App) Verbose() *bool {
	return r.verbose
}

func (r *App) Directory() *string {
	return r.directory
}

// Config is nil until Load succeeded.
func (r *App) Config() *index.Config {
	return r.config
}

func (r *App) Logger() *log.Logger {
	return r.logger
}

func (r *App) Load() error {
	if r.config != nil {
		return nil
	}

	cfg, err := config.New[index.Config](*r.directory, template.StructureConfig)
	if err != nil {
		return span.NewError(nil, "unable to load configuration", err)
	}
	r.config = cfg

	return nil
}
