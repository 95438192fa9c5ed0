package index

import (
	"github.com/charmbracelet/log"
)

type App interface {
	Verbose() *bool
	Directory() *string
	Config() *Config
	Logger() *log.Logger
	Load() error
}
