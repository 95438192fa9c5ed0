package main

import (
	"github.com/alecthomas/kong"
	"go.scnd.dev/open/sdkgen"
	"go.scnd.dev/open/sdkgen/command/sdkgen/app"
	"go.scnd.dev/open/sdkgen/command/sdkgen/subcommand/docgen"
	"go.scnd.dev/open/sdkgen/command/sdkgen/subcommand/extension"
	"go.scnd.dev/open/sdkgen/command/sdkgen/subcommand/initialize"
)

type Command struct {
	Verbose   bool               `help:"Enable verbose output." short:"v"`
	Directory string             `help:"Working directory." short:"C" default:"." type:"existingdir"`
	Version   kong.VersionFlag   `help:"Print version and exit."`
	Extension extension.Command  `cmd:"extension" help:"Generate Vulkan extension loader code into the target files."`
	Docgen    docgen.Command     `cmd:"docgen" help:"Generate README documentation from header comments."`
	Init      initialize.Command `cmd:"init" help:"Write a default sdkgen.yml configuration."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name(sdkgen.Name),
		kong.Description(sdkgen.Description),
		kong.Vars{"version": sdkgen.Version},
	)
	err := ctx.Run(app.New(command.Verbose, command.Directory))
	ctx.FatalIfErrorf(err)
}
