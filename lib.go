package sdkgen

const (
	Name        = "sdkgen"
	Description = "Graphics SDK generator command line interface"
	Namespace   = "go.scnd.dev/open/sdkgen"
)

// Version is replaced at link time.
var Version = "dev"
