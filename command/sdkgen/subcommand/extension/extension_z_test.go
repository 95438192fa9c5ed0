package extension

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"go.scnd.dev/open/sdkgen/command/sdkgen/common/config"
	"go.scnd.dev/open/sdkgen/command/sdkgen/index"
	"go.scnd.dev/open/sdkgen/command/sdkgen/template"
	"go.scnd.dev/open/sdkgen/package/logging"
	"go.scnd.dev/open/sdkgen/utility/registry"
)

type testApp struct {
	verbose   bool
	directory string
	config    *index.Config
	logger    *log.Logger
}

func newTestApp(t *testing.T, directory string) *testApp {
	t.Helper()
	t.Setenv("SDKGEN_SPEC", "")
	t.Setenv("SDKGEN_TELEMETRY_URL", "")

	cfg, err := config.New[index.Config](directory, template.StructureConfig)
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	return &testApp{
		verbose:   false,
		directory: directory,
		config:    cfg,
		logger:    logging.Discard(),
	}
}

func (r *testApp) Verbose() *bool { return &r.verbose }
func (r *testApp) Directory() *string { return &r.directory }
func (r *testApp) Config() *index.Config { return r.config }
func (r *testApp) Logger() *log.Logger { return r.logger }
func (r *testApp) Load() error { return nil }

func testOptions(beta bool) *Options {
	return &Options{
		Api:  "vulkan",
		Beta: beta,
		CommandVersions: map[string]int{
			"vkCmdSetDiscardRectangleEnableEXT": 2,
			"vkCmdSetDiscardRectangleModeEXT":   2,
			"vkCmdSetExclusiveScissorEnableNV":  2,
		},
		Excludes: map[string]bool{
			"VK_VERSION_1_0":            true,
			"defined(VK_KHR_swapchain)": true,
		},
		DefinePrefix:  "NVVK_HAS_",
		PointerPrefix: "pfn_",
	}
}

func parseFixture(t *testing.T) *registry.Registry {
	t.Helper()
	file, err := os.Open("testdata/vk.xml")
	if err != nil {
		t.Fatalf("Failed to open fixture: %v", err)
	}
	defer file.Close()

	reg, err := registry.Parse(file)
	if err != nil {
		t.Fatalf("Failed to parse fixture: %v", err)
	}
	return reg
}

func copyFixture(t *testing.T, source string, destination string) {
	t.Helper()
	content, err := os.ReadFile(source)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", source, err)
	}
	if err := os.WriteFile(destination, content, 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", destination, err)
	}
}
