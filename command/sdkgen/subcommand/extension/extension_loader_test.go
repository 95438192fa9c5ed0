package extension

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bsthun/gut"
	"go.scnd.dev/open/sdkgen/package/span"
)

func newTestLoader(t *testing.T, directory string) *Loader {
	t.Helper()
	return &Loader{
		App:   newTestApp(t, directory),
		Layer: span.NewLayer(nil, "loader", "test"),
	}
}

func isolateRegistry(t *testing.T) {
	t.Helper()
	system := SystemRegistry
	SystemRegistry = filepath.Join(t.TempDir(), "absent", "vk.xml")
	t.Cleanup(func() {
		SystemRegistry = system
	})
	t.Setenv("VULKAN_SDK", "")
}

func writeRegistry(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create registry directory: %v", err)
	}
	copyFixture(t, "testdata/vk.xml", path)
}

func TestResolveArgument(t *testing.T) {
	isolateRegistry(t)
	loader := newTestLoader(t, t.TempDir())
	if location := loader.Resolve("https://example.com/vk.xml"); location != "https://example.com/vk.xml" {
		t.Errorf("Expected argument, got %s", location)
	}
}

func TestResolveConfig(t *testing.T) {
	isolateRegistry(t)
	directory := t.TempDir()
	loader := newTestLoader(t, directory)
	loader.App.Config().Extension.Spec = gut.Ptr("registry/vk.xml")

	if location := loader.Resolve(""); location != filepath.Join(directory, "registry", "vk.xml") {
		t.Errorf("Expected configured spec, got %s", location)
	}
}

func TestResolveSdk(t *testing.T) {
	isolateRegistry(t)
	sdk := t.TempDir()
	writeRegistry(t, filepath.Join(sdk, SdkRegistry))
	t.Setenv("VULKAN_SDK", sdk)

	loader := newTestLoader(t, t.TempDir())
	if location := loader.Resolve(""); location != filepath.Join(sdk, SdkRegistry) {
		t.Errorf("Expected SDK registry, got %s", location)
	}
}

func TestResolveSystem(t *testing.T) {
	isolateRegistry(t)
	t.Setenv("VULKAN_SDK", t.TempDir())
	writeRegistry(t, SystemRegistry)

	loader := newTestLoader(t, t.TempDir())
	if location := loader.Resolve(""); location != SystemRegistry {
		t.Errorf("Expected system registry, got %s", location)
	}
}

func TestResolveOnline(t *testing.T) {
	isolateRegistry(t)
	loader := newTestLoader(t, t.TempDir())
	if location := loader.Resolve(""); location != OnlineRegistry {
		t.Errorf("Expected online registry, got %s", location)
	}
}

func TestLoadFile(t *testing.T) {
	isolateRegistry(t)
	loader := newTestLoader(t, t.TempDir())

	reg, err := loader.Load(context.Background(), "testdata/vk.xml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if reg.HeaderVersion("vulkan") != "280" {
		t.Errorf("Unexpected header version %s", reg.HeaderVersion("vulkan"))
	}

	absolute, err := filepath.Abs("testdata/vk.xml")
	if err != nil {
		t.Fatalf("Abs failed: %v", err)
	}
	if _, err := loader.Load(context.Background(), "file://"+absolute); err != nil {
		t.Errorf("Load with file scheme failed: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	isolateRegistry(t)
	directory := t.TempDir()
	loader := newTestLoader(t, directory)

	invalid := filepath.Join(directory, "invalid.xml")
	if err := os.WriteFile(invalid, []byte("<registry><types>"), 0o644); err != nil {
		t.Fatalf("Failed to write invalid registry: %v", err)
	}
	if _, err := loader.Load(context.Background(), invalid); err == nil {
		t.Errorf("Expected parse error")
	}
	if _, err := loader.Load(context.Background(), "ftp://example.com/vk.xml"); err == nil {
		t.Errorf("Expected unsupported scheme error")
	}
	if _, err := loader.Load(context.Background(), "s3://bucket/vk.xml"); err == nil {
		t.Errorf("Expected missing object storage configuration error")
	}
}
