package extension

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3/client"
	"github.com/minio/minio-go/v7"
	"go.scnd.dev/open/sdkgen/command/sdkgen/index"
	"go.scnd.dev/open/sdkgen/compat/common"
	"go.scnd.dev/open/sdkgen/package/span"
	"go.scnd.dev/open/sdkgen/package/telemetry"
	"go.scnd.dev/open/sdkgen/utility/registry"
)

const (
	SdkRegistry    = "share/vulkan/registry/vk.xml"
	OnlineRegistry = "https://raw.githubusercontent.com/KhronosGroup/Vulkan-Docs/main/xml/vk.xml"
)

var SystemRegistry = "/usr/share/vulkan/registry/vk.xml"

type Loader struct {
	App   index.App
	Layer *span.Layer
	Http  *client.Client
	minio *minio.Client
}

func NewLoader(app index.App, telemetry *telemetry.Telemetry) *Loader {
	return &Loader{
		App:   app,
		Layer: telemetry.Layer("loader", "extension"),
		Http:  common.Fiber(),
		minio: nil,
	}
}

// Resolve picks the registry location: argument, configuration, SDK, system, then the online copy.
func (r *Loader) Resolve(argument string) string {
	if argument != "" {
		return argument
	}

	config := r.App.Config().Extension
	if config.Spec != nil && *config.Spec != "" {
		spec := *config.Spec
		if !strings.Contains(spec, "://") && !filepath.IsAbs(spec) {
			spec = filepath.Join(*r.App.Directory(), spec)
		}
		return spec
	}

	if sdk := os.Getenv("VULKAN_SDK"); sdk != "" {
		path := filepath.Join(sdk, SdkRegistry)
		if isFile(path) {
			return path
		}
	}

	if isFile(SystemRegistry) {
		return SystemRegistry
	}

	r.App.Logger().Warn(
		"no registry found in VULKAN_SDK or system folders, using the online copy which may not match the installed SDK",
		"url", OnlineRegistry,
	)
	return OnlineRegistry
}

func (r *Loader) Load(ctx context.Context, argument string) (*registry.Registry, error) {
	s, ctx := r.Layer.With(ctx)
	defer s.End()

	// * resolve location
	location := r.Resolve(argument)
	s.Variable("location", location)
	r.App.Logger().Info("loading registry", "location", location)

	// * fetch document
	content, err := r.Fetch(ctx, location)
	if err != nil {
		return nil, s.Error("unable to fetch registry", err)
	}

	// * parse document
	reg, err := registry.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, s.Error("unable to parse registry", err)
	}

	return reg, nil
}

func (r *Loader) Fetch(ctx context.Context, location string) ([]byte, error) {
	parsed, err := url.Parse(location)
	if err != nil || !strings.Contains(location, "://") {
		return os.ReadFile(location)
	}

	switch parsed.Scheme {
	case "file":
		return os.ReadFile(parsed.Path)
	case "http", "https":
		return common.FiberFetch(r.Http, location)
	case "s3":
		return r.fetchObject(ctx, parsed)
	}

	return nil, fmt.Errorf("unsupported registry scheme %s", parsed.Scheme)
}

func (r *Loader) fetchObject(ctx context.Context, location *url.URL) ([]byte, error) {
	if r.minio == nil {
		minioClient, err := common.Minio(r.App.Config())
		if err != nil {
			return nil, err
		}
		r.minio = minioClient
	}

	key := strings.TrimPrefix(location.Path, "/")
	if location.Host == "" || key == "" {
		return nil, errors.New("object location must be s3://bucket/key")
	}

	object, err := r.minio.GetObject(ctx, location.Host, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer object.Close()

	content, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}

	return content, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
