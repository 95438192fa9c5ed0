package index

type Config struct {
	Extension *ExtensionConfig `yaml:"extension" validate:"required"`
	Docgen    *DocgenConfig    `yaml:"docgen" validate:"required"`
	Telemetry *TelemetryConfig `yaml:"telemetry"`
	Minio     *MinioConfig     `yaml:"minio"`
}

type ExtensionConfig struct {
	Api             *string        `yaml:"api" validate:"required"`
	Spec            *string        `yaml:"spec"`
	Beta            *bool          `yaml:"beta"`
	Targets         []*string      `yaml:"targets" validate:"required,min=1"`
	Excludes        []*string      `yaml:"excludes"`
	CommandVersions map[string]int `yaml:"command_versions"` // entries merge with the defaults, zero disables
	MarkerPrefix    *string        `yaml:"marker_prefix" validate:"required"`
	DefinePrefix    *string        `yaml:"define_prefix" validate:"required"`
	PointerPrefix   *string        `yaml:"pointer_prefix" validate:"required"`
}

type DocgenConfig struct {
	Readme     *string   `yaml:"readme" validate:"required"`
	Extensions []*string `yaml:"extensions" validate:"required,min=1"`
	Excludes   []*string `yaml:"excludes"`
}

type TelemetryConfig struct {
	Url          *string `yaml:"url"`
	Organization *string `yaml:"organization"`
}

type MinioConfig struct {
	Endpoint  *string `yaml:"endpoint"`
	AccessKey *string `yaml:"access_key"`
	SecretKey *string `yaml:"secret_key"`
}

func (r *Config) GetTelemetryUrl() *string {
	if r.Telemetry == nil {
		return nil
	}
	return r.Telemetry.Url
}

func (r *Config) GetTelemetryOrganization() *string {
	if r.Telemetry == nil {
		return nil
	}
	return r.Telemetry.Organization
}

func (r *Config) GetMinioEndpoint() *string {
	if r.Minio == nil {
		return nil
	}
	return r.Minio.Endpoint
}

func (r *Config) GetMinioAccessKey() *string {
	if r.Minio == nil {
		return nil
	}
	return r.Minio.AccessKey
}

func (r *Config) GetMinioSecretKey() *string {
	if r.Minio == nil {
		return nil
	}
	return r.Minio.SecretKey
}
