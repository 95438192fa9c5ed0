package common

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioConfig interface {
	GetMinioEndpoint() *string
	GetMinioAccessKey() *string
	GetMinioSecretKey() *string
}

func Minio(config MinioConfig) (*minio.Client, error) {
	if config.GetMinioEndpoint() == nil || *config.GetMinioEndpoint() == "" {
		return nil, errors.New("minio endpoint is not configured")
	}

	// * initialize minio client
	parsed, err := url.Parse(*config.GetMinioEndpoint())
	if err != nil {
		return nil, fmt.Errorf("failed to parse minio endpoint: %w", err)
	}

	accessKey, secretKey := "", ""
	if config.GetMinioAccessKey() != nil {
		accessKey = *config.GetMinioAccessKey()
	}
	if config.GetMinioSecretKey() != nil {
		secretKey = *config.GetMinioSecretKey()
	}

	minioClient, err := minio.New(parsed.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: parsed.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio: %w", err)
	}

	return minioClient, nil
}
