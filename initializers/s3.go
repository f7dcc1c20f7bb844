package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"ats-backend/config"
	filestorage "ats-backend/lib/file-storage"
)

// InitS3 wires the document storage. A missing endpoint is not fatal, uploads
// stay disabled and the rest of the service runs.
func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 is not configured, document uploads are disabled")
		filestorage.NewHandler(nil)
		return
	}

	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("failed to init S3 client, document uploads are disabled")
		filestorage.NewHandler(nil)
		return
	}

	filestorage.NewHandler(minioClient)
	if err = filestorage.Instance.EnsureBucket(ctx); err != nil {
		log.WithError(err).Error("failed to ensure S3 bucket")
	}
}
