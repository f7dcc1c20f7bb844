package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"ats-backend/config"
)

var ErrStorageDisabled = errors.New("document storage is not configured")

// Provider stores uploaded candidate documents in the S3 bucket and hands out
// object keys; downloads go through short-lived presigned links.
type Provider interface {
	UploadDocument(ctx context.Context, kind, fileName string, file []byte) (key string, err error)
	PresignedURL(ctx context.Context, key string) (string, error)
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
		bucket:   config.Conf.S3.BucketName,
	}
}

type impl struct {
	s3client *minio.Client
	bucket   string
}

func (i impl) UploadDocument(ctx context.Context, kind, fileName string, file []byte) (key string, err error) {
	if i.s3client == nil {
		return "", ErrStorageDisabled
	}
	key = fmt.Sprintf("%s/%s%s", kind, uuid.NewString(), path.Ext(fileName))
	_, err = i.s3client.PutObject(ctx, i.bucket, key, bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", errors.Wrap(err, "failed to store document")
	}
	return key, nil
}

func (i impl) PresignedURL(ctx context.Context, key string) (string, error) {
	if i.s3client == nil {
		return "", ErrStorageDisabled
	}
	reqParams := make(url.Values)
	presigned, err := i.s3client.PresignedGetObject(ctx, i.bucket, key, time.Minute*15, reqParams)
	if err != nil {
		return "", errors.Wrap(err, "failed to presign document link")
	}
	return presigned.String(), nil
}

func (i impl) EnsureBucket(ctx context.Context) error {
	if i.s3client == nil {
		return nil
	}
	exists, err := i.s3client.BucketExists(ctx, i.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	err = i.s3client.MakeBucket(ctx, i.bucket, minio.MakeBucketOptions{})
	if err != nil {
		return err
	}
	log.WithField("bucket", i.bucket).Info("document bucket created")
	return nil
}
