package contracts

import (
	"context"
	"time"
)

type Storage interface {
	UploadObject(ctx context.Context, bucketName, objectName string, content []byte, contentType string) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
