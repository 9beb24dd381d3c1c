package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"velora_back_end/internal/database"

	"github.com/minio/minio-go/v7"
)

// UploadImage pousse un fichier multipart vers le bucket MinIO et retourne
// le nom d'objet et l'URL publique.
func UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, string, error) {
	if database.MinioClient == nil {
		return "", "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	objectName := fmt.Sprintf("images/%d%s", time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))

	_, err = database.MinioClient.PutObject(ctx, bucket, objectName, f, fileHeader.Size,
		minio.PutObjectOptions{ContentType: fileHeader.Header.Get("Content-Type")})
	if err != nil {
		return "", "", err
	}

	url := fmt.Sprintf("http://%s/%s/%s", os.Getenv("MINIO_ENDPOINT"), bucket, objectName)
	return objectName, url, nil
}

// DeleteImage retire l'objet du bucket.
func DeleteImage(ctx context.Context, objectName string) error {
	if database.MinioClient == nil {
		return fmt.Errorf("MinIO non initialisé")
	}
	return database.MinioClient.RemoveObject(ctx, os.Getenv("MINIO_BUCKET"), objectName,
		minio.RemoveObjectOptions{})
}
