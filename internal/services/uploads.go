package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"furnishfusion_back_end/internal/config"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// AllowedImageFile vérifie l'extension contre la liste blanche d'images.
func AllowedImageFile(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

var filenameCleaner = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// uploadFilename produit un nom sans collision : timestamp, fragment d'UUID,
// puis le nom d'origine nettoyé.
func uploadFilename(original string) string {
	base := filenameCleaner.ReplaceAllString(filepath.Base(original), "_")
	return fmt.Sprintf("%d_%s_%s", time.Now().Unix(), uuid.NewString()[:8], base)
}

// Uploader stocke une image produit et retourne l'URL (ou le chemin relatif)
// sous laquelle elle sera servie.
type Uploader interface {
	SaveImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// LocalUploader écrit dans le dossier d'uploads servi en statique.
type LocalUploader struct {
	Dir        string // dossier sur disque
	PublicPath string // préfixe URL, ex: /static/uploads
}

func (u LocalUploader) SaveImage(_ context.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(u.Dir, 0o755); err != nil {
		return "", err
	}

	name := uploadFilename(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(u.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return path.Join(u.PublicPath, name), nil
}

// MinioUploader pousse l'image dans un bucket S3-compatible.
type MinioUploader struct {
	Client   *minio.Client
	Bucket   string
	Endpoint string
	UseSSL   bool
}

func NewMinioUploader(cfg *config.Config) (*MinioUploader, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connexion MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("vérification bucket MinIO: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("création bucket MinIO: %w", err)
		}
		log.Println("🪣 Bucket créé :", cfg.MinioBucket)
	}

	log.Println("✅ Connecté à MinIO :", cfg.MinioEndpoint)
	return &MinioUploader{
		Client:   client,
		Bucket:   cfg.MinioBucket,
		Endpoint: cfg.MinioEndpoint,
		UseSSL:   cfg.MinioUseSSL,
	}, nil
}

func (u *MinioUploader) SaveImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	name := uploadFilename(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	_, err = u.Client.PutObject(ctx, u.Bucket, name, src, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if u.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, u.Endpoint, u.Bucket, name), nil
}
