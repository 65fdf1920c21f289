package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	// Store relationnel : DSN Postgres si fourni, sinon fichier SQLite local.
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"furnishfusion.db"`

	SessionSecret string `env:"SESSION_SECRET" envDefault:"change-this-secret-in-production"`

	UploadDir   string `env:"UPLOAD_DIR" envDefault:"static/uploads"`
	MaxUploadMB int64  `env:"MAX_UPLOAD_MB" envDefault:"16"`

	// Redis (optionnel) : active le rate limit sur les logins.
	RedisHost     string `env:"REDIS_HOST"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// MinIO (optionnel) : stockage des images produits en bucket S3.
	MinioEndpoint  string `env:"MINIO_ENDPOINT"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"furnishfusion"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL"`

	// SMTP (optionnel) : notification de commande, best effort.
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	NotifyFrom   string `env:"NOTIFY_FROM" envDefault:"noreply@furnishfusion.com"`
	NotifyTo     string `env:"NOTIFY_TO" envDefault:"orders@furnishfusion.com"`

	// Admin par défaut, créé au premier démarrage si la table est vide.
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@furnishfusion.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
