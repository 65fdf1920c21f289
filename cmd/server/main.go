package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"furnishfusion_back_end/internal/config"
	"furnishfusion_back_end/internal/database"
	"furnishfusion_back_end/internal/render"
	"furnishfusion_back_end/internal/routes"
	"furnishfusion_back_end/internal/services"
	"furnishfusion_back_end/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Configuration invalide :", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("❌ Échec connexion base de données :", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("❌ Échec migration :", err)
	}
	if err := database.Seed(db, cfg); err != nil {
		log.Fatal("❌ Échec seed :", err)
	}

	rdb := database.ConnectRedis(cfg)

	uploader := buildUploader(cfg)
	notifier := services.NewNotifier(cfg)

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	routes.Register(r, routes.Deps{
		DB:             db,
		Sessions:       session.NewManager(cfg.SessionSecret),
		Render:         render.TemplateRenderer{},
		Uploader:       uploader,
		Notifier:       notifier,
		Redis:          rdb,
		UploadDir:      cfg.UploadDir,
		MaxUploadBytes: cfg.MaxUploadMB * 1024 * 1024,
	})

	log.Println("🚀 Serveur FurnishFusion lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Erreur serveur :", err)
	}
}

// buildUploader choisit le backend d'images : bucket MinIO quand configuré,
// sinon le dossier d'uploads local.
func buildUploader(cfg *config.Config) services.Uploader {
	if cfg.MinioEndpoint != "" {
		uploader, err := services.NewMinioUploader(cfg)
		if err != nil {
			log.Println("⚠️ MinIO non disponible, repli sur le stockage local :", err)
		} else {
			return uploader
		}
	}
	return services.LocalUploader{Dir: cfg.UploadDir, PublicPath: "/static/uploads"}
}
