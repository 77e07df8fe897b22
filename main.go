package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TomerBass/DogNames/internal/config"
	"github.com/TomerBass/DogNames/internal/consts"
	"github.com/TomerBass/DogNames/internal/db"
	"github.com/TomerBass/DogNames/internal/middleware"
	"github.com/TomerBass/DogNames/internal/modules"
	dogrepo "github.com/TomerBass/DogNames/internal/modules/dog/repo"
	"github.com/TomerBass/DogNames/internal/router"
	"github.com/TomerBass/DogNames/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configDir := flag.String("config", "config", "configuration directory")
	flag.Parse()

	config.InitConfig(*configDir)
	db.InitDB()

	cfg := config.Get()

	sink, err := storage.FromConfig(cfg)
	if err != nil {
		log.Fatalf("❌ image storage init failed: %v", err)
	}
	if cfg.UseCloudinary() {
		log.Println("✅ Cloudinary configured for image storage")
	} else {
		log.Println("📁 using local file storage for images")
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	r.Use(cors.Default())

	router.NewRouter(modules.New(dogrepo.NewDogRepository(db.DB), sink)).Init(r)

	mountStatic(r, cfg, sink)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 %s listening on :%s\n", consts.ApplicationName, cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ server failed: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ forced shutdown: ", err)
	}
	log.Println("✅ server exited")
}

// mountStatic serves locally stored images under the uploads URL prefix.
// With Cloudinary active the identifiers are already full delivery URLs,
// so nothing is mounted.
func mountStatic(r *gin.Engine, cfg config.Config, sink storage.Sink) {
	local, ok := sink.(*storage.Local)
	if !ok {
		return
	}
	r.Group(cfg.Upload.URLPrefix, middleware.StaticCacheMiddleware()).
		StaticFS("", gin.Dir(local.Dir(), false))
}
