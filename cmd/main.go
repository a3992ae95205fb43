package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hyojunguy/turtle-trading-app/internal/handler"
	"github.com/hyojunguy/turtle-trading-app/internal/repo"
	"github.com/hyojunguy/turtle-trading-app/pkg/database"
	"github.com/hyojunguy/turtle-trading-app/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	utils.LoadEnv()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	dbPath := utils.GetEnv("DB_PATH", "./data/trading.db")
	db, err := database.New(database.WithPath(dbPath))
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	repository, err := repo.New(db.Get())
	if err != nil {
		log.Fatal("Failed to create repository:", err)
	}

	if err := repository.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	r := gin.Default()

	// The browser client lives on a single known origin and sends
	// credentialed requests.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{utils.GetEnv("FRONTEND_ORIGIN", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	h, err := handler.New(
		handler.WithEngine(r),
		handler.WithRepository(repository),
		handler.WithLogger(logger),
	)
	if err != nil {
		log.Fatal("Failed to create handler:", err)
	}
	if err := h.Setup(); err != nil {
		log.Fatal("Failed to setup routes:", err)
	}

	port := utils.GetEnv("APP_PORT", "8000")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("shutting down...")
		db.Close()
		os.Exit(0)
	}()

	logger.Info("starting journal server", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
