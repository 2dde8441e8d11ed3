package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/auth"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/campaign"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/cart"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/combo"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/config"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/customer"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/db"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/llm"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/menu"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/order"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/pricing"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/recommend"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/router"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	// ───────────────────────── LOGGER ─────────────────────────
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("❌ Logger init failed: %v", err)
	}
	defer logger.Sync()

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres(cfg.DatabaseURL)
	defer pgDB.Close()

	redisClient := db.ConnectRedis(cfg.RedisURL)

	// ───────────────────────── PRICING ENGINE ─────────────────────────
	engine := pricing.NewEngine()

	// ───────────────────────── STORAGE (OPTIONAL) ─────────────────────────
	var uploader order.Uploader
	if cfg.R2.Endpoint != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		uploader = r2Client
	} else {
		logger.Info("object storage not configured, order export disabled")
	}

	// ───────────────────────── LLM (OPTIONAL) ─────────────────────────
	var llmClient llm.Client
	if cfg.Groq.APIKey != "" {
		llmClient = llm.NewGroqClient()
	} else {
		logger.Info("GROQ_API_KEY not set, serving canned pitches")
	}

	// ───────────────────────── REPOS ─────────────────────────
	customerAuthRepo := auth.NewPostgresCustomerRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	recommendRepo := recommend.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)
	customerRepo := customer.NewPostgresRepository(pgDB)

	var cartRepo cart.Repository
	if redisClient != nil {
		cartRepo = cart.NewRedisRepository(redisClient)
	} else {
		cartRepo = cart.NewMemoryRepository()
	}

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(customerAuthRepo)
	menuService := menu.NewService(menuRepo, logger)
	recommendService := recommend.NewService(recommendRepo, customerRepo, llmClient, logger)
	comboService := combo.NewService(menuRepo, logger)
	orderService := order.NewService(orderRepo, engine, logger)
	exportService := order.NewExportService(orderRepo, uploader, logger)
	cartService := cart.NewService(cartRepo, logger)
	customerService := customer.NewService(customerRepo, orderService, engine, logger)
	campaignService := campaign.NewService()

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Handlers{
		Auth:      auth.NewHandler(authService),
		Menu:      menu.NewHandler(menuService),
		Recommend: recommend.NewHandler(recommendService),
		Combo:     combo.NewHandler(comboService),
		Order:     order.NewHandler(orderService, exportService, cartService),
		Cart:      cart.NewHandler(cartService),
		Customer:  customer.NewHandler(customerService),
		Campaign:  campaign.NewHandler(campaignService),
	})

	// ───────────────────────── START ─────────────────────────
	logger.Info("🚀 API running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
