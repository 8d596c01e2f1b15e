package main

import (
	"log"
	"net/http"

	"lightning-sats-bot/internal/bot"
	"lightning-sats-bot/internal/config"
	"lightning-sats-bot/internal/database"
	"lightning-sats-bot/internal/ledger"
	"lightning-sats-bot/internal/postback"
	"lightning-sats-bot/internal/storage"
	"lightning-sats-bot/internal/worker"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	// Connect to Redis
	rdb, err := database.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("Could not connect to redis: %v", err)
	}

	// Ledger Engine
	policy := ledger.DefaultPolicy()
	policy.PerAdReward = cfg.PerAdReward
	policy.StreakBonusBase = cfg.StreakBonusBase
	policy.StreakBonusRate = cfg.StreakBonusRate
	policy.ReferralShare = cfg.ReferralShare
	policy.DailyGoal = cfg.DailyGoal

	engine := ledger.NewEngine(storage.New(db), policy)

	// Telegram Bot
	tgBot, err := bot.NewBot(cfg.BotToken, engine, cfg)
	if err != nil {
		log.Fatalf("Could not create bot: %v", err)
	}

	// Daily reset worker
	resetter := worker.NewResetter(engine, rdb)
	go resetter.Start()

	// Postback listener for ad views and settlements
	mux := http.NewServeMux()
	postback.NewHandler(engine, cfg.PostbackSecret, cfg.AllowedPostbackIPs).Register(mux)
	go func() {
		log.Printf("Postback listener on %s", cfg.PostbackAddr)
		if err := http.ListenAndServe(cfg.PostbackAddr, mux); err != nil {
			log.Fatalf("Postback server error: %v", err)
		}
	}()

	log.Println("Service started successfully")
	tgBot.Start()
}
