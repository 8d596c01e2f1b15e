package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"lightning-sats-bot/internal/ledger"

	"github.com/redis/go-redis/v9"
)

// Resetter zeroes the per-user daily counters once per UTC day. A redis
// marker key keeps restarts around midnight from resetting twice.
type Resetter struct {
	Engine *ledger.Engine
	Redis  *redis.Client
}

func NewResetter(engine *ledger.Engine, rdb *redis.Client) *Resetter {
	return &Resetter{
		Engine: engine,
		Redis:  rdb,
	}
}

func (r *Resetter) Start() {
	log.Println("Daily reset worker started")

	for {
		now := time.Now().UTC()
		next := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
		time.Sleep(next.Sub(now))

		r.runReset(next)
	}
}

func (r *Resetter) runReset(day time.Time) {
	ctx := context.Background()

	key := fmt.Sprintf("daily_reset_%s", day.Format("2006-01-02"))
	acquired, err := r.Redis.SetNX(ctx, key, "done", 48*time.Hour).Result()
	if err != nil {
		log.Printf("Failed to acquire reset marker: %v", err)
		return
	}
	if !acquired {
		log.Printf("Daily reset for %s already done, skipping", day.Format("2006-01-02"))
		return
	}

	if err := r.Engine.ResetDailyStats(ctx); err != nil {
		log.Printf("Daily reset failed: %v", err)
		// Drop the marker so the next attempt can retry.
		r.Redis.Del(ctx, key)
		return
	}

	log.Printf("Daily stats reset for %s", day.Format("2006-01-02"))
}
