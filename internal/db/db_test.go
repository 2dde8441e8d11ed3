package db

import (
	"os"
	"testing"
)

// TestConnectPostgres documents the connection contract; the real
// connection only runs when DATABASE_URL points at a live database.
func TestConnectPostgres(t *testing.T) {
	t.Run("valid DATABASE_URL should connect", func(t *testing.T) {
		if os.Getenv("DATABASE_URL") == "" {
			t.Skip("DATABASE_URL not set, skipping integration test")
		}
		pool := ConnectPostgres(os.Getenv("DATABASE_URL"))
		defer pool.Close()
	})
}

func TestConnectRedisWithoutURL(t *testing.T) {
	if client := ConnectRedis(""); client != nil {
		t.Error("expected nil client when REDIS_URL is empty")
	}
}
