package testutil

import (
	"context"
	"fmt"
	"log"

	"fyyur/config"
	"fyyur/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// SetupDB 連到測試 DB 並套用 migrations
func SetupDB() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	testDB, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %v", err)
	}

	if _, err := database.Migrate(context.Background(), testDB); err != nil {
		testDB.Close()
		return nil, nil, fmt.Errorf("failed to migrate test database: %v", err)
	}

	log.Println("Test database connected successfully")

	cleanup := func() {
		testDB.Close()
		log.Println("Test database closed")
	}

	return testDB, cleanup, nil
}

// SetupRedisOnly 僅初始化 Redis，用於只依賴 Redis 的測試（如 flash store 整合測試）
func SetupRedisOnly() (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %v", err)
	}
	cleanup := func() { rdb.Close() }
	return rdb, cleanup, nil
}

// Truncate 清空所有資料表，保留 schema
func Truncate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "TRUNCATE shows, venue_genres, artist_genres, venues, artists RESTART IDENTITY CASCADE")
	return err
}
