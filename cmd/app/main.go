package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"pizzashop/cmd"
	httpin "pizzashop/internal/adapters/in/http"

	_ "pizzashop/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// @title Pizza Shop API
// @version 1.0
// @description Catalog and order management backend for a single-tenant pizza shop.
// @BasePath /
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := getConfig()

	var db *mongo.Database
	if config.StoreDriver == cmd.StoreDriverMongo {
		client := connectMongo(config)
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Error("mongo disconnect failed", slog.Any("error", err))
			}
		}()
		db = client.Database(config.MongoDatabase)
	}

	root := cmd.NewCompositionRoot(config, db, logger)

	if config.SeedDatabase {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := root.CreateSeeder().Run(ctx); err != nil {
			cancel()
			log.Fatalf("seeding failed: %v", err)
		}
		cancel()
	}

	e := httpin.NewEcho(root.CreateHTTPServer(), logger)
	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func getConfig() cmd.Config {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:      envOrDefault("HTTP_PORT", "8080"),
		StoreDriver:   envOrDefault("STORE_DRIVER", cmd.StoreDriverMongo),
		MongoURI:      envOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: envOrDefault("MONGO_DATABASE", "pizzashop"),
		SeedDatabase:  envOrDefault("SEED_DATABASE", "true") == "true",
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func connectMongo(config cmd.Config) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURI))
	if err != nil {
		log.Fatalf("mongo connect failed: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("mongo ping failed: %v", err)
	}

	return client
}
