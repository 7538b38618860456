// Команда seed-users переносит рабочие места пользователей из users.toml
// в таблицу user_assignments (для user_directory.source = "postgres").
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-MeetingRoomService/internal/config"
	assignmentRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/assignment"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	usersPath := flag.String("users", "", "path to users file (defaults to user_directory.file)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	file := *usersPath
	if file == "" {
		file = cfg.UserDirectory.File
	}

	static, err := assignmentRepo.LoadStaticFile(file)
	if err != nil {
		log.Fatal("Failed to load users: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	repo := assignmentRepo.NewRepository(db)
	for _, a := range static.All() {
		if err := repo.Upsert(ctx, a); err != nil {
			log.Fatal("Failed to upsert assignment for user %q: %v", a.UserID, err)
		}
		log.Info("Seeded user %q -> %s/%s", a.UserID, a.Location, a.Floor)
	}

	log.Info("Seeded %d users from %s", len(static.All()), file)
}
