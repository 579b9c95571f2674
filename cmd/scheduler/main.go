package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/tensorlabs/amaanat/internal/config"
	"github.com/tensorlabs/amaanat/internal/repository"
	"github.com/tensorlabs/amaanat/internal/service"
	"github.com/tensorlabs/amaanat/internal/transport"
)

func main() {
	log.Println("Starting reminder scheduler...")

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	accountRepo := repository.NewAccountRepository(db)
	gateway := transport.NewGatewayClient(cfg.Gateway)
	reminderService := service.NewReminderService(accountRepo, gateway, redisClient, cfg)

	// Initialize cron scheduler in the configured timezone
	c := cron.New(cron.WithSeconds(), cron.WithLocation(cfg.SchedulerLocation()))

	if err := setupCronJobs(c, cfg, reminderService); err != nil {
		log.Fatalf("Failed to schedule jobs: %v", err)
	}

	c.Start()
	log.Println("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	<-c.Stop().Done()
	log.Println("Scheduler stopped")
}

func setupCronJobs(c *cron.Cron, cfg *config.Config, reminderService *service.ReminderService) error {
	// Daily job dispatching reminders for accounts overdue or inside the
	// upcoming window
	_, err := c.AddFunc(cfg.Scheduler.CronSpec, func() {
		log.Println("Running reminder dispatch job...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		summary, err := reminderService.DispatchDue(ctx, time.Now())
		if err != nil {
			log.Printf("Reminder dispatch job failed: %v", err)
			return
		}

		log.Printf("Reminder dispatch done: accounts=%d sent=%d failed=%d deduped=%d",
			summary.Accounts, summary.Sent, summary.Failed, summary.Deduped)
	})
	if err != nil {
		return err
	}

	log.Println("Cron jobs scheduled successfully")
	return nil
}
