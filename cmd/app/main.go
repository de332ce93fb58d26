package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bagdasarian/standup-tracker/internal/auth"
	"github.com/bagdasarian/standup-tracker/internal/config"
	"github.com/bagdasarian/standup-tracker/internal/db"
	"github.com/bagdasarian/standup-tracker/internal/events"
	"github.com/bagdasarian/standup-tracker/internal/handler"
	"github.com/bagdasarian/standup-tracker/internal/handler/server"
	"github.com/bagdasarian/standup-tracker/internal/repository/postgres"
	"github.com/bagdasarian/standup-tracker/internal/scheduler"
	"github.com/bagdasarian/standup-tracker/internal/service"
)

func main() {
	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	teamRepo := postgres.NewTeamRepository(database)
	userRepo := postgres.NewUserRepository(database)
	membershipRepo := postgres.NewMembershipRepository(database)
	scheduleRepo := postgres.NewScheduleRepository(database)
	standupRepo := postgres.NewStandupRepository(database)
	responseRepo := postgres.NewResponseRepository(database)
	analyticsRepo := postgres.NewAnalyticsRepository(database)

	publisher := buildPublisher(cfg)
	defer publisher.Close()

	membershipService := service.NewMembershipService(membershipRepo, teamRepo, userRepo)
	teamService := service.NewTeamService(teamRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, teamRepo)
	standupService := service.NewStandupService(standupRepo, responseRepo, membershipRepo, membershipService, publisher)
	responseService := service.NewResponseService(responseRepo, standupRepo, membershipRepo, publisher)
	userService := service.NewUserService(userRepo)

	analyticsService, err := service.NewAnalyticsService(analyticsRepo, cfg.Analytics.ReportingTimezone)
	if err != nil {
		log.Fatalf("analytics service: %v", err)
	}
	dashboardService, err := service.NewDashboardService(teamRepo, standupRepo, responseRepo, analyticsRepo, cfg.Analytics.ReportingTimezone)
	if err != nil {
		log.Fatalf("dashboard service: %v", err)
	}

	engine := scheduler.NewEngine(
		scheduleRepo,
		standupRepo,
		standupService,
		buildLease(cfg),
		cfg.Scheduler.TickInterval,
		cfg.Scheduler.TickTimeout,
	)

	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	go engine.Run(schedulerCtx)

	h := handler.NewHandler(
		teamService,
		membershipService,
		scheduleService,
		standupService,
		responseService,
		analyticsService,
		dashboardService,
		userService,
	)
	srv := server.NewServer(h, cfg.HTTPAddress, auth.Config{
		Secret: cfg.Auth.JWTSecret,
		Issuer: cfg.Auth.JWTIssuer,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}

func buildPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.Events.KafkaBrokers) == 0 {
		log.Println("events: kafka brokers not configured, publishing disabled")
		return events.NewNoopPublisher()
	}
	return events.NewKafkaPublisher(cfg.Events.KafkaBrokers, cfg.Events.Topic)
}

func buildLease(cfg *config.Config) scheduler.Lease {
	if cfg.Scheduler.RedisURL == "" {
		log.Println("scheduler: redis not configured, running without leader lease")
		return scheduler.NewNoopLease()
	}

	opts, err := redis.ParseURL(cfg.Scheduler.RedisURL)
	if err != nil {
		log.Fatalf("scheduler: invalid redis url: %v", err)
	}
	client := redis.NewClient(opts)
	return scheduler.NewRedisLease(client, "standup-tracker:scheduler-lease", cfg.Scheduler.LeaseTTL)
}
