package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Domenick1991/skybooking/config"
	"github.com/Domenick1991/skybooking/internal/bootstrap"
	"github.com/Domenick1991/skybooking/internal/cache"
	"github.com/Domenick1991/skybooking/internal/kafka"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/Domenick1991/skybooking/internal/seed"
	"github.com/Domenick1991/skybooking/internal/service/booking"
	"github.com/Domenick1991/skybooking/internal/service/catalog"
	"github.com/Domenick1991/skybooking/internal/service/contact"
	"github.com/Domenick1991/skybooking/internal/service/flights"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := repository.NewStore()
	airlineRepo := repository.NewAirlineRepository(store)
	airportRepo := repository.NewAirportRepository(store)
	aircraftRepo := repository.NewAircraftRepository(store)
	flightRepo := repository.NewFlightRepository(store)
	bookingRepo := repository.NewBookingRepository(store)

	if err := seed.Load(ctx, airlineRepo, airportRepo, aircraftRepo, flightRepo); err != nil {
		logger.Fatal("seed baseline data", zap.Error(err))
	}

	var searchCache flights.SearchCache
	if cfg.Redis.Addr != "" {
		searchCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.SearchTTLSeconds)*time.Second)
	}

	var producer *kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
	}
	var bookingProducer booking.Producer
	var contactProducer contact.Producer
	if producer != nil {
		bookingProducer = producer
		contactProducer = producer
	}

	catalogService := catalog.NewCatalogService(airlineRepo, airportRepo)
	flightService := flights.NewFlightService(flightRepo, airlineRepo, airportRepo, aircraftRepo, searchCache, logger)
	bookingService := booking.NewBookingService(
		bookingRepo,
		flightService,
		bookingProducer,
		cfg.Kafka.BookingTopic,
		logger,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	contactService := contact.NewContactService(contactProducer, cfg.Kafka.NotificationsTopic, logger)

	if err := bootstrap.Run(ctx, cfg, logger, catalogService, flightService, bookingService, contactService); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
