// README: Entry point; loads config, wires services, starts the Telegram bot
// and the HTTP API.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"viagem/internal/config"
	"viagem/internal/geocode"
	httptransport "viagem/internal/http"
	"viagem/internal/infra"
	"viagem/internal/modules/history"
	"viagem/internal/modules/pricing"
	"viagem/internal/modules/trip"
	"viagem/internal/telegram"
	"viagem/internal/types"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mapsClient, err := geocode.NewClient(cfg.Geocode.APIKey, cfg.Geocode.Language, cfg.Geocode.Region, cfg.Geocode.Timeout)
	if err != nil {
		log.Fatalf("geocode init: %v", err)
	}
	var geocoder trip.Geocoder = geocode.WithFallback(mapsClient, geocode.QueryChain{
		CityHint:      cfg.Geocode.CityHint,
		StateSuffix:   cfg.Geocode.StateSuffix,
		CountrySuffix: cfg.Geocode.CountrySuffix,
	})
	if cfg.Redis.Addr != "" {
		geocoder = geocode.WithCache(geocoder, infra.NewRedis(cfg.Redis.Addr), cfg.Geocode.CacheTTL)
	}

	var historyStore *history.Store
	var tripHistory trip.History
	if cfg.DB.DSN != "" {
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatalf("db init: %v", err)
		}
		defer pool.Close()
		historyStore = history.NewStore(pool)
		if err := historyStore.EnsureSchema(ctx); err != nil {
			log.Fatalf("db schema: %v", err)
		}
		tripHistory = historyStore
	} else {
		log.Println("VIAGEM_DB_DSN not set, quote history disabled")
	}

	pricingSvc := pricing.NewService(nil)
	sessions := trip.NewStore()
	engine := trip.NewService(sessions, pricingSvc, geocoder, tripHistory, trip.Config{
		AvgSpeedKmh:      cfg.Trip.AvgSpeedKmh,
		DefaultPoint:     types.Point{Lat: cfg.Trip.DefaultLat, Lng: cfg.Trip.DefaultLng},
		DefaultPointName: cfg.Trip.DefaultPointName,
	})

	tg, err := telegram.New(cfg.Telegram.Token, engine)
	if err != nil {
		log.Fatalf("telegram init: %v", err)
	}

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(pricingSvc, historyStore),
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()
	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()

	log.Println("viagem bot started")
	tg.Start(ctx)
}
