package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"voicebank/internal/config"
	"voicebank/internal/delivery"
	ws "voicebank/internal/delivery/ws"
	"voicebank/internal/domain"
	"voicebank/internal/domain/stations"
	"voicebank/internal/infra"
)

func main() {

	// LOGGER
	zcore, _ := zap.NewProduction()
	zl := logger.NewZapLogger(zcore.Sugar())

	// ENV
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		panic("DATABASE_URL is not set")
	}

	// POSTGRES
	ctx := context.Background()

	pool, err := infra.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		panic("cannot connect pgxpool: " + err.Error())
	}
	defer pool.Close()

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctxPing); err != nil {
		panic("postgres ping failed: " + err.Error())
	}

	if err := infra.EnsureSchema(ctx, pool); err != nil {
		panic("apply schema: " + err.Error())
	}

	// STATIONS
	s1 := stations.NewS1EncodeWAV(cfg.MaxAudioBytes)
	s2 := stations.NewS2Fingerprint()
	s3 := stations.NewS3Provenance()

	// INGEST SERVICE
	repo := infra.NewPostgresSubmissionRepo(pool)
	ingest := domain.NewIngestService(repo, s1, s2, s3, zl)

	// WS HUB
	hub := ws.NewHub()

	// BROADCAST LISTENER
	go func() {
		for ev := range ingest.Events() {

			type wsAccepted struct {
				SubmissionID int64  `json:"submissionId"`
				Title        string `json:"title"`
				ContentHash  string `json:"contentHash"`
				SampleRate   int    `json:"sampleRate"`
			}

			payload, err := json.Marshal(wsAccepted{
				SubmissionID: ev.SubmissionID,
				Title:        ev.Title,
				ContentHash:  ev.ContentHash,
				SampleRate:   ev.SampleRate,
			})
			if err != nil {
				log.Printf("[SEND][ERR] json marshal failed: %v", err)
				continue
			}

			hub.SendToRoom(ws.DefaultRoom, payload)
		}
	}()

	// HANDLERS
	hSubmit := delivery.NewSubmitHandler(ingest, zl)

	// ROUTER
	r := chi.NewRouter()

	r.Use(delivery.RequestLogger(zl))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	delivery.RegisterRoutes(r, hSubmit)

	r.Get("/ws", ws.FeedHandler(hub))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server started",
		Fields:  map[string]any{"port": cfg.Port, "maxAudioBytes": cfg.MaxAudioBytes},
	})

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "server crashed",
			Error:   err,
		})
	}
}
