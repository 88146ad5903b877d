package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parley/backend/internal/config"
	"parley/backend/internal/handler"
	transport "parley/backend/internal/http"
	"parley/backend/internal/language"
	"parley/backend/internal/logger"
	"parley/backend/internal/scheduler"
	"parley/backend/internal/service"
	"parley/backend/internal/service/engine"
	"parley/backend/internal/snowflake"
	"parley/backend/internal/speech"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	if err := snowflake.Init(1); err != nil {
		log.Fatalf("init id node: %v", err)
	}

	registry := language.NewRegistry()

	eng, err := engine.New(engine.Config{
		Provider: cfg.Engine.Provider,
		APIKey:   cfg.Engine.APIKey,
		BaseURL:  cfg.Engine.BaseURL,
		Model:    cfg.Engine.Model,
	})
	if err != nil {
		log.Fatalf("create translation engine: %v", err)
	}
	limiter := engine.NewRateLimiter(cfg.Engine.QPS)
	gateway := service.NewTranslationGateway(registry, eng, limiter)

	reviewService := service.NewReviewService(service.MockSummaries(time.Now()))
	conversationService := service.NewConversationService(registry, gateway, reviewService, func() service.SpeechEngines {
		return service.SpeechEngines{
			Recognizer:   speech.NewStubRecognizer(nil),
			PrimaryTTS:   speech.NewStubSynthesizer(speech.StubSynthesizerConfig{}),
			SecondaryTTS: speech.NewStubSynthesizer(speech.StubSynthesizerConfig{}),
		}
	})

	languageHandler := handler.NewLanguageHandler(registry)
	translateHandler := handler.NewTranslateHandler(gateway)
	conversationHandler := handler.NewConversationHandler(conversationService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	router := transport.NewRouter(languageHandler, translateHandler, conversationHandler, reviewHandler)

	sched := scheduler.New(conversationService, time.Minute, cfg.SessionTTL)
	sched.Start()

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		sched.Stop()
		os.Exit(0)
	}()

	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
