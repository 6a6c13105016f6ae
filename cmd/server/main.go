// Package main boots the moodmate HTTP service and wires application dependencies.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/easeaico/moodmate/internal/config"
	"github.com/easeaico/moodmate/internal/emotion"
	"github.com/easeaico/moodmate/internal/handler"
	"github.com/easeaico/moodmate/internal/keywords"
	"github.com/easeaico/moodmate/internal/memory"
	"github.com/easeaico/moodmate/internal/reply"
	"github.com/easeaico/moodmate/internal/session"
	"github.com/easeaico/moodmate/internal/storage"
	"github.com/easeaico/moodmate/internal/translate"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load env files: %v", err)
	}
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)
	slog.Info("slog logger initialized", "level", cfg.LogLevel.String())

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	slog.Info("configuration loaded", "storage", cfg.StorageBackend, "translator", cfg.Translator, "summary_policy", cfg.SummaryPolicy)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	chatLog, err := storage.Open(ctx, cfg.StorageBackend, cfg.DataDir, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open chat log: %v", err)
	}
	defer func() {
		if err := chatLog.Close(); err != nil {
			slog.Warn("failed to close chat log", "error", err.Error())
		}
	}()

	rules, err := emotion.LoadRules(cfg.RulesFile)
	if err != nil {
		log.Fatalf("failed to load mood rules: %v", err)
	}

	translator, err := translate.New(ctx, translate.Options{
		Kind:          translate.Kind(cfg.Translator),
		Model:         cfg.TranslateModel,
		GoogleAPIKey:  cfg.GoogleAPIKey,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
	})
	if err != nil {
		log.Fatalf("failed to create translator: %v", err)
	}

	policy, err := reply.ParseSummaryPolicy(cfg.SummaryPolicy)
	if err != nil {
		log.Fatalf("invalid summary policy: %v", err)
	}
	var selector reply.Selector = reply.FirstSelector{}
	if cfg.ReplySelection == "random" {
		selector = reply.NewRandomSelector(rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)))
	}

	extractor := keywords.New(keywords.WithStopWords(rules.Words()...))
	sessions := session.NewMemoryStore(cfg.HistoryLimit)
	composer := reply.NewComposer(
		emotion.NewClassifier(rules, nil),
		extractor,
		sessions,
		chatLog,
		memory.NewSummarizer(extractor),
		reply.Config{
			CrisisMessage: cfg.CrisisMessage,
			Selector:      selector,
			SummaryPolicy: policy,
		},
	)

	h, err := handler.New(composer, translator, chatLog, sessions)
	if err != nil {
		log.Fatalf("failed to create handler: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed: %v", err)
		}
	case <-ctx.Done():
		fmt.Println("\nshutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err.Error())
	}
	slog.Info("server shutdown complete")
}
