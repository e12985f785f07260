package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tacktile/interview-agent/internal/archive"
	"github.com/tacktile/interview-agent/internal/evaluation"
	"github.com/tacktile/interview-agent/internal/interviewer"
	"github.com/tacktile/interview-agent/internal/prompts"
	"github.com/tacktile/interview-agent/internal/room"
	"github.com/tacktile/interview-agent/internal/session"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	replayFile := flag.String("replay", "", "re-evaluate an exported chat history file and exit")
	flag.Parse()

	cfg := loadConfig()

	store := evaluation.NewStore(cfg.evaluationsDir)
	engine := evaluation.NewEngine(evaluation.NewOpenAIClient(cfg.openAIKey, cfg.evalModel))

	if *replayFile != "" {
		if err := runReplay(cfg, engine, store, *replayFile); err != nil {
			slog.Error("replay failed", "file", *replayFile, "error", err)
			os.Exit(1)
		}
		return
	}

	if cfg.roomURL == "" {
		slog.Error("ROOM_URL is required outside replay mode")
		os.Exit(1)
	}

	var archiveStore *archive.Store
	if cfg.archiveDBURL != "" {
		var err error
		archiveStore, err = archive.Open(cfg.archiveDBURL)
		if err != nil {
			slog.Error("archive database unavailable", "error", err)
			os.Exit(1)
		}
		defer archiveStore.Close()
	}

	interviewCfg := prompts.ConfigFor(cfg.position)
	sess := session.New(interviewCfg)

	var recorder *archive.Recorder
	if archiveStore != nil {
		var err error
		recorder, err = archive.NewRecorder(archiveStore, sess.ID, "", interviewCfg.Position)
		if err != nil {
			slog.Error("archive recorder", "error", err)
			os.Exit(1)
		}
		defer recorder.Close()
	}

	dialCtx, dialCancel := context.WithTimeout(context.Background(), 15*time.Second)
	roomClient, err := room.Dial(dialCtx, cfg.roomURL, room.JoinMetadata{
		SessionID: sess.ID,
		Identity:  cfg.agentIdentity,
		Position:  interviewCfg.Position,
	})
	dialCancel()
	if err != nil {
		slog.Error("room dial failed", "url", cfg.roomURL, "error", err)
		os.Exit(1)
	}

	orchCfg := session.Config{
		Session:  sess,
		Engine:   engine,
		Store:    store,
		Recorder: recorder,
		Voice:    roomClient,
	}
	if cfg.repliesEnabled {
		orchCfg.Responder = interviewer.New(
			prompts.ForInterview(interviewCfg), cfg.interviewerModel,
			cfg.interviewerMaxTokens, nil)
	}
	orch := session.NewOrchestrator(orchCfg)

	mux := http.NewServeMux()
	registerRoutes(mux, deps{
		store:        store,
		archiveStore: archiveStore,
		orch:         orch,
	})

	addr := ":" + cfg.port
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if serveErr := srv.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()
	slog.Info("agent starting", "addr", addr, "session_id", sess.ID,
		"position", interviewCfg.Position)

	orch.Start(context.Background(), prompts.SessionInstruction)
	go roomClient.Listen(context.Background(), orch)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		orch.Complete()
		roomClient.Close()
	}()

	// Block until the evaluation artifact is on disk (or the session closed
	// without data); a premature exit would lose the interview outcome.
	orch.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)

	if err := orch.Err(); err != nil {
		slog.Error("session closed with persistence failure", "error", err)
		os.Exit(1)
	}
	slog.Info("agent stopped", "session_id", sess.ID)
}
