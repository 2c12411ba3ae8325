package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/bloops-games/sketchy/internal/buildinfo"
	"github.com/bloops-games/sketchy/internal/cache"
	"github.com/bloops-games/sketchy/internal/canvas"
	"github.com/bloops-games/sketchy/internal/clock"
	"github.com/bloops-games/sketchy/internal/database"
	worddb "github.com/bloops-games/sketchy/internal/database/word/database"
	"github.com/bloops-games/sketchy/internal/game"
	"github.com/bloops-games/sketchy/internal/logging"
	"github.com/bloops-games/sketchy/internal/server"
	"github.com/bloops-games/sketchy/internal/shutdown"
	"github.com/bloops-games/sketchy/internal/transport"
	"github.com/bloops-games/sketchy/internal/wordbank"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/sync/errgroup"
)

var version string

func main() {
	_, _ = fmt.Fprint(os.Stdout, buildinfo.Graffiti)
	_, _ = fmt.Fprintf(os.Stdout, buildinfo.GreetingCLI, buildinfo.ProjectName, version, buildinfo.GithubURL)

	ctx, done := shutdown.New()
	defer done()

	config := game.Config{}
	if err := envconfig.Process("", &config); err != nil {
		logging.DefaultLogger().Fatalf("processing the config: %v", err)
	}

	if len(os.Args) > 1 {
		config.Addr = os.Args[1]
	}

	logger := logging.NewLogger(config.Debug)
	ctx = logging.WithLogger(ctx, logger)

	if err := realMain(ctx, config); err != nil {
		logger.Fatalf("main.realMain: %v", err)
	}
}

func realMain(ctx context.Context, config game.Config) error {
	logger := logging.FromContext(ctx).Named("main.realMain")

	db, err := database.New(ctx, &config.DB)
	if err != nil {
		return fmt.Errorf("new database: %w", err)
	}

	defer db.Close(ctx)

	recent, err := cache.NewLRU(config.RecentWords)
	if err != nil {
		return fmt.Errorf("can not create lru cache: %w", err)
	}

	bank, err := wordbank.New(ctx, worddb.New(db), recent)
	if err != nil {
		return fmt.Errorf("word bank: %w", err)
	}

	connector, err := transport.New(transport.Config{
		Transport: config.Transport,
		Addr:      config.Addr,
		Host:      config.Host,
		Discovery: config.Discovery,
	})
	if err != nil {
		return fmt.Errorf("transport: %w", err)
	}

	cv := canvas.New(config.CanvasWidth, config.CanvasHeight)
	hub := game.NewHub(game.HubConfig{
		Canvas:    cv,
		Words:     bank,
		RoundTime: config.RoundTime,
		CellSize:  config.CellSize,
		Address:   config.Addr,

		WriteTimeout: config.WriteTimeout,
	})
	session := game.NewSession(hub, cv, connector, config.Host)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return session.Run(gctx)
	})

	if config.StatusAddr != "" {
		srv, err := server.New(config.StatusAddr)
		if err != nil {
			return fmt.Errorf("server.New: %w", err)
		}

		router := server.NewRouter(server.Deps{SessionID: session.ID.String(), Game: hub, Canvas: cv})
		g.Go(func() error {
			return srv.ServeHTTP(gctx, &http.Server{Handler: router, ReadHeaderTimeout: 10 * time.Second})
		})
	}

	console := newConsole(os.Stdout, config.Layout())
	g.Go(func() error {
		return clock.New(config.FPS).Run(gctx, func(dt float64) {
			hub.ProcessEvent(game.Frame{DT: dt})
			console.Render(hub.Role())
		})
	})

	// stdin cannot be interrupted, so the reader is left out of the group
	go func() {
		if err := readInput(gctx, os.Stdin, os.Stdout, config.CellSize, bank, hub.ProcessEvent); err != nil {
			logger.Errorf("read input: %v", err)
		}
	}()

	if err := g.Wait(); err != nil {
		return fmt.Errorf("session %s: %w", session.ID, err)
	}

	logger.Info("bye")
	return nil
}
