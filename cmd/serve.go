package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kodekulture/wordjourney/game/word"
	"github.com/kodekulture/wordjourney/handler"
	"github.com/kodekulture/wordjourney/internal/config"
	"github.com/kodekulture/wordjourney/repository"
	"github.com/kodekulture/wordjourney/repository/badgr"
	"github.com/kodekulture/wordjourney/repository/postgres"
	"github.com/kodekulture/wordjourney/repository/redis"
	"github.com/kodekulture/wordjourney/repository/sqlite"
	"github.com/kodekulture/wordjourney/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	appCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				zlog.Err(err).Msg("failed to close store")
			}
		}
	}()

	sr, closer, err := snapshotStore(appCtx)
	if err != nil {
		return err
	}
	closers = append(closers, closer)
	pr, closer, err := progressStore(appCtx)
	if err != nil {
		return err
	}
	closers = append(closers, closer)

	src, err := word.NewLocal()
	if err != nil {
		return err
	}
	srv := service.New(appCtx, src, sr, pr)
	h := handler.New(srv)

	done := make(chan struct{})
	go shutdown(h, srv, done)
	port := config.Get("PORT")
	zlog.Info().Str("port", port).Msg("server started")
	if err = h.Start(port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}

func snapshotStore(ctx context.Context) (repository.Snapshot, io.Closer, error) {
	switch store := config.Get("SNAPSHOT_STORE"); store {
	case "badger":
		db, err := badgr.Open(config.Get("BADGER_PATH"))
		if err != nil {
			return nil, nil, err
		}
		ttl := time.Duration(config.GetInt("SNAPSHOT_TTL_DAYS", 30)) * 24 * time.Hour
		return badgr.New(db, ttl), db, nil
	case "redis":
		cl, err := redis.NewClient(ctx, config.Get("REDIS_URL"))
		if err != nil {
			return nil, nil, err
		}
		return redis.NewSnapshotRepo(cl), cl, nil
	default:
		return nil, nil, fmt.Errorf("unknown snapshot store %q", store)
	}
}

func progressStore(ctx context.Context) (repository.Progress, io.Closer, error) {
	switch store := config.Get("PROGRESS_STORE"); store {
	case "sqlite":
		db, err := sqlite.Open(config.Get("SQLITE_PATH"))
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewProgressRepo(db), db, nil
	case "postgres":
		pool, err := postgres.Connect(ctx, config.Get("POSTGRES_URL"))
		if err != nil {
			return nil, nil, err
		}
		if err = postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewProgressRepo(pool), closerFunc(pool.Close), nil
	default:
		return nil, nil, fmt.Errorf("unknown progress store %q", store)
	}
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

func shutdown(h *handler.Handler, srv *service.Service, done chan<- struct{}) {
	// Wait for interrupt signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-sig
	zlog.Info().Msg("shutdown started")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	if err := h.Stop(ctx); err != nil {
		zlog.Err(err).Msg("failed to stop the server")
	}
	srv.Stop(ctx)
	zlog.Info().Msg("shutdown complete")
	close(done)
}
