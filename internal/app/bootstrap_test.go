package app_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/chrono_catalog/config"
	"github.com/Gunvolt24/chrono_catalog/internal/app"
	"github.com/Gunvolt24/chrono_catalog/internal/ports/mocks"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func TestAppRun_GracefulShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)

	// воркер ждёт отмены контекста
	worker := mocks.NewMockBackgroundWorker(ctrl)
	worker.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}).Times(1)
	worker.EXPECT().Close().Return(nil).Times(1)

	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
		Sweeper:    worker,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
}

func TestAppRun_ListenErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)

	worker := mocks.NewMockBackgroundWorker(ctrl)
	worker.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}).AnyTimes()
	worker.EXPECT().Close().Return(nil).Times(1)

	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: "not-an-address", Handler: http.NewServeMux()},
		Sweeper:    worker,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.Error(t, a.Run(ctx))
}

func TestBootstrap_FailsWithoutDatabase(t *testing.T) {
	cfg := &config.Config{}
	cfg.Postgres.DSN = "postgres://u:p@127.0.0.1:1/db?sslmode=disable"
	cfg.Postgres.ConnectTimeout = 200 * time.Millisecond

	a, cleanup, err := app.Bootstrap(context.Background(), cfg)
	require.Error(t, err)
	require.Nil(t, a)
	require.NotNil(t, cleanup)
	cleanup()
}
