package main

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/healthinsurechain/policywatch-backend/internal/model"
	"github.com/healthinsurechain/policywatch-backend/internal/storage/clickhouse"
	"github.com/healthinsurechain/policywatch-backend/internal/watcher"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const maxRecentConfirmations = 100

type statsResponse struct {
	model.WatcherStats
	RecentConfirmations []model.Confirmation `json:"recent_confirmations,omitempty"`
}

func startAdminServer(ctx context.Context, addr string, svc *watcher.Service, store *clickhouse.Repository, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/stats", statsHandler(svc, store, logger))

	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting admin server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("admin server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown admin server", zap.Error(err))
		}
	}()
}

func statsHandler(svc *watcher.Service, store *clickhouse.Repository, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			logger.Warn("stats request failed", zap.Error(err))
			http.Error(w, "stats unavailable", http.StatusBadGateway)
			return
		}

		resp := statsResponse{WatcherStats: stats}
		if store != nil {
			if limit := parseLimit(r.URL.Query().Get("confirmations")); limit > 0 {
				confirmations, err := store.RecentConfirmations(r.Context(), limit)
				if err != nil {
					logger.Warn("recent confirmations lookup failed", zap.Error(err))
				} else {
					resp.RecentConfirmations = confirmations
				}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Warn("failed to write stats response", zap.Error(err))
		}
	}
}

func parseLimit(raw string) uint64 {
	if raw == "" {
		return 0
	}
	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	if limit > maxRecentConfirmations {
		return maxRecentConfirmations
	}
	return limit
}

func startGRPCServer(ctx context.Context, addr string, logger *zap.Logger) error {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("grpc server failed", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()
	return nil
}
