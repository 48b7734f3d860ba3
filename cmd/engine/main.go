package main

import (
	"context"
	"flag"
	"runtime"

	"go.uber.org/zap"

	"github.com/waymark-routing/waymark/pkg/engine"
	"github.com/waymark-routing/waymark/pkg/http"
	"github.com/waymark-routing/waymark/pkg/http/usecases"
	"github.com/waymark-routing/waymark/pkg/logger"
	"github.com/waymark-routing/waymark/pkg/spatialindex"
	"github.com/waymark-routing/waymark/pkg/util"
)

var (
	mapPath      = flag.String("map", "./data/routes.map", "route map file (Node/Edge text format)")
	configPath   = flag.String("config", "./data/", "directory containing config.yaml")
	snapRadius   = flag.Float64("snap_radius", 0.5, "snap-to-vertex search radius in km")
	useRateLimit = flag.Bool("rate_limit", false, "enable API rate limiting")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	if err := util.ReadConfig(*configPath); err != nil {
		logger.Warn("config file not found, using defaults", zap.Error(err))
	}

	routingEngine, err := engine.NewEngine(*mapPath, logger)
	if err != nil {
		panic(err)
	}

	rtree := spatialindex.NewRtree[string]()
	rtree.Build(routingEngine.GetRouteMap(), logger)

	routingService := usecases.NewRoutingService(logger, routingEngine.GetRouter(), rtree,
		*snapRadius, runtime.NumCPU())

	api := http.NewServer(logger)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx, logger, *useRateLimit, routingService)

	signal := http.GracefulShutdown()

	logger.Info("Waymark Routing Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
