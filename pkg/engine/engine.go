package engine

import (
	"fmt"
	"os"

	da "github.com/waymark-routing/waymark/pkg/datastructure"
	"github.com/waymark-routing/waymark/pkg/engine/routing"
	"go.uber.org/zap"
)

// Engine owns the loaded route map and the router serving queries on it.
type Engine struct {
	router *routing.Router[string]
	log    *zap.Logger
}

func NewEngine(mapPath string, log *zap.Logger) (*Engine, error) {
	f, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("opening map file: %w", err)
	}
	defer f.Close()

	rm, err := da.ReadRouteMap(f)
	if err != nil {
		return nil, err
	}
	log.Info("route map loaded",
		zap.String("path", mapPath),
		zap.Int("vertices", rm.NumVertices()),
		zap.Int("edges", rm.NumEdges()))

	return &Engine{
		router: routing.NewRouter(rm, log),
		log:    log,
	}, nil
}

func (e *Engine) GetRouter() *routing.Router[string] {
	return e.router
}

func (e *Engine) GetRouteMap() *da.RouteMap[string] {
	return e.router.GetRouteMap()
}
