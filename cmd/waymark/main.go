// Command waymark loads a route map file, runs one shortest-path query and
// prints the route report to stdout.
package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/waymark-routing/waymark/pkg/engine"
	"github.com/waymark-routing/waymark/pkg/guidance"
	"github.com/waymark-routing/waymark/pkg/logger"
)

var (
	mapPath = flag.String("map", "", "route map file (Node/Edge text format)")
	source  = flag.String("source", "", "source vertex label")
	target  = flag.String("target", "", "destination vertex label")
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	if *mapPath == "" || *source == "" || *target == "" {
		flag.Usage()
		os.Exit(2)
	}

	routingEngine, err := engine.NewEngine(*mapPath, log)
	if err != nil {
		log.Fatal("loading route map", zap.Error(err))
	}

	route, err := routingEngine.GetRouter().Route(*source, *target)
	if err != nil {
		log.Fatal("route query failed", zap.Error(err))
	}

	if err := guidance.WriteRoute(os.Stdout, route); err != nil {
		log.Fatal("writing route report", zap.Error(err))
	}
}
