package di

import (
	"github.com/oorlinsky/conceptual-server-graph/application/commands"
	commandbus "github.com/oorlinsky/conceptual-server-graph/application/commands/bus"
	commandhandlers "github.com/oorlinsky/conceptual-server-graph/application/commands/handlers"
	"github.com/oorlinsky/conceptual-server-graph/application/ports"
	"github.com/oorlinsky/conceptual-server-graph/application/queries"
	querybus "github.com/oorlinsky/conceptual-server-graph/application/queries/bus"
	queryhandlers "github.com/oorlinsky/conceptual-server-graph/application/queries/handlers"
	"github.com/oorlinsky/conceptual-server-graph/infrastructure/config"
	"github.com/oorlinsky/conceptual-server-graph/infrastructure/triplestore"
	"github.com/oorlinsky/conceptual-server-graph/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Metrics    *observability.Collector
	Store      ports.TripleStore
	CommandBus *commandbus.CommandBus
	QueryBus   *querybus.QueryBus
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideMetrics creates the Prometheus metrics collector
func ProvideMetrics(cfg *config.Config) *observability.Collector {
	return observability.NewCollector("taxonomy")
}

// ProvideTripleStore creates the SPARQL store client
func ProvideTripleStore(cfg *config.Config, logger *zap.Logger, metrics *observability.Collector) ports.TripleStore {
	return triplestore.NewClient(cfg, logger, metrics)
}

// ProvideCommandBus creates the command bus with all handlers registered
func ProvideCommandBus(store ports.TripleStore, cfg *config.Config, logger *zap.Logger) (*commandbus.CommandBus, error) {
	b := commandbus.NewCommandBus()
	if err := b.Register(
		commands.InsertTermCommand{},
		commandhandlers.NewInsertTermHandler(store, cfg.RootConceptURI, logger),
	); err != nil {
		return nil, err
	}
	return b, nil
}

// ProvideQueryBus creates the query bus with all handlers registered
func ProvideQueryBus(store ports.TripleStore, cfg *config.Config, logger *zap.Logger) (*querybus.QueryBus, error) {
	b := querybus.NewQueryBus()
	if err := b.Register(
		queries.GetGraphQuery{},
		queryhandlers.NewGetGraphHandler(store, cfg.RootConceptURI, logger),
	); err != nil {
		return nil, err
	}
	return b, nil
}
