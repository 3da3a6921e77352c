package cmd

import (
	"log/slog"
	"os"

	httpadapter "garments/internal/adapters/in/http"
	"garments/internal/adapters/out/postgres/cartrepo"
	"garments/internal/adapters/out/postgres/measurementrepo"
	"garments/internal/adapters/out/postgres/orderrepo"
	"garments/internal/core/application/usecases/commands"
	"garments/internal/core/application/usecases/queries"
	"garments/internal/jobs"
	"garments/internal/sessions"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config Config
	gormDB *gorm.DB
	logger *slog.Logger

	cartRepository        *cartrepo.GormCartRepository
	measurementRepository *measurementrepo.GormMeasurementRepository
	orderRepository       *orderrepo.GormOrderRepository
	sessionRegistry       *sessions.Registry
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cartRepository := cartrepo.NewGormCartRepository(gormDB)

	return CompositionRoot{
		config:                config,
		gormDB:                gormDB,
		logger:                logger,
		cartRepository:        cartRepository,
		measurementRepository: measurementrepo.NewGormMeasurementRepository(gormDB),
		orderRepository:       orderrepo.NewGormOrderRepository(gormDB),
		sessionRegistry:       sessions.NewRegistry(cartRepository, logger),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) SessionRegistry() *sessions.Registry {
	return c.sessionRegistry
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderRepository, c.cartRepository, c.logger)
}

func (c *CompositionRoot) CreateGetMeasurementsQueryHandler() queries.GetMeasurementsQueryHandler {
	return queries.NewGetMeasurementsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.sessionRegistry,
		c.measurementRepository,
		c.CreateGetMeasurementsQueryHandler(),
		c.CreatePlaceOrderCommandHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.sessionRegistry, c.config.SessionMaxAge, c.logger)
}
