package cmd

import (
	"log/slog"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/adapters/out/backup"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/adapters/out/postgres/blobstore"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/application/ledger"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/application/usecases/commands"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/application/usecases/queries"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/services"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, the owning order store and the use case
// handlers together.
type CompositionRoot struct {
	config Config

	blobStore     *blobstore.GormBlobStore
	backupService *backup.StorageBackupService
	orderStore    *ledger.OrderStore

	aggregator services.Aggregator
	statistics services.Statistics
}

// NewCompositionRoot builds the object graph on top of the given database
// connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	blobStore := blobstore.NewGormBlobStore(gormDB)
	backupService := backup.NewStorageBackupService(blobStore)

	return CompositionRoot{
		config:        config,
		blobStore:     blobStore,
		backupService: backupService,
		orderStore:    ledger.NewOrderStore(blobStore, backupService, logger),
		aggregator:    services.NewAggregator(),
		statistics:    services.NewStatistics(),
	}
}

// OrderStore exposes the owning store for hydration at startup and for the
// backup job.
func (c *CompositionRoot) OrderStore() *ledger.OrderStore {
	return c.orderStore
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.orderStore, c.backupService, c.config.BackupSchedule, logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateUpdateLineItemCommandHandler() commands.UpdateLineItemCommandHandler {
	return commands.NewUpdateLineItemCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateDeleteLineItemCommandHandler() commands.DeleteLineItemCommandHandler {
	return commands.NewDeleteLineItemCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateClearOrdersCommandHandler() commands.ClearOrdersCommandHandler {
	return commands.NewClearOrdersCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateImportOrdersCommandHandler() commands.ImportOrdersCommandHandler {
	return commands.NewImportOrdersCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateRestoreBackupCommandHandler() commands.RestoreBackupCommandHandler {
	return commands.NewRestoreBackupCommandHandler(c.orderStore, c.backupService)
}

func (c *CompositionRoot) CreateDeleteBackupCommandHandler() commands.DeleteBackupCommandHandler {
	return commands.NewDeleteBackupCommandHandler(c.backupService)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetLineItemsQueryHandler() queries.GetLineItemsQueryHandler {
	return queries.NewGetLineItemsQueryHandler(c.orderStore, c.aggregator)
}

func (c *CompositionRoot) CreateGetEmployeeTotalsQueryHandler() queries.GetEmployeeTotalsQueryHandler {
	return queries.NewGetEmployeeTotalsQueryHandler(c.orderStore, c.aggregator)
}

func (c *CompositionRoot) CreateGetEmployeeStatsQueryHandler() queries.GetEmployeeStatsQueryHandler {
	return queries.NewGetEmployeeStatsQueryHandler(c.orderStore, c.aggregator, c.statistics)
}

func (c *CompositionRoot) CreateListEmployeesQueryHandler() queries.ListEmployeesQueryHandler {
	return queries.NewListEmployeesQueryHandler(c.orderStore, c.config.Roster)
}

func (c *CompositionRoot) CreateListBackupsQueryHandler() queries.ListBackupsQueryHandler {
	return queries.NewListBackupsQueryHandler(c.backupService)
}
