package blobstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/HomamAlyaghshi/employee-food-accounting/internal/adapters/out/postgres/blobstore"
	"github.com/HomamAlyaghshi/employee-food-accounting/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// BlobStoreIntegrationTestSuite verifies blob persistence against a real
// PostgreSQL container.
type BlobStoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *blobstore.GormBlobStore
}

func (suite *BlobStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&blobstore.BlobDTO{}))
}

func (suite *BlobStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE blobs").Error)
	suite.store = blobstore.NewGormBlobStore(suite.db)
}

func (suite *BlobStoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BlobStoreIntegrationTestSuite) TestSaveAndLoad_RoundTrip() {
	ctx := context.Background()
	saved := []order.Snapshot{{
		ID:          "a2f1d8a4-9f1b-4c93-8a1d-3f2a6c1b5e90",
		Name:        "Lunch",
		DeliveryFee: 10,
		Timestamp:   time.Now().UTC().Truncate(time.Second),
	}}

	suite.Require().NoError(suite.store.Save(ctx, "foodOrders", saved))

	var loaded []order.Snapshot
	suite.Require().NoError(suite.store.Load(ctx, "foodOrders", &loaded))
	suite.Require().Len(loaded, 1)
	suite.Equal("Lunch", loaded[0].Name)
	suite.InDelta(10, loaded[0].DeliveryFee, 0.001)
}

func (suite *BlobStoreIntegrationTestSuite) TestSave_OverwritesExistingKey() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Save(ctx, "foodOrders", []string{"first"}))
	suite.Require().NoError(suite.store.Save(ctx, "foodOrders", []string{"second"}))

	var loaded []string
	suite.Require().NoError(suite.store.Load(ctx, "foodOrders", &loaded))
	suite.Equal([]string{"second"}, loaded)
}

func (suite *BlobStoreIntegrationTestSuite) TestLoad_MissingKeyLeavesDestUntouched() {
	loaded := []string{"sentinel"}
	suite.Require().NoError(suite.store.Load(context.Background(), "absent", &loaded))
	suite.Equal([]string{"sentinel"}, loaded)
}

func (suite *BlobStoreIntegrationTestSuite) TestDelete_RemovesKey() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Save(ctx, "foodOrders", []string{"data"}))
	suite.Require().NoError(suite.store.Delete(ctx, "foodOrders"))

	var loaded []string
	suite.Require().NoError(suite.store.Load(ctx, "foodOrders", &loaded))
	suite.Empty(loaded)
}

func (suite *BlobStoreIntegrationTestSuite) TestDelete_AbsentKeyIsNoOp() {
	suite.Require().NoError(suite.store.Delete(context.Background(), "absent"))
}

func TestBlobStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BlobStoreIntegrationTestSuite))
}
