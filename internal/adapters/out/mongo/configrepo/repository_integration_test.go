package configrepo_test

import (
	"context"
	"testing"

	"pizzashop/internal/adapters/out/mongo/configrepo"

	"github.com/stretchr/testify/suite"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConfigRepositoryIntegrationTestSuite provides integration tests for
// MongoConfigRepository using MongoDB containers.
type ConfigRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcmongodb.MongoDBContainer
	client     *mongo.Client
	db         *mongo.Database
	repository *configrepo.MongoConfigRepository
}

func (suite *ConfigRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcmongodb.Run(ctx, "mongo:7")
	suite.Require().NoError(err)
	suite.container = container

	uri, err := container.ConnectionString(ctx)
	suite.Require().NoError(err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	suite.Require().NoError(err)
	suite.client = client
	suite.db = client.Database("pizzashop_test")
}

func (suite *ConfigRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Collection("config").Drop(ctx))
	suite.repository = configrepo.NewMongoConfigRepository(suite.db)
}

func (suite *ConfigRepositoryIntegrationTestSuite) TearDownSuite() {
	ctx := context.Background()
	if suite.client != nil {
		suite.Require().NoError(suite.client.Disconnect(ctx))
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(ctx))
	}
}

func (suite *ConfigRepositoryIntegrationTestSuite) TestGetFlag_MissingFlag_ReadsFalse() {
	ctx := context.Background()

	value, err := suite.repository.GetFlag(ctx, "isInitialized")
	suite.Require().NoError(err)
	suite.False(value)
}

func (suite *ConfigRepositoryIntegrationTestSuite) TestSetFlag_CreatesAndReads() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.SetFlag(ctx, "isInitialized", true))

	value, err := suite.repository.GetFlag(ctx, "isInitialized")
	suite.Require().NoError(err)
	suite.True(value)
}

func (suite *ConfigRepositoryIntegrationTestSuite) TestSetFlag_OverwritesExisting() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.SetFlag(ctx, "isInitialized", true))
	suite.Require().NoError(suite.repository.SetFlag(ctx, "isInitialized", false))

	value, err := suite.repository.GetFlag(ctx, "isInitialized")
	suite.Require().NoError(err)
	suite.False(value)
}

func TestConfigRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigRepositoryIntegrationTestSuite))
}
