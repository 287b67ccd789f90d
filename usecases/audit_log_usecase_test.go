package usecases

import (
	"context"
	"testing"

	"github.com/sixtosix/sixtosix-backend/mocks"
	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/pure_utils"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuditLogUsecaseTestSuite struct {
	suite.Suite
	executorFactory *mocks.ExecutorFactory
	repository      *mocks.AuditLogRepository
	userRepository  *mocks.UserAccountRepository
	executor        *mocks.Executor

	ctx    context.Context
	userId string
	attrs  models.CreateAuditLogAttributes
}

func (suite *AuditLogUsecaseTestSuite) SetupTest() {
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.repository = new(mocks.AuditLogRepository)
	suite.userRepository = new(mocks.UserAccountRepository)
	suite.executor = new(mocks.Executor)

	suite.ctx = context.Background()
	suite.userId = "f2c3b7fa-1e2b-4be1-934b-0d5f6f24db04"
	suite.attrs = models.CreateAuditLogAttributes{
		Entity:      "AnamnesisVersion",
		EntityId:    "7fbb88a3-36f4-42e4-beae-6ca44b231c03",
		Action:      models.AuditActionFinalize,
		PerformedBy: suite.userId,
		Details:     pure_utils.Ptr("finalized after review"),
	}
}

func (suite *AuditLogUsecaseTestSuite) makeUsecase() AuditLogUsecase {
	return AuditLogUsecase{
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
		userRepository:  suite.userRepository,
	}
}

func (suite *AuditLogUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.executorFactory.AssertExpectations(t)
	suite.repository.AssertExpectations(t)
	suite.userRepository.AssertExpectations(t)
}

func (suite *AuditLogUsecaseTestSuite) TestRecordAction_nominal() {
	entry := models.AuditLog{
		Id:          "0b4f5a44-9f6c-4e6b-8b39-2b2e0d8e0c05",
		Entity:      suite.attrs.Entity,
		EntityId:    suite.attrs.EntityId,
		Action:      suite.attrs.Action,
		PerformedBy: suite.userId,
		Details:     "finalized after review",
	}
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.userRepository.On("GetUserAccountById", suite.ctx, suite.executor, suite.userId).
		Return(models.UserAccount{Id: suite.userId}, nil)
	suite.repository.On("CreateAuditLog", suite.ctx, suite.executor, suite.attrs,
		mock.AnythingOfType("string")).Return(nil)
	suite.repository.On("GetAuditLogById", suite.ctx, suite.executor, mock.AnythingOfType("string")).
		Return(entry, nil)

	usecase := suite.makeUsecase()
	got, err := usecase.RecordAction(suite.ctx, suite.attrs)

	suite.NoError(err)
	suite.Equal(entry, got)
	suite.AssertExpectations()
}

func (suite *AuditLogUsecaseTestSuite) TestRecordAction_anonymousEntrySkipsPerformerLookup() {
	suite.attrs.PerformedBy = ""
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("CreateAuditLog", suite.ctx, suite.executor, suite.attrs,
		mock.AnythingOfType("string")).Return(nil)
	suite.repository.On("GetAuditLogById", suite.ctx, suite.executor, mock.AnythingOfType("string")).
		Return(models.AuditLog{}, nil)

	usecase := suite.makeUsecase()
	_, err := usecase.RecordAction(suite.ctx, suite.attrs)

	suite.NoError(err)
	suite.userRepository.AssertNotCalled(suite.T(), "GetUserAccountById")
	suite.AssertExpectations()
}

func (suite *AuditLogUsecaseTestSuite) TestRecordAction_blankEntityIsBadParameter() {
	suite.attrs.Entity = "  "

	usecase := suite.makeUsecase()
	_, err := usecase.RecordAction(suite.ctx, suite.attrs)

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *AuditLogUsecaseTestSuite) TestRecordAction_unknownActionIsBadParameter() {
	suite.attrs.Action = "archive"

	usecase := suite.makeUsecase()
	_, err := usecase.RecordAction(suite.ctx, suite.attrs)

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *AuditLogUsecaseTestSuite) TestRecordAction_unknownPerformerIsNotFound() {
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.userRepository.On("GetUserAccountById", suite.ctx, suite.executor, suite.userId).
		Return(models.UserAccount{}, models.NotFoundError)

	usecase := suite.makeUsecase()
	_, err := usecase.RecordAction(suite.ctx, suite.attrs)

	suite.ErrorIs(err, models.NotFoundError)
	suite.AssertExpectations()
}

func (suite *AuditLogUsecaseTestSuite) TestListAuditLogs_passesFiltersThrough() {
	filters := models.AuditLogFilters{Entity: "Anamnesis", Action: models.AuditActionCreate}
	entries := []models.AuditLog{{Id: "a2"}, {Id: "a1"}}
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("ListAuditLogs", suite.ctx, suite.executor, filters).Return(entries, nil)

	usecase := suite.makeUsecase()
	got, err := usecase.ListAuditLogs(suite.ctx, filters)

	suite.NoError(err)
	suite.Equal(entries, got)
	suite.AssertExpectations()
}

func (suite *AuditLogUsecaseTestSuite) TestListAuditLogs_unknownActionFilterIsBadParameter() {
	usecase := suite.makeUsecase()
	_, err := usecase.ListAuditLogs(suite.ctx, models.AuditLogFilters{Action: "rewind"})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func TestAuditLogUsecase(t *testing.T) {
	suite.Run(t, new(AuditLogUsecaseTestSuite))
}
