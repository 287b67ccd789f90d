package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/repositories"
	"github.com/sixtosix/sixtosix-backend/usecases/executor_factory"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPatientId   = "10a6d496-b5b7-4d51-9a3f-4f6a1c6a2f01"
	testAnamnesisId = "4c1af4a4-b109-4839-97ee-26950e7bfc02"
	testVersionId   = "7fbb88a3-36f4-42e4-beae-6ca44b231c03"
	testUserId      = "f2c3b7fa-1e2b-4be1-934b-0d5f6f24db04"
)

func setupRepositoryTest(t *testing.T) (repositories.Executor, pgxmock.PgxPoolIface, *repositories.CareDbRepository) {
	t.Helper()
	stub := executor_factory.NewExecutorFactoryStub()
	t.Cleanup(func() {
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})
	return stub.NewExecutor(), stub.Mock, repositories.NewCareDbRepository()
}

func TestCreateAnamnesis_insertsHeaderRow(t *testing.T) {
	exec, mock, repo := setupRepositoryTest(t)
	mock.ExpectExec("INSERT INTO anamnesis").
		WithArgs(testAnamnesisId, testPatientId).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateAnamnesis(context.Background(), exec, testPatientId, testAnamnesisId)

	require.NoError(t, err)
}

func TestCreateAnamnesis_uniqueViolationMeansRecordExists(t *testing.T) {
	exec, mock, repo := setupRepositoryTest(t)
	mock.ExpectExec("INSERT INTO anamnesis").
		WithArgs(testAnamnesisId, testPatientId).
		WillReturnError(&pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			ConstraintName: "anamnesis_patient_id_key",
		})

	err := repo.CreateAnamnesis(context.Background(), exec, testPatientId, testAnamnesisId)

	assert.ErrorIs(t, err, models.ErrAnamnesisAlreadyExists)
	assert.ErrorIs(t, err, models.ConflictError)
}

func TestGetAnamnesisById_missingRowIsNotFound(t *testing.T) {
	exec, mock, repo := setupRepositoryTest(t)
	mock.ExpectQuery("SELECT id, patient_id, created_at FROM anamnesis").
		WithArgs(testAnamnesisId).
		WillReturnRows(pgxmock.NewRows([]string{"id", "patient_id", "created_at"}))

	_, err := repo.GetAnamnesisById(context.Background(), exec, testAnamnesisId)

	assert.ErrorIs(t, err, models.NotFoundError)
}

func TestGetAnamnesisByPatientId_adaptsRow(t *testing.T) {
	exec, mock, repo := setupRepositoryTest(t)
	createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, patient_id, created_at FROM anamnesis").
		WithArgs(testPatientId).
		WillReturnRows(pgxmock.NewRows([]string{"id", "patient_id", "created_at"}).
			AddRow(testAnamnesisId, testPatientId, createdAt))

	anamnesis, err := repo.GetAnamnesisByPatientId(context.Background(), exec, testPatientId)

	require.NoError(t, err)
	assert.Equal(t, models.Anamnesis{
		Id:        testAnamnesisId,
		PatientId: testPatientId,
		CreatedAt: createdAt,
	}, anamnesis)
}

func TestFinalizeVersion_reportsWhetherARowChanged(t *testing.T) {
	exec, mock, repo := setupRepositoryTest(t)
	mock.ExpectExec("UPDATE anamnesis_versions SET finalized").
		WithArgs(true, false, testVersionId).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE anamnesis_versions SET finalized").
		WithArgs(true, false, testVersionId).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	updated, err := repo.FinalizeVersion(context.Background(), exec, testVersionId)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = repo.FinalizeVersion(context.Background(), exec, testVersionId)
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestLatestVersion_picksHighestNumber(t *testing.T) {
	exec, mock, repo := setupRepositoryTest(t)
	createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, anamnesis_id, version_number, content, created_by, created_at, finalized FROM anamnesis_versions").
		WithArgs(testAnamnesisId).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "anamnesis_id", "version_number", "content", "created_by", "created_at", "finalized",
		}).AddRow(testVersionId, testAnamnesisId, 3, "latest notes", testUserId, createdAt, false))

	version, err := repo.LatestVersion(context.Background(), exec, testAnamnesisId)

	require.NoError(t, err)
	assert.Equal(t, 3, version.VersionNumber)
	assert.True(t, version.CanEdit())
}
