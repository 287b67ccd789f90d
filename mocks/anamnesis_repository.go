package mocks

import (
	"context"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/repositories"

	"github.com/stretchr/testify/mock"
)

type AnamnesisRepository struct {
	mock.Mock
}

func (r *AnamnesisRepository) CreateAnamnesis(ctx context.Context, exec repositories.Executor,
	patientId string, newAnamnesisId string,
) error {
	args := r.Called(ctx, exec, patientId, newAnamnesisId)
	return args.Error(0)
}

func (r *AnamnesisRepository) GetAnamnesisById(ctx context.Context, exec repositories.Executor,
	anamnesisId string,
) (models.Anamnesis, error) {
	args := r.Called(ctx, exec, anamnesisId)
	return args.Get(0).(models.Anamnesis), args.Error(1)
}

func (r *AnamnesisRepository) GetAnamnesisByPatientId(ctx context.Context, exec repositories.Executor,
	patientId string,
) (models.Anamnesis, error) {
	args := r.Called(ctx, exec, patientId)
	return args.Get(0).(models.Anamnesis), args.Error(1)
}

func (r *AnamnesisRepository) LockAnamnesisRow(ctx context.Context, tx repositories.Transaction,
	anamnesisId string,
) (models.Anamnesis, error) {
	args := r.Called(ctx, tx, anamnesisId)
	return args.Get(0).(models.Anamnesis), args.Error(1)
}

func (r *AnamnesisRepository) ListVersions(ctx context.Context, exec repositories.Executor,
	anamnesisId string,
) ([]models.AnamnesisVersion, error) {
	args := r.Called(ctx, exec, anamnesisId)
	return args.Get(0).([]models.AnamnesisVersion), args.Error(1)
}

func (r *AnamnesisRepository) ListFinalizedVersions(ctx context.Context, exec repositories.Executor,
	anamnesisId string,
) ([]models.AnamnesisVersion, error) {
	args := r.Called(ctx, exec, anamnesisId)
	return args.Get(0).([]models.AnamnesisVersion), args.Error(1)
}

func (r *AnamnesisRepository) GetVersionById(ctx context.Context, exec repositories.Executor,
	versionId string,
) (models.AnamnesisVersion, error) {
	args := r.Called(ctx, exec, versionId)
	return args.Get(0).(models.AnamnesisVersion), args.Error(1)
}

func (r *AnamnesisRepository) GetVersionByNumber(ctx context.Context, exec repositories.Executor,
	anamnesisId string, versionNumber int,
) (models.AnamnesisVersion, error) {
	args := r.Called(ctx, exec, anamnesisId, versionNumber)
	return args.Get(0).(models.AnamnesisVersion), args.Error(1)
}

func (r *AnamnesisRepository) LatestVersion(ctx context.Context, exec repositories.Executor,
	anamnesisId string,
) (models.AnamnesisVersion, error) {
	args := r.Called(ctx, exec, anamnesisId)
	return args.Get(0).(models.AnamnesisVersion), args.Error(1)
}

func (r *AnamnesisRepository) CreateVersion(ctx context.Context, exec repositories.Executor,
	attrs models.CreateAnamnesisVersionAttributes, newVersionId string,
) error {
	args := r.Called(ctx, exec, attrs, newVersionId)
	return args.Error(0)
}

func (r *AnamnesisRepository) FinalizeVersion(ctx context.Context, exec repositories.Executor,
	versionId string,
) (bool, error) {
	args := r.Called(ctx, exec, versionId)
	return args.Bool(0), args.Error(1)
}
