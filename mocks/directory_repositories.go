package mocks

import (
	"context"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/repositories"

	"github.com/stretchr/testify/mock"
)

type PatientRepository struct {
	mock.Mock
}

func (r *PatientRepository) GetPatientById(ctx context.Context, exec repositories.Executor,
	patientId string,
) (models.Patient, error) {
	args := r.Called(ctx, exec, patientId)
	return args.Get(0).(models.Patient), args.Error(1)
}

type UserAccountRepository struct {
	mock.Mock
}

func (r *UserAccountRepository) GetUserAccountById(ctx context.Context, exec repositories.Executor,
	userId string,
) (models.UserAccount, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).(models.UserAccount), args.Error(1)
}
