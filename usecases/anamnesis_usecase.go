package usecases

import (
	"context"
	"strings"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/repositories"
	"github.com/sixtosix/sixtosix-backend/usecases/executor_factory"
	"github.com/sixtosix/sixtosix-backend/utils"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// A lost version-number race recomputes against fresh state, so one extra
// attempt per concurrent writer is enough in practice. The budget only
// exists to bound pathological contention.
const addVersionMaxAttempts = 3

type AnamnesisUsecaseRepository interface {
	CreateAnamnesis(ctx context.Context, exec repositories.Executor, patientId string, newAnamnesisId string) error
	GetAnamnesisById(ctx context.Context, exec repositories.Executor, anamnesisId string) (models.Anamnesis, error)
	GetAnamnesisByPatientId(ctx context.Context, exec repositories.Executor, patientId string) (models.Anamnesis, error)
	LockAnamnesisRow(ctx context.Context, tx repositories.Transaction, anamnesisId string) (models.Anamnesis, error)
	ListVersions(ctx context.Context, exec repositories.Executor, anamnesisId string) ([]models.AnamnesisVersion, error)
	ListFinalizedVersions(ctx context.Context, exec repositories.Executor, anamnesisId string) ([]models.AnamnesisVersion, error)
	GetVersionById(ctx context.Context, exec repositories.Executor, versionId string) (models.AnamnesisVersion, error)
	GetVersionByNumber(ctx context.Context, exec repositories.Executor, anamnesisId string, versionNumber int) (models.AnamnesisVersion, error)
	LatestVersion(ctx context.Context, exec repositories.Executor, anamnesisId string) (models.AnamnesisVersion, error)
	CreateVersion(ctx context.Context, exec repositories.Executor, attrs models.CreateAnamnesisVersionAttributes, newVersionId string) error
	FinalizeVersion(ctx context.Context, exec repositories.Executor, versionId string) (bool, error)
}

type patientDirectoryReader interface {
	GetPatientById(ctx context.Context, exec repositories.Executor, patientId string) (models.Patient, error)
}

type userAccountReader interface {
	GetUserAccountById(ctx context.Context, exec repositories.Executor, userId string) (models.UserAccount, error)
}

type auditTrailWriter interface {
	RecordAction(ctx context.Context, attrs models.CreateAuditLogAttributes) (models.AuditLog, error)
}

type AnamnesisUsecase struct {
	transactionFactory executor_factory.TransactionFactory
	executorFactory    executor_factory.ExecutorFactory
	repository         AnamnesisUsecaseRepository
	patientRepository  patientDirectoryReader
	userRepository     userAccountReader
	auditTrail         auditTrailWriter
}

// CreateAnamnesis opens the one-and-only record for a patient. The
// subject-uniqueness check is atomic with the insert: under concurrent
// creation exactly one caller wins, the rest get ErrAnamnesisAlreadyExists.
func (usecase *AnamnesisUsecase) CreateAnamnesis(
	ctx context.Context,
	patientId string,
	performedBy string,
) (models.Anamnesis, error) {
	exec := usecase.executorFactory.NewExecutor()

	patient, err := usecase.patientRepository.GetPatientById(ctx, exec, patientId)
	if err != nil {
		return models.Anamnesis{}, errors.Wrap(err, "could not resolve patient")
	}
	if patient.Deleted {
		return models.Anamnesis{}, errors.Wrap(models.NotFoundError, "patient is deleted")
	}

	newAnamnesisId := uuid.NewString()
	if err := usecase.repository.CreateAnamnesis(ctx, exec, patientId, newAnamnesisId); err != nil {
		return models.Anamnesis{}, err
	}

	anamnesis, err := usecase.repository.GetAnamnesisById(ctx, exec, newAnamnesisId)
	if err != nil {
		return models.Anamnesis{}, err
	}

	usecase.recordAudit(ctx, models.CreateAuditLogAttributes{
		Entity:      "Anamnesis",
		EntityId:    anamnesis.Id,
		Action:      models.AuditActionCreate,
		PerformedBy: performedBy,
	})

	return anamnesis, nil
}

// GetAnamnesisForPatient returns the record and its full ordered history.
func (usecase *AnamnesisUsecase) GetAnamnesisForPatient(
	ctx context.Context,
	patientId string,
) (models.AnamnesisHistory, error) {
	exec := usecase.executorFactory.NewExecutor()

	patient, err := usecase.patientRepository.GetPatientById(ctx, exec, patientId)
	if err != nil {
		return models.AnamnesisHistory{}, errors.Wrap(err, "could not resolve patient")
	}
	if patient.Deleted {
		return models.AnamnesisHistory{}, errors.Wrap(models.NotFoundError, "patient is deleted")
	}

	anamnesis, err := usecase.repository.GetAnamnesisByPatientId(ctx, exec, patientId)
	if err != nil {
		return models.AnamnesisHistory{}, err
	}

	versions, err := usecase.repository.ListVersions(ctx, exec, anamnesis.Id)
	if err != nil {
		return models.AnamnesisHistory{}, err
	}

	return models.AnamnesisHistory{
		Anamnesis: anamnesis,
		Versions:  versions,
	}, nil
}

// AddVersion appends the next content snapshot. The version number is
// assigned inside a transaction holding the anamnesis row lock, so numbers
// stay contiguous under concurrent appends; if a writer outside that
// discipline still wins the unique index race, the number is recomputed and
// the insert retried before giving up with ErrVersionNumberConflict.
func (usecase *AnamnesisUsecase) AddVersion(
	ctx context.Context,
	anamnesisId string,
	content string,
	createdBy string,
) (models.AnamnesisVersion, error) {
	if strings.TrimSpace(content) == "" {
		return models.AnamnesisVersion{}, errors.Wrap(models.BadParameterError,
			"version content must not be blank")
	}

	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.repository.GetAnamnesisById(ctx, exec, anamnesisId); err != nil {
		return models.AnamnesisVersion{}, err
	}
	if _, err := usecase.userRepository.GetUserAccountById(ctx, exec, createdBy); err != nil {
		return models.AnamnesisVersion{}, errors.Wrap(err, "could not resolve version creator")
	}

	var created models.AnamnesisVersion
	var err error
	for attempt := 0; attempt < addVersionMaxAttempts; attempt++ {
		created, err = executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
			func(tx repositories.Transaction) (models.AnamnesisVersion, error) {
				if _, err := usecase.repository.LockAnamnesisRow(ctx, tx, anamnesisId); err != nil {
					return models.AnamnesisVersion{}, err
				}

				nextVersionNumber := 1
				latest, err := usecase.repository.LatestVersion(ctx, tx, anamnesisId)
				switch {
				case err == nil:
					nextVersionNumber = latest.VersionNumber + 1
				case !errors.Is(err, models.NotFoundError):
					return models.AnamnesisVersion{}, err
				}

				newVersionId := uuid.NewString()
				err = usecase.repository.CreateVersion(ctx, tx, models.CreateAnamnesisVersionAttributes{
					AnamnesisId:   anamnesisId,
					VersionNumber: nextVersionNumber,
					Content:       content,
					CreatedBy:     createdBy,
				}, newVersionId)
				if err != nil {
					return models.AnamnesisVersion{}, err
				}

				return usecase.repository.GetVersionById(ctx, tx, newVersionId)
			})
		if !repositories.IsUniqueViolationError(err) && !repositories.IsDeadlockError(err) {
			break
		}
	}
	if repositories.IsUniqueViolationError(err) {
		return models.AnamnesisVersion{}, errors.Wrap(models.ErrVersionNumberConflict,
			"version number race not settled within the retry budget")
	}
	if err != nil {
		return models.AnamnesisVersion{}, err
	}

	usecase.recordAudit(ctx, models.CreateAuditLogAttributes{
		Entity:      "AnamnesisVersion",
		EntityId:    created.Id,
		Action:      models.AuditActionCreate,
		PerformedBy: createdBy,
	})

	return created, nil
}

func (usecase *AnamnesisUsecase) ListVersions(
	ctx context.Context,
	anamnesisId string,
	finalizedOnly bool,
) ([]models.AnamnesisVersion, error) {
	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.repository.GetAnamnesisById(ctx, exec, anamnesisId); err != nil {
		return nil, err
	}

	if finalizedOnly {
		return usecase.repository.ListFinalizedVersions(ctx, exec, anamnesisId)
	}
	return usecase.repository.ListVersions(ctx, exec, anamnesisId)
}

func (usecase *AnamnesisUsecase) GetVersion(
	ctx context.Context,
	anamnesisId string,
	versionNumber int,
) (models.AnamnesisVersion, error) {
	if versionNumber < 1 {
		return models.AnamnesisVersion{}, errors.Wrap(models.BadParameterError,
			"version number must be positive")
	}

	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.repository.GetAnamnesisById(ctx, exec, anamnesisId); err != nil {
		return models.AnamnesisVersion{}, err
	}
	return usecase.repository.GetVersionByNumber(ctx, exec, anamnesisId, versionNumber)
}

func (usecase *AnamnesisUsecase) LatestVersion(
	ctx context.Context,
	anamnesisId string,
) (models.AnamnesisVersion, error) {
	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.repository.GetAnamnesisById(ctx, exec, anamnesisId); err != nil {
		return models.AnamnesisVersion{}, err
	}
	return usecase.repository.LatestVersion(ctx, exec, anamnesisId)
}

// FinalizeVersion performs the one-way Draft to Finalized transition.
// Concurrent calls on the same version see exactly one success; the rest get
// ErrVersionAlreadyFinalized.
func (usecase *AnamnesisUsecase) FinalizeVersion(
	ctx context.Context,
	versionId string,
	performedBy string,
) (models.AnamnesisVersion, error) {
	exec := usecase.executorFactory.NewExecutor()

	updated, err := usecase.repository.FinalizeVersion(ctx, exec, versionId)
	if err != nil {
		return models.AnamnesisVersion{}, err
	}
	if !updated {
		// nothing changed: either the version is unknown or it was already final
		if _, err := usecase.repository.GetVersionById(ctx, exec, versionId); err != nil {
			return models.AnamnesisVersion{}, err
		}
		return models.AnamnesisVersion{}, errors.WithDetail(models.ErrVersionAlreadyFinalized,
			"version_id "+versionId)
	}

	version, err := usecase.repository.GetVersionById(ctx, exec, versionId)
	if err != nil {
		return models.AnamnesisVersion{}, err
	}

	usecase.recordAudit(ctx, models.CreateAuditLogAttributes{
		Entity:      "AnamnesisVersion",
		EntityId:    version.Id,
		Action:      models.AuditActionFinalize,
		PerformedBy: performedBy,
	})

	return version, nil
}

// recordAudit appends the trail entry for an already committed mutation.
// Best effort: the primary action is durable at this point, so a failed
// audit write is reported in the logs but never undoes the mutation.
func (usecase *AnamnesisUsecase) recordAudit(ctx context.Context, attrs models.CreateAuditLogAttributes) {
	if attrs.PerformedBy == "" {
		return
	}
	if _, err := usecase.auditTrail.RecordAction(ctx, attrs); err != nil {
		utils.LoggerFromContext(ctx).WarnContext(ctx, "failed to write audit log entry",
			"entity", attrs.Entity,
			"entity_id", attrs.EntityId,
			"action", string(attrs.Action),
			"error", err.Error())
	}
}
