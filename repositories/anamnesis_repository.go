package repositories

import (
	"context"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
)

// CreateAnamnesis inserts the record header. The unique index on patient_id
// makes the one-record-per-patient check atomic with the insert: a losing
// concurrent creation surfaces as ErrAnamnesisAlreadyExists.
func (repo *CareDbRepository) CreateAnamnesis(
	ctx context.Context,
	exec Executor,
	patientId string,
	newAnamnesisId string,
) error {
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_ANAMNESIS).
			Columns(
				"id",
				"patient_id",
			).
			Values(
				newAnamnesisId,
				patientId,
			),
	)
	if IsUniqueViolationError(err) {
		return errors.WithDetail(models.ErrAnamnesisAlreadyExists,
			"patient_id "+patientId)
	}
	return err
}

func (repo *CareDbRepository) GetAnamnesisById(
	ctx context.Context,
	exec Executor,
	anamnesisId string,
) (models.Anamnesis, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAnamnesisColumns...).
			From(dbmodels.TABLE_ANAMNESIS).
			Where(squirrel.Eq{"id": anamnesisId}),
		dbmodels.AdaptAnamnesis,
	)
}

func (repo *CareDbRepository) GetAnamnesisByPatientId(
	ctx context.Context,
	exec Executor,
	patientId string,
) (models.Anamnesis, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAnamnesisColumns...).
			From(dbmodels.TABLE_ANAMNESIS).
			Where(squirrel.Eq{"patient_id": patientId}),
		dbmodels.AdaptAnamnesis,
	)
}

// LockAnamnesisRow takes the row lock serializing version number assignment
// for one anamnesis. Must run inside a transaction.
func (repo *CareDbRepository) LockAnamnesisRow(
	ctx context.Context,
	tx Transaction,
	anamnesisId string,
) (models.Anamnesis, error) {
	return SqlToModel(
		ctx,
		tx,
		NewQueryBuilder().
			Select(dbmodels.SelectAnamnesisColumns...).
			From(dbmodels.TABLE_ANAMNESIS).
			Where(squirrel.Eq{"id": anamnesisId}).
			Suffix("FOR UPDATE"),
		dbmodels.AdaptAnamnesis,
	)
}
