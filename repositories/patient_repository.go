package repositories

import (
	"context"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
)

// The patient directory is owned by another subsystem; the anamnesis core
// only resolves identities before mutating, so this repository is read-only.
func (repo *CareDbRepository) GetPatientById(
	ctx context.Context,
	exec Executor,
	patientId string,
) (models.Patient, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectPatientColumns...).
			From(dbmodels.TABLE_PATIENTS).
			Where(squirrel.Eq{"id": patientId}),
		dbmodels.AdaptPatient,
	)
}
