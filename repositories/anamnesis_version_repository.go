package repositories

import (
	"context"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
)

func (repo *CareDbRepository) ListVersions(
	ctx context.Context,
	exec Executor,
	anamnesisId string,
) ([]models.AnamnesisVersion, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAnamnesisVersionColumns...).
			From(dbmodels.TABLE_ANAMNESIS_VERSIONS).
			Where(squirrel.Eq{"anamnesis_id": anamnesisId}).
			OrderBy("version_number ASC"),
		dbmodels.AdaptAnamnesisVersion,
	)
}

func (repo *CareDbRepository) ListFinalizedVersions(
	ctx context.Context,
	exec Executor,
	anamnesisId string,
) ([]models.AnamnesisVersion, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAnamnesisVersionColumns...).
			From(dbmodels.TABLE_ANAMNESIS_VERSIONS).
			Where(squirrel.Eq{"anamnesis_id": anamnesisId, "finalized": true}).
			OrderBy("version_number ASC"),
		dbmodels.AdaptAnamnesisVersion,
	)
}

func (repo *CareDbRepository) GetVersionById(
	ctx context.Context,
	exec Executor,
	versionId string,
) (models.AnamnesisVersion, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAnamnesisVersionColumns...).
			From(dbmodels.TABLE_ANAMNESIS_VERSIONS).
			Where(squirrel.Eq{"id": versionId}),
		dbmodels.AdaptAnamnesisVersion,
	)
}

func (repo *CareDbRepository) GetVersionByNumber(
	ctx context.Context,
	exec Executor,
	anamnesisId string,
	versionNumber int,
) (models.AnamnesisVersion, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAnamnesisVersionColumns...).
			From(dbmodels.TABLE_ANAMNESIS_VERSIONS).
			Where(squirrel.Eq{"anamnesis_id": anamnesisId, "version_number": versionNumber}),
		dbmodels.AdaptAnamnesisVersion,
	)
}

func (repo *CareDbRepository) LatestVersion(
	ctx context.Context,
	exec Executor,
	anamnesisId string,
) (models.AnamnesisVersion, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAnamnesisVersionColumns...).
			From(dbmodels.TABLE_ANAMNESIS_VERSIONS).
			Where(squirrel.Eq{"anamnesis_id": anamnesisId}).
			OrderBy("version_number DESC").
			Limit(1),
		dbmodels.AdaptAnamnesisVersion,
	)
}

// CreateVersion is the append primitive. Version number assignment must have
// been serialized by the caller (see AnamnesisUsecase.AddVersion); the unique
// index on (anamnesis_id, version_number) backs that discipline.
func (repo *CareDbRepository) CreateVersion(
	ctx context.Context,
	exec Executor,
	attrs models.CreateAnamnesisVersionAttributes,
	newVersionId string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_ANAMNESIS_VERSIONS).
			Columns(
				"id",
				"anamnesis_id",
				"version_number",
				"content",
				"created_by",
			).
			Values(
				newVersionId,
				attrs.AnamnesisId,
				attrs.VersionNumber,
				attrs.Content,
				attrs.CreatedBy,
			),
	)
}

// FinalizeVersion is a single conditional update: among concurrent callers
// exactly one sees finalized=false and wins. Returns whether a row changed.
func (repo *CareDbRepository) FinalizeVersion(
	ctx context.Context,
	exec Executor,
	versionId string,
) (bool, error) {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_ANAMNESIS_VERSIONS).
		Set("finalized", true).
		Where(squirrel.Eq{"id": versionId, "finalized": false})

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := exec.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
