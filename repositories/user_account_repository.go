package repositories

import (
	"context"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
)

// Read-only view over the actor directory, owned by identity provisioning.
func (repo *CareDbRepository) GetUserAccountById(
	ctx context.Context,
	exec Executor,
	userId string,
) (models.UserAccount, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserAccountColumns...).
			From(dbmodels.TABLE_USER_ACCOUNTS).
			Where(squirrel.Eq{"id": userId}),
		dbmodels.AdaptUserAccount,
	)
}
