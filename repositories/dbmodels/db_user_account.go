package dbmodels

import (
	"time"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/utils"
)

type DBUserAccount struct {
	Id         string    `db:"id"`
	KeycloakId string    `db:"keycloak_id"`
	Role       string    `db:"role"`
	CreatedAt  time.Time `db:"created_at"`
}

const TABLE_USER_ACCOUNTS = "user_accounts"

var SelectUserAccountColumns = utils.ColumnList[DBUserAccount]()

func AdaptUserAccount(db DBUserAccount) (models.UserAccount, error) {
	return models.UserAccount{
		Id:         db.Id,
		KeycloakId: db.KeycloakId,
		Role:       models.UserRoleFrom(db.Role),
		CreatedAt:  db.CreatedAt,
	}, nil
}
