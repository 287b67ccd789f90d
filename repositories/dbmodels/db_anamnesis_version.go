package dbmodels

import (
	"time"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/utils"
)

type DBAnamnesisVersion struct {
	Id            string    `db:"id"`
	AnamnesisId   string    `db:"anamnesis_id"`
	VersionNumber int       `db:"version_number"`
	Content       string    `db:"content"`
	CreatedBy     string    `db:"created_by"`
	CreatedAt     time.Time `db:"created_at"`
	Finalized     bool      `db:"finalized"`
}

const TABLE_ANAMNESIS_VERSIONS = "anamnesis_versions"

var SelectAnamnesisVersionColumns = utils.ColumnList[DBAnamnesisVersion]()

func AdaptAnamnesisVersion(db DBAnamnesisVersion) (models.AnamnesisVersion, error) {
	return models.AnamnesisVersion{
		Id:            db.Id,
		AnamnesisId:   db.AnamnesisId,
		VersionNumber: db.VersionNumber,
		Content:       db.Content,
		CreatedBy:     db.CreatedBy,
		CreatedAt:     db.CreatedAt,
		Finalized:     db.Finalized,
	}, nil
}
