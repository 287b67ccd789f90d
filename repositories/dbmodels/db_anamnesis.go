package dbmodels

import (
	"time"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/utils"
)

type DBAnamnesis struct {
	Id        string    `db:"id"`
	PatientId string    `db:"patient_id"`
	CreatedAt time.Time `db:"created_at"`
}

const TABLE_ANAMNESIS = "anamnesis"

var SelectAnamnesisColumns = utils.ColumnList[DBAnamnesis]()

func AdaptAnamnesis(db DBAnamnesis) (models.Anamnesis, error) {
	return models.Anamnesis{
		Id:        db.Id,
		PatientId: db.PatientId,
		CreatedAt: db.CreatedAt,
	}, nil
}
