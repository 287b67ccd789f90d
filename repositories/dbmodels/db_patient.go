package dbmodels

import (
	"time"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/utils"
)

type DBPatient struct {
	Id        string    `db:"id"`
	Firstname string    `db:"firstname"`
	Lastname  string    `db:"lastname"`
	Birthdate time.Time `db:"birthdate"`
	Deleted   bool      `db:"deleted"`
}

const TABLE_PATIENTS = "patients"

var SelectPatientColumns = utils.ColumnList[DBPatient]()

func AdaptPatient(db DBPatient) (models.Patient, error) {
	return models.Patient{
		Id:        db.Id,
		Firstname: db.Firstname,
		Lastname:  db.Lastname,
		Birthdate: db.Birthdate,
		Deleted:   db.Deleted,
	}, nil
}
