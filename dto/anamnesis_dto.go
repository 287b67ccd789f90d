package dto

import (
	"time"

	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/pure_utils"
)

type Anamnesis struct {
	Id        string    `json:"id"`
	PatientId string    `json:"patient_id"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptAnamnesisDto(anamnesis models.Anamnesis) Anamnesis {
	return Anamnesis{
		Id:        anamnesis.Id,
		PatientId: anamnesis.PatientId,
		CreatedAt: anamnesis.CreatedAt,
	}
}

type AnamnesisVersion struct {
	Id            string    `json:"id"`
	AnamnesisId   string    `json:"anamnesis_id"`
	VersionNumber int       `json:"version_number"`
	Content       string    `json:"content"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	Finalized     bool      `json:"finalized"`
}

func AdaptAnamnesisVersionDto(version models.AnamnesisVersion) AnamnesisVersion {
	return AnamnesisVersion{
		Id:            version.Id,
		AnamnesisId:   version.AnamnesisId,
		VersionNumber: version.VersionNumber,
		Content:       version.Content,
		CreatedBy:     version.CreatedBy,
		CreatedAt:     version.CreatedAt,
		Finalized:     version.Finalized,
	}
}

type AnamnesisHistory struct {
	Anamnesis Anamnesis          `json:"anamnesis"`
	Versions  []AnamnesisVersion `json:"versions"`
}

func AdaptAnamnesisHistoryDto(history models.AnamnesisHistory) AnamnesisHistory {
	return AnamnesisHistory{
		Anamnesis: AdaptAnamnesisDto(history.Anamnesis),
		Versions:  pure_utils.Map(history.Versions, AdaptAnamnesisVersionDto),
	}
}

type CreateAnamnesisBody struct {
	PerformedBy string `json:"performed_by" binding:"omitempty,uuid"`
}

type CreateAnamnesisVersionBody struct {
	Content   string `json:"content" binding:"required"`
	CreatedBy string `json:"created_by" binding:"required,uuid"`
}

type FinalizeVersionBody struct {
	PerformedBy string `json:"performed_by" binding:"omitempty,uuid"`
}
