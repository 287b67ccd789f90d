package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/sixtosix/sixtosix-backend/dto"
	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/pure_utils"
	"github.com/sixtosix/sixtosix-backend/usecases"
	"github.com/sixtosix/sixtosix-backend/utils"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

func handleCreateAnamnesis(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		patientId := c.Param("patient_id")
		if err := utils.ValidateUuid(patientId); err != nil {
			presentError(c, err)
			return
		}

		// the body is optional: an empty request creates an anonymous record
		var body dto.CreateAnamnesisBody
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			presentBindingError(c, err)
			return
		}

		usecase := uc.NewAnamnesisUsecase()
		anamnesis, err := usecase.CreateAnamnesis(ctx, patientId, body.PerformedBy)
		if err != nil {
			presentError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"anamnesis": dto.AdaptAnamnesisDto(anamnesis)})
	}
}

func handleGetAnamnesisForPatient(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		patientId := c.Param("patient_id")
		if err := utils.ValidateUuid(patientId); err != nil {
			presentError(c, err)
			return
		}

		usecase := uc.NewAnamnesisUsecase()
		history, err := usecase.GetAnamnesisForPatient(ctx, patientId)
		if err != nil {
			presentError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.AdaptAnamnesisHistoryDto(history))
	}
}

func handleAddAnamnesisVersion(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		anamnesisId := c.Param("anamnesis_id")
		if err := utils.ValidateUuid(anamnesisId); err != nil {
			presentError(c, err)
			return
		}

		var body dto.CreateAnamnesisVersionBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentBindingError(c, err)
			return
		}

		usecase := uc.NewAnamnesisUsecase()
		version, err := usecase.AddVersion(ctx, anamnesisId, body.Content, body.CreatedBy)
		if err != nil {
			presentError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"version": dto.AdaptAnamnesisVersionDto(version)})
	}
}

func handleListAnamnesisVersions(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		anamnesisId := c.Param("anamnesis_id")
		if err := utils.ValidateUuid(anamnesisId); err != nil {
			presentError(c, err)
			return
		}

		finalizedOnly := false
		if raw, ok := c.GetQuery("finalized"); ok {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				presentError(c, errors.Wrap(models.BadParameterError,
					"finalized must be a boolean"))
				return
			}
			finalizedOnly = parsed
		}

		usecase := uc.NewAnamnesisUsecase()
		versions, err := usecase.ListVersions(ctx, anamnesisId, finalizedOnly)
		if err != nil {
			presentError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"versions": pure_utils.Map(versions, dto.AdaptAnamnesisVersionDto),
		})
	}
}

func handleGetLatestAnamnesisVersion(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		anamnesisId := c.Param("anamnesis_id")
		if err := utils.ValidateUuid(anamnesisId); err != nil {
			presentError(c, err)
			return
		}

		usecase := uc.NewAnamnesisUsecase()
		version, err := usecase.LatestVersion(ctx, anamnesisId)
		if err != nil {
			presentError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"version": dto.AdaptAnamnesisVersionDto(version)})
	}
}

func handleGetAnamnesisVersion(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		anamnesisId := c.Param("anamnesis_id")
		if err := utils.ValidateUuid(anamnesisId); err != nil {
			presentError(c, err)
			return
		}
		versionNumber, err := strconv.Atoi(c.Param("version_number"))
		if err != nil {
			presentError(c, errors.Wrap(models.BadParameterError,
				"version number must be an integer"))
			return
		}

		usecase := uc.NewAnamnesisUsecase()
		version, err := usecase.GetVersion(ctx, anamnesisId, versionNumber)
		if err != nil {
			presentError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"version": dto.AdaptAnamnesisVersionDto(version)})
	}
}

func handleFinalizeAnamnesisVersion(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		versionId := c.Param("version_id")
		if err := utils.ValidateUuid(versionId); err != nil {
			presentError(c, err)
			return
		}

		var body dto.FinalizeVersionBody
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			presentBindingError(c, err)
			return
		}

		usecase := uc.NewAnamnesisUsecase()
		version, err := usecase.FinalizeVersion(ctx, versionId, body.PerformedBy)
		if err != nil {
			presentError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"version": dto.AdaptAnamnesisVersionDto(version)})
	}
}
