// Package interest implements the per-user job interest flag. Writes are
// last-write-wins upserts keyed by (user_id, job_id).
package interest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobsta-backend/internal/database"
	"jobsta-backend/internal/model"
	"jobsta-backend/internal/utilities"
)

// InterestController handles job interest related endpoints
type InterestController struct {
	DB *database.DBinstanceStruct
}

// NewInterestController creates a new instance of InterestController
func NewInterestController(db *database.DBinstanceStruct) *InterestController {
	return &InterestController{
		DB: db,
	}
}

type interestInfo struct {
	Status string `json:"status" binding:"required"`
}

// SetInterest records the caller's interest in a job. Repeated writes
// overwrite, the last one wins.
// @Summary Set interest in a job
// @Tags Interest
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the job"
// @Param Status body interestInfo true "interested, not_interested or none"
// @Success 200 {object} model.JobInterest "Successfully set interest"
// @Failure 400 {object} utilities.ErrorResponse "Invalid status or job does not exist"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job/{id}/interest [put]
func (ic *InterestController) SetInterest(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	info := interestInfo{}
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}
	if err := model.ValidateInterestStatus(info.Status); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	job := model.Job{}
	if err := ic.DB.Where("id = ?", c.Param("id")).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Job does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to retrieve job: ", err.Error()),
		})
		return
	}

	interest := model.JobInterest{
		UserID: user.ID,
		JobID:  job.ID,
		Status: info.Status,
	}

	if err := ic.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "job_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(&interest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to set interest: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, interest)
}

// GetMyInterests lists the caller's recorded interests.
// @Summary Get own job interests
// @Tags Interest
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param status query string false "Restrict to one interest status"
// @Success 200 {object} map[string]interface{} "message plus interests"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /interest [get]
func (ic *InterestController) GetMyInterests(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	interests := []model.JobInterest{}
	query := ic.DB.Preload("Job").Where("user_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&interests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch interests: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "interests": interests})
}
