// Package application implements application submission for both the
// individual and the group path, plus the employer-side status console.
// Duplicate protection is delegated to the database's partial unique
// indexes; pre-checks here only improve error messages.
package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"jobsta-backend/internal/database"
	"jobsta-backend/internal/model"
	"jobsta-backend/internal/utilities"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ApplicationController handles application related endpoints
type ApplicationController struct {
	DB *database.DBinstanceStruct
}

// NewApplicationController creates a new instance of ApplicationController
func NewApplicationController(db *database.DBinstanceStruct) *ApplicationController {
	return &ApplicationController{
		DB: db,
	}
}

// SubmitGroupApplication submits a joint application on behalf of a group.
// Only the leader may trigger it, and only while the group meets quorum.
// @Summary Submit a group application
// @Description Leader only; the group must meet its quorum at submission time
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the group"
// @Success 201 {object} model.Application "Successfully submit application"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Requester is not the group leader"
// @Failure 404 {object} utilities.ErrorResponse "Group not found"
// @Failure 409 {object} utilities.ErrorResponse "Quorum not met, or the group already applied"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /group/{id}/application [post]
func (ac *ApplicationController) SubmitGroupApplication(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	group := model.Group{}
	if err := ac.DB.
		Preload("Members").
		Where("id = ?", c.Param("id")).
		First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to retrieve group: ", err.Error()),
		})
		return
	}

	if group.LeaderID != user.ID {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Only the group leader can submit the application",
		})
		return
	}

	// Quorum is computed from the rows just read, never from cached state.
	if !group.CanSubmitApplication() {
		c.JSON(http.StatusConflict, utilities.ErrorResponse{
			Error: fmt.Sprintf(
				"Group does not meet its quorum: %d approved, %d participating, %d required",
				group.ApprovedCount(), group.ParticipatingCount(), group.RequiredMemberCount(),
			),
		})
		return
	}

	application := model.Application{
		JobID:   group.JobID,
		GroupID: &group.ID,
		Status:  model.ApplicationStatusSubmitted,
	}

	// The partial unique index on (group_id) is the real duplicate guard:
	// under a race exactly one insert wins.
	if err := ac.DB.Create(&application).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{
				Error: "This group has already applied to the job",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to submit application: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, application)
}

// SubmitIndividualApplication submits a lone application to a job.
// @Summary Submit an individual application
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the job"
// @Success 201 {object} model.Application "Successfully submit application"
// @Failure 400 {object} utilities.ErrorResponse "Job does not exist"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 409 {object} utilities.ErrorResponse "Already applied to this job"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job/{id}/application [post]
func (ac *ApplicationController) SubmitIndividualApplication(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	job := model.Job{}
	if err := ac.DB.Where("id = ?", c.Param("id")).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Job does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to retrieve job: ", err.Error()),
		})
		return
	}

	application := model.Application{
		JobID:  job.ID,
		UserID: &user.ID,
		Status: model.ApplicationStatusSubmitted,
	}

	if err := ac.DB.Create(&application).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				c.JSON(http.StatusConflict, utilities.ErrorResponse{
					Error: "You have already applied to this job",
				})
				return
			case pgForeignKeyViolation:
				c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
					Error: "Job does not exist",
				})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to submit application: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, application)
}

// GetMyApplications lists the caller's applications: individual ones plus
// applications of groups they belong to.
// @Summary Get own applications
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} map[string]interface{} "message plus applications"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application [get]
func (ac *ApplicationController) GetMyApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	applications := []model.Application{}
	if err := ac.DB.
		Preload("Group").
		Preload("Group.Members").
		Where(
			"user_id = ? OR group_id IN (?)",
			user.ID,
			ac.DB.Model(&model.GroupMember{}).Select("group_id").Where("user_id = ?", user.ID),
		).
		Order("submitted_at DESC").
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch applications: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "applications": applications})
}

// GetJobApplications lists all applications for a job the caller owns.
// @Summary Get applications for a job
// @Description Only the employer that owns the job has access to this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the job"
// @Success 200 {object} map[string]interface{} "message plus applications"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Requester does not own this job"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job/{id}/application [get]
func (ac *ApplicationController) GetJobApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	job := model.Job{}
	if err := ac.DB.Where("id = ?", c.Param("id")).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to retrieve job: ", err.Error()),
		})
		return
	}

	if job.EmployerID != user.ID && user.Role != model.RoleAdmin {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to view applications for this job",
		})
		return
	}

	applications := []model.Application{}
	if err := ac.DB.
		Preload("User").
		Preload("Group").
		Preload("Group.Members").
		Preload("Group.Members.User").
		Where("job_id = ?", job.ID).
		Order("submitted_at ASC").
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch applications: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "applications": applications})
}

type applicationStatusInfo struct {
	Status string `json:"status" binding:"required"`
}

// UpdateApplicationStatus moves an application along the forward-only
// status chain. Backward moves and repeats are conflicts.
// @Summary Update application status
// @Description Only the employer that owns the job has access to this endpoint
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the application"
// @Param Status body applicationStatusInfo true "Target status"
// @Success 200 {object} model.Application "Successfully update status"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Requester does not own the job"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 409 {object} utilities.ErrorResponse "Transition not allowed"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application/{id}/status [patch]
func (ac *ApplicationController) UpdateApplicationStatus(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	info := applicationStatusInfo{}
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	application := model.Application{}
	if err := ac.DB.
		Preload("Job").
		Where("id = ?", c.Param("id")).
		First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to retrieve application: ", err.Error()),
		})
		return
	}

	if application.Job.EmployerID != user.ID && user.Role != model.RoleAdmin {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to update this application",
		})
		return
	}

	if !model.CanTransitionApplicationStatus(application.Status, info.Status) {
		c.JSON(http.StatusConflict, utilities.ErrorResponse{
			Error: fmt.Sprintf("Cannot move application from %s to %s", application.Status, info.Status),
		})
		return
	}

	if err := ac.DB.Model(&application).Update("status", info.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to update application: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, application)
}
