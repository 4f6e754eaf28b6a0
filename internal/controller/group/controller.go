// Package group implements applicant group management: creation, membership
// approval and the per-member participation toggle that feeds the quorum
// check for joint applications.
package group

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

// GroupController handles applicant group related endpoints
type GroupController struct {
	DB *database.DBinstanceStruct
}

// NewGroupController creates a new instance of GroupController
func NewGroupController(db *database.DBinstanceStruct) *GroupController {
	return &GroupController{
		DB: db,
	}
}

type createGroupInfo struct {
	Name          string `json:"name" binding:"required"`
	RequiredCount *int   `json:"required_count"`
}

// notify writes a notification row. Failures are logged and swallowed so
// the primary flow never depends on the side channel.
func (gc *GroupController) notify(n model.Notification) {
	if err := gc.DB.Create(&n).Error; err != nil {
		log.Printf("failed to write %s notification for %s: %v", n.Type, n.RecipientID, err)
	}
}

// loadGroup fetches a group with members and leader preloaded.
func (gc *GroupController) loadGroup(id string) (*model.Group, error) {
	group := model.Group{}
	err := gc.DB.
		Preload("Members").
		Preload("Members.User").
		Preload("Leader").
		Where("id = ?", id).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// CreateGroupHandler creates a group for a job. The creator becomes the
// leader and is added as an approved, participating member in the same
// transaction.
// @Summary Create applicant group for a job
// @Description The requesting user becomes the group leader
// @Tags Group
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the job to group up for"
// @Param Group body createGroupInfo true "Group name and optional quorum override"
// @Success 201 {object} model.Group "Successfully create group"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or job does not exist"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 409 {object} utilities.ErrorResponse "Group name already taken for this job"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job/{id}/group [post]
func (gc *GroupController) CreateGroupHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	info := createGroupInfo{}
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if info.RequiredCount != nil && *info.RequiredCount < 1 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "required_count must be at least 1",
		})
		return
	}

	job := model.Job{}
	if err := gc.DB.Where("id = ?", c.Param("id")).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Job does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to retrieve job: ", err.Error()),
		})
		return
	}

	group := model.Group{
		JobID:         job.ID,
		Name:          info.Name,
		LeaderID:      user.ID,
		RequiredCount: info.RequiredCount,
	}

	// The composite (job_id, name) index is what actually guarantees name
	// uniqueness; no pre-check here, the insert is the check.
	err = gc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		leaderRow := model.GroupMember{
			GroupID:           group.ID,
			UserID:            user.ID,
			Status:            model.GroupMemberStatusApproved,
			ApplicationStatus: &model.ParticipationStatusParticipating,
		}
		return tx.Create(&leaderRow).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{
				Error: "A group with this name already exists for this job",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create group: ", err.Error()),
		})
		return
	}

	created, err := gc.loadGroup(fmt.Sprint(group.ID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to retrieve created group: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// CheckGroupName reports whether a group name is still free for a job.
// The answer is advisory only; creation can still lose the race and
// callers must handle the 409 from POST.
// @Summary Check group name availability
// @Description Advisory check, creation may still conflict
// @Tags Group
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param job_id query integer true "ID of the job"
// @Param name query string true "Candidate group name"
// @Success 200 {object} map[string]interface{} "message plus available flag"
// @Failure 400 {object} utilities.ErrorResponse "Missing query parameters"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /group/name-check [get]
func (gc *GroupController) CheckGroupName(c *gin.Context) {
	jobID := c.Query("job_id")
	name := c.Query("name")
	if jobID == "" || name == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "job_id and name query parameters are required",
		})
		return
	}

	var count int64
	if err := gc.DB.Model(&model.Group{}).
		Where("job_id = ? AND name = ?", jobID, name).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to check group name: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "available": count == 0})
}

// GetGroups lists groups. With ?job_id it lists the groups of that job,
// otherwise the groups the requesting user is a member of.
// @Summary Get groups
// @Description Lists groups for a job, or the caller's groups when job_id is absent
// @Tags Group
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param job_id query integer false "Restrict to groups of this job"
// @Success 200 {object} map[string]interface{} "message plus groups"
// @Failure 400 {object} utilities.ErrorResponse "Invalid authorization header"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /group [get]
func (gc *GroupController) GetGroups(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	groups := []model.Group{}
	query := gc.DB.
		Preload("Members").
		Preload("Members.User").
		Preload("Leader")

	if jobID := c.Query("job_id"); jobID != "" {
		query = query.Where("job_id = ?", jobID)
	} else {
		query = query.
			Joins("JOIN group_members ON group_members.group_id = groups.id").
			Where("group_members.user_id = ?", user.ID)
	}

	if err := query.Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch groups: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "groups": groups})
}

// GetGroupByID fetches a single group with members and leader preloaded.
// @Summary Get group by ID
// @Tags Group
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired group"
// @Success 200 {object} map[string]interface{} "message plus the group"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Group not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /group/{id} [get]
func (gc *GroupController) GetGroupByID(c *gin.Context) {
	group, err := gc.loadGroup(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to retrieve group: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "group": group})
}

type inviteMemberInfo struct {
	UserID string `json:"user_id" binding:"required"`
}

// InviteMember adds a user to the group in pending state and writes an
// invitation notification. Re-adding an existing member is an error so
// callers can tell the two outcomes apart.
// @Summary Invite a user into a group
// @Description Added member starts in pending state until the leader approves
// @Tags Group
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the group"
// @Param Member body inviteMemberInfo true "ID of the user to invite"
// @Success 201 {object} model.GroupMember "Successfully add member"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or user does not exist"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Group not found"
// @Failure 409 {object} utilities.ErrorResponse "User is already a member of this group"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /group/{id}/member [post]
func (gc *GroupController) InviteMember(c *gin.Context) {
	if _, err := utilities.ExtractUser(c); err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	info := inviteMemberInfo{}
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	invitedID, err := uuid.Parse(info.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "user_id must be a valid UUID"})
		return
	}

	group, err := gc.loadGroup(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to retrieve group: ", err.Error()),
		})
		return
	}

	member := model.GroupMember{
		GroupID: group.ID,
		UserID:  invitedID,
		Status:  model.GroupMemberStatusPending,
	}

	// The (group_id, user_id) index makes re-adds deterministic even when
	// two invites race.
	if err := gc.DB.Create(&member).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				c.JSON(http.StatusConflict, utilities.ErrorResponse{
					Error: "User is already a member of this group",
				})
				return
			case pgForeignKeyViolation:
				c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
					Error: "User does not exist",
				})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to add member: ", err.Error()),
		})
		return
	}

	gc.notify(model.Notification{
		RecipientID: invitedID,
		Type:        model.NotificationApplicationInvitation,
		GroupID:     &group.ID,
		JobID:       &group.JobID,
	})

	c.JSON(http.StatusCreated, member)
}

type memberStatusInfo struct {
	Status string `json:"status" binding:"required"`
}

// UpdateMemberStatus lets the leader approve or reject a pending member.
// Any other transition is a conflict, never a silent no-op.
// @Summary Approve or reject a pending member
// @Description Only the group leader has access to this endpoint
// @Tags Group
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the group"
// @Param user_id path string true "ID of the member to decide on"
// @Param Status body memberStatusInfo true "New status, approved or rejected"
// @Success 200 {object} model.GroupMember "Successfully update member status"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Requester is not the group leader"
// @Failure 404 {object} utilities.ErrorResponse "Group or member not found"
// @Failure 409 {object} utilities.ErrorResponse "Member is not in pending state"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /group/{id}/member/{user_id}/status [patch]
func (gc *GroupController) UpdateMemberStatus(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	info := memberStatusInfo{}
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}
	if info.Status != model.GroupMemberStatusApproved && info.Status != model.GroupMemberStatusRejected {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "status must be approved or rejected",
		})
		return
	}

	targetID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "user_id must be a valid UUID"})
		return
	}

	group, err := gc.loadGroup(c.Param("id"))
	if err != nil {
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
			Error: "Only the group leader can decide on members",
		})
		return
	}

	member := group.FindMember(targetID)
	if member == nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Member not found in this group"})
		return
	}

	if member.Status != model.GroupMemberStatusPending {
		c.JSON(http.StatusConflict, utilities.ErrorResponse{
			Error: fmt.Sprintf("Member is already %s", member.Status),
		})
		return
	}

	member.Status = info.Status
	if err := gc.DB.Model(&model.GroupMember{}).
		Where("id = ?", member.ID).
		Update("status", info.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to update member status: ", err.Error()),
		})
		return
	}

	notifType := model.NotificationApplicationApproved
	if info.Status == model.GroupMemberStatusRejected {
		notifType = model.NotificationApplicationRejected
	}
	gc.notify(model.Notification{
		RecipientID: targetID,
		Type:        notifType,
		GroupID:     &group.ID,
		JobID:       &group.JobID,
	})

	c.JSON(http.StatusOK, member)
}

type participationInfo struct {
	Status string `json:"status" binding:"required"`
}

// UpdateParticipation lets an approved member set their own participation
// intent for the group's joint application.
// @Summary Set own participation status
// @Description Only approved members can toggle their own participation
// @Tags Group
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the group"
// @Param Status body participationInfo true "participating, not_participating or pending"
// @Success 200 {object} model.GroupMember "Successfully update participation"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Requester is not an approved member"
// @Failure 404 {object} utilities.ErrorResponse "Group not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /group/{id}/participation [patch]
func (gc *GroupController) UpdateParticipation(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	info := participationInfo{}
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	switch info.Status {
	case model.ParticipationStatusParticipating,
		model.ParticipationStatusNotParticipating,
		model.ParticipationStatusPending:
	default:
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "status must be participating, not_participating or pending",
		})
		return
	}

	group, err := gc.loadGroup(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to retrieve group: ", err.Error()),
		})
		return
	}

	member := group.FindMember(user.ID)
	if member == nil || member.Status != model.GroupMemberStatusApproved {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Only approved members can set their participation",
		})
		return
	}

	if err := gc.DB.Model(&model.GroupMember{}).
		Where("id = ?", member.ID).
		Update("application_status", info.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to update participation: ", err.Error()),
		})
		return
	}

	member.ApplicationStatus = &info.Status
	c.JSON(http.StatusOK, member)
}
