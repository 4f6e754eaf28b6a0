// Package friend implements the contact list that feeds group invitations.
package friend

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"jobsta-backend/internal/database"
	"jobsta-backend/internal/model"
	"jobsta-backend/internal/utilities"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FriendController handles friend list related endpoints
type FriendController struct {
	DB *database.DBinstanceStruct
}

// NewFriendController creates a new instance of FriendController
func NewFriendController(db *database.DBinstanceStruct) *FriendController {
	return &FriendController{
		DB: db,
	}
}

type addFriendInfo struct {
	UserID string `json:"user_id" binding:"required"`
}

// AddFriend adds a user to the caller's contact list.
// @Summary Add a friend
// @Tags Friend
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Friend body addFriendInfo true "ID of the user to add"
// @Success 201 {object} model.Friend "Successfully add friend"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or user does not exist"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 409 {object} utilities.ErrorResponse "Already in the friend list"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /friend [post]
func (fc *FriendController) AddFriend(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	info := addFriendInfo{}
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	friendID, err := uuid.Parse(info.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "user_id must be a valid UUID"})
		return
	}
	if friendID == user.ID {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Cannot add yourself"})
		return
	}

	friend := model.Friend{UserID: user.ID, FriendID: friendID}
	if err := fc.DB.Create(&friend).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				c.JSON(http.StatusConflict, utilities.ErrorResponse{
					Error: "User is already in your friend list",
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
			Error: fmt.Sprint("Failed to add friend: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, friend)
}

// ListFriends lists the caller's contact list with user records preloaded.
// @Summary Get own friend list
// @Tags Friend
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} map[string]interface{} "message plus friends"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /friend [get]
func (fc *FriendController) ListFriends(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	friends := []model.Friend{}
	if err := fc.DB.
		Preload("FriendAs").
		Where("user_id = ?", user.ID).
		Order("created_at ASC").
		Find(&friends).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch friends: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "friends": friends})
}

// RemoveFriend deletes a user from the caller's contact list.
// @Summary Remove a friend
// @Tags Friend
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param user_id path string true "ID of the user to remove"
// @Success 200 {object} utilities.MessageResponse "Successfully remove friend"
// @Failure 400 {object} utilities.ErrorResponse "Invalid user id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Not in the friend list"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /friend/{user_id} [delete]
func (fc *FriendController) RemoveFriend(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	friendID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "user_id must be a valid UUID"})
		return
	}

	result := fc.DB.
		Where("user_id = ? AND friend_id = ?", user.ID, friendID).
		Delete(&model.Friend{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to remove friend: ", result.Error.Error()),
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "User is not in your friend list"})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Friend removed"})
}
