package controllers

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/pkg/resp"
	"github.com/Sunatl/mushkiloti-gomea/services"
	"github.com/Sunatl/mushkiloti-gomea/utils"
	"github.com/gin-gonic/gin"
)

type CreateNotificationRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Message string `json:"message" binding:"required"`
	IssueID *uint  `json:"issueId"`
}

type NotificationController struct {
	notificationService *services.NotificationService
}

func NewNotificationController(service *services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: service}
}

// GET /api/notifications — always the caller's own, whatever the query says
func (nc *NotificationController) List(c *gin.Context) {
	var notifications []entity.Notification
	if err := nc.notificationService.ListForUser(utils.CurrentUserID(c), &notifications); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, notifications)
}

// GET /api/notifications/:id
func (nc *NotificationController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	n, err := nc.notificationService.GetForUser(utils.CurrentUserID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, n)
}

// POST /api/notifications
func (nc *NotificationController) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	n := entity.Notification{
		Title:   req.Title,
		Message: req.Message,
		IssueID: req.IssueID,
	}
	if err := nc.notificationService.Create(utils.CurrentUserID(c), &n); err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, n)
}

// PATCH /api/notifications/:id
func (nc *NotificationController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		IsRead *bool `json:"isRead"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.IsRead != nil {
		updates["is_read"] = *req.IsRead
	}

	n, err := nc.notificationService.UpdateForUser(utils.CurrentUserID(c), id, updates)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, n)
}

// DELETE /api/notifications/:id
func (nc *NotificationController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := nc.notificationService.DeleteForUser(utils.CurrentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// POST /api/notifications/mark-all-read
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	if err := nc.notificationService.MarkAllRead(utils.CurrentUserID(c)); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "all notifications marked as read"})
}
