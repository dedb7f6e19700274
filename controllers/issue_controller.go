package controllers

import (
	"time"

	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/pkg/resp"
	"github.com/Sunatl/mushkiloti-gomea/services"
	"github.com/Sunatl/mushkiloti-gomea/utils"
	"github.com/gin-gonic/gin"
)

type CreateIssueRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required"`
	CategoryID  uint     `json:"categoryId" binding:"required"`
	Address     string   `json:"address" binding:"max=300"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,wgs84lat"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,wgs84lng"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high critical"`
}

type UpdateIssueRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Description *string    `json:"description"`
	Address     *string    `json:"address" binding:"omitempty,max=300"`
	Latitude    *float64   `json:"latitude" binding:"omitempty,wgs84lat"`
	Longitude   *float64   `json:"longitude" binding:"omitempty,wgs84lng"`
	Status      *string    `json:"status" binding:"omitempty,oneof=reported in_progress resolved closed"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	ResolvedAt  *time.Time `json:"resolvedAt"`
}

type IssueController struct {
	issueService *services.IssueService
}

func NewIssueController(service *services.IssueService) *IssueController {
	return &IssueController{issueService: service}
}

// GET /api/issues
func (ic *IssueController) List(c *gin.Context) {
	var issues []entity.Issue
	if err := ic.issueService.List(&issues); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, issues)
}

// GET /api/issues/:id
func (ic *IssueController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	issue, err := ic.issueService.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, issue)
}

// POST /api/issues — reporter is always the caller
func (ic *IssueController) Create(c *gin.Context) {
	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	issue := entity.Issue{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      entity.StatusReported,
		Priority:    entity.PriorityMedium,
	}
	if req.Priority != "" {
		issue.Priority = req.Priority
	}

	if err := ic.issueService.Create(utils.CurrentUserID(c), &issue); err != nil {
		writeError(c, err)
		return
	}

	created, err := ic.issueService.Get(issue.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, created)
}

// PATCH /api/issues/:id
func (ic *IssueController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.ResolvedAt != nil {
		updates["resolved_at"] = *req.ResolvedAt
	}

	issue, err := ic.issueService.Update(id, updates)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, issue)
}

// DELETE /api/issues/:id
func (ic *IssueController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ic.issueService.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// POST /api/issues/:id/vote — toggle, not set
func (ic *IssueController) Vote(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	votes, accepted, err := ic.issueService.ToggleVote(utils.CurrentUserID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	message := "vote cancelled"
	if accepted {
		message = "vote accepted"
	}
	resp.OK(c, gin.H{"message": message, "votes": votes})
}

// GET /api/issues/popular — top 10 by votes
func (ic *IssueController) Popular(c *gin.Context) {
	var issues []entity.Issue
	if err := ic.issueService.Popular(&issues); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, issues)
}

// GET /api/issues/recent — 20 newest
func (ic *IssueController) Recent(c *gin.Context) {
	var issues []entity.Issue
	if err := ic.issueService.Recent(&issues); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, issues)
}
