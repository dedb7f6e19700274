package controllers

import (
	"strconv"

	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/pkg/resp"
	"github.com/Sunatl/mushkiloti-gomea/services"
	"github.com/Sunatl/mushkiloti-gomea/utils"
	"github.com/gin-gonic/gin"
)

type CreateCommentRequest struct {
	IssueID uint   `json:"issueId" binding:"required"`
	Text    string `json:"text" binding:"required"`
}

type CommentController struct {
	commentService *services.CommentService
}

func NewCommentController(service *services.CommentService) *CommentController {
	return &CommentController{commentService: service}
}

// GET /api/comments?issueId=
func (cc *CommentController) List(c *gin.Context) {
	issueID, _ := strconv.Atoi(c.DefaultQuery("issueId", "0"))

	var comments []entity.Comment
	if err := cc.commentService.List(uint(issueID), &comments); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, comments)
}

// GET /api/comments/:id
func (cc *CommentController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	comment, err := cc.commentService.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, comment)
}

// POST /api/comments — author is always the caller
func (cc *CommentController) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	comment := entity.Comment{
		IssueID: req.IssueID,
		Text:    req.Text,
	}
	if err := cc.commentService.Create(utils.CurrentUserID(c), &comment); err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, comment)
}

// PATCH /api/comments/:id
func (cc *CommentController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		Text       *string `json:"text" binding:"omitempty,min=1"`
		IsSolution *bool   `json:"isSolution"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Text != nil {
		updates["text"] = *req.Text
	}
	if req.IsSolution != nil {
		updates["is_solution"] = *req.IsSolution
	}

	comment, err := cc.commentService.Update(id, updates)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, comment)
}

// DELETE /api/comments/:id
func (cc *CommentController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := cc.commentService.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
