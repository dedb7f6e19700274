package controllers

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/pkg/resp"
	"github.com/Sunatl/mushkiloti-gomea/services"
	"github.com/Sunatl/mushkiloti-gomea/utils"
	"github.com/gin-gonic/gin"
)

type CreateVoteRequest struct {
	IssueID uint `json:"issueId" binding:"required"`
}

type VoteController struct {
	voteService *services.VoteService
}

func NewVoteController(service *services.VoteService) *VoteController {
	return &VoteController{voteService: service}
}

// GET /api/votes
func (vc *VoteController) List(c *gin.Context) {
	var votes []entity.Vote
	if err := vc.voteService.List(&votes); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, votes)
}

// GET /api/votes/:id
func (vc *VoteController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	vote, err := vc.voteService.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, vote)
}

// POST /api/votes — voting twice on one issue is a 409, use the issue
// toggle action for flip semantics
func (vc *VoteController) Create(c *gin.Context) {
	var req CreateVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	vote := entity.Vote{IssueID: req.IssueID}
	if err := vc.voteService.Create(utils.CurrentUserID(c), &vote); err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, vote)
}

// PATCH /api/votes/:id
func (vc *VoteController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		IssueID uint `json:"issueId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	vote, err := vc.voteService.Update(id, req.IssueID)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, vote)
}

// DELETE /api/votes/:id
func (vc *VoteController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := vc.voteService.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
