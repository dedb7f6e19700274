package controllers

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/pkg/resp"
	"github.com/Sunatl/mushkiloti-gomea/services"
	"github.com/gin-gonic/gin"
)

type RuleRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	CategoryID  *uint  `json:"categoryId"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

type RuleController struct {
	ruleService *services.RuleService
}

func NewRuleController(service *services.RuleService) *RuleController {
	return &RuleController{ruleService: service}
}

// GET /api/rules — active only, in display order
func (rc *RuleController) List(c *gin.Context) {
	var rules []entity.Rule
	if err := rc.ruleService.List(&rules); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, rules)
}

// GET /api/rules/:id
func (rc *RuleController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	rule, err := rc.ruleService.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, rule)
}

// POST /api/rules
func (rc *RuleController) Create(c *gin.Context) {
	var req RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rule := entity.Rule{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Order:       req.Order,
		IsActive:    true,
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := rc.ruleService.Create(&rule); err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, rule)
}

// PATCH /api/rules/:id
func (rc *RuleController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		Title       *string `json:"title" binding:"omitempty,max=200"`
		Description *string `json:"description"`
		Order       *int    `json:"order"`
		IsActive    *bool   `json:"isActive"`
	}
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
	if req.Order != nil {
		updates["order"] = *req.Order
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	rule, err := rc.ruleService.Update(id, updates)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, rule)
}

// DELETE /api/rules/:id
func (rc *RuleController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := rc.ruleService.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
