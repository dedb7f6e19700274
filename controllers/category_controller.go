package controllers

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/pkg/resp"
	"github.com/Sunatl/mushkiloti-gomea/services"
	"github.com/gin-gonic/gin"
)

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type CategoryController struct {
	categoryService *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: service}
}

// GET /api/categories
func (cc *CategoryController) List(c *gin.Context) {
	var categories []entity.Category
	if err := cc.categoryService.List(&categories); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, categories)
}

// GET /api/categories/:id
func (cc *CategoryController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	category, err := cc.categoryService.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, category)
}

// POST /api/categories
func (cc *CategoryController) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	category := entity.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}
	if err := cc.categoryService.Create(&category); err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, category)
}

// PATCH /api/categories/:id
func (cc *CategoryController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		Name        *string `json:"name" binding:"omitempty,min=1"`
		Description *string `json:"description"`
		Icon        *string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}

	category, err := cc.categoryService.Update(id, updates)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, category)
}

// DELETE /api/categories/:id
func (cc *CategoryController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := cc.categoryService.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
