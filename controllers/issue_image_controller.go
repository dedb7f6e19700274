package controllers

import (
	"strconv"
	"strings"

	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/pkg/resp"
	"github.com/Sunatl/mushkiloti-gomea/services"
	"github.com/gin-gonic/gin"
)

type CreateIssueImageRequest struct {
	IssueID  uint   `json:"issueId" binding:"required"`
	Image    string `json:"image" binding:"required"`
	Caption  string `json:"caption" binding:"max=200"`
	IsBefore *bool  `json:"isBefore"`
}

type IssueImageController struct {
	imageService *services.IssueImageService
}

func NewIssueImageController(service *services.IssueImageService) *IssueImageController {
	return &IssueImageController{imageService: service}
}

// GET /api/issue-images?issueId=
func (ic *IssueImageController) List(c *gin.Context) {
	issueID, _ := strconv.Atoi(c.DefaultQuery("issueId", "0"))

	var images []entity.IssueImage
	if err := ic.imageService.List(uint(issueID), &images); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, images)
}

// GET /api/issue-images/:id
func (ic *IssueImageController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	img, err := ic.imageService.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, img)
}

// POST /api/issue-images — JSON body carrying an existing asset reference,
// or multipart with the file itself
func (ic *IssueImageController) Create(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		ic.createFromUpload(c)
		return
	}

	var req CreateIssueImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	img := entity.IssueImage{
		IssueID:  req.IssueID,
		Image:    req.Image,
		Caption:  req.Caption,
		IsBefore: true,
	}
	if req.IsBefore != nil {
		img.IsBefore = *req.IsBefore
	}

	if err := ic.imageService.Create(&img); err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, img)
}

func (ic *IssueImageController) createFromUpload(c *gin.Context) {
	issueID, err := strconv.Atoi(c.PostForm("issueId"))
	if err != nil || issueID <= 0 {
		resp.BadRequest(c, "issueId is required")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}
	src, err := file.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer src.Close()

	isBefore := c.DefaultPostForm("isBefore", "true") == "true"

	img, err := ic.imageService.Upload(c.Request.Context(), uint(issueID),
		file.Filename, src, file.Size, c.PostForm("caption"), isBefore)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, img)
}

// PATCH /api/issue-images/:id
func (ic *IssueImageController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		Caption  *string `json:"caption" binding:"omitempty,max=200"`
		IsBefore *bool   `json:"isBefore"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Caption != nil {
		updates["caption"] = *req.Caption
	}
	if req.IsBefore != nil {
		updates["is_before"] = *req.IsBefore
	}

	img, err := ic.imageService.Update(id, updates)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, img)
}

// DELETE /api/issue-images/:id
func (ic *IssueImageController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ic.imageService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
