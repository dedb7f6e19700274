package controllers

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/pkg/resp"
	"github.com/Sunatl/mushkiloti-gomea/services"
	"github.com/Sunatl/mushkiloti-gomea/storage"
	"github.com/Sunatl/mushkiloti-gomea/utils"
	"github.com/gin-gonic/gin"
)

type UpdateProfileRequest struct {
	Bio         *string `json:"bio"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,max=20"`
	Avatar      *string `json:"avatar"`
}

type ProfileController struct {
	profileService *services.ProfileService
	blobs          storage.Storage
}

func NewProfileController(service *services.ProfileService, blobs storage.Storage) *ProfileController {
	return &ProfileController{profileService: service, blobs: blobs}
}

// GET /api/profiles
func (pc *ProfileController) List(c *gin.Context) {
	var profiles []entity.UserProfile
	if err := pc.profileService.List(&profiles); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, profiles)
}

// GET /api/profiles/:id
func (pc *ProfileController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	profile, err := pc.profileService.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, profile)
}

// GET /api/profiles/me — created on first access
func (pc *ProfileController) Me(c *gin.Context) {
	profile, err := pc.profileService.Me(utils.CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, profile)
}

// GET /api/profiles/leaderboard — top 50 by points
func (pc *ProfileController) Leaderboard(c *gin.Context) {
	var profiles []entity.UserProfile
	if err := pc.profileService.Leaderboard(&profiles); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, profiles)
}

func profileUpdates(req UpdateProfileRequest) map[string]any {
	updates := map[string]any{}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	return updates
}

// PATCH /api/profiles/me
func (pc *ProfileController) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	profile, err := pc.profileService.UpdateMe(utils.CurrentUserID(c), profileUpdates(req))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, profile)
}

// PATCH /api/profiles/:id
func (pc *ProfileController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	profile, err := pc.profileService.Update(id, profileUpdates(req))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, profile)
}

// POST /api/profiles/me/avatar — multipart, keeps only the asset reference
func (pc *ProfileController) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		resp.BadRequest(c, "avatar file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer src.Close()

	ref, err := pc.blobs.Upload(c.Request.Context(), "avatars", file.Filename, src, file.Size)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	profile, err := pc.profileService.UpdateMe(utils.CurrentUserID(c), map[string]any{"avatar": ref})
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, profile)
}
