package handlers

import (
	"net/http"

	profileRepo "beautymatch/database/repository/profile"
	"beautymatch/models"
	"beautymatch/utils"

	"github.com/gin-gonic/gin"
)

// ProfileHandler exposes professional profile reads and owner edits.
type ProfileHandler struct {
	Profiles profileRepo.ProfileRepository
}

// NewProfileHandler creates a new ProfileHandler instance.
func NewProfileHandler(repo profileRepo.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{Profiles: repo}
}

// GetProfileHandler handles GET /api/profiles/:id.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	prof, err := h.Profiles.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch profile", err.Error())
		return
	}
	if prof == nil {
		utils.JSONError(c, http.StatusNotFound, "Profile not found", "")
		return
	}
	c.JSON(http.StatusOK, prof)
}

// updateProfileRequest is the owner-editable field set. Pointer fields
// distinguish "absent" from "set to zero" so edits stay partial.
type updateProfileRequest struct {
	Name          *string              `json:"name"`
	Specialty     *string              `json:"specialty"`
	Bio           *string              `json:"bio"`
	Location      *string              `json:"location"`
	ProfileImage  *string              `json:"profileImage"`
	Availability  *string              `json:"availability"`
	Services      []models.Service     `json:"services"`
	TikTokURLs    []string             `json:"tiktokUrls"`
	InstagramURLs []string             `json:"instagramEmbedUrls"`
	Socials       *models.SocialLinks  `json:"socials"`
	TravelPolicy  *models.TravelPolicy `json:"travelPolicy"`
}

// UpdateProfileHandler handles PATCH /api/profiles/me. Only the
// authenticated owner can edit, and only through a merge write.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile payload", err.Error())
		return
	}

	partial := map[string]interface{}{}
	if req.Name != nil {
		partial["name"] = *req.Name
	}
	if req.Specialty != nil {
		if !utils.IsValidSpecialty(*req.Specialty) {
			utils.JSONError(c, http.StatusBadRequest, "Unknown specialty", *req.Specialty)
			return
		}
		partial["specialty"] = *req.Specialty
	}
	if req.Bio != nil {
		partial["bio"] = *req.Bio
	}
	if req.Location != nil {
		if !utils.IsValidLocation(*req.Location) {
			utils.JSONError(c, http.StatusBadRequest, "Unknown location", *req.Location)
			return
		}
		partial["location"] = *req.Location
	}
	if req.ProfileImage != nil {
		partial["profileImage"] = *req.ProfileImage
	}
	if req.Availability != nil {
		if *req.Availability != models.AvailabilityAvailable && *req.Availability != models.AvailabilityUnavailable {
			utils.JSONError(c, http.StatusBadRequest, "Unknown availability", *req.Availability)
			return
		}
		partial["availability"] = *req.Availability
	}
	if req.Services != nil {
		partial["services"] = req.Services
	}
	if req.TikTokURLs != nil {
		partial["tiktokUrls"] = req.TikTokURLs
	}
	if req.InstagramURLs != nil {
		partial["instagramEmbedUrls"] = req.InstagramURLs
	}
	if req.Socials != nil {
		partial["socials"] = *req.Socials
	}
	if req.TravelPolicy != nil {
		partial["travelPolicy"] = *req.TravelPolicy
	}
	if len(partial) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Nothing to update", "")
		return
	}

	userID := c.GetString("userID")
	if err := h.Profiles.Merge(userID, partial); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update profile", err.Error())
		return
	}

	prof, err := h.Profiles.GetByID(userID)
	if err != nil || prof == nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reload profile", "")
		return
	}
	c.JSON(http.StatusOK, prof)
}
