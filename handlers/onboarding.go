package handlers

import (
	"errors"
	"net/http"

	"beautymatch/services/onboarding"
	"beautymatch/utils"

	"github.com/gin-gonic/gin"
)

// OnboardingHandler exposes the professional onboarding wizard.
type OnboardingHandler struct {
	OnboardingService onboarding.OnboardingService
}

// NewOnboardingHandler creates a new OnboardingHandler instance.
func NewOnboardingHandler(svc onboarding.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{OnboardingService: svc}
}

// GetStateHandler handles GET /api/onboarding/state.
func (h *OnboardingHandler) GetStateHandler(c *gin.Context) {
	state, err := h.OnboardingService.GetState(c, c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Profile not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, state)
}

// SubmitStepHandler handles PUT /api/onboarding/steps/:step.
func (h *OnboardingHandler) SubmitStepHandler(c *gin.Context) {
	var in onboarding.StepInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid step payload", err.Error())
		return
	}

	state, err := h.OnboardingService.SubmitStep(c, c.GetString("userID"), c.Param("step"), in)
	if err != nil {
		if errors.Is(err, onboarding.ErrUnknownStep) {
			utils.JSONError(c, http.StatusNotFound, "Unknown step", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Step rejected", err.Error())
		return
	}
	c.JSON(http.StatusOK, state)
}

// CompleteHandler handles POST /api/onboarding/complete.
func (h *OnboardingHandler) CompleteHandler(c *gin.Context) {
	prof, err := h.OnboardingService.Complete(c, c.GetString("userID"))
	if err != nil {
		if errors.Is(err, onboarding.ErrIncompleteProfile) {
			utils.JSONError(c, http.StatusBadRequest, "Onboarding incomplete", err.Error())
			return
		}
		if errors.Is(err, onboarding.ErrProfileNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Profile not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to complete onboarding", err.Error())
		return
	}
	c.JSON(http.StatusOK, prof)
}
