package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/api/rest/middleware"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/appearance"
)

// AppearanceHandler defines the interface for white-label customization
type AppearanceHandler interface {
	GetTheme(ctx *gin.Context)
	UpdateTheme(ctx *gin.Context)
	CreateSlide(ctx *gin.Context)
	ListSlides(ctx *gin.Context)
	UpdateSlide(ctx *gin.Context)
	DeleteSlide(ctx *gin.Context)
	ReorderSlides(ctx *gin.Context)
}

type appearanceHandler struct {
	appearanceService appearance.AppearanceService
}

// NewAppearanceHandler creates a new AppearanceHandler
func NewAppearanceHandler(appearanceService appearance.AppearanceService) AppearanceHandler {
	return &appearanceHandler{
		appearanceService: appearanceService,
	}
}

// GetTheme handles the GET request for the tenant's theme
// @Summary Retrieve the store theme
// @Tags Appearance
// @Produce json
// @Success 200 {object} ThemeResponse
// @Failure 404 {object} ErrorResponse
// @Router /appearance/theme [get]
func (handler *appearanceHandler) GetTheme(ctx *gin.Context) {
	tenantID := middleware.TenantID(ctx)

	theme, err := handler.appearanceService.GetTheme(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "theme not found"})
		return
	}

	ctx.JSON(http.StatusOK, newThemeResponse(theme))
}

// UpdateTheme handles the PUT request to update the tenant's theme
// @Summary Update the store theme
// @Tags Appearance
// @Accept json
// @Produce json
// @Param requestBody body ThemeRequest true "Theme data"
// @Success 200 {object} ThemeResponse
// @Failure 400 {object} ErrorResponse
// @Router /appearance/theme [put]
func (handler *appearanceHandler) UpdateTheme(ctx *gin.Context) {
	var request ThemeRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid theme data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	tenantID := middleware.TenantID(ctx)
	theme := request.ToDomain(tenantID)

	if err := handler.appearanceService.UpdateTheme(ctx, theme); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating theme: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newThemeResponse(theme))
}

// CreateSlide handles the POST request to add a carousel slide
// @Summary Add a carousel slide
// @Tags Appearance
// @Accept json
// @Produce json
// @Param requestBody body SlideRequest true "Slide data"
// @Success 201 {object} SlideResponse
// @Failure 400 {object} ErrorResponse
// @Router /appearance/slides [post]
func (handler *appearanceHandler) CreateSlide(ctx *gin.Context) {
	var request SlideRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid slide data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}

	tenantID := middleware.TenantID(ctx)
	slide, err := handler.appearanceService.CreateSlide(ctx, &appearance.CatalogSlide{
		TenantID: tenantID,
		ImageURL: request.ImageURL,
		Caption:  request.Caption,
		LinkURL:  request.LinkURL,
		Active:   active,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error creating slide: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, newSlideResponse(slide))
}

// ListSlides handles the GET request to list all carousel slides
// @Summary List the store's carousel slides
// @Tags Appearance
// @Produce json
// @Success 200 {array} SlideResponse
// @Failure 400 {object} ErrorResponse
// @Router /appearance/slides [get]
func (handler *appearanceHandler) ListSlides(ctx *gin.Context) {
	tenantID := middleware.TenantID(ctx)

	slides, err := handler.appearanceService.ListSlides(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	var listResponse = []SlideResponse{}
	for _, slide := range slides {
		listResponse = append(listResponse, newSlideResponse(slide))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// UpdateSlide handles the PUT request to update a carousel slide
// @Summary Update a carousel slide
// @Tags Appearance
// @Accept json
// @Produce json
// @Param id path string true "Slide ID"
// @Param requestBody body SlideRequest true "Slide data"
// @Success 200 {object} SlideResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /appearance/slides/{id} [put]
func (handler *appearanceHandler) UpdateSlide(ctx *gin.Context) {
	slideID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	var request SlideRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid slide data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}

	slide := &appearance.CatalogSlide{
		ID:       slideID,
		TenantID: tenantID,
		ImageURL: request.ImageURL,
		Caption:  request.Caption,
		LinkURL:  request.LinkURL,
		Active:   active,
	}

	if err := handler.appearanceService.UpdateSlide(ctx, slide); err != nil {
		if errors.Is(err, appearance.ErrSlideNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("slide with id %s not found", slideID)})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating slide: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newSlideResponse(slide))
}

// DeleteSlide handles the DELETE request to remove a carousel slide
// @Summary Delete a carousel slide
// @Tags Appearance
// @Produce json
// @Param id path string true "Slide ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /appearance/slides/{id} [delete]
func (handler *appearanceHandler) DeleteSlide(ctx *gin.Context) {
	slideID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	if err := handler.appearanceService.DeleteSlide(ctx, tenantID, slideID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error deleting slide with id %s", slideID)})
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted slide with id %s", slideID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}

// ReorderSlides handles the POST request to rewrite slide positions
// @Summary Reorder the carousel slides
// @Description Rewrite slide positions following the given ID order. The list must contain exactly the store's slides.
// @Tags Appearance
// @Accept json
// @Produce json
// @Param requestBody body ReorderSlidesRequest true "Ordered slide IDs"
// @Success 200 {array} SlideResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /appearance/slides/reorder [post]
func (handler *appearanceHandler) ReorderSlides(ctx *gin.Context) {
	var request ReorderSlidesRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid reorder data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	tenantID := middleware.TenantID(ctx)
	if err := handler.appearanceService.ReorderSlides(ctx, tenantID, request.SlideIDs); err != nil {
		if errors.Is(err, appearance.ErrSlideSetMismatch) {
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: "reorder list does not match existing slides"})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error reordering slides: %v", err.Error())})
		return
	}

	slides, err := handler.appearanceService.ListSlides(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	var listResponse = []SlideResponse{}
	for _, slide := range slides {
		listResponse = append(listResponse, newSlideResponse(slide))
	}

	ctx.JSON(http.StatusOK, listResponse)
}
