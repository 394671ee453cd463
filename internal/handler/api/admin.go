package api

import (
	"io"
	"net/http"

	reqdto "travel-deals/internal/handler/dto/request"
	resdto "travel-deals/internal/handler/dto/response"
	"travel-deals/internal/handler/httperr"
	"travel-deals/internal/pkg/cookie"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/usecase/commands"
	"travel-deals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const imageFormField = "image_file"

type AdminHandler struct {
	cmds           commands.AdminCommands
	auth           commands.AuthCommands
	catalog        queries.CatalogQueries
	settings       SessionSettings
	maxUploadBytes int64
}

func NewAdminHandler(
	cmds commands.AdminCommands,
	auth commands.AuthCommands,
	catalog queries.CatalogQueries,
	settings SessionSettings,
	maxUploadBytes int64,
) *AdminHandler {
	return &AdminHandler{
		cmds:           cmds,
		auth:           auth,
		catalog:        catalog,
		settings:       settings,
		maxUploadBytes: maxUploadBytes,
	}
}

// @Summary Admin login
// @Description Exchange the shared admin password for an admin session
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Admin login"
// @Success 200 {object} resdto.AdminSessionResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	token, err := h.auth.AdminLogin(c.Request.Context(), req.Password)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrAdminLoginUnavailable):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Admin login is not available", nil)
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid admin password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetAdminCookie(c, h.settings.Cookie, token, h.settings.AdminTTL)
	c.JSON(http.StatusOK, resdto.AdminSessionResponse{AdminToken: token})
}

// @Summary Admin logout
// @Tags admin
// @Success 204 "No Content"
// @Router /admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	cookie.ClearAdminCookie(c, h.settings.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary List all deals
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.AdminDealResponse
// @Router /admin/deals [get]
func (h *AdminHandler) ListDeals(c *gin.Context) {
	views, err := h.catalog.AdminListDeals(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	out, err := resdto.FromAdminDeals(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get deal
// @Tags admin
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.AdminDealResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/deals/{id} [get]
func (h *AdminHandler) GetDeal(c *gin.Context) {
	dealID, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.catalog.AdminGetDeal(c.Request.Context(), dealID)
	if err != nil {
		if errs.Is(err, queries.ErrDealNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	out, err := resdto.FromAdminDeal(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Create deal
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDealRequest true "Deal"
// @Success 201 {object} resdto.CreatedDealResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/deals [post]
func (h *AdminHandler) CreateDeal(c *gin.Context) {
	var req reqdto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing fields", nil)
		return
	}

	result, err := h.cmds.CreateDeal(c.Request.Context(), req.ToInput())
	if err != nil {
		h.abortWrite(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedDealResponse{ID: result.DealID, Slug: result.Slug})
}

// @Summary Update deal
// @Tags admin
// @Accept json
// @Param id path string true "Deal ID"
// @Param request body reqdto.UpdateDealRequest true "Changed fields"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/deals/{id} [put]
func (h *AdminHandler) UpdateDeal(c *gin.Context) {
	dealID, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateDeal(c.Request.Context(), dealID, req.ToPatch()); err != nil {
		h.abortWrite(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Archive or unarchive deal
// @Tags admin
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.ToggleDealResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/deals/{id}/toggle [post]
func (h *AdminHandler) ToggleDeal(c *gin.Context) {
	dealID, ok := pathID(c)
	if !ok {
		return
	}

	active, err := h.cmds.ToggleDeal(c.Request.Context(), dealID)
	if err != nil {
		h.abortWrite(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ToggleDealResponse{IsActive: active})
}

// @Summary Add option
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param request body reqdto.CreateOptionRequest true "Option"
// @Success 201 {object} resdto.CreatedOptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/deals/{id}/options [post]
func (h *AdminHandler) AddOption(c *gin.Context) {
	dealID, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.CreateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	optionID, err := h.cmds.AddOption(c.Request.Context(), dealID, req.ToInput())
	if err != nil {
		h.abortWrite(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedOptionResponse{ID: optionID})
}

// @Summary Update option
// @Tags admin
// @Accept json
// @Param id path string true "Option ID"
// @Param request body reqdto.UpdateOptionRequest true "Changed fields"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/options/{id} [put]
func (h *AdminHandler) UpdateOption(c *gin.Context) {
	optionID, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateOption(c.Request.Context(), optionID, req.ToPatch()); err != nil {
		h.abortWrite(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upload deal image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Deal ID"
// @Param image_file formData file true "JPEG, PNG or WebP"
// @Success 200 {object} resdto.ImageUploadResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/deals/{id}/image [post]
func (h *AdminHandler) UploadImage(c *gin.Context) {
	dealID, ok := pathID(c)
	if !ok {
		return
	}

	// room for the multipart envelope around the file itself
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+64<<10)

	file, header, err := c.Request.FormFile(imageFormField)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Image upload failed", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Image upload failed", nil)
		return
	}

	url, err := h.cmds.UploadDealImage(c.Request.Context(), dealID, header.Filename, data)
	if err != nil {
		h.abortWrite(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ImageUploadResponse{ImageURL: url})
}

func (h *AdminHandler) abortWrite(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrInvalidImage):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Only JPEG, PNG or WebP images up to 2MB are allowed", nil)
	case errs.Is(err, commands.ErrInvalidRequest):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	case errs.Is(err, commands.ErrDealNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
	case errs.Is(err, commands.ErrOptionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Option not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
