package assets

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"assetdesk/pkg/response"
)

const (
	maxImportSize   = 10 << 20 // 10MB upload cap
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type AssetHandler struct {
	service AssetService
}

func NewAssetHandler(service AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

func (h *AssetHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.GET("/assets", h.listAssets)
	api.GET("/assets/export", h.exportAssets)
	api.GET("/assets/:id", h.getAssetByID)
	api.POST("/assets", h.createAsset)
	api.POST("/assets/import", h.importAssets)
	api.PUT("/assets/:id", h.updateAsset)
	api.DELETE("/assets/:id", h.deleteAsset)
}

type importResponse struct {
	Message  string   `json:"message"`
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
	Assets   []Asset  `json:"assets"`
}

// sendDomainError translates service failures into the API's status codes.
// Unexpected errors are logged and surfaced only as a generic message.
func sendDomainError(c *gin.Context, err error) {
	var verrs ValidationErrors
	switch {
	case errors.As(err, &verrs):
		response.SendError(c, http.StatusBadRequest, "validation failed", verrs)
	case errors.Is(err, ErrTagConflict):
		response.SendError(c, http.StatusConflict, "asset tag already in use", nil)
	case errors.Is(err, ErrAssetNotFound):
		response.SendError(c, http.StatusNotFound, "asset not found", nil)
	default:
		log.Printf("assets: unexpected error: %v", err)
		response.SendError(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// @Summary      List all assets
// @Description  Retrieves every asset, ordered by insertion
// @Tags         assets
// @Produce      json
// @Success      200  {array}   Asset "Assets listed"
// @Failure      500  {object}  response.ErrorResponse "Internal server error"
// @Router       /api/assets [get]
func (h *AssetHandler) listAssets(c *gin.Context) {
	list, err := h.service.ListAssets(c.Request.Context())
	if err != nil {
		sendDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Get asset by ID
// @Description  Retrieves a single asset by its ID
// @Tags         assets
// @Produce      json
// @Param        id   path      int  true  "Asset ID"
// @Success      200  {object}  Asset "Asset fetched"
// @Failure      400  {object}  response.ErrorResponse "Invalid asset ID"
// @Failure      404  {object}  response.ErrorResponse "Asset not found"
// @Failure      500  {object}  response.ErrorResponse "Internal server error"
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) getAssetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendError(c, http.StatusBadRequest, "invalid asset id", nil)
		return
	}

	asset, err := h.service.GetAssetByID(c.Request.Context(), id)
	if err != nil {
		sendDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// @Summary      Create an asset
// @Description  Creates a new asset; the tag must not already be in use
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        request body AssetInput true "Asset fields"
// @Success      201  {object}  Asset "Asset created"
// @Failure      400  {object}  response.ErrorResponse "Validation failed"
// @Failure      409  {object}  response.ErrorResponse "Tag conflict"
// @Failure      500  {object}  response.ErrorResponse "Internal server error"
// @Router       /api/assets [post]
func (h *AssetHandler) createAsset(c *gin.Context) {
	var input AssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid request payload", nil)
		return
	}

	asset, err := h.service.CreateAsset(c.Request.Context(), input)
	if err != nil {
		sendDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, asset)
}

// @Summary      Update an asset
// @Description  Partially updates an asset; absent fields keep prior values
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id      path      int  true  "Asset ID"
// @Param        request body AssetPatch true "Fields to change"
// @Success      200  {object}  Asset "Asset updated"
// @Failure      400  {object}  response.ErrorResponse "Validation failed"
// @Failure      404  {object}  response.ErrorResponse "Asset not found"
// @Failure      409  {object}  response.ErrorResponse "Tag conflict"
// @Failure      500  {object}  response.ErrorResponse "Internal server error"
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) updateAsset(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendError(c, http.StatusBadRequest, "invalid asset id", nil)
		return
	}

	var patch AssetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid request payload", nil)
		return
	}

	asset, err := h.service.UpdateAsset(c.Request.Context(), id, patch)
	if err != nil {
		sendDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// @Summary      Delete an asset
// @Description  Deletes an asset by ID
// @Tags         assets
// @Produce      json
// @Param        id   path      int  true  "Asset ID"
// @Success      200  {object}  response.MessageResponse "Asset deleted"
// @Failure      400  {object}  response.ErrorResponse "Invalid asset ID"
// @Failure      404  {object}  response.ErrorResponse "Asset not found"
// @Failure      500  {object}  response.ErrorResponse "Internal server error"
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) deleteAsset(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendError(c, http.StatusBadRequest, "invalid asset id", nil)
		return
	}

	deleted, err := h.service.DeleteAsset(c.Request.Context(), id)
	if err != nil {
		sendDomainError(c, err)
		return
	}
	if !deleted {
		response.SendError(c, http.StatusNotFound, "asset not found", nil)
		return
	}
	response.SendMessage(c, http.StatusOK, "asset deleted")
}

// @Summary      Import assets from a spreadsheet
// @Description  Reads the first sheet of an uploaded .xlsx/.xls file; valid rows are inserted, rejected rows are reported per row
// @Tags         assets
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Workbook (max 10MB)"
// @Success      200  {object}  importResponse "Import summary"
// @Failure      400  {object}  response.ErrorResponse "Bad upload or no importable rows"
// @Failure      500  {object}  response.ErrorResponse "Internal server error"
// @Router       /api/assets/import [post]
func (h *AssetHandler) importAssets(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "file is required", nil)
		return
	}
	if fileHeader.Size > maxImportSize {
		response.SendError(c, http.StatusBadRequest, "file exceeds the 10MB limit", nil)
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		response.SendError(c, http.StatusBadRequest, "unsupported file type; upload .xlsx or .xls", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("assets: open upload: %v", err)
		response.SendError(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	defer file.Close()

	res, err := h.service.ImportAssets(c.Request.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, ErrWorkbookUnreadable):
			response.SendError(c, http.StatusBadRequest, "cannot read workbook", nil)
		case errors.Is(err, ErrNoRowsImported):
			response.SendError(c, http.StatusBadRequest, "no rows imported", res.Errors)
		default:
			log.Printf("assets: import: %v", err)
			response.SendError(c, http.StatusInternalServerError, "internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, importResponse{
		Message:  fmt.Sprintf("%d assets imported", res.Imported),
		Imported: res.Imported,
		Errors:   res.Errors,
		Assets:   res.Assets,
	})
}

// @Summary      Export all assets as a spreadsheet
// @Description  Downloads the full asset table as a single-sheet .xlsx workbook
// @Tags         assets
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file "assets.xlsx"
// @Failure      500  {object}  response.ErrorResponse "Internal server error"
// @Router       /api/assets/export [get]
func (h *AssetHandler) exportAssets(c *gin.Context) {
	data, err := h.service.ExportAssets(c.Request.Context())
	if err != nil {
		log.Printf("assets: export: %v", err)
		response.SendError(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=assets.xlsx")
	c.Data(http.StatusOK, xlsxContentType, data)
}
