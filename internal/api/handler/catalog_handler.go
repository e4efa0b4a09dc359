package handler

import (
	"filmorate-go/internal/api/dto"
	"filmorate-go/internal/api/response"
	"filmorate-go/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler 类型、分级与导演
type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListGenres GET /genres
func (h *CatalogHandler) ListGenres(c *gin.Context) {
	genres, err := h.catalogService.ListGenres()
	if err != nil {
		handleServiceError(c, err, "List genres")
		return
	}
	response.OK(c, "获取成功", toGenreInfos(genres))
}

// GetGenre GET /genres/:id
func (h *CatalogHandler) GetGenre(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	genre, err := h.catalogService.GetGenre(id)
	if err != nil {
		handleServiceError(c, err, "Get genre")
		return
	}
	response.OK(c, "获取成功", dto.NamedInfo{ID: genre.ID, Name: genre.Name})
}

// ListMpa GET /mpa
func (h *CatalogHandler) ListMpa(c *gin.Context) {
	ratings, err := h.catalogService.ListMpa()
	if err != nil {
		handleServiceError(c, err, "List mpa")
		return
	}
	response.OK(c, "获取成功", toMpaInfos(ratings))
}

// GetMpa GET /mpa/:id
func (h *CatalogHandler) GetMpa(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	mpa, err := h.catalogService.GetMpa(id)
	if err != nil {
		handleServiceError(c, err, "Get mpa")
		return
	}
	response.OK(c, "获取成功", dto.NamedInfo{ID: mpa.ID, Name: mpa.Name})
}

// ListDirectors GET /directors
func (h *CatalogHandler) ListDirectors(c *gin.Context) {
	directors, err := h.catalogService.ListDirectors()
	if err != nil {
		handleServiceError(c, err, "List directors")
		return
	}
	response.OK(c, "获取成功", toDirectorInfos(directors))
}

// GetDirector GET /directors/:id
func (h *CatalogHandler) GetDirector(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	director, err := h.catalogService.GetDirector(id)
	if err != nil {
		handleServiceError(c, err, "Get director")
		return
	}
	response.OK(c, "获取成功", dto.NamedInfo{ID: director.ID, Name: director.Name})
}

// CreateDirector 创建导演
// @Summary 创建导演
// @Tags 导演
// @Accept json
// @Produce json
// @Param request body dto.DirectorRequest true "导演"
// @Success 201 {object} response.Response{data=dto.NamedInfo} "创建成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /directors [post]
func (h *CatalogHandler) CreateDirector(c *gin.Context) {
	var req dto.DirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}
	director, err := h.catalogService.CreateDirector(&req)
	if err != nil {
		handleServiceError(c, err, "Create director")
		return
	}
	response.Created(c, "创建成功", dto.NamedInfo{ID: director.ID, Name: director.Name})
}

// UpdateDirector 修改导演
// @Summary 修改导演
// @Tags 导演
// @Accept json
// @Produce json
// @Param request body dto.DirectorRequest true "导演（含 id）"
// @Success 200 {object} response.Response{data=dto.NamedInfo} "更新成功"
// @Failure 404 {object} response.ErrorResponse "导演不存在"
// @Router /directors [put]
func (h *CatalogHandler) UpdateDirector(c *gin.Context) {
	var req dto.DirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}
	director, err := h.catalogService.UpdateDirector(&req)
	if err != nil {
		handleServiceError(c, err, "Update director")
		return
	}
	response.OK(c, "更新成功", dto.NamedInfo{ID: director.ID, Name: director.Name})
}

// DeleteDirector DELETE /directors/:id
func (h *CatalogHandler) DeleteDirector(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteDirector(id); err != nil {
		handleServiceError(c, err, "Delete director")
		return
	}
	response.OK(c, "删除成功", nil)
}
