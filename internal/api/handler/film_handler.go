package handler

import (
	"filmorate-go/internal/api/dto"
	"filmorate-go/internal/api/response"
	"filmorate-go/internal/service"

	"github.com/gin-gonic/gin"
)

type FilmHandler struct {
	filmService    *service.FilmService
	likeService    *service.LikeService
	rankingService *service.RankingService
	searchService  *service.SearchService
	posterService  *service.PosterService
}

func NewFilmHandler(
	filmService *service.FilmService,
	likeService *service.LikeService,
	rankingService *service.RankingService,
	searchService *service.SearchService,
	posterService *service.PosterService,
) *FilmHandler {
	return &FilmHandler{
		filmService:    filmService,
		likeService:    likeService,
		rankingService: rankingService,
		searchService:  searchService,
		posterService:  posterService,
	}
}

// CreateFilm 创建电影
// @Summary 创建电影
// @Tags 电影
// @Accept json
// @Produce json
// @Param request body dto.FilmRequest true "电影信息"
// @Success 201 {object} response.Response{data=dto.FilmInfo} "创建成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 404 {object} response.ErrorResponse "分级、类型或导演不存在"
// @Router /films [post]
func (h *FilmHandler) CreateFilm(c *gin.Context) {
	var req dto.FilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	film, err := h.filmService.CreateFilm(&req)
	if err != nil {
		handleServiceError(c, err, "Create film")
		return
	}

	response.Created(c, "创建成功", toFilmInfo(film))
}

// UpdateFilm 更新电影
// @Summary 更新电影
// @Description 类型与导演整体替换
// @Tags 电影
// @Accept json
// @Produce json
// @Param request body dto.FilmRequest true "电影信息（含 id）"
// @Success 200 {object} response.Response{data=dto.FilmInfo} "更新成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 404 {object} response.ErrorResponse "电影不存在"
// @Router /films [put]
func (h *FilmHandler) UpdateFilm(c *gin.Context) {
	var req dto.FilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	film, err := h.filmService.UpdateFilm(&req)
	if err != nil {
		handleServiceError(c, err, "Update film")
		return
	}

	response.OK(c, "更新成功", toFilmInfo(film))
}

// GetFilm 获取电影
// @Summary 获取电影
// @Tags 电影
// @Produce json
// @Param id path int true "电影ID"
// @Success 200 {object} response.Response{data=dto.FilmInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "电影不存在"
// @Router /films/{id} [get]
func (h *FilmHandler) GetFilm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	film, err := h.filmService.GetFilm(id)
	if err != nil {
		handleServiceError(c, err, "Get film")
		return
	}

	response.OK(c, "获取成功", toFilmInfo(film))
}

// ListFilms GET /films
// @Summary 电影列表
// @Tags 电影
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.FilmInfo} "获取成功"
// @Router /films [get]
func (h *FilmHandler) ListFilms(c *gin.Context) {
	films, err := h.filmService.ListFilms()
	if err != nil {
		handleServiceError(c, err, "List films")
		return
	}

	response.OK(c, "获取成功", toFilmInfos(films))
}

// DeleteFilm DELETE /films/:id
// @Summary 删除电影
// @Tags 电影
// @Param id path int true "电影ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 404 {object} response.ErrorResponse "电影不存在"
// @Router /films/{id} [delete]
func (h *FilmHandler) DeleteFilm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.filmService.DeleteFilm(id); err != nil {
		handleServiceError(c, err, "Delete film")
		return
	}

	response.OK(c, "删除成功", nil)
}

// AddLike PUT /films/:id/like/:userId
// @Summary 喜欢电影
// @Tags 喜欢
// @Param id path int true "电影ID"
// @Param userId path int true "用户ID"
// @Success 200 {object} response.Response "操作成功"
// @Failure 404 {object} response.ErrorResponse "电影或用户不存在"
// @Router /films/{id}/like/{userId} [put]
func (h *FilmHandler) AddLike(c *gin.Context) {
	filmID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.likeService.AddLike(filmID, userID); err != nil {
		handleServiceError(c, err, "Add like")
		return
	}

	response.OK(c, "操作成功", nil)
}

// RemoveLike DELETE /films/:id/like/:userId
// @Summary 取消喜欢
// @Tags 喜欢
// @Param id path int true "电影ID"
// @Param userId path int true "用户ID"
// @Success 200 {object} response.Response "操作成功"
// @Failure 404 {object} response.ErrorResponse "电影或用户不存在"
// @Router /films/{id}/like/{userId} [delete]
func (h *FilmHandler) RemoveLike(c *gin.Context) {
	filmID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.likeService.RemoveLike(filmID, userID); err != nil {
		handleServiceError(c, err, "Remove like")
		return
	}

	response.OK(c, "操作成功", nil)
}

// PopularFilms 热门电影
// @Summary 热门电影
// @Description 按喜欢数降序，可按类型与上映年份过滤
// @Tags 排行
// @Produce json
// @Param count query int false "数量" default(10)
// @Param genreId query int false "类型ID"
// @Param year query int false "上映年份"
// @Success 200 {object} response.Response{data=[]dto.FilmInfo} "获取成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /films/popular [get]
func (h *FilmHandler) PopularFilms(c *gin.Context) {
	var q dto.PopularFilmsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	films, err := h.rankingService.TopLiked(q.Count, q.GenreID, q.Year)
	if err != nil {
		handleServiceError(c, err, "Popular films")
		return
	}

	response.OK(c, "获取成功", toFilmInfos(films))
}

// CommonFilms 两个用户共同喜欢的电影
// @Summary 共同喜欢的电影
// @Tags 排行
// @Produce json
// @Param userId query int true "用户ID"
// @Param friendId query int true "另一用户ID"
// @Success 200 {object} response.Response{data=[]dto.FilmInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /films/common [get]
func (h *FilmHandler) CommonFilms(c *gin.Context) {
	var q dto.CommonFilmsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	films, err := h.rankingService.CommonFilms(q.UserID, q.FriendID)
	if err != nil {
		handleServiceError(c, err, "Common films")
		return
	}

	response.OK(c, "获取成功", toFilmInfos(films))
}

// DirectorFilms 导演的电影
// @Summary 导演的电影
// @Tags 排行
// @Produce json
// @Param directorId path int true "导演ID"
// @Param sortBy query string false "year 或 likes" default(likes)
// @Success 200 {object} response.Response{data=[]dto.FilmInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "导演不存在"
// @Router /films/director/{directorId} [get]
func (h *FilmHandler) DirectorFilms(c *gin.Context) {
	directorID, ok := parseIDParam(c, "directorId")
	if !ok {
		return
	}
	var q dto.DirectorFilmsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	films, err := h.rankingService.DirectorFilms(directorID, q.SortBy)
	if err != nil {
		handleServiceError(c, err, "Director films")
		return
	}

	response.OK(c, "获取成功", toFilmInfos(films))
}

// SearchFilms 搜索电影
// @Summary 搜索电影
// @Description 按片名和/或导演姓名做不区分大小写的子串匹配，结果按喜欢数降序
// @Tags 搜索
// @Produce json
// @Param query query string true "关键词"
// @Param by query string false "title、director 或 title,director" default(title)
// @Success 200 {object} response.Response{data=[]dto.FilmInfo} "搜索成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /films/search [get]
func (h *FilmHandler) SearchFilms(c *gin.Context) {
	var q dto.SearchFilmsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	films, err := h.searchService.SearchFilms(q.Query, q.By)
	if err != nil {
		handleServiceError(c, err, "Search films")
		return
	}

	response.OK(c, "搜索成功", toFilmInfos(films))
}

// UploadPoster POST /films/:id/poster
// @Summary 上传海报
// @Tags 电影
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "电影ID"
// @Param file formData file true "海报图片"
// @Success 200 {object} response.Response{data=dto.PosterInfo} "上传成功"
// @Failure 400 {object} response.ErrorResponse "文件无效"
// @Failure 404 {object} response.ErrorResponse "电影不存在"
// @Router /films/{id}/poster [post]
func (h *FilmHandler) UploadPoster(c *gin.Context) {
	filmID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "请上传海报文件")
		return
	}

	f, err := file.Open()
	if err != nil {
		response.InternalError(c, "打开上传文件失败")
		return
	}
	defer f.Close()

	url, err := h.posterService.UploadPoster(filmID, file.Filename, file.Header.Get("Content-Type"), file.Size, f)
	if err != nil {
		handleServiceError(c, err, "Upload poster")
		return
	}

	response.OK(c, "上传成功", dto.PosterInfo{FilmID: filmID, PosterURL: url})
}
