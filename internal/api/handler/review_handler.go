package handler

import (
	"filmorate-go/internal/api/dto"
	"filmorate-go/internal/api/response"
	"filmorate-go/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReview 发表影评
// @Summary 发表影评
// @Tags 影评
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "影评"
// @Success 201 {object} response.Response{data=dto.ReviewInfo} "发表成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 404 {object} response.ErrorResponse "用户或电影不存在"
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	review, err := h.reviewService.AddReview(&req)
	if err != nil {
		handleServiceError(c, err, "Create review")
		return
	}

	response.Created(c, "发表成功", toReviewInfo(review))
}

// UpdateReview 更新影评
// @Summary 更新影评
// @Description 只修改内容与正负面
// @Tags 影评
// @Accept json
// @Produce json
// @Param request body dto.UpdateReviewRequest true "影评"
// @Success 200 {object} response.Response{data=dto.ReviewInfo} "更新成功"
// @Failure 404 {object} response.ErrorResponse "影评不存在"
// @Router /reviews [put]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	review, err := h.reviewService.UpdateReview(&req)
	if err != nil {
		handleServiceError(c, err, "Update review")
		return
	}

	response.OK(c, "更新成功", toReviewInfo(review))
}

// DeleteReview 删除影评
// @Summary 删除影评
// @Tags 影评
// @Produce json
// @Param id path int true "影评ID"
// @Success 200 {object} response.Response{data=dto.ReviewInfo} "删除成功"
// @Failure 404 {object} response.ErrorResponse "影评不存在"
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	review, err := h.reviewService.DeleteReview(id)
	if err != nil {
		handleServiceError(c, err, "Delete review")
		return
	}

	response.OK(c, "删除成功", toReviewInfo(review))
}

// GetReview GET /reviews/:id
func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	review, err := h.reviewService.GetReview(id)
	if err != nil {
		handleServiceError(c, err, "Get review")
		return
	}

	response.OK(c, "获取成功", toReviewInfo(review))
}

// ListReviews 影评列表
// @Summary 影评列表
// @Description 按 useful 降序，可按电影过滤
// @Tags 影评
// @Produce json
// @Param filmId query int false "电影ID"
// @Param count query int false "数量" default(10)
// @Success 200 {object} response.Response{data=[]dto.ReviewInfo} "获取成功"
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	var q dto.ReviewListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	reviews, err := h.reviewService.ListReviews(q.FilmID, q.Count)
	if err != nil {
		handleServiceError(c, err, "List reviews")
		return
	}

	response.OK(c, "获取成功", toReviewInfos(reviews))
}

// AddLike PUT /reviews/:id/like/:userId
func (h *ReviewHandler) AddLike(c *gin.Context) {
	h.react(c, h.reviewService.AddReviewLike, "Like review")
}

// AddDislike PUT /reviews/:id/dislike/:userId
func (h *ReviewHandler) AddDislike(c *gin.Context) {
	h.react(c, h.reviewService.AddReviewDislike, "Dislike review")
}

// RemoveLike DELETE /reviews/:id/like/:userId
func (h *ReviewHandler) RemoveLike(c *gin.Context) {
	h.react(c, h.reviewService.RemoveReviewLike, "Remove review like")
}

// RemoveDislike DELETE /reviews/:id/dislike/:userId
func (h *ReviewHandler) RemoveDislike(c *gin.Context) {
	h.react(c, h.reviewService.RemoveReviewDislike, "Remove review dislike")
}

func (h *ReviewHandler) react(c *gin.Context, do func(reviewID, userID int64) error, op string) {
	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if err := do(reviewID, userID); err != nil {
		handleServiceError(c, err, op)
		return
	}

	response.OK(c, "操作成功", nil)
}
