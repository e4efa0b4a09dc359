package handler

import (
	"filmorate-go/internal/api/dto"
	"filmorate-go/internal/api/response"
	"filmorate-go/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService      *service.UserService
	friendService    *service.FriendshipService
	recommendService *service.RecommendService
	feedService      *service.FeedService
}

func NewUserHandler(
	userService *service.UserService,
	friendService *service.FriendshipService,
	recommendService *service.RecommendService,
	feedService *service.FeedService,
) *UserHandler {
	return &UserHandler{
		userService:      userService,
		friendService:    friendService,
		recommendService: recommendService,
		feedService:      feedService,
	}
}

// CreateUser 创建用户
// @Summary 创建用户
// @Description name 为空时使用 login
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body dto.UserRequest true "用户信息"
// @Success 201 {object} response.Response{data=dto.UserInfo} "创建成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 409 {object} response.ErrorResponse "邮箱已被使用"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		handleServiceError(c, err, "Create user")
		return
	}

	response.Created(c, "创建成功", toUserInfo(user))
}

// UpdateUser 更新用户
// @Summary 更新用户
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body dto.UserRequest true "用户信息（含 id）"
// @Success 200 {object} response.Response{data=dto.UserInfo} "更新成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Failure 409 {object} response.ErrorResponse "邮箱已被使用"
// @Router /users [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	user, err := h.userService.UpdateUser(&req)
	if err != nil {
		handleServiceError(c, err, "Update user")
		return
	}

	response.OK(c, "更新成功", toUserInfo(user))
}

// GetUser 获取用户
// @Summary 获取用户
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=dto.UserInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		handleServiceError(c, err, "Get user")
		return
	}

	response.OK(c, "获取成功", toUserInfo(user))
}

// ListUsers 获取全部用户
// @Summary 用户列表
// @Tags 用户
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.UserInfo} "获取成功"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		handleServiceError(c, err, "List users")
		return
	}

	response.OK(c, "获取成功", toUserInfos(users))
}

// DeleteUser 删除用户
// @Summary 删除用户
// @Description 同时删除其喜欢、好友关系、影评、评价与动态
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		handleServiceError(c, err, "Delete user")
		return
	}

	response.OK(c, "删除成功", nil)
}

// AddFriend PUT /users/:id/friends/:friendId
// @Summary 添加好友
// @Tags 好友
// @Param id path int true "用户ID"
// @Param friendId path int true "好友ID"
// @Success 200 {object} response.Response "添加成功"
// @Failure 400 {object} response.ErrorResponse "不能添加自己为好友"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id}/friends/{friendId} [put]
func (h *UserHandler) AddFriend(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	friendID, ok := parseIDParam(c, "friendId")
	if !ok {
		return
	}

	if err := h.friendService.AddFriend(id, friendID); err != nil {
		handleServiceError(c, err, "Add friend")
		return
	}

	response.OK(c, "添加成功", nil)
}

// RemoveFriend DELETE /users/:id/friends/:friendId
// @Summary 删除好友
// @Tags 好友
// @Param id path int true "用户ID"
// @Param friendId path int true "好友ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id}/friends/{friendId} [delete]
func (h *UserHandler) RemoveFriend(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	friendID, ok := parseIDParam(c, "friendId")
	if !ok {
		return
	}

	if err := h.friendService.RemoveFriend(id, friendID); err != nil {
		handleServiceError(c, err, "Remove friend")
		return
	}

	response.OK(c, "删除成功", nil)
}

// ListFriends GET /users/:id/friends
// @Summary 好友列表
// @Tags 好友
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=[]dto.UserInfo} "获取成功"
// @Router /users/{id}/friends [get]
func (h *UserHandler) ListFriends(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	friends, err := h.friendService.Friends(id)
	if err != nil {
		handleServiceError(c, err, "List friends")
		return
	}

	response.OK(c, "获取成功", toUserInfos(friends))
}

// CommonFriends GET /users/:id/friends/common/:otherId
// @Summary 共同好友
// @Tags 好友
// @Produce json
// @Param id path int true "用户ID"
// @Param otherId path int true "另一用户ID"
// @Success 200 {object} response.Response{data=[]dto.UserInfo} "获取成功"
// @Router /users/{id}/friends/common/{otherId} [get]
func (h *UserHandler) CommonFriends(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	otherID, ok := parseIDParam(c, "otherId")
	if !ok {
		return
	}

	friends, err := h.friendService.CommonFriends(id, otherID)
	if err != nil {
		handleServiceError(c, err, "Common friends")
		return
	}

	response.OK(c, "获取成功", toUserInfos(friends))
}

// Recommendations GET /users/:id/recommendations
// @Summary 推荐电影
// @Description 根据口味相近用户的喜欢推荐电影
// @Tags 推荐
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=[]dto.FilmInfo} "获取成功"
// @Router /users/{id}/recommendations [get]
func (h *UserHandler) Recommendations(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	films, err := h.recommendService.Recommend(id)
	if err != nil {
		handleServiceError(c, err, "Recommend films")
		return
	}

	response.OK(c, "获取成功", toFilmInfos(films))
}

// Feed GET /users/:id/feed
// @Summary 用户动态
// @Tags 动态
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=[]dto.EventInfo} "获取成功"
// @Router /users/{id}/feed [get]
func (h *UserHandler) Feed(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	events, err := h.feedService.UserFeed(id)
	if err != nil {
		handleServiceError(c, err, "User feed")
		return
	}

	response.OK(c, "获取成功", toEventInfos(events))
}
