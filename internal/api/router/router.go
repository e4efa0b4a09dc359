package router

import (
	"filmorate-go/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	filmHandler *handler.FilmHandler,
	reviewHandler *handler.ReviewHandler,
	catalogHandler *handler.CatalogHandler,
	middlewares ...gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1", middlewares...)

	// --- 用户、好友、推荐与动态 ---
	users := v1.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.PUT("", userHandler.UpdateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.DELETE("/:id", userHandler.DeleteUser)

		users.GET("/:id/friends", userHandler.ListFriends)
		users.GET("/:id/friends/common/:otherId", userHandler.CommonFriends)
		users.PUT("/:id/friends/:friendId", userHandler.AddFriend)
		users.DELETE("/:id/friends/:friendId", userHandler.RemoveFriend)

		users.GET("/:id/recommendations", userHandler.Recommendations)
		users.GET("/:id/feed", userHandler.Feed)
	}

	// --- 电影、喜欢与排行 ---
	films := v1.Group("/films")
	{
		films.POST("", filmHandler.CreateFilm)
		films.PUT("", filmHandler.UpdateFilm)
		films.GET("", filmHandler.ListFilms)

		films.GET("/popular", filmHandler.PopularFilms)
		films.GET("/common", filmHandler.CommonFilms)
		films.GET("/search", filmHandler.SearchFilms)
		films.GET("/director/:directorId", filmHandler.DirectorFilms)

		films.GET("/:id", filmHandler.GetFilm)
		films.DELETE("/:id", filmHandler.DeleteFilm)
		films.POST("/:id/poster", filmHandler.UploadPoster)
		films.PUT("/:id/like/:userId", filmHandler.AddLike)
		films.DELETE("/:id/like/:userId", filmHandler.RemoveLike)
	}

	// --- 影评 ---
	reviews := v1.Group("/reviews")
	{
		reviews.POST("", reviewHandler.CreateReview)
		reviews.PUT("", reviewHandler.UpdateReview)
		reviews.GET("", reviewHandler.ListReviews)
		reviews.GET("/:id", reviewHandler.GetReview)
		reviews.DELETE("/:id", reviewHandler.DeleteReview)

		reviews.PUT("/:id/like/:userId", reviewHandler.AddLike)
		reviews.PUT("/:id/dislike/:userId", reviewHandler.AddDislike)
		reviews.DELETE("/:id/like/:userId", reviewHandler.RemoveLike)
		reviews.DELETE("/:id/dislike/:userId", reviewHandler.RemoveDislike)
	}

	// --- 类型、分级与导演 ---
	v1.GET("/genres", catalogHandler.ListGenres)
	v1.GET("/genres/:id", catalogHandler.GetGenre)
	v1.GET("/mpa", catalogHandler.ListMpa)
	v1.GET("/mpa/:id", catalogHandler.GetMpa)

	directors := v1.Group("/directors")
	{
		directors.GET("", catalogHandler.ListDirectors)
		directors.GET("/:id", catalogHandler.GetDirector)
		directors.POST("", catalogHandler.CreateDirector)
		directors.PUT("", catalogHandler.UpdateDirector)
		directors.DELETE("/:id", catalogHandler.DeleteDirector)
	}
}
