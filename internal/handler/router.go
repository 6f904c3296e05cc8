package handler

import (
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route of the marketplace API. All endpoints
// except health and login/register require a bearer token.
func NewRouter(
	auth *AuthHandler,
	users *UserHandler,
	collections *CollectionHandler,
	bids *BidHandler,
	authenticator Authenticator,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger())
	router.Use(CORSMiddleware(allowedOrigins))

	router.GET("/healthz", Health)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/logout", AuthMiddleware(authenticator), auth.Logout)
	}

	userGroup := router.Group("/users", AuthMiddleware(authenticator))
	{
		userGroup.GET("/details", users.Details)

		admin := userGroup.Group("", RequireAdmin())
		{
			admin.POST("", users.Create)
			admin.GET("", users.List)
			admin.GET("/:id", users.Get)
			admin.PATCH("/:id", users.Update)
			admin.DELETE("/:id", users.Delete)
		}
	}

	collectionGroup := router.Group("/collections", AuthMiddleware(authenticator))
	{
		collectionGroup.POST("", collections.Create)
		collectionGroup.GET("", collections.List)
		collectionGroup.GET("/mine", collections.ListMine)
		collectionGroup.GET("/:id", collections.Get)
		collectionGroup.PATCH("/:id", collections.Update)
		collectionGroup.DELETE("/:id", collections.Delete)
		collectionGroup.GET("/:id/bids", collections.Bids)
		collectionGroup.POST("/bids", collections.BidsForCollections)
		collectionGroup.POST("/accept-bid", collections.AcceptBid)
		collectionGroup.POST("/reject-bid", collections.RejectBid)
	}

	bidGroup := router.Group("/bids", AuthMiddleware(authenticator))
	{
		bidGroup.POST("", bids.Create)
		bidGroup.GET("", bids.List)
		bidGroup.GET("/:id", bids.Get)
		bidGroup.PATCH("/:id", bids.Update)
		bidGroup.DELETE("/:id", bids.Delete)
	}

	return router
}
