package server

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "jobsta-backend/docs"
	"jobsta-backend/internal/auth"
	"jobsta-backend/internal/controller/application"
	"jobsta-backend/internal/controller/friend"
	"jobsta-backend/internal/controller/group"
	"jobsta-backend/internal/controller/interest"
	"jobsta-backend/internal/controller/job"
	"jobsta-backend/internal/controller/notification"
	"jobsta-backend/internal/middleware"
	"jobsta-backend/internal/model"
)

// RegisterRoutes wires every endpoint under /api/v1.
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrigin := os.Getenv("ALLOW_ORIGIN")
	if allowOrigin == "" {
		allowOrigin = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SafeHeader())

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1", middleware.EnvRateLimitMiddleware())

	localAuth := auth.NewLocalAuthHandler(s.db)
	oauthLogin := auth.NewOauthLoginHandler(s.db, s.oauthConfig, s.userInfoEndpoint)
	logout := auth.NewLogoutController(s.blacklistStore)

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", localAuth.LocalRegisterHandler)
		authGroup.POST("/login", localAuth.LocalLoginHandler)
		authGroup.POST("/oauth/login", oauthLogin.WorkerLoginHandler)
		authGroup.POST("/oauth/login/employer", oauthLogin.EmployerLoginHandler)
		authGroup.GET("/oauth/callback", oauthLogin.Callback)
		authGroup.POST("/logout",
			middleware.RequireAuth(s.db),
			middleware.JwtBlacklistCheck(s.blacklistStore),
			logout.LogoutHandler)
	}

	authed := v1.Group("/",
		middleware.RequireAuth(s.db),
		middleware.JwtBlacklistCheck(s.blacklistStore))

	jc := job.NewJobController(s.db)
	gc := group.NewGroupController(s.db)
	ac := application.NewApplicationController(s.db)
	nc := notification.NewNotificationController(s.db)
	ic := interest.NewInterestController(s.db)
	fc := friend.NewFriendController(s.db)

	{
		authed.POST("/job", middleware.CheckRole(model.RoleEmployer), jc.CreateJobHandler)
		authed.GET("/job", jc.GetJobs)
		authed.GET("/job/:id", jc.GetJobByID)
		authed.PATCH("/job/:id", middleware.CheckRole(model.RoleEmployer), jc.EditJob)
		authed.DELETE("/job/:id", middleware.CheckRole(model.RoleEmployer, model.RoleAdmin), jc.DeleteJob)
	}

	{
		authed.POST("/job/:id/group", gc.CreateGroupHandler)
		authed.GET("/group/name-check", gc.CheckGroupName)
		authed.GET("/group", gc.GetGroups)
		authed.GET("/group/:id", gc.GetGroupByID)
		authed.POST("/group/:id/member", gc.InviteMember)
		authed.PATCH("/group/:id/member/:user_id/status", gc.UpdateMemberStatus)
		authed.PATCH("/group/:id/participation", gc.UpdateParticipation)
	}

	{
		authed.POST("/group/:id/application", ac.SubmitGroupApplication)
		authed.POST("/job/:id/application", ac.SubmitIndividualApplication)
		authed.GET("/application", ac.GetMyApplications)
		authed.GET("/job/:id/application", middleware.CheckRole(model.RoleEmployer, model.RoleAdmin), ac.GetJobApplications)
		authed.PATCH("/application/:id/status", middleware.CheckRole(model.RoleEmployer, model.RoleAdmin), ac.UpdateApplicationStatus)
	}

	{
		authed.GET("/notification", nc.ListMyNotifications)
		authed.PATCH("/notification/:id/read", nc.MarkNotificationRead)
	}

	{
		authed.PUT("/job/:id/interest", ic.SetInterest)
		authed.GET("/interest", ic.GetMyInterests)
	}

	{
		authed.POST("/friend", fc.AddFriend)
		authed.GET("/friend", fc.ListFriends)
		authed.DELETE("/friend/:user_id", fc.RemoveFriend)
	}

	return r
}

// HelloWorldHandler is a liveness endpoint.
// @Summary Hello world
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (s *Server) HelloWorldHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

// healthHandler reports database connectivity and pool statistics.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.db.Health())
}
