package routes

import (
	"github.com/Sunatl/mushkiloti-gomea/configs"
	"github.com/Sunatl/mushkiloti-gomea/controllers"
	"github.com/Sunatl/mushkiloti-gomea/middlewares"
	"github.com/Sunatl/mushkiloti-gomea/policy"
	"github.com/Sunatl/mushkiloti-gomea/repository"
	"github.com/Sunatl/mushkiloti-gomea/services"
	"github.com/Sunatl/mushkiloti-gomea/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, blobs storage.Storage) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	issueRepo := repository.NewIssueRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	ruleRepo := repository.NewRuleRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	imageRepo := repository.NewIssueImageRepository(db)

	// Services
	scoring := services.NewScoringService()
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	categoryService := services.NewCategoryService(categoryRepo)
	issueService := services.NewIssueService(db, issueRepo, voteRepo, profileRepo, scoring)
	voteService := services.NewVoteService(db, voteRepo, scoring)
	commentService := services.NewCommentService(db, commentRepo, profileRepo, scoring)
	profileService := services.NewProfileService(profileRepo)
	ruleService := services.NewRuleService(ruleRepo, categoryRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	imageService := services.NewIssueImageService(imageRepo, issueRepo, blobs)

	// Controllers
	authCtrl := controllers.NewAuthController(authService)
	categoryCtrl := controllers.NewCategoryController(categoryService)
	issueCtrl := controllers.NewIssueController(issueService)
	voteCtrl := controllers.NewVoteController(voteService)
	commentCtrl := controllers.NewCommentController(commentService)
	profileCtrl := controllers.NewProfileController(profileService, blobs)
	ruleCtrl := controllers.NewRuleController(ruleService)
	notificationCtrl := controllers.NewNotificationController(notificationService)
	imageCtrl := controllers.NewIssueImageController(imageService)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// API — principal is optional, the access matrix decides per route
	api := r.Group("/api", middlewares.OptionalAuth(cfg.JWTSecret))

	categories := api.Group("/categories")
	{
		categories.GET("", middlewares.Permit(policy.Category, policy.Read), categoryCtrl.List)
		categories.GET("/:id", middlewares.Permit(policy.Category, policy.Read), categoryCtrl.Detail)
		categories.POST("", middlewares.Permit(policy.Category, policy.Write), categoryCtrl.Create)
		categories.PATCH("/:id", middlewares.Permit(policy.Category, policy.Write), categoryCtrl.Update)
		categories.DELETE("/:id", middlewares.Permit(policy.Category, policy.Write), categoryCtrl.Delete)
	}

	issues := api.Group("/issues")
	{
		issues.GET("", middlewares.Permit(policy.Issue, policy.Read), issueCtrl.List)
		issues.GET("/popular", middlewares.Permit(policy.Issue, policy.Read), issueCtrl.Popular)
		issues.GET("/recent", middlewares.Permit(policy.Issue, policy.Read), issueCtrl.Recent)
		issues.GET("/:id", middlewares.Permit(policy.Issue, policy.Read), issueCtrl.Detail)
		issues.POST("", middlewares.Permit(policy.Issue, policy.Write), issueCtrl.Create)
		issues.PATCH("/:id", middlewares.Permit(policy.Issue, policy.Write), issueCtrl.Update)
		issues.DELETE("/:id", middlewares.Permit(policy.Issue, policy.Write), issueCtrl.Delete)
		issues.POST("/:id/vote", middlewares.Permit(policy.Issue, policy.Write), issueCtrl.Vote)
	}

	votes := api.Group("/votes")
	{
		votes.GET("", middlewares.Permit(policy.Vote, policy.Read), voteCtrl.List)
		votes.GET("/:id", middlewares.Permit(policy.Vote, policy.Read), voteCtrl.Detail)
		votes.POST("", middlewares.Permit(policy.Vote, policy.Write), voteCtrl.Create)
		votes.PATCH("/:id", middlewares.Permit(policy.Vote, policy.Write), voteCtrl.Update)
		votes.DELETE("/:id", middlewares.Permit(policy.Vote, policy.Write), voteCtrl.Delete)
	}

	comments := api.Group("/comments")
	{
		comments.GET("", middlewares.Permit(policy.Comment, policy.Read), commentCtrl.List)
		comments.GET("/:id", middlewares.Permit(policy.Comment, policy.Read), commentCtrl.Detail)
		comments.POST("", middlewares.Permit(policy.Comment, policy.Write), commentCtrl.Create)
		comments.PATCH("/:id", middlewares.Permit(policy.Comment, policy.Write), commentCtrl.Update)
		comments.DELETE("/:id", middlewares.Permit(policy.Comment, policy.Write), commentCtrl.Delete)
	}

	rules := api.Group("/rules")
	{
		rules.GET("", middlewares.Permit(policy.Rule, policy.Read), ruleCtrl.List)
		rules.GET("/:id", middlewares.Permit(policy.Rule, policy.Read), ruleCtrl.Detail)
		rules.POST("", middlewares.Permit(policy.Rule, policy.Write), ruleCtrl.Create)
		rules.PATCH("/:id", middlewares.Permit(policy.Rule, policy.Write), ruleCtrl.Update)
		rules.DELETE("/:id", middlewares.Permit(policy.Rule, policy.Write), ruleCtrl.Delete)
	}

	profiles := api.Group("/profiles")
	{
		profiles.GET("", middlewares.Permit(policy.Profile, policy.Read), profileCtrl.List)
		profiles.GET("/leaderboard", middlewares.Permit(policy.Profile, policy.Read), profileCtrl.Leaderboard)
		profiles.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), profileCtrl.Me)
		profiles.PATCH("/me", middlewares.AuthMiddleware(cfg.JWTSecret), profileCtrl.UpdateMe)
		profiles.POST("/me/avatar", middlewares.AuthMiddleware(cfg.JWTSecret), profileCtrl.UploadAvatar)
		profiles.GET("/:id", middlewares.Permit(policy.Profile, policy.Read), profileCtrl.Detail)
		profiles.PATCH("/:id", middlewares.Permit(policy.Profile, policy.Write), profileCtrl.Update)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", middlewares.Permit(policy.Notification, policy.Read), notificationCtrl.List)
		notifications.GET("/:id", middlewares.Permit(policy.Notification, policy.Read), notificationCtrl.Detail)
		notifications.POST("", middlewares.Permit(policy.Notification, policy.Write), notificationCtrl.Create)
		notifications.POST("/mark-all-read", middlewares.Permit(policy.Notification, policy.Write), notificationCtrl.MarkAllRead)
		notifications.PATCH("/:id", middlewares.Permit(policy.Notification, policy.Write), notificationCtrl.Update)
		notifications.DELETE("/:id", middlewares.Permit(policy.Notification, policy.Write), notificationCtrl.Delete)
	}

	images := api.Group("/issue-images")
	{
		images.GET("", middlewares.Permit(policy.IssueImage, policy.Read), imageCtrl.List)
		images.GET("/:id", middlewares.Permit(policy.IssueImage, policy.Read), imageCtrl.Detail)
		images.POST("", middlewares.Permit(policy.IssueImage, policy.Write), imageCtrl.Create)
		images.PATCH("/:id", middlewares.Permit(policy.IssueImage, policy.Write), imageCtrl.Update)
		images.DELETE("/:id", middlewares.Permit(policy.IssueImage, policy.Write), imageCtrl.Delete)
	}
}
