package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/algonest/algonest/internal/auth"
	"github.com/algonest/algonest/internal/config"
	"github.com/algonest/algonest/internal/judge"
	"github.com/algonest/algonest/internal/oauth"
	"github.com/algonest/algonest/internal/profile"
	"github.com/algonest/algonest/internal/ratelimit"
	"github.com/algonest/algonest/internal/store"
	"github.com/algonest/algonest/internal/submission"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, queries store.Querier, rdb *redis.Client, evaluator judge.Evaluator) *Handler {
	authSvc := auth.NewService(queries, auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL), auth.NewBlocklist(rdb))
	h := &Handler{
		queries:         queries,
		auth:            authSvc,
		submissions:     submission.NewService(queries, evaluator),
		profiles:        profile.NewService(queries),
		frontendOrigins: cfg.CORSAllowedOrigins,
		cookieSecure:    cfg.CookieSecure,
		now:             time.Now,
	}
	if cfg.GoogleEnabled() {
		h.google = oauth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.PublicBaseURL+"/user/oauth/google/callback")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authn := authSvc.Middleware()

	user := r.Group("/user")
	{
		user.POST("/register", h.Register)
		user.POST("/login", h.Login)
		user.POST("/logout", h.Logout)
		user.GET("/oauth/google/login", h.GoogleLogin)
		// Google redirects here without a session.
		user.GET("/oauth/google/callback", h.GoogleCallback)

		user.GET("/check", authn, h.Check)
		user.DELETE("/deleteProfile", authn, h.DeleteProfile)
		user.POST("/admin/register", authn, auth.AdminOnly(), h.AdminRegister)
	}

	problem := r.Group("/problem", authn)
	{
		problem.POST("/create", auth.AdminOnly(), h.CreateProblem)
		problem.PUT("/update/:id", auth.AdminOnly(), h.UpdateProblem)
		problem.DELETE("/delete/:id", auth.AdminOnly(), h.DeleteProblem)

		problem.GET("/problemById/:id", h.GetProblem)
		problem.GET("/slug/:slug", h.GetProblemBySlug)
		problem.GET("/getAllproblem", h.ListProblems)
		problem.GET("/problemSolvedByUser", h.SolvedProblems)
		problem.GET("/submittedProblem/:id", h.ProblemSubmissions)
		problem.GET("/daily", h.DailyProblem)
	}

	runLimit := ratelimit.New(rdb, "run", cfg.RunRateLimit, cfg.RunRateWindow)
	sub := r.Group("/submission", authn)
	{
		sub.POST("/run/:id", runLimit.Middleware(func(c *gin.Context) string {
			return auth.FromContext(c).ID.String()
		}), h.RunCode)
		sub.POST("/submit/:id", h.SubmitCode)
	}

	prof := r.Group("/profile", authn)
	{
		prof.GET("/profile", h.Profile)
		prof.GET("/solved-problems", h.SolvedProblems)
		prof.GET("/activity", h.Activity)
		prof.PUT("/update", h.UpdateProfile)
	}

	return h
}
