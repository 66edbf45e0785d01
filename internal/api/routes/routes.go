package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yoockh/hojadevida/internal/api/handlers"
	"github.com/yoockh/hojadevida/internal/api/middleware"
)

// Record collection paths under /profile.
const (
	PathExperiences      = "experiences"
	PathRecognitions     = "recognitions"
	PathCourses          = "courses"
	PathAcademicProducts = "academic-products"
	PathLaborProducts    = "labor-products"
	PathGarageSales      = "garage-sales"
)

var recordPaths = []string{
	PathExperiences, PathRecognitions, PathCourses,
	PathAcademicProducts, PathLaborProducts, PathGarageSales,
}

type Deps struct {
	JWT     middleware.JWTConfig
	Profile *handlers.ProfileHandler
	CV      *handlers.CVHandler
	Choices *handlers.ChoicesHandler
	Records map[string]handlers.RecordRoutes
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/phone/codes", d.Choices.PhoneCodes)
	r.GET("/choices", d.Choices.Choices)

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth(d.JWT))

	auth.GET("/profile/me", d.Profile.Me)
	auth.PUT("/profile/me", d.Profile.Update)
	auth.PUT("/profile/photo", d.Profile.Photo)

	for _, p := range recordPaths {
		h, ok := d.Records[p]
		if !ok {
			continue
		}
		g := auth.Group("/profile/" + p)
		g.GET("", h.List)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
		if h.AcceptsCertificates() {
			g.PUT("/:id/certificate", h.AttachCertificate)
		}
	}

	auth.GET("/cv/pdf", d.CV.PDF)
	auth.GET("/cv/exports", d.CV.Exports)

	admin := auth.Group("/admin", middleware.RequireAdmin())
	admin.GET("/users/:user_id/exports", d.CV.UserExports)
}
