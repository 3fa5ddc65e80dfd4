package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/harishd2007/CivicFlow-v11/handlers"
	"github.com/harishd2007/CivicFlow-v11/middleware"
	"github.com/harishd2007/CivicFlow-v11/services"
)

func Register(r *gin.Engine, app *handlers.App, sessions *services.SessionStore) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     app.Cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Client-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", app.Health)

	// Session endpoints are public; everything that writes or talks to the
	// assistant requires a signed-in session, like the client's login gate.
	public := r.Group("/api")
	{
		public.POST("/session", app.Login)
		public.GET("/session", app.GetSession)
		public.DELETE("/session", app.SignOut)

		public.GET("/reports", app.ListReports)
		public.GET("/reports/:id", app.GetReport)
		public.GET("/stats", app.GetStats)
		public.POST("/locate", app.Locate)
	}

	protected := r.Group("/api")
	protected.Use(middleware.RequireSession(sessions))
	{
		protected.POST("/reports", app.CreateReport)
		protected.PUT("/reports/:id/status", app.UpdateReportStatus)
		protected.POST("/reports/classify", app.ClassifyImage)
		protected.POST("/reports/:id/image", app.SynthesizeReportImage)

		protected.GET("/alerts", app.ListAlerts)
		protected.PUT("/alerts/:id/read", app.MarkAlertRead)

		protected.POST("/chat", app.Guidance)
	}

	if app.Hub != nil {
		r.GET("/ws/alerts", app.Hub.HandleWebSocket)
	}
}
