package server

import (
	"context"
	"net/http"

	"fitclub/internal/auth"
	"fitclub/internal/availability"
	"fitclub/internal/booking"
	"fitclub/internal/config"
	"fitclub/internal/email"
	"fitclub/internal/equipment"
	"fitclub/internal/lock"
	"fitclub/internal/member"
	"fitclub/internal/room"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(50, 100))

	locks := lock.NewKeyed()

	memberHandler := member.NewHandler(db, cfg.JWTSecret)
	roomHandler := room.NewHandler(db)
	bookingHandler := booking.NewHandler(db, locks, emailService)
	availabilityHandler := availability.NewHandler(db, locks)
	equipmentHandler := equipment.NewHandler(db, emailService)

	public := router.Group("/auth")
	{
		public.POST("/register", memberHandler.Register)
		public.POST("/login", memberHandler.Login)
		public.POST("/refresh", memberHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", memberHandler.GetMe)
		protected.PATCH("/me", memberHandler.UpdateProfile)
		protected.POST("/me/health-metrics", memberHandler.AddHealthMetric)
		protected.GET("/me/health-metrics", memberHandler.GetHealthHistory)

		protected.GET("/rooms", roomHandler.ListRooms)
		protected.GET("/rooms/:roomID", roomHandler.GetRoom)
		protected.GET("/rooms/:roomID/bookings", bookingHandler.ListRoomBookings)
		protected.GET("/rooms/:roomID/equipment", equipmentHandler.ListRoomEquipment)

		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.GET("/bookings/:bookingID", bookingHandler.GetBooking)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)
		protected.POST("/bookings/:bookingID/register", bookingHandler.RegisterForClass)
		protected.DELETE("/bookings/:bookingID/register", bookingHandler.CancelRegistration)

		protected.GET("/trainers/:trainerID/schedule", bookingHandler.GetTrainerSchedule)
		protected.GET("/availability/:trainerID", availabilityHandler.GetTrainerSchedule)

		protected.GET("/equipment/:equipmentID", equipmentHandler.GetEquipment)
		protected.GET("/equipment/:equipmentID/issues", equipmentHandler.GetMaintenanceHistory)
		protected.POST("/equipment/:equipmentID/issues", equipmentHandler.ReportIssue)
	}

	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/rooms", roomHandler.CreateRoom)
		admin.POST("/rooms/:roomID/deactivate", roomHandler.DeactivateRoom)
		admin.POST("/rooms/:roomID/activate", roomHandler.ActivateRoom)

		admin.POST("/bookings/:bookingID/complete", bookingHandler.CompleteBooking)

		admin.POST("/availability", availabilityHandler.AddSlot)
		admin.DELETE("/availability/:trainerID/:slotID", availabilityHandler.RemoveSlot)

		admin.POST("/equipment", equipmentHandler.CreateEquipment)
		admin.PATCH("/maintenance/:recordID", equipmentHandler.UpdateStatus)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
