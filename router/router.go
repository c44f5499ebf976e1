package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RachidAzrou/mefen/controllers"
	"github.com/RachidAzrou/mefen/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	// Limiter global per IP; gin menyalin handler chain saat route didaftarkan,
	// jadi middleware ini harus terpasang sebelum route di bawah
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	volunteerCtrl := controllers.NewVolunteerController(db)
	roomCtrl := controllers.NewRoomController(db)
	planningCtrl := controllers.NewPlanningController(db)
	calendarCtrl := controllers.NewCalendarController(db)
	logCtrl := controllers.NewActivityLogController(db)
	pendingCtrl := controllers.NewPendingVolunteerController(db)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", userCtrl.Login)
	}

	// Kalender mingguan read-only dan data pendukungnya
	r.GET("/calendar", calendarCtrl.GetWeekCalendar)
	r.GET("/rooms", roomCtrl.GetAllRooms)

	// Pendaftaran mandiri volunteer (masuk antrian pending)
	r.POST("/volunteers/register", pendingCtrl.Register)

	// WebSocket untuk live updates (token via query)
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("", controllers.LiveHandler)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	// Profil & logout untuk semua role
	auth.GET("/profile", userCtrl.GetProfile)
	auth.POST("/logout", userCtrl.Logout)

	// Semua mutasi di-gate flag admin
	admin := auth.Group("/")
	admin.Use(middlewares.AdminOnly())
	{
		// USERS
		admin.GET("/users", userCtrl.GetAllUsers)
		admin.POST("/users", userCtrl.CreateUser)
		admin.PATCH("/users/:user_id/role", userCtrl.UpdateUserRole)
		admin.DELETE("/users/:user_id", userCtrl.DeleteUser)
		admin.POST("/users/password-reset", userCtrl.RequestPasswordReset)

		// VOLUNTEERS
		admin.GET("/volunteers", volunteerCtrl.GetAllVolunteers)
		admin.POST("/volunteers", volunteerCtrl.CreateVolunteer)
		admin.GET("/volunteers/:volunteer_id", volunteerCtrl.GetVolunteerByID)
		admin.PATCH("/volunteers/:volunteer_id", volunteerCtrl.UpdateVolunteer)
		admin.DELETE("/volunteers/:volunteer_id", volunteerCtrl.DeleteVolunteer)

		// ROOMS
		admin.GET("/rooms", roomCtrl.GetAllRooms)
		admin.POST("/rooms", roomCtrl.CreateRoom)
		admin.GET("/rooms/:room_id", roomCtrl.GetRoomByID)
		admin.PATCH("/rooms/:room_id", roomCtrl.UpdateRoom)
		admin.DELETE("/rooms/:room_id", roomCtrl.DeleteRoom)

		// PLANNINGS
		admin.GET("/plannings", planningCtrl.GetAllPlannings)
		admin.POST("/plannings", planningCtrl.CreatePlanning)
		admin.POST("/plannings/bulk", planningCtrl.CreateBulkPlanning)
		admin.GET("/plannings/:planning_id", planningCtrl.GetPlanningByID)
		admin.PUT("/plannings/:planning_id", planningCtrl.UpdatePlanning)
		admin.POST("/plannings/:planning_id/edit-intent", planningCtrl.LogEditIntent)
		admin.DELETE("/plannings/:planning_id", planningCtrl.DeletePlanning)

		// ACTIVITY LOG (append-only: hanya read)
		admin.GET("/logs", logCtrl.GetAllLogs)
		admin.GET("/logs/:log_id", logCtrl.GetLogByID)

		// PENDING VOLUNTEERS
		admin.GET("/pending-volunteers", pendingCtrl.GetAllPending)
		admin.POST("/pending-volunteers/:pending_id/approve", pendingCtrl.Approve)
		admin.POST("/pending-volunteers/:pending_id/reject", pendingCtrl.Reject)

		// DASHBOARD
		admin.GET("/dashboard/stats", adminCtrl.GetDashboardStats)
	}

	return r
}
