package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/benjsant/coach-scheduler/internal/audit"
	"github.com/benjsant/coach-scheduler/internal/config"
	"github.com/benjsant/coach-scheduler/internal/handlers"
	infraRepo "github.com/benjsant/coach-scheduler/internal/infra/repository"
	"github.com/benjsant/coach-scheduler/internal/lock"
	"github.com/benjsant/coach-scheduler/internal/middleware"
	"github.com/benjsant/coach-scheduler/internal/models"
	"github.com/benjsant/coach-scheduler/internal/timezone"
	ucSeance "github.com/benjsant/coach-scheduler/internal/usecase/seance"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	locker lock.Locker,
	cfg *config.Config,
) {

	// ------------------------------
	// INFRA (SINGLETONS)
	// ------------------------------
	seanceRepo := infraRepo.NewSeanceGormRepository(db)
	clock := timezone.NewClock(cfg.Timezone)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// USE CASES
	// ------------------------------
	bookUC := ucSeance.NewBookSeance(seanceRepo, locker, clock, auditDispatcher)
	cancelUC := ucSeance.NewCancelSeance(seanceRepo, clock, auditDispatcher)
	completeUC := ucSeance.NewCompleteSeance(seanceRepo, clock, auditDispatcher)
	markAbsentUC := ucSeance.NewMarkAbsent(seanceRepo, clock, auditDispatcher)
	editNoteUC := ucSeance.NewEditNote(seanceRepo, auditDispatcher)

	scheduleViews := ucSeance.NewScheduleViews(seanceRepo, clock)
	availabilityUC := ucSeance.NewGetAvailability(seanceRepo, clock)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	publicHandler := handlers.NewPublicHandler(seanceRepo, availabilityUC)
	clientHandler := handlers.NewClientHandler(seanceRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	seanceHandler := handlers.NewSeanceHandler(
		bookUC,
		cancelUC,
		completeUC,
		markAbsentUC,
		editNoteUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(scheduleViews)

	// ------------------------------
	// API (JSON)
	// ------------------------------
	api := r.Group("/api")
	{
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/subjects", publicHandler.ListSubjects)
			publicAPI.GET("/coaches", publicHandler.ListCoaches)
			publicAPI.GET("/availability", publicHandler.Availability)
		}

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// either party
			secured.PATCH("/me/seances/:id/cancel", seanceHandler.Cancel)

			// clients
			client := secured.Group("/")
			client.Use(middleware.RequireRole(models.RoleClient))
			{
				client.POST("/me/seances", seanceHandler.Book)
				client.GET("/me/schedule/upcoming", scheduleHandler.ClientUpcoming)
				client.GET("/me/schedule/history", scheduleHandler.ClientHistory)
			}

			// coaches
			coach := secured.Group("/")
			coach.Use(middleware.RequireRole(models.RoleCoach))
			{
				coach.PATCH("/me/seances/:id/complete", seanceHandler.Complete)
				coach.PATCH("/me/seances/:id/absent", seanceHandler.MarkAbsent)
				coach.PATCH("/me/seances/:id/note", seanceHandler.EditNote)

				coach.GET("/me/coach/today", scheduleHandler.CoachToday)
				coach.GET("/me/coach/upcoming", scheduleHandler.CoachUpcoming)
				coach.GET("/me/coach/history", scheduleHandler.CoachHistory)
				coach.GET("/me/coach/forgotten", scheduleHandler.CoachForgotten)

				coach.GET("/me/clients", clientHandler.List)
				coach.GET("/me/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
