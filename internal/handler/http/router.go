package http

import (
	"log/slog"
	"net/http"
	"os"

	gqlhandler "github.com/dungnt9/hrm-ApiGateway/internal/handler/graphql"
	"github.com/dungnt9/hrm-ApiGateway/internal/handler/http/middleware"
	"github.com/dungnt9/hrm-ApiGateway/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	Verifier            jwt.Verifier
	AuthHandler         AuthHandler
	EmployeeHandler     EmployeeHandler
	AttendanceHandler   AttendanceHandler
	LeaveHandler        LeaveHandler
	OvertimeHandler     OvertimeHandler
	NotificationHandler NotificationHandler
	OrgChartHandler     OrgChartHandler
	GraphQLHandler      *gqlhandler.Handler
	FrontendURL         string
	Env                 string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrm-api-gateway"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.AuthHandler.Login)
			r.Post("/refresh", deps.AuthHandler.RefreshToken)
			r.Post("/logout", deps.AuthHandler.Logout)
		})

		// SSE authenticates via query-param token, outside the Verifier chain
		r.Get("/notifications/stream", deps.NotificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.Verifier.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.Verifier.JWTAuth()))

			r.Get("/auth/me", deps.AuthHandler.Me)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", deps.EmployeeHandler.List)
				r.Get("/me", deps.EmployeeHandler.GetMe)
				r.Get("/{employeeID}", deps.EmployeeHandler.Get)
				r.Get("/{employeeID}/manager", deps.EmployeeHandler.GetManager)

				// Manager or HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagerOrHR)
					r.Get("/my-team", deps.EmployeeHandler.GetMyTeam)
				})

				// HR staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHRStaff)
					r.Post("/", deps.EmployeeHandler.Create)
					r.Put("/{employeeID}", deps.EmployeeHandler.Update)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/{employeeID}", deps.EmployeeHandler.Delete)
					r.Post("/{employeeID}/role", deps.EmployeeHandler.AssignRole)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManagerOrHR)
				r.Get("/teams/{teamID}/members", deps.EmployeeHandler.GetTeamMembers)
			})
			r.Get("/departments", deps.EmployeeHandler.GetDepartments)
			r.Get("/teams", deps.EmployeeHandler.GetTeams)
			r.Get("/org-chart", deps.OrgChartHandler.Get)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", deps.AttendanceHandler.CheckIn)
				r.Post("/check-out", deps.AttendanceHandler.CheckOut)
				r.Get("/status", deps.AttendanceHandler.GetStatus)
				r.Get("/history", deps.AttendanceHandler.GetHistory)

				// Manager or HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagerOrHR)
					r.Get("/team/{teamID}", deps.AttendanceHandler.GetTeamAttendance)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", deps.AttendanceHandler.GetShifts)
				r.Get("/my", deps.AttendanceHandler.GetMyShift)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/request", deps.LeaveHandler.Create)
				r.Get("/requests", deps.LeaveHandler.List)
				r.Get("/requests/{leaveRequestID}", deps.LeaveHandler.Get)
				r.Get("/balance", deps.LeaveHandler.GetBalance)

				// Manager or HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagerOrHR)
					r.Get("/pending", deps.LeaveHandler.ListPending)
					r.Post("/requests/{leaveRequestID}/approve", deps.LeaveHandler.Approve)
					r.Post("/requests/{leaveRequestID}/reject", deps.LeaveHandler.Reject)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Post("/request", deps.OvertimeHandler.Create)
				r.Get("/requests", deps.OvertimeHandler.List)
				r.Get("/requests/{overtimeRequestID}", deps.OvertimeHandler.Get)

				// Manager or HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagerOrHR)
					r.Get("/pending", deps.OvertimeHandler.ListPending)
					r.Post("/requests/{overtimeRequestID}/approve", deps.OvertimeHandler.Approve)
					r.Post("/requests/{overtimeRequestID}/reject", deps.OvertimeHandler.Reject)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", deps.NotificationHandler.List)
				r.Post("/{notificationID}/read", deps.NotificationHandler.MarkAsRead)
				r.Post("/read-all", deps.NotificationHandler.MarkAllAsRead)
				r.Get("/preferences", deps.NotificationHandler.GetPreferences)
				r.Put("/preferences", deps.NotificationHandler.UpdatePreferences)

				// Template catalog and push delivery are admin surface
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/templates", deps.NotificationHandler.GetTemplates)
					r.Post("/push", deps.NotificationHandler.Push)
					r.Post("/broadcast", deps.NotificationHandler.Broadcast)
				})
			})

			r.Method(http.MethodPost, "/graphql", deps.GraphQLHandler)
		})
	})

	return r
}
