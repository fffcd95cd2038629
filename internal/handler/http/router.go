package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(env string, frontendURL string, attendanceHandler AttendanceHandler, employeeHandler EmployeeHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-panel"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Get("/export/xlsx", employeeHandler.ExportXLSX)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.Get)
				r.Put("/", employeeHandler.Update)
				r.Post("/freeze", employeeHandler.Freeze)
				r.Get("/salaries", employeeHandler.ListSalaries)
				r.Post("/salaries", employeeHandler.AddSalary)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.ListByDate)
			r.Get("/options", attendanceHandler.Options)

			r.Route("/session", func(r chi.Router) {
				r.Post("/", attendanceHandler.Submit)
				r.Get("/records", attendanceHandler.Records)
				r.Get("/eligible", attendanceHandler.Eligible)
				r.Post("/date", attendanceHandler.SelectDate)
				r.Post("/employee", attendanceHandler.SelectEmployee)
				r.Post("/refresh", attendanceHandler.RefreshRoster)
				r.Post("/edit", attendanceHandler.BeginEdit)
				r.Put("/edit", attendanceHandler.ApplyEdit)
				r.Delete("/edit", attendanceHandler.CancelEdit)
			})
		})
	})
	return r
}
