package http

import (
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/terrenohq/asistencia-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	workerHandler WorkerHandler,
	siteHandler SiteHandler,
	attendanceHandler AttendanceHandler,
	absenceHandler AbsenceHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "asistencia-terreno"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/trabajadores", func(r chi.Router) {
			r.Post("/", workerHandler.Create)
			r.Get("/", workerHandler.List)
			r.Get("/{id}", workerHandler.Get)
			r.Put("/{id}", workerHandler.Update)
		})

		r.Route("/obras", func(r chi.Router) {
			r.Post("/", siteHandler.Create)
			r.Get("/", siteHandler.List)
			r.Get("/{id}", siteHandler.Get)
			r.Put("/{id}", siteHandler.Update)
		})

		r.Route("/marcas", func(r chi.Router) {
			r.Post("/entrada", attendanceHandler.ClockIn)
			r.Post("/salida", attendanceHandler.ClockOut)
			r.Get("/", attendanceHandler.List)
		})

		r.Route("/permisos", func(r chi.Router) {
			r.Post("/", absenceHandler.Create)
			r.Get("/", absenceHandler.List)
			r.Delete("/{id}", absenceHandler.Delete)
		})

		r.Route("/reportes", func(r chi.Router) {
			r.Get("/horas", reportHandler.GetHoursReport)
			r.Get("/horas/export", reportHandler.ExportHoursReport)
		})
	})

	return r
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
