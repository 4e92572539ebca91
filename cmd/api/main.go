package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/terrenohq/asistencia-backend-go/internal/config"
	appHTTP "github.com/terrenohq/asistencia-backend-go/internal/handler/http"
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/database"
	"github.com/terrenohq/asistencia-backend-go/internal/repository/postgresql"
	absenceService "github.com/terrenohq/asistencia-backend-go/internal/service/absence"
	attendanceService "github.com/terrenohq/asistencia-backend-go/internal/service/attendance"
	reportService "github.com/terrenohq/asistencia-backend-go/internal/service/report"
	siteService "github.com/terrenohq/asistencia-backend-go/internal/service/site"
	workerService "github.com/terrenohq/asistencia-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	policies, err := config.LoadPolicies(cfg.Policies.File)
	if err != nil {
		fmt.Println("Error loading policy file:", err)
		return
	}

	db, err := database.Connect(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	workerRepo := postgresql.NewWorkerRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	clockEventRepo := postgresql.NewClockEventRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)

	workerSvc := workerService.NewWorkerService(db, workerRepo)
	siteSvc := siteService.NewSiteService(siteRepo, policies)
	attendanceSvc := attendanceService.NewAttendanceService(clockEventRepo, workerRepo, siteRepo, policies)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, workerRepo, siteRepo)
	reportSvc := reportService.NewReportService(clockEventRepo, absenceRepo, workerRepo, siteRepo, policies)

	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	siteHandler := appHTTP.NewSiteHandler(siteSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		workerHandler,
		siteHandler,
		attendanceHandler,
		absenceHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
