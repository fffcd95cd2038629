package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/crewdesk/hr-panel-backend-go/internal/config"
	appHTTP "github.com/crewdesk/hr-panel-backend-go/internal/handler/http"
	"github.com/crewdesk/hr-panel-backend-go/internal/pkg/database"
	"github.com/crewdesk/hr-panel-backend-go/internal/repository/postgresql"
	attendanceService "github.com/crewdesk/hr-panel-backend-go/internal/service/attendance"
	employeeService "github.com/crewdesk/hr-panel-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	archiveRepo := postgresql.NewArchiveRepository(db)

	empService := employeeService.NewEmployeeService(db, employeeRepo, salaryRepo, archiveRepo)
	attService := attendanceService.NewService(attendanceRepo)

	session := attendanceService.NewSession(attendanceRepo, employeeRepo)
	if err := session.Open(context.Background()); err != nil {
		fmt.Println("Error opening attendance session:", err)
		return
	}

	attendanceHandler := appHTTP.NewAttendanceHandler(session, attService)
	employeeHandler := appHTTP.NewEmployeeHandler(empService)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.FrontendURL,
		attendanceHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
