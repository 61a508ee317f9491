package main

import (
	"fmt"
	"net/http"

	"github.com/worklane/incentive-backend-go/internal/config"
	appHTTP "github.com/worklane/incentive-backend-go/internal/handler/http"
	"github.com/worklane/incentive-backend-go/internal/pkg/database"
	"github.com/worklane/incentive-backend-go/internal/pkg/jwt"
	"github.com/worklane/incentive-backend-go/internal/repository/postgresql"
	earningsService "github.com/worklane/incentive-backend-go/internal/service/earnings"
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
	taskRepo := postgresql.NewTaskRepository(db)
	checklistRepo := postgresql.NewChecklistRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	earningsSvc := earningsService.NewEarningsService(
		employeeRepo,
		taskRepo,
		checklistRepo,
		projectRepo,
		adjustmentRepo,
	)

	earningsHandler := appHTTP.NewEarningsHandler(earningsSvc)

	router := appHTTP.NewRouter(
		JWTService,
		earningsHandler,
		cfg.App.AllowedOrigins,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
