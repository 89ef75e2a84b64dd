package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/directory"
	"github.com/dungnt9/hrm-ApiGateway/internal/client/notify"
	"github.com/dungnt9/hrm-ApiGateway/internal/client/timeclock"
	"github.com/dungnt9/hrm-ApiGateway/internal/config"
	gqlhandler "github.com/dungnt9/hrm-ApiGateway/internal/handler/graphql"
	appHTTP "github.com/dungnt9/hrm-ApiGateway/internal/handler/http"
	"github.com/dungnt9/hrm-ApiGateway/internal/pkg/jwt"
	"github.com/dungnt9/hrm-ApiGateway/internal/pkg/sse"
	attendanceService "github.com/dungnt9/hrm-ApiGateway/internal/service/attendance"
	authService "github.com/dungnt9/hrm-ApiGateway/internal/service/auth"
	employeeService "github.com/dungnt9/hrm-ApiGateway/internal/service/employee"
	leaveService "github.com/dungnt9/hrm-ApiGateway/internal/service/leave"
	notificationService "github.com/dungnt9/hrm-ApiGateway/internal/service/notification"
	orgchartService "github.com/dungnt9/hrm-ApiGateway/internal/service/orgchart"
	overtimeService "github.com/dungnt9/hrm-ApiGateway/internal/service/overtime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var verifier jwt.Verifier
	if cfg.OIDC.DevSecret != "" {
		verifier = jwt.NewDevVerifier(cfg.OIDC.DevSecret)
	} else {
		verifier, err = jwt.NewVerifier(context.Background(), cfg.OIDC.JWKSEndpoint())
		if err != nil {
			log.Fatal("Failed to initialize token verifier: ", err)
		}
	}

	directoryClient := directory.NewClient(cfg.Services.EmployeeServiceURL, cfg.Services.Timeout)
	timeclockClient := timeclock.NewClient(cfg.Services.TimeServiceURL, cfg.Services.Timeout)
	notifyClient := notify.NewClient(cfg.Services.NotificationServiceURL, cfg.Services.Timeout)
	hub := sse.NewHub()

	authSvc := authService.NewAuthService(cfg)
	employeeSvc := employeeService.NewEmployeeService(directoryClient)
	attendanceSvc := attendanceService.NewAttendanceService(timeclockClient, directoryClient)
	leaveSvc := leaveService.NewLeaveService(timeclockClient)
	overtimeSvc := overtimeService.NewOvertimeService(timeclockClient)
	orgChartSvc := orgchartService.NewOrgChartService(directoryClient)
	notificationSvc := notificationService.NewNotificationService(notifyClient, hub)

	schema, err := gqlhandler.NewSchema(orgChartSvc, employeeSvc)
	if err != nil {
		log.Fatal("Failed to build GraphQL schema: ", err)
	}

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		Verifier:            verifier,
		AuthHandler:         appHTTP.NewAuthHandler(authSvc),
		EmployeeHandler:     appHTTP.NewEmployeeHandler(employeeSvc),
		AttendanceHandler:   appHTTP.NewAttendanceHandler(attendanceSvc),
		LeaveHandler:        appHTTP.NewLeaveHandler(leaveSvc),
		OvertimeHandler:     appHTTP.NewOvertimeHandler(overtimeSvc),
		NotificationHandler: appHTTP.NewNotificationHandler(notificationSvc, verifier),
		OrgChartHandler:     appHTTP.NewOrgChartHandler(orgChartSvc),
		GraphQLHandler:      gqlhandler.NewHandler(schema),
		FrontendURL:         cfg.App.FrontendURL,
		Env:                 cfg.App.Env,
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("API gateway running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
