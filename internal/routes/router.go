// internal/routes/router.go
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/igormatos02/timecontrolapi/internal/handlers"
	"github.com/igormatos02/timecontrolapi/internal/middleware"
	"github.com/igormatos02/timecontrolapi/internal/repository"
)

func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.Default())

	employeeH := handlers.NewEmployeeHandler(repository.NewEmployeeRepository(db))
	teamH := handlers.NewTeamHandler(repository.NewTeamRepository(db))
	projectH := handlers.NewProjectHandler(repository.NewProjectRepository(db))
	attendanceH := handlers.NewAttendanceHandler(repository.NewAttendanceRepository(db))
	reportH := handlers.NewReportHandler(repository.NewReportRepository(db))

	r.GET("/health", handlers.Health)

	employee := r.Group("/employee")
	{
		employee.POST("", employeeH.Create)
		employee.GET("", employeeH.List)
		employee.GET("/:id", employeeH.Get)
		employee.PUT("/:id", employeeH.Update)
		employee.DELETE("/:id", employeeH.Delete)
	}

	team := r.Group("/team")
	{
		team.POST("", teamH.Create)
		team.GET("", teamH.List)
		team.GET("/:id", teamH.Get)
		team.PUT("/:id", teamH.Update)
		team.DELETE("/:id", teamH.Delete)
		team.POST("/:id/employee/:employeeId", teamH.AddMember)
	}

	project := r.Group("/project")
	{
		project.POST("", projectH.Create)
		project.GET("", projectH.List)
		project.GET("/:id", projectH.Get)
		project.PUT("/:id", projectH.Update)
		project.DELETE("/:id", projectH.Delete)
	}

	attendance := r.Group("/attendance")
	{
		attendance.POST("", attendanceH.Create)
		attendance.GET("", attendanceH.List)
		attendance.GET("/:id", attendanceH.Get)
		attendance.PUT("/:id", attendanceH.Update)
		attendance.DELETE("/:id", attendanceH.Delete)
	}

	r.GET("/report/:teamId/:employeeId/:year/:month", reportH.Monthly)

	return r
}
