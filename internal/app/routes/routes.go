package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/okanc/campusspace/internal/app/controllers"
	"github.com/okanc/campusspace/internal/app/models"
	"github.com/okanc/campusspace/internal/middleware"
)

// SetupRouter configures all application routes. Reads are open to any
// authenticated caller; every mutation sits behind the admin role, and
// the services check the capability again on their own.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	directoryController *controllers.DirectoryController,
	roomController *controllers.RoomController,
	facultyController *controllers.FacultyController,
	departmentController *controllers.DepartmentController,
	allocationController *controllers.AllocationController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Reads: hierarchy, rooms, faculty, departments, reports
	{
		authenticated.GET("/campuses", directoryController.ListCampuses)
		authenticated.GET("/campuses/:id/blocks", directoryController.ListBlocks)
		authenticated.GET("/blocks/:id/buildings", directoryController.ListBuildings)
		authenticated.GET("/buildings/:id/floors", directoryController.ListFloors)

		authenticated.GET("/rooms", roomController.ListRooms)
		authenticated.GET("/rooms/:roomNo", roomController.GetRoom)

		authenticated.GET("/faculty", facultyController.ListFaculty)
		authenticated.GET("/faculty/:id", facultyController.GetFaculty)

		authenticated.GET("/departments", departmentController.ListDepartments)
		authenticated.GET("/departments/:id", departmentController.GetDepartment)
		authenticated.GET("/departments/:id/head/candidates", departmentController.ListHeadCandidates)

		authenticated.GET("/stats", reportController.Stats)
		authenticated.GET("/allocations/recent", reportController.RecentAllocations)
		authenticated.GET("/reports/faculty", reportController.FacultyReport)
		authenticated.GET("/reports/faculty.csv", reportController.FacultyReportCSV)
	}

	// Mutations: admin role required
	admin := authenticated.Group("")
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/campuses", directoryController.CreateCampus)
		admin.DELETE("/campuses/:id", directoryController.DeleteCampus)
		admin.POST("/blocks", directoryController.CreateBlock)
		admin.DELETE("/blocks/:id", directoryController.DeleteBlock)
		admin.POST("/buildings", directoryController.CreateBuilding)
		admin.DELETE("/buildings/:id", directoryController.DeleteBuilding)
		admin.POST("/floors", directoryController.CreateFloor)
		admin.DELETE("/floors/:floorNo", directoryController.DeleteFloor)

		admin.POST("/rooms", roomController.CreateRoom)
		admin.PUT("/rooms/:roomNo", roomController.UpdateRoom)
		admin.DELETE("/rooms/:roomNo", roomController.DeleteRoom)

		admin.POST("/faculty", facultyController.CreateFaculty)
		admin.PUT("/faculty/:id", facultyController.UpdateFaculty)
		admin.DELETE("/faculty/:id", facultyController.DeleteFaculty)

		admin.POST("/allocations", allocationController.Assign)
		admin.PUT("/faculty/:id/room", allocationController.Transfer)
		admin.DELETE("/faculty/:id/room", allocationController.Unassign)

		admin.POST("/departments", departmentController.CreateDepartment)
		admin.PUT("/departments/:id", departmentController.UpdateDepartment)
		admin.PUT("/departments/:id/head", departmentController.SetHead)
		admin.DELETE("/departments/:id", departmentController.DeleteDepartment)
	}
}
