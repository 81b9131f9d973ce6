// Package routes maps the HTTP surface onto controllers and the role gates.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vishnuv55/SPC-Backend/internal/app/controllers"
	"github.com/vishnuv55/SPC-Backend/internal/app/models"
	"github.com/vishnuv55/SPC-Backend/internal/middleware"
)

// Register attaches every route under /api. Each role group carries its own
// gate; only the logins, logouts and the login probe are reachable without a
// session.
func Register(router *gin.Engine, ctls *controllers.Controllers, gate *middleware.AuthMiddleware) {
	api := router.Group("/api")

	api.GET("/is-user-logged-in", ctls.Session.IsUserLoggedIn)

	admin := api.Group("/admin")
	admin.POST("/login", ctls.Admin.Login)
	{
		gated := admin.Group("", gate.Require(models.RoleAdmin))

		gated.POST("/logout", ctls.Admin.Logout)
		gated.GET("/drive-details", ctls.Drive.List)
		gated.POST("/drive-details", ctls.Drive.Create)
		gated.DELETE("/drive/:id", ctls.Drive.Delete)

		gated.POST("/create-student", ctls.Admin.CreateStudent)
		gated.POST("/create-students", ctls.Admin.CreateStudents)
		gated.POST("/students", ctls.Admin.ListStudents)
		gated.DELETE("/student/:id", ctls.Admin.DeleteStudent)
		gated.POST("/student-details", ctls.Admin.RegisteredStudents)
		gated.POST("/update-student-password", ctls.Admin.ResetStudentPassword)
		gated.POST("/update-execom-password", ctls.Admin.ResetExecomPassword)

		gated.POST("/alumni-details", ctls.Admin.CreateAlumni)
		gated.GET("/alumni-details", ctls.Admin.ListAlumni)
		gated.POST("/placed-students", ctls.Admin.PlacedStudents)
		gated.GET("/placement-report", ctls.Admin.PlacementReport)

		gated.GET("/bill-details", ctls.Bill.List)
		gated.POST("/bill-details", ctls.Bill.Create)
		gated.DELETE("/bill/:id", ctls.Bill.Delete)

		gated.GET("/forum/queries", ctls.Forum.List)
		gated.POST("/forum/answer", ctls.Forum.AnswerAsAdmin)
		gated.DELETE("/forum/queries/:id", ctls.Forum.Delete)

		gated.POST("/send-email", ctls.Mail.Send)
	}

	execom := api.Group("/execom")
	execom.POST("/login", ctls.Execom.Login)
	{
		gated := execom.Group("", gate.Require(models.RoleExecom))

		gated.POST("/logout", ctls.Execom.Logout)
		gated.POST("/change-password", ctls.Execom.ChangePassword)
		gated.GET("/drive-details", ctls.Drive.List)

		gated.GET("/bill-details", ctls.Bill.List)
		gated.POST("/bill-details", ctls.Bill.Create)
		gated.DELETE("/bill/:id", ctls.Bill.Delete)

		gated.GET("/forum/queries", ctls.Forum.List)
		gated.POST("/forum/answer", ctls.Forum.AnswerAsExecom)
		gated.DELETE("/forum/queries/:id", ctls.Forum.Delete)

		gated.POST("/send-email", ctls.Mail.Send)
	}

	student := api.Group("/student")
	student.POST("/login", ctls.Student.Login)
	{
		gated := student.Group("", gate.Require(models.RoleStudent))

		gated.POST("/logout", ctls.Student.Logout)
		gated.GET("/", ctls.Student.Profile)
		gated.PATCH("/", ctls.Student.EditProfile)
		gated.POST("/change-password", ctls.Student.ChangePassword)

		gated.GET("/drive-details", ctls.Student.EligibleDrives)
		gated.POST("/register-drive", ctls.Student.RegisterDrive)
		gated.POST("/deregister-drive", ctls.Student.DeregisterDrive)
		gated.POST("/placement-details", ctls.Student.PlacementDetails)

		gated.POST("/forum/question", ctls.Forum.PostQuestion)
		gated.PATCH("/forum/question", ctls.Forum.EditQuestion)
		gated.GET("/forum/queries", ctls.Forum.List)
	}

	router.NoRoute(middleware.NotFound)
}
