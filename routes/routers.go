package routes

import (
	"context"
	"net/http"

	"pms/constants"
	"pms/controllers"
	middlewares "pms/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	controllers.WSMelody = m

	router.Use(middlewares.SessionMiddleware())
	router.Use(middlewares.ErrorHandler())

	admin := []int{constants.RoleSuperAdmin, constants.RoleManager}
	staff := []int{constants.RoleSuperAdmin, constants.RoleManager, constants.RoleReceptionist}

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", middlewares.AuthMiddleware(admin...), controllers.RegisterUser)
	v1.POST("/auth/google", controllers.AuthGoogle)

	v1.GET("/users", middlewares.AuthMiddleware(admin...), controllers.GetUsers)
	v1.GET("/users/:id", middlewares.AuthMiddleware(admin...), controllers.GetUserByID)
	v1.PUT("/users", middlewares.AuthMiddleware(staff...), controllers.UpdateUser)
	v1.PUT("/userStatus", middlewares.AuthMiddleware(admin...), controllers.ChangeUserStatus)
	v1.GET("/receptionist/:id", middlewares.AuthMiddleware(admin...), controllers.GetReceptionistByID)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	v1.GET("/roomTypes", controllers.GetRoomTypes)
	v1.GET("/roomTypes/:id", controllers.GetRoomTypeDetail)
	v1.POST("/roomTypes", middlewares.AuthMiddleware(admin...), controllers.CreateRoomType)
	v1.PUT("/roomTypeUpdate", middlewares.AuthMiddleware(admin...), controllers.UpdateRoomType)
	v1.PUT("/roomTypeStatus", middlewares.AuthMiddleware(admin...), controllers.ChangeRoomTypeStatus)

	v1.GET("/room", controllers.GetRooms)
	v1.GET("/room/:id", controllers.GetRoomDetail)
	v1.POST("/room", middlewares.AuthMiddleware(admin...), controllers.CreateRoom)
	v1.PUT("/roomUpdate", middlewares.AuthMiddleware(admin...), controllers.UpdateRoom)
	v1.PUT("/roomStatus", middlewares.AuthMiddleware(staff...), controllers.ChangeRoomStatus)
	v1.GET("/checkRoom", controllers.GetRoomBookingDates)

	v1.POST("/booking/quote", middlewares.AuthMiddleware(staff...), controllers.QuoteBooking)
	v1.POST("/booking", middlewares.AuthMiddleware(staff...), controllers.CreateBooking)
	v1.GET("/booking", middlewares.AuthMiddleware(staff...), controllers.GetBookings)
	v1.GET("/booking/:id", middlewares.AuthMiddleware(staff...), controllers.GetBookingDetail)
	v1.PUT("/bookingStatus", middlewares.AuthMiddleware(staff...), controllers.ChangeBookingStatus)

	v1.GET("/customers", middlewares.AuthMiddleware(staff...), controllers.GetCustomers)
	v1.GET("/customers/search", middlewares.AuthMiddleware(staff...), controllers.SearchCustomersHandler)
	v1.GET("/customers/:id", middlewares.AuthMiddleware(staff...), controllers.GetCustomerDetail)
	v1.POST("/customers", middlewares.AuthMiddleware(staff...), controllers.CreateCustomer)
	v1.PUT("/customers", middlewares.AuthMiddleware(staff...), controllers.UpdateCustomer)

	v1.GET("/invoices", middlewares.AuthMiddleware(staff...), controllers.GetInvoices)
	v1.GET("/invoices/:id", middlewares.AuthMiddleware(staff...), controllers.GetDetailInvoice)

	v1.POST("/payments", middlewares.AuthMiddleware(staff...), controllers.CreatePayment)
	v1.PUT("/paymentStatus", middlewares.AuthMiddleware(admin...), controllers.UpdatePaymentStatus)
	v1.POST("/payments/bank-webhook", controllers.ReceiveBankTransfer)

	v1.GET("/banks", middlewares.AuthMiddleware(admin...), controllers.GetBankAccounts)
	v1.POST("/banks", middlewares.AuthMiddleware(admin...), controllers.CreateBankAccount)

	v1.GET("/revenue", middlewares.AuthMiddleware(admin...), controllers.GetRevenue)
	v1.GET("/today", middlewares.AuthMiddleware(staff...), controllers.GetToday)

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(admin...), func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", middlewares.AuthMiddleware(staff...), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})
}
