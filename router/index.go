package router

import (
	"cafe_manager/handler"
	"cafe_manager/middleware"
	"cafe_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	member := v1.Group("/member", logger.New())
	member.Post("/", validate.Register(), handler.Register)
	member.Get("/me", middleware.Protected(), handler.Me)
	member.Put("/me", middleware.Protected(), handler.EditMember)
	member.Put("/me/password", middleware.Protected(), handler.ChangePassword)
	member.Delete("/me", middleware.Protected(), handler.DeleteMember)
	member.Get("/:memNo", middleware.Protected(), validate.GetById("memNo"), handler.GetMemberByNo)

	cafe := v1.Group("/cafe", logger.New())
	cafe.Get("/", handler.GetCafes)
	cafe.Get("/me", middleware.Protected(), handler.GetMyCafe)
	cafe.Post("/", middleware.Protected(), validate.CreateCafe(), handler.CreateCafe)
	cafe.Get("/:cafeNo", validate.GetById("cafeNo"), handler.GetCafeByNo)
	cafe.Put("/:cafeNo", middleware.Protected(), validate.GetById("cafeNo"), handler.EditCafe)
	cafe.Delete("/:cafeNo", middleware.Protected(), validate.GetById("cafeNo"), handler.DeleteCafe)
	cafe.Get("/:cafeNo/menu", validate.GetById("cafeNo"), handler.GetMenusByCafe)
	cafe.Post("/:cafeNo/menu", middleware.Protected(), validate.GetById("cafeNo"), validate.CreateMenu(), handler.CreateMenu)
	cafe.Delete("/:cafeNo/menu", middleware.Protected(), validate.GetById("cafeNo"), validate.Delete(), handler.DeleteMenus)

	menu := v1.Group("/menu", logger.New())
	menu.Put("/:menuNo", middleware.Protected(), validate.GetById("menuNo"), handler.EditMenu)
	menu.Delete("/:menuNo", middleware.Protected(), validate.GetById("menuNo"), handler.DeleteMenu)
	menu.Post("/:menuNo/image", middleware.Protected(), validate.GetById("menuNo"), handler.UploadMenuImage)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	payment := v1.Group("/payment", logger.New())
	payment.Post("/", middleware.Protected(), handler.CreatePayment)
	payment.Get("/me", middleware.Protected(), handler.GetMyPayments)
	payment.Get("/cafe/:cafeNo", middleware.Protected(), validate.GetById("cafeNo"), handler.GetPaymentsByCafe)
	payment.Get("/:paymentNo", middleware.Protected(), validate.GetById("paymentNo"), handler.GetPayment)
	payment.Patch("/:paymentNo/status", middleware.Protected(), validate.GetById("paymentNo"), handler.UpdatePaymentStatus)
	payment.Post("/:paymentNo/confirm", middleware.Protected(), validate.GetById("paymentNo"), handler.ConfirmPayment)
	payment.Get("/:paymentNo/receipt", middleware.Protected(), validate.GetById("paymentNo"), handler.GetPaymentReceipt)
	payment.Delete("/:paymentNo", middleware.Protected(), validate.GetById("paymentNo"), handler.DeletePayment)

	sales := v1.Group("/sales", logger.New())
	sales.Get("/:cafeNo/daily", middleware.Protected(), validate.GetById("cafeNo"), handler.GetDailySales)
	sales.Get("/:cafeNo/daily/detail", middleware.Protected(), validate.GetById("cafeNo"), handler.GetDailySalesDetail)
	sales.Get("/:cafeNo/menu", middleware.Protected(), validate.GetById("cafeNo"), handler.GetMenuSales)
	sales.Get("/:cafeNo/export", middleware.Protected(), validate.GetById("cafeNo"), handler.ExportDailySales)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/cafe/:cafeNo", websocket.New(handler.CafeOrderSocket))
}
