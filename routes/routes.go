package routes

import (
	"github.com/Ashitosh2004/hotellucky/configs"
	"github.com/Ashitosh2004/hotellucky/controllers"
	"github.com/Ashitosh2004/hotellucky/entity"
	"github.com/Ashitosh2004/hotellucky/middlewares"
	"github.com/Ashitosh2004/hotellucky/repository"
	"github.com/Ashitosh2004/hotellucky/services"
	"github.com/Ashitosh2004/hotellucky/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Live feed: one hub, snapshots reloaded per publish. The orders topic
	// carries every table's orders, so anonymous customers only get it
	// scoped to their own table; staff tokens see the full stream.
	hub := ws.NewFeedHub(map[string]ws.SnapshotFunc{
		services.TopicMenu:   func() (any, error) { return menuRepo.FindAll() },
		services.TopicOrders: func() (any, error) { return orderRepo.ListAll() },
		services.TopicSettings: func() (any, error) {
			return settingRepo.FindByType(entity.SettingQRCode)
		},
	}, map[string]ws.FilterFunc{
		services.TopicOrders: func(items any, table int) any {
			orders, ok := items.([]entity.Order)
			if !ok {
				return items
			}
			scoped := make([]entity.Order, 0, len(orders))
			for _, o := range orders {
				if o.TableNumber == table {
					scoped = append(scoped, o)
				}
			}
			return scoped
		},
	})
	go hub.Run()

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo, hub)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, hub)
	statsSvc := services.NewStatsService(orderRepo, menuRepo)
	settingSvc := services.NewSettingService(settingRepo, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	kitchenCtrl := controllers.NewKitchenController(orderSvc, statsSvc)
	adminCtrl := controllers.NewAdminController(menuSvc, orderSvc, statsSvc)
	settingCtrl := controllers.NewSettingController(settingSvc)
	i18nCtrl := controllers.NewI18nController()

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.POST("/logout", authCtrl.Logout)
		aAuth.GET("/me", authCtrl.Me)
	}

	// Public: customers order anonymously by table
	r.GET("/menu", menuCtrl.Catalog)
	r.GET("/menu/:id/image", menuCtrl.Image)
	r.POST("/orders", orderCtrl.Place)
	r.GET("/tables/:n/orders", orderCtrl.ListForTable)
	r.GET("/orders/:id", orderCtrl.Detail)
	r.POST("/orders/:id/cancel", orderCtrl.Cancel)
	r.GET("/settings/qr", settingCtrl.GetQRCode)
	r.GET("/i18n/:lang", i18nCtrl.Table)

	// Live collection snapshots
	r.GET("/ws/feed", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	// Kitchen (either kitchen role; the queue is scoped by the role itself)
	kitchen := r.Group("/kitchen", middlewares.AuthMiddleware(cfg.JWTSecret,
		entity.RoleSouthKitchen, entity.RoleKolhapuriKitchen))
	{
		kitchen.GET("/orders", kitchenCtrl.Queue)
		kitchen.PATCH("/orders/:id/status", kitchenCtrl.UpdateStatus)
		kitchen.GET("/stats", kitchenCtrl.KitchenStats)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.GET("/menu", adminCtrl.ListMenu)
		admin.POST("/menu", adminCtrl.CreateMenuItem)
		admin.PATCH("/menu/:id/availability", adminCtrl.SetAvailability)
		admin.DELETE("/menu/:id", adminCtrl.DeleteMenuItem)
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.GET("/stats", adminCtrl.AdminStats)
		admin.GET("/stats/earnings", adminCtrl.Earnings)
		admin.PUT("/settings/qr", settingCtrl.UpdateQRCode)
	}
}
