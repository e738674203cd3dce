package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guid-gatherer/config"
	"guid-gatherer/controllers"
	"guid-gatherer/database"
	"guid-gatherer/middleware"
	"guid-gatherer/models"
	"guid-gatherer/repositories"
	"guid-gatherer/services"
)

// Stores groups one backend's repositories.
type Stores struct {
	Users         services.UserStore
	Contractors   controllers.ResourceStore[models.Contractor]
	Suppliers     controllers.ResourceStore[models.Supplier]
	Wholesalers   controllers.ResourceStore[models.Wholesaler]
	RetailSellers controllers.ResourceStore[models.RetailSeller]
	// Health is nil for the memory backend.
	Health controllers.Pinger
}

func GormStores(db *gorm.DB) Stores {
	return Stores{
		Users:         repositories.NewUserRepository(db),
		Contractors:   repositories.NewResourceRepository[models.Contractor](db),
		Suppliers:     repositories.NewResourceRepository[models.Supplier](db),
		Wholesalers:   repositories.NewResourceRepository[models.Wholesaler](db),
		RetailSellers: repositories.NewResourceRepository[models.RetailSeller](db),
		Health:        database.Pinger{DB: db},
	}
}

func MemoryStores() Stores {
	return Stores{
		Users:         repositories.NewMemoryUserRepository(),
		Contractors:   repositories.NewMemoryRepository[models.Contractor](),
		Suppliers:     repositories.NewMemoryRepository[models.Supplier](),
		Wholesalers:   repositories.NewMemoryRepository[models.Wholesaler](),
		RetailSellers: repositories.NewMemoryRepository[models.RetailSeller](),
	}
}

type Handlers struct {
	AuthService   *services.AuthService
	Auth          *controllers.AuthController
	Health        *controllers.HealthController
	Contractors   *controllers.ContractorController
	Suppliers     *controllers.SupplierController
	Wholesalers   *controllers.WholesalerController
	RetailSellers *controllers.RetailSellerController
	Guard         fiber.Handler
}

func NewHandlers(cfg *config.Config, stores Stores, mailer services.Mailer) *Handlers {
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiration)
	authService := services.NewAuthService(stores.Users, tokens, mailer)

	return &Handlers{
		AuthService:   authService,
		Auth:          controllers.NewAuthController(authService),
		Health:        controllers.NewHealthController(stores.Health),
		Contractors:   controllers.NewContractorController(stores.Contractors),
		Suppliers:     controllers.NewSupplierController(stores.Suppliers),
		Wholesalers:   controllers.NewWholesalerController(stores.Wholesalers),
		RetailSellers: controllers.NewRetailSellerController(stores.RetailSellers),
		Guard:         middleware.AuthMiddleware(authService),
	}
}
