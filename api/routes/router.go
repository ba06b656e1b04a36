package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pedilo/pedilo-backend/api/controllers"
	"github.com/pedilo/pedilo-backend/api/middleware"
	businesssvc "github.com/pedilo/pedilo-backend/internal/business"
	cartsvc "github.com/pedilo/pedilo-backend/internal/cart"
	catalogsvc "github.com/pedilo/pedilo-backend/internal/catalog"
	orderssvc "github.com/pedilo/pedilo-backend/internal/orders"
	"github.com/pedilo/pedilo-backend/pkg/config"
	"github.com/pedilo/pedilo-backend/pkg/db"
	"github.com/pedilo/pedilo-backend/pkg/logger"
	"github.com/pedilo/pedilo-backend/pkg/metrics"
	"github.com/pedilo/pedilo-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	businessService businesssvc.Service,
	catalogService catalogsvc.Service,
	cartService cartsvc.Service,
	ordersService orderssvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())

	r.Route("/api/v1/negocios/{slug}", func(r chi.Router) {
		r.Use(middleware.BusinessContext(businessService, logg))

		r.Get("/", controllers.BusinessProfile(businessService, logg))

		r.Route("/productos", func(r chi.Router) {
			r.Get("/", controllers.ProductList(catalogService, logg))
			r.Get("/{productId}", controllers.ProductDetail(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Post("/items/toppings", controllers.CartAddWithToppings(cartService, logg))
			r.Put("/items/quantity", controllers.CartSetQuantity(cartService, logg))
			r.Post("/items/{lineId}/increase", controllers.CartIncreaseLine(cartService, logg))
			r.Post("/items/{lineId}/decrease", controllers.CartDecreaseLine(cartService, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", controllers.CheckoutDecision(cartService, logg))
			r.Post("/", controllers.CheckoutSubmit(ordersService, logg))
		})
	})

	r.Route("/api/v1/vendor/{slug}", func(r chi.Router) {
		r.Use(middleware.BusinessContext(businessService, logg))

		r.Put("/", controllers.VendorUpdateBusiness(businessService, logg))
		r.Post("/acepta-pedidos", controllers.VendorSetAceptaPedidos(businessService, logg))

		r.Route("/productos", func(r chi.Router) {
			r.Post("/", controllers.VendorCreateProduct(catalogService, logg))
			r.Patch("/{productId}", controllers.VendorUpdateProduct(catalogService, logg))
			r.Delete("/{productId}", controllers.VendorDeleteProduct(catalogService, logg))
		})

		r.Route("/pedidos", func(r chi.Router) {
			r.Get("/", controllers.VendorOrderList(ordersService, logg))
			r.Get("/{orderId}", controllers.VendorOrderDetail(ordersService, logg))
			r.Patch("/{orderId}/status", controllers.VendorOrderUpdateStatus(ordersService, logg))
		})
	})

	return r
}
