package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"gearstore/internal/domain"
	"gearstore/internal/logger"
	"gearstore/internal/metrics"
	"gearstore/internal/notify"
	cartsvc "gearstore/internal/service/cart"
	"gearstore/internal/storefront"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type catalogReader interface {
	List() []domain.Product
	Get(id int) (domain.Product, error)
}

type cartService interface {
	Get(ctx context.Context, sessionID string) (cartsvc.Snapshot, error)
	AddItem(ctx context.Context, sessionID string, productID int, opts domain.VariantOptions, notifier notify.Notifier) (cartsvc.Snapshot, error)
	SetQuantity(ctx context.Context, sessionID string, key domain.LineKey, quantity int, notifier notify.Notifier) (cartsvc.Snapshot, error)
	RemoveItem(ctx context.Context, sessionID string, key domain.LineKey, notifier notify.Notifier) (cartsvc.Snapshot, error)
	Clear(ctx context.Context, sessionID string, notifier notify.Notifier) (cartsvc.Snapshot, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Deps wires the services the router serves.
type Deps struct {
	Catalog     catalogReader
	CartSvc     cartService
	Storage     pinger
	Content     storefront.Content
	Session     SessionConfig
	CORSOrigins []string
	Metrics     *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer
}

// buildRouter wires routes for the storefront, the JSON API and ops endpoints.
func buildRouter(log *logger.Logger, deps Deps) (*gin.Engine, error) {
	if deps.Catalog == nil {
		return nil, errors.New("catalog required")
	}
	if deps.CartSvc == nil {
		return nil, errors.New("cart service required")
	}
	if log == nil {
		log = logger.Nop()
	}
	if deps.Session.CookieName == "" {
		deps.Session.CookieName = defaultCookieName
	}
	if deps.Content.Meta.Title == "" {
		deps.Content = storefront.DefaultContent()
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	tmpl, err := storefront.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(requestLogger(log, deps.Metrics), recovery(log))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Storage))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	h := &handlers{
		log:     log,
		catalog: deps.Catalog,
		carts:   deps.CartSvc,
		content: deps.Content,
	}

	site := router.Group("/", sessionMiddleware(deps.Session, log))
	site.GET("/", h.showPage)
	site.POST("/cart/items", h.addItemForm)
	site.POST("/cart/items/quantity", h.setQuantityForm)
	site.POST("/cart/items/remove", h.removeItemForm)
	site.POST("/cart/clear", h.clearCartForm)
	site.POST("/newsletter", h.newsletterForm)
	site.POST("/contact", h.contactForm)

	api := router.Group("/api", corsMiddleware(deps.CORSOrigins))
	// Preflight requests match no route otherwise, so the group middleware would never run.
	api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.getProduct)

	apiCart := api.Group("/cart", sessionMiddleware(deps.Session, log))
	apiCart.GET("", h.getCart)
	apiCart.DELETE("", h.clearCart)
	apiCart.POST("/items", h.addItem)
	apiCart.PUT("/items", h.setQuantity)
	apiCart.DELETE("/items", h.removeItem)

	api.POST("/newsletter", h.subscribe)
	api.POST("/contact", h.sendContact)

	return router, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
