package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Endpoint paths. The client's adapter uses the same names.
const (
	PathSubscriptionStatus   = "/subscription_status_v2"
	PathSubscriptionRegister = "/subscription_register_v2"
	PathSubscriptionTransfer = "/subscription_transfer_v2"
	PathContentBasic         = "/content_basic_v2"
	PathContentPremium       = "/content_premium_v2"
	PathInstanceIDRegister   = "/instanceId_register_v2"
	PathInstanceIDUnregister = "/instanceId_unregister_v2"
	PathVersion              = "/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Get(PathVersion, h.getServerVersion)

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get(PathSubscriptionStatus, h.subscriptionStatus)
		r.Put(PathSubscriptionRegister, h.registerSubscription)
		r.Put(PathSubscriptionTransfer, h.transferSubscription)

		r.Get(PathContentBasic, h.contentBasic)
		r.Get(PathContentPremium, h.contentPremium)

		r.Put(PathInstanceIDRegister, h.registerInstanceID)
		r.Put(PathInstanceIDUnregister, h.unregisterInstanceID)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
