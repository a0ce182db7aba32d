package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/quokkahq/gatehouse/internal/service"
	"github.com/quokkahq/gatehouse/internal/store"
	"github.com/quokkahq/gatehouse/pkg/httpx"
	"github.com/quokkahq/gatehouse/pkg/slogx"

	_ "github.com/quokkahq/gatehouse/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService  *service.AuthService
	UserService  *service.UserService
	TokenService *service.TokenService
	Cookies      CookiePolicy
}

func NewRouter(
	buildVersion, corsOrigin string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		Cookies:      DefaultCookiePolicy(),
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigin),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	// Everything else is a client error, per the API contract.
	r.Mux.Handle("/", NotFoundHandler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			Gatehouse Authentication API
//	@version		0.1.0
//	@description	Minimal authentication backend: registration, login, stateless
//	@description	access/refresh token lifecycle, and a protected user listing.
//	@description
//	@description	Access tokens are short-lived HS256 JWTs sent as bearer headers;
//	@description	refresh tokens are long-lived HS256 JWTs carried in the http-only
//	@description	"jwt" cookie and signed with an independent secret.
//
//	@contact.name				Quokka HQ
//	@contact.url				https://github.com/quokkahq/gatehouse
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService: r.AuthService,
		Cookies:     r.Cookies,
	}

	// Credential endpoints get the strict limit to slow brute forcing.
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Refresh and logout carry no credentials, only cookies.
	r.Mux.Handle("GET /api/auth/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	secured := httpx.Chain(h,
		httpx.RequireAccessToken(r.TokenService.AccessVerifier()),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /api/users", secured)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
