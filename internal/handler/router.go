package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/employee-management-api/internal/auth"
	"github.com/employee-management-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux             *http.ServeMux
	logger          *slog.Logger
	tokens          *auth.TokenService
	authHandler     *AuthHandler
	positionHandler *PositionHandler
	employeeHandler *EmployeeHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	authHandler *AuthHandler,
	positionHandler *PositionHandler,
	employeeHandler *EmployeeHandler,
	tokens *auth.TokenService,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		logger:          logger,
		tokens:          tokens,
		authHandler:     authHandler,
		positionHandler: positionHandler,
		employeeHandler: employeeHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Открытые маршруты аутентификации
	r.mux.HandleFunc("/auth/register", r.registerRoute)
	r.mux.HandleFunc("/auth/login", r.loginRoute)

	// Ресурсные маршруты за проверкой токена
	requireAuth := middleware.Auth(r.tokens)
	r.mux.Handle("/positions/", requireAuth(http.HandlerFunc(r.positionsRouter)))
	r.mux.Handle("/employees/", requireAuth(http.HandlerFunc(r.employeesRouter)))

	// Health check
	r.mux.HandleFunc("/health", r.healthRoute)
	r.mux.HandleFunc("/", r.rootRoute)

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

func (r *Router) registerRoute(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	r.authHandler.Register(w, req)
}

func (r *Router) loginRoute(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	r.authHandler.Login(w, req)
}

func (r *Router) healthRoute(w http.ResponseWriter, req *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"employee-management-api"}`))
}

func (r *Router) rootRoute(w http.ResponseWriter, req *http.Request) {
	// Паттерн "/" ловит все незарегистрированные пути
	if req.URL.Path != "/" {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"employee-management-api"}`))
}

// positionsRouter обрабатывает все запросы к /positions/
func (r *Router) positionsRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/positions")
	path = strings.Trim(path, "/")

	// /positions/ - создание и список
	if path == "" {
		switch req.Method {
		case http.MethodPost:
			r.positionHandler.Create(w, req)
		case http.MethodGet:
			r.positionHandler.GetAll(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	// /positions/{id}
	if !strings.Contains(path, "/") {
		switch req.Method {
		case http.MethodGet:
			r.positionHandler.GetByID(w, req)
		case http.MethodPut:
			r.positionHandler.Update(w, req)
		case http.MethodDelete:
			r.positionHandler.Delete(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// employeesRouter обрабатывает все запросы к /employees/
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/employees")
	path = strings.Trim(path, "/")

	// /employees/ - создание и список
	if path == "" {
		switch req.Method {
		case http.MethodPost:
			r.employeeHandler.Create(w, req)
		case http.MethodGet:
			r.employeeHandler.GetAll(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	// /employees/{id}
	if !strings.Contains(path, "/") {
		switch req.Method {
		case http.MethodGet:
			r.employeeHandler.GetByID(w, req)
		case http.MethodPut:
			r.employeeHandler.Update(w, req)
		case http.MethodDelete:
			r.employeeHandler.Delete(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}
