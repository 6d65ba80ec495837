package router

import (
	"log/slog"
	"strings"

	"github.com/staff-portal-core/internal/domain"
	"github.com/staff-portal-core/internal/session"
	"github.com/staff-portal-core/internal/store"
	"github.com/staff-portal-core/internal/ui"
)

// Access определяет класс доступа страницы
type Access int

const (
	AccessPublic Access = iota
	AccessProtected
	AccessAdmin
)

// Имена страниц приложения
const (
	PageHome        = "home"
	PageLogin       = "login"
	PageRegister    = "register"
	PageVerifyEmail = "verify-email"
	PageProfile     = "profile"
	PageRequests    = "requests"
	PageEmployees   = "employees"
	PageAccounts    = "accounts"
	PageDepartments = "departments"
)

// DefaultToken - стартовый токен навигации
const DefaultToken = "#/"

// Router сопоставляет токен вида #/<page> со страницей и пропускает переход
// через единый алгоритм контроля доступа. Программные редиректы и прямые
// переходы идут одним и тем же путём.
type Router struct {
	store    *store.Store
	session  *session.Manager
	notifier ui.Notifier
	renderer ui.Renderer
	logger   *slog.Logger

	access  map[string]Access
	refresh map[string]func()
	token   string
	current string
}

// New создаёт роутер со стандартной классификацией страниц
func New(st *store.Store, sess *session.Manager, notifier ui.Notifier, renderer ui.Renderer, logger *slog.Logger) *Router {
	return &Router{
		store:    st,
		session:  sess,
		notifier: notifier,
		renderer: renderer,
		logger:   logger,
		access: map[string]Access{
			PageHome:        AccessPublic,
			PageLogin:       AccessPublic,
			PageRegister:    AccessPublic,
			PageVerifyEmail: AccessPublic,
			PageProfile:     AccessProtected,
			PageRequests:    AccessProtected,
			PageEmployees:   AccessAdmin,
			PageAccounts:    AccessAdmin,
			PageDepartments: AccessAdmin,
		},
		refresh: make(map[string]func()),
		token:   DefaultToken,
		current: PageHome,
	}
}

// OnRefresh регистрирует колбэк обновления данных страницы. Вызывается перед
// отрисовкой при каждом переходе на неё.
func (r *Router) OnRefresh(page string, fn func()) {
	r.refresh[page] = fn
}

// Token возвращает текущий токен навигации (включая нераспознанный)
func (r *Router) Token() string {
	return r.token
}

// Current возвращает имя активной страницы
func (r *Router) Current() string {
	return r.current
}

// Resolve извлекает имя страницы из токена; пустой токен означает home
func Resolve(token string) string {
	if token == "" || token == "#" {
		token = DefaultToken
	}
	name := strings.TrimPrefix(token, "#/")
	if name == "" {
		return PageHome
	}
	return name
}

// Navigate выполняет переход по токену: классифицирует страницу, применяет
// контроль доступа и отрисовывает результат. Нераспознанная страница
// отрисовывается содержимым home, токен при этом сохраняется как есть.
func (r *Router) Navigate(token string) {
	if token == "" || token == "#" {
		token = DefaultToken
	}
	name := Resolve(token)

	class, known := r.access[name]
	principal := r.session.Current()

	if known && class >= AccessProtected && principal == nil {
		r.Navigate("#/" + PageLogin)
		return
	}
	if known && class == AccessAdmin && principal.Role != domain.RoleAdmin {
		r.notifier.Notify("Access denied. Admins only.", ui.SeverityError)
		r.Navigate(DefaultToken)
		return
	}

	content := name
	if !known {
		content = PageHome
	}

	r.token = token
	r.current = content

	if fn, ok := r.refresh[content]; ok {
		fn()
	}

	r.logger.Debug("navigated", slog.String("token", token), slog.String("page", content))
	r.renderer.Render(content, r.store.Snapshot(), principal)
}
