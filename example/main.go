// Command example runs a small sign-up application on top of slimkit.
package main

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/slimkit/binder"
	"github.com/dmitrymomot/slimkit/handler"
	"github.com/dmitrymomot/slimkit/pkg/config"
	"github.com/dmitrymomot/slimkit/pkg/cookie"
	"github.com/dmitrymomot/slimkit/pkg/csrf"
	"github.com/dmitrymomot/slimkit/pkg/form"
	"github.com/dmitrymomot/slimkit/pkg/headers"
	"github.com/dmitrymomot/slimkit/pkg/httpserver"
	"github.com/dmitrymomot/slimkit/pkg/logger"
	"github.com/dmitrymomot/slimkit/pkg/password"
	"github.com/dmitrymomot/slimkit/pkg/requestid"
	"github.com/dmitrymomot/slimkit/pkg/validator"
)

const pageSize = 10

var signupPage = template.Must(template.New("signup").Parse(`<!doctype html>
<form method="post" action="/signup">
<input type="hidden" name="{{ .csrf_param }}" value="{{ .csrf_token }}">
<input name="email" type="email">
<input name="password" type="password">
<input name="confirm" type="password">
<input name="tos" type="checkbox">
<button>Sign up</button>
</form>
`))

type user struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Hash  string `json:"-"`
}

type users struct {
	mu   sync.RWMutex
	list []user
}

func (u *users) add(email, hash string) user {
	u.mu.Lock()
	defer u.mu.Unlock()
	usr := user{ID: len(u.list) + 1, Email: email, Hash: hash}
	u.list = append(u.list, usr)
	return usr
}

func (u *users) page(n int) ([]user, int) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	from := min(n*pageSize, len(u.list))
	to := min(from+pageSize, len(u.list))
	return append([]user(nil), u.list[from:to]...), len(u.list)
}

type signupRequest struct {
	Email    string
	Password string
	Age      int
}

func (s *signupRequest) Expect(f *form.Form) {
	f.RequireEmail("email").
		RequireString("password", form.WithValidator(password.Strength(validator.DefaultPasswordStrength()))).
		RequireString("confirm").
		RequireTrue("tos").
		ExpectInt("age").
		Hook(func(f *form.Form) {
			if f.String("password") != f.String("confirm") {
				f.AddError("confirm")
			}
		})
}

func (s *signupRequest) Load(f *form.Form) {
	s.Email = f.String("email")
	s.Password = f.String("password")
	s.Age = f.Int("age")
}

type listRequest struct {
	Page int
}

func (l *listRequest) Expect(f *form.Form) {
	f.ExpectInt("page", form.WithDefault(0), form.WithValidator(func(v any) bool {
		n, ok := v.(int)
		return v == nil || (ok && n >= 0)
	}))
}

func (l *listRequest) Load(f *form.Form) { l.Page = f.Int("page") }

type app struct {
	log   *slog.Logger
	users *users
}

func (a *app) showSignup(ctx handler.Context, _ struct{}) handler.Response {
	return htmlResponse(func(w http.ResponseWriter) error {
		return signupPage.Execute(w, csrf.TemplateData(ctx))
	})
}

func (a *app) signup(ctx handler.Context, req signupRequest) handler.Response {
	hash, err := password.Hash(req.Password)
	if err != nil {
		return handler.JSONError(err)
	}
	usr := a.users.add(req.Email, hash)
	a.log.InfoContext(ctx, "user signed up", slog.Int("user_id", usr.ID))
	return handler.Redirect("/users")
}

func (a *app) listUsers(_ handler.Context, req listRequest) handler.Response {
	list, total := a.users.page(req.Page)
	p := handler.Paginate(total, req.Page, pageSize, handler.DefaultPageWindow)
	return handler.JSON(list, handler.WithJSONMeta(map[string]any{
		"pagination": p,
		"next":       "?" + form.URLEncode(form.NewParams("page", p.Current+1)),
	}))
}

type htmlResponse func(w http.ResponseWriter) error

func (h htmlResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	return h(w)
}

func main() {
	appCfg, err := config.LoadApp()
	if err != nil {
		slog.Error("load app config", logger.Error(err))
		os.Exit(1)
	}
	log := logger.New(append(logger.FromConfig(appCfg),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)...)
	logger.SetAsDefault(log)

	if err := run(context.Background(), log); err != nil {
		log.Error("application stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	cookieCfg, err := cookie.LoadConfig()
	if err != nil {
		return err
	}
	jar, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		return err
	}
	srvCfg, err := httpserver.LoadConfig()
	if err != nil {
		return err
	}

	a := &app{log: log, users: &users{}}
	errorHandler := handler.NewErrorHandler[handler.Context](log)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(headers.Forwarded)
	r.Use(headers.Defaults().Middleware)

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, func(context.Context) error { return nil }))

	r.Group(func(r chi.Router) {
		r.Use(csrf.Middleware(csrf.NewCookieStore(jar, ""), csrf.WithLogger(log)))

		r.Handle("/signup", handler.NewMethods().
			Get(handler.Wrap(a.showSignup)).
			Post(handler.Wrap(a.signup,
				handler.WithBinders[handler.Context, signupRequest](binder.Form(binder.WithFormOptions(form.WithLogger(log))), binder.JSON()),
				handler.WithErrorHandler[handler.Context, signupRequest](errorHandler),
			)))
	})

	r.Get("/users", handler.Wrap(a.listUsers,
		handler.WithBinders[handler.Context, listRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, listRequest](errorHandler),
	))

	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
