package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/Bourichi-Taha/Everlasting-client/internal/database"
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/datetime"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler    http.Handler
	logger     *zap.SugaredLogger
	randSource io.Reader
	settings   Settings
	locale     datetime.Locale
	now        func() time.Time

	jwts          jwtManager
	refreshTokens refreshTokenRepository

	db            database.PGX
	users         userRepository
	categories    categoryRepository
	eventsService eventsService
}

// Settings are the tunables the handlers need.
type Settings struct {
	SessionTokenLength int
	MaxFileSize        int64
	FilesDir           string
}

type jwtManager interface {
	CreateToken(id int64) (string, error)
	GetIdFromToken(token string) (int64, error)
}

type refreshTokenRepository interface {
	Add(ctx context.Context, session string, id int64) error
	Get(ctx context.Context, session string) (int64, error)
	Refresh(ctx context.Context, old, new string) error
	Delete(ctx context.Context, session string) error
}

type userRepository interface {
	CreateUser(ctx context.Context, q database.Queryable, user *model.UserCreate) (int64, error)
	GetUserByEmail(ctx context.Context, q database.Queryable, email string) (*model.User, error)
	GetUserByID(ctx context.Context, q database.Queryable, id int64) (*model.User, error)
}

type categoryRepository interface {
	GetCategories(ctx context.Context, q database.Queryable) ([]*model.Category, error)
	GetCategoryByID(ctx context.Context, q database.Queryable, id int64) (*model.Category, error)
}

type eventsService interface {
	ListEvents(ctx context.Context, criteria model.FilterCriteria, now time.Time) ([]*model.Event, error)
	GetEvent(ctx context.Context, id int64) (*model.Event, error)
	ListOwnEvents(ctx context.Context, userID int64, now time.Time) ([]*model.Event, error)
	ListRegisteredEvents(ctx context.Context, userID int64, now time.Time) ([]*model.Event, error)
	CreateEvent(ctx context.Context, ownerID int64, info *model.EventCreate) (*model.Event, error)
	UpdateEvent(ctx context.Context, userID, id int64, info *model.EventCreate, now time.Time) error
	CancelEvent(ctx context.Context, userID, id int64) error
	Subscribe(ctx context.Context, userID, eventID int64) error
	Unsubscribe(ctx context.Context, userID, eventID int64) error
}

func NewApi(
	logger *zap.SugaredLogger,
	randSource io.Reader,
	settings Settings,
	locale datetime.Locale,
	jwts jwtManager,
	refreshTokens refreshTokenRepository,
	db database.PGX,
	users userRepository,
	categories categoryRepository,
	eventsService eventsService,
) (*Api, error) {
	a := &Api{
		logger:        logger,
		randSource:    randSource,
		settings:      settings,
		locale:        locale,
		now:           time.Now,
		jwts:          jwts,
		refreshTokens: refreshTokens,
		db:            db,
		users:         users,
		categories:    categories,
		eventsService: eventsService,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", a.registerHandler)
		r.Post("/login", a.loginHandler)
		r.Post("/refresh", a.refreshTokenHandler)
		r.Post("/logout", a.logoutUserHandler)
	})

	r.With(a.auth).Route("/", func(r chi.Router) {
		r.With(a.userCtx).Get("/user", a.getUserHandler)
		r.Get("/categories", a.listCategoriesHandler)
		r.Post("/uploads", a.uploadImageHandler)

		r.Route("/events", func(r chi.Router) {
			r.Get("/", a.listEventsHandler)
			r.Post("/", a.createEventHandler)
			r.Get("/my-events", a.ownEventsHandler)
			r.Get("/registered", a.registeredEventsHandler)
			r.Post("/subscribe", a.subscribeHandler)
			r.Post("/unsubscribe", a.unsubscribeHandler)
			r.Post("/validate-times", a.validateTimesHandler)
			r.Put("/cancel/{id}", a.cancelEventHandler)
			r.Get("/{id}", a.getEventHandler)
			r.Put("/{id}", a.updateEventHandler)
		})
	})

	fileServer := http.FileServer(http.Dir(a.settings.FilesDir))
	r.Get("/files/*", http.StripPrefix("/files", fileServer).ServeHTTP)

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
