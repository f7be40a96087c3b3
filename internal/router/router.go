package router

import (
	"database/sql"
	"net/http"
	"os"
	"path/filepath"
	"time"

	sessmem "pet-adoption-board/internal/adapters/session/memory"
	filestore "pet-adoption-board/internal/adapters/storage/file"
	mem "pet-adoption-board/internal/adapters/storage/memory"
	pg "pet-adoption-board/internal/adapters/storage/postgres"
	"pet-adoption-board/internal/domain/listings"
	"pet-adoption-board/internal/domain/users"
	"pet-adoption-board/internal/middleware"
	"pet-adoption-board/internal/platform/logger"
	"pet-adoption-board/internal/platform/password"
	"pet-adoption-board/internal/ports/session"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes acota el JSON de entrada (el original limitaba a 200kb).
const maxBodyBytes = 200 << 10

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, archivos JSON en DataDir.
	DB *sql.DB

	// Directorio de users.json / pets.json. Vacío => repos in-memory
	// (tests, dev sin estado).
	DataDir string

	// Opcional: manager de sesiones propio; por defecto in-memory con TTL.
	Sessions   session.Manager
	SessionTTL time.Duration

	Logger logger.Logger
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	sessions := opts.Sessions
	if sessions == nil {
		sessions = sessmem.NewManager(opts.SessionTTL)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(limitBody)
	r.Use(middleware.SessionContext(sessions))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		usersRepo    users.Repository
		listingsRepo listings.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back", map[string]any{"err": err.Error()})
			}
		}
	}

	switch {
	case db != nil:
		usersRepo = pg.NewUsersRepo(db)
		listingsRepo = pg.NewListingsRepo(db)
	case opts.DataDir != "":
		us, err := filestore.NewStore(filepath.Join(opts.DataDir, "users.json"))
		if err != nil {
			return nil, err
		}
		ls, err := filestore.NewStore(filepath.Join(opts.DataDir, "pets.json"))
		if err != nil {
			return nil, err
		}
		usersRepo = filestore.NewUsersRepo(us)
		listingsRepo = filestore.NewListingsRepo(ls)
	default:
		usersRepo = mem.NewUsersRepo()
		listingsRepo = mem.NewListingsRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(usersRepo, password.NewHasher())
	listingsSvc := listings.NewService(listingsRepo)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, sessions)
	listings.RegisterRoutes(r, listingsSvc)

	return r, nil
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
