package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"todo-backend/internal/shared/config"
	"todo-backend/internal/shared/server"
	"todo-backend/internal/shared/storage/db"
	"todo-backend/internal/todos"
	"todo-backend/internal/users"
)

// App holds the process-wide dependency graph. It is built once at
// startup and shared read-only across requests.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	TodoRepo    todos.Repo
	UserRepo    users.Repo
	TodoService todos.Service
	UserService users.Service
	TodoHandler *todos.Handler
	UserHandler *users.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	if sqlDB != nil {
		app.TodoRepo = &todos.PGRepo{DB: sqlDB}
		app.UserRepo = &users.PGRepo{DB: sqlDB}
	} else {
		app.TodoRepo = todos.NewMemoryRepo()
		app.UserRepo = users.NewMemoryRepo()
	}

	app.TodoService = todos.NewService(app.TodoRepo)
	app.UserService = users.NewService(app.UserRepo)
	app.TodoHandler = todos.NewHandler(app.TodoService)
	app.UserHandler = users.NewHandler(app.UserService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:      app.Config,
		TodoHandler: app.TodoHandler,
		UserHandler: app.UserHandler,
	})

	return app, nil
}

// buildDB connects and migrates the configured database. A set
// DATABASE_URL that cannot be reached or migrated aborts startup: a
// broken store must fail the process, not serve. An unset DATABASE_URL
// in a dev-like environment selects in-memory repositories.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}
