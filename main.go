package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ExerciseTracker/config/database"
	"ExerciseTracker/config/environment"
	"ExerciseTracker/repository"
	"ExerciseTracker/routes"
	"ExerciseTracker/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
)

func main() {
	environment.LoadDotEnv()

	app := &cli.App{
		Name:  "exercisetracker",
		Usage: "exercise tracking REST API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Usage: "listen port", EnvVars: []string{"PORT"}},
			&cli.StringFlag{Name: "store", Usage: "store driver: sqlite, mongo or firestore", EnvVars: []string{"STORE_DRIVER"}},
			&cli.StringFlag{Name: "sqlite-path", Usage: "SQLite database file", EnvVars: []string{"SQLITE_PATH"}},
			&cli.StringFlag{Name: "static", Value: "./public", Usage: "static assets directory"},
			&cli.StringFlag{Name: "views", Value: "./views", Usage: "directory holding index.html"},
			&cli.BoolFlag{Name: "release", Usage: "run gin in release mode", EnvVars: []string{"GIN_RELEASE"}},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	// flags win over the environment
	for flag, env := range map[string]string{"port": "PORT", "store": "STORE_DRIVER", "sqlite-path": "SQLITE_PATH"} {
		if c.IsSet(flag) {
			os.Setenv(env, c.String(flag))
		}
	}
	cfg, err := environment.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log.Printf("Configuration loaded: %v", cfg)

	if c.Bool("release") {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	users, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := users.Close(closeCtx); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	r := routes.NewRouter(users, routes.Options{
		Clock:     services.SystemClock,
		StaticDir: c.String("static"),
		ViewsDir:  c.String("views"),
		Middlewares: []gin.HandlerFunc{cors.New(cors.Config{
			AllowOrigins:  cfg.CORSOrigins,
			AllowMethods:  []string{"GET", "POST"},
			AllowHeaders:  []string{"Content-Type"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		})},
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	errc := make(chan error, 1)
	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		errc <- srv.ListenAndServe()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case sig := <-sigc:
		log.Printf("Received %v, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *environment.Config) (repository.UserRepository, error) {
	switch cfg.StoreDriver {
	case environment.DriverMongo:
		db, err := database.OpenMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		repo, err := repository.NewMongoUserRepository(ctx, db)
		if err != nil {
			_ = db.Client().Disconnect(ctx)
			return nil, err
		}
		return repo, nil
	case environment.DriverFirestore:
		client, err := database.OpenFirestore(ctx, cfg.Firebase)
		if err != nil {
			return nil, err
		}
		return repository.NewFirestoreUserRepository(client), nil
	default:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return repository.NewSQLiteUserRepository(db), nil
	}
}
