// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/igormatos02/timecontrolapi/internal/config"
	"github.com/igormatos02/timecontrolapi/internal/routes"
	"github.com/igormatos02/timecontrolapi/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := storage.OpenDB(cfg.DB.DSN())
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}

	r := routes.NewRouter(db)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Printf("Server running on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server error: ", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
