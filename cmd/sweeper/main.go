// The sweeper expires overdue pending missions on a schedule, so missions
// assigned to users who never reopen their dashboard still expire.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/acidpbl/homequest/config"
	"github.com/acidpbl/homequest/internal/auth"
	"github.com/acidpbl/homequest/internal/bootstrap"
	"github.com/acidpbl/homequest/internal/missions"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	app, err := auth.InitializeFirebase(&cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}

	st, closeStore, err := bootstrap.OpenStore(ctx, cfg, app)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer closeStore()

	svc := missions.NewService(missions.NewRepo(st))

	c := cron.New(cron.WithSeconds())
	_, err = c.AddFunc(cfg.App.SweepSchedule, func() {
		n, err := svc.SweepAll(context.Background())
		if err != nil {
			log.Printf("sweep failed: %v", err)
			return
		}
		log.Printf("sweep done, %d mission(s) expired", n)
	})
	if err != nil {
		log.Fatalf("cron: %v", err)
	}

	log.Printf("sweeper started (schedule %q)", cfg.App.SweepSchedule)
	c.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	<-c.Stop().Done()
}
