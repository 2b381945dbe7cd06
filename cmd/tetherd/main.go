package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tether/config"
	"tether/game"
	"tether/network"
	"tether/room"
)

func main() {
	config.Init()

	addr := flag.String("addr", config.GetDefault("TETHER_ADDR", ":8080"), "listen address")
	tuningPath := flag.String("tuning", config.GetDefault("TETHER_TUNING", ""), "TOML tuning overrides")
	flag.Parse()

	tun := game.DefaultTuning()
	if *tuningPath != "" {
		var err error
		tun, err = ParseTuning(*tuningPath)
		if err != nil {
			log.Fatalf("tuning: %v", err)
		}
		log.Printf("tuning: loaded overrides from %s", *tuningPath)
	}

	manager := room.NewManager(tun)
	srv := network.NewServer(manager)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ws/{code}", srv.HandleWS)
	r.Get("/api/rooms", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(manager.List())
	})
	r.Post("/api/rooms", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"code": manager.Create()})
	})

	server := &http.Server{
		Addr:              *addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("listening on %s (ws endpoint: /ws/{code})", *addr)
	log.Fatal(server.ListenAndServe())
}
