package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"

	"github.com/spencer-p/suncalc/pkg/data"
	"github.com/spencer-p/suncalc/pkg/handlers"
	"github.com/spencer-p/suncalc/pkg/log"
	"github.com/spencer-p/suncalc/pkg/metrics"
	"github.com/spencer-p/suncalc/pkg/sun"
)

type Config struct {
	Port   string `default:"8080"`
	Prefix string `default:"/"`
	Debug  bool   `default:"false"`

	// The location used when a request names none.
	Lat    float64 `default:"36.9741"`
	Lng    float64 `default:"-122.0308"`
	Height float64 `default:"0"`

	PGHost     string
	PGPort     string `default:"5432"`
	PGPassword string

	SessionKey    string `default:"suncalc-session-key"`
	EncryptionKey string `default:"suncalc-encryption-key"`
}

func places(env *Config) (data.Places, error) {
	if env.PGHost == "" {
		log.Infow("no database configured, keeping places in memory")
		return data.NewMemory(data.Place{
			Name: "santa-cruz",
			Lat:  36.9741,
			Lng:  -122.0308,
		}), nil
	}
	return data.Postgres(data.PostgresConfig{
		Host:     env.PGHost,
		Port:     env.PGPort,
		Password: env.PGPassword,
	})
}

func main() {
	var env Config
	if err := envconfig.Process("", &env); err != nil {
		log.Fatal(err.Error())
	}
	if err := log.Init(env.Debug); err != nil {
		log.Fatal(err.Error())
	}
	defer log.Sync()

	store, err := places(&env)
	if err != nil {
		log.Fatal(err.Error())
	}

	r := mux.NewRouter().StrictSlash(true)
	s := r.PathPrefix(env.Prefix).Subrouter()
	handlers.Register(s, handlers.Options{
		Default:  sun.Place{Lat: env.Lat, Long: env.Lng, Height: env.Height},
		Places:   store,
		Sessions: handlers.NewSessionStore(env.SessionKey, env.EncryptionKey),
	})
	s.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Handler:      metrics.LatencyHandler(r),
		Addr:         "0.0.0.0:" + env.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	log.Infow("listening and serving", "addr", srv.Addr, "prefix", env.Prefix)
	log.Fatal(srv.ListenAndServe())
}
