package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/hosogai/enkai/internal/common/clock"
	"github.com/hosogai/enkai/internal/common/uuid"
	"github.com/hosogai/enkai/internal/handlers/web"
	"github.com/hosogai/enkai/internal/repositories/score_ledger"
	"github.com/hosogai/enkai/internal/repositories/session"
	"github.com/hosogai/enkai/internal/rng"
	"github.com/hosogai/enkai/internal/services/ledger"
	"github.com/hosogai/enkai/internal/services/mansion"
	"github.com/hosogai/enkai/internal/services/memory"
	"github.com/hosogai/enkai/internal/services/quiz"
	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const releaseVersion = "1.0.0"

const serverTimeout = 10 * time.Second

// mansionLines is the narrative the host reads as cups go down, one
// line per resolved round. The final line plays on a failed run.
var mansionLines = []string{
	"……よう来たな。まあ座りいや。",
	"一杯目や。この部屋、なんか変なとこあるか？",
	"二杯目。影の伸び方、よう見とけよ。",
	"三杯目や。灯り、さっきと同じやったか？",
	"四杯目。わしの顔、ちゃんと見えとるか？",
	"五杯目や。壁の色、覚えとるか？",
	"六杯目。ええ調子やないか。",
	"七杯目や。あと少しやで。",
	"八杯目。……全部飲み切ったな。",
}

const mansionFinalLine = "……もうええわ。今日は帰り。"

func main() {
	log.SetFlags(0)

	// Missing .env is fine; flags and real env still apply.
	_ = godotenv.Load()

	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}

func serve(ctx context.Context, cfg *Config) error {
	random := rng.New(&rng.Config{Seed: cfg.seed})
	uuidGen := uuid.New()

	ledgerRepo, err := score_ledger.NewFile(&score_ledger.Config{
		Path: cfg.scoresFile,
	})
	if err != nil {
		return err
	}

	ledgerSvc, err := ledger.New(&ledger.Config{
		Repo:  ledgerRepo,
		Clock: &clock.DefaultClock{},
	})
	if err != nil {
		return err
	}

	catalog, err := quiz.LoadCatalog(cfg.drinksFile)
	if err != nil {
		return err
	}

	quizSvc, err := quiz.New(&quiz.Config{
		Catalog: catalog,
		Rand:    random,
		Ledger:  ledgerSvc,
	})
	if err != nil {
		return err
	}

	memorySvc, err := memory.New(&memory.Config{
		AssetsDir: cfg.assetsDir,
		Rand:      random,
		UUIDGen:   uuidGen,
		Ledger:    ledgerSvc,
	})
	if err != nil {
		return err
	}

	sessions, err := newSessionRepo(ctx, cfg)
	if err != nil {
		return err
	}

	mansionSvc, err := mansion.New(&mansion.Config{
		Lines:     mansionLines,
		FinalLine: mansionFinalLine,
		Sessions:  sessions,
		Rand:      random,
	})
	if err != nil {
		return err
	}

	handler, err := web.New(&web.Config{
		ImageBaseURL: cfg.imageBaseURL,
		Quiz:         quizSvc,
		Memory:       memorySvc,
		Mansion:      mansionSvc,
		Ledger:       ledgerSvc,
		UUIDGen:      uuidGen,
	})
	if err != nil {
		return err
	}

	mux := httprouter.New()
	handler.Register(mux)
	mux.ServeFiles("/static/*filepath", http.Dir("static"))

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.bind, strconv.Itoa(cfg.port)),
		Handler:           mux,
		IdleTimeout:       10 * time.Minute,
		ReadTimeout:       serverTimeout,
		ReadHeaderTimeout: serverTimeout,
		WriteTimeout:      serverTimeout,
	}

	errs := make(chan error, 1)
	go func() {
		log.Printf("START: enkai v%s listening on %s", releaseVersion, srv.Addr)
		errs <- srv.ListenAndServe()
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-sc:
		log.Println("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}

// newSessionRepo picks the mansion session store: redis when an
// address is configured, otherwise a process-local map.
func newSessionRepo(ctx context.Context, cfg *Config) (session.Repository, error) {
	if cfg.redisAddr == "" {
		return session.NewMemory(), nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}

	return session.NewRedis(&session.Config{
		RedisClient: redisClient,
		TTL:         cfg.sessionTTL,
	})
}
