package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/fitkeep/fitkeep/internal"
	"github.com/fitkeep/fitkeep/internal/config"
	"github.com/fitkeep/fitkeep/internal/logging"
	"github.com/fitkeep/fitkeep/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	host := flag.String("host", "", "host to bind the listeners to")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      *env,
		SentryEnabled:    sentryDSN != "",
		SentryDSN:        sentryDSN,
		SentryServerName: "fitkeep-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	redisPassword := os.Getenv("FITKEEP_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use FITKEEP_REDIS_PASS")
	}

	bootstrapUsername := os.Getenv("FITKEEP_BOOTSTRAP_USERNAME")
	bootstrapPassword := os.Getenv("FITKEEP_BOOTSTRAP_PASSWORD")
	bootstrapEmail := os.Getenv("FITKEEP_BOOTSTRAP_EMAIL")
	if bootstrapUsername == "" || bootstrapPassword == "" {
		log.Warnln("bootstrap user not set, use FITKEEP_BOOTSTRAP_USERNAME and FITKEEP_BOOTSTRAP_PASSWORD")
	}

	if cfg.HoneycombTracingEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:            cfg,
			VersionInfo:       versionInfo,
			RedisPassword:     redisPassword,
			BootstrapUsername: bootstrapUsername,
			BootstrapPassword: bootstrapPassword,
			BootstrapEmail:    bootstrapEmail,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(*host)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, shutting down ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
