package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/cbodonnell/hangman/pkg/api"
	"github.com/cbodonnell/hangman/pkg/game/constants"
	"github.com/cbodonnell/hangman/pkg/highscores"
	"github.com/cbodonnell/hangman/pkg/log"
	"github.com/cbodonnell/hangman/pkg/network"
	"github.com/cbodonnell/hangman/pkg/repositories"
	"github.com/cbodonnell/hangman/pkg/session"
	"github.com/cbodonnell/hangman/pkg/words"
	"github.com/joho/godotenv"
)

// tlsFilesFromEnv reports the certificate and key used by the WebSocket and
// API listeners. TLS is only enabled when both are set.
func tlsFilesFromEnv() (certFile, keyFile string, ok bool) {
	certFile = os.Getenv("HANGMAN_TLS_CERT_FILE")
	keyFile = os.Getenv("HANGMAN_TLS_KEY_FILE")
	return certFile, keyFile, certFile != "" && keyFile != ""
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <port>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	_ = godotenv.Load()

	defaultScoresURL := os.Getenv("HANGMAN_SCORES_URL")
	if defaultScoresURL == "" {
		defaultScoresURL = "file://scores.txt"
	}

	logLevel := flag.String("log-level", "info", "Log level")
	scoresURL := flag.String("scores", defaultScoresURL, "Highscore store (file://, sqlite:// or postgresql:// URL)")
	tries := flag.Int("tries", constants.DefaultTries, "Unsuccessful guesses allowed per game")
	wordsFile := flag.String("words", "", "Path to a word list, one word per line (default built-in list)")
	wordsURL := flag.String("words-url", "", "Random word API returning a JSON array of strings")
	wsPort := flag.Int("ws-port", 0, "WebSocket port to listen on (0 disables)")
	apiPort := flag.Int("api-port", 0, "Highscores API port to listen on (0 disables)")
	lockTimeout := flag.Duration("lock-timeout", highscores.DefaultLockTimeout, "Maximum wait for the highscore table")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	port, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		panic(fmt.Sprintf("Invalid port %q: %v", flag.Arg(0), err))
	}

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var wordSource words.WordSource = words.NewOfflineWordSource()
	if *wordsFile != "" {
		fileSource, err := words.NewFileWordSource(*wordsFile)
		if err != nil {
			panic(fmt.Sprintf("Failed to load word list: %v", err))
		}
		log.Info("Loaded %d words from %s", fileSource.Len(), *wordsFile)
		wordSource = fileSource
	}
	if *wordsURL != "" {
		wordSource = words.NewHTTPWordSource(words.NewHTTPWordSourceOptions{
			URL:      *wordsURL,
			Fallback: wordSource,
		})
	}

	repository, err := repositories.Open(ctx, *scoresURL)
	if err != nil {
		panic(fmt.Sprintf("Failed to open highscore store: %v", err))
	}
	defer repository.Close(context.Background())
	log.Info("Using highscore store %s", *scoresURL)

	table, err := highscores.NewTable(ctx, highscores.NewTableOptions{
		Repository:  repository,
		LockTimeout: *lockTimeout,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to load highscores: %v", err))
	}

	clientManager := network.NewClientManager()
	handler := session.NewConnectionHandler(session.NewConnectionHandlerOptions{
		Words:      wordSource,
		Tries:      *tries,
		Highscores: table,
	})

	tlsCertFile, tlsKeyFile, useTLS := tlsFilesFromEnv()

	if *wsPort != 0 {
		wsServerOpts := network.NewWSServerOptions{
			ClientManager: clientManager,
			Handler:       handler,
			Port:          *wsPort,
		}
		if useTLS {
			wsServerOpts.TLS = &network.TLSConfig{
				CertFile: tlsCertFile,
				KeyFile:  tlsKeyFile,
			}
		}
		wsServer := network.NewWSServer(wsServerOpts)
		go func() {
			if err := wsServer.Start(ctx); err != nil {
				log.Error("WebSocket server stopped: %v", err)
			}
		}()
	}

	if *apiPort != 0 {
		apiServerOpts := api.NewAPIServerOptions{
			Port:       *apiPort,
			Highscores: table,
		}
		if useTLS {
			apiServerOpts.TLS = &api.TLSConfig{
				CertFile: tlsCertFile,
				KeyFile:  tlsKeyFile,
			}
		}
		apiServer := api.NewAPIServer(apiServerOpts)
		go func() {
			if err := apiServer.Start(); err != nil {
				log.Error("API server stopped: %v", err)
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := apiServer.Stop(shutdownCtx); err != nil {
				log.Error("Failed to stop API server: %v", err)
			}
		}()
	}

	tcpServer := network.NewTCPServer(network.NewTCPServerOptions{
		ClientManager: clientManager,
		Handler:       handler,
		Port:          port,
	})

	log.Info("Starting hangman server on port %d", port)
	if err := tcpServer.Start(ctx); err != nil {
		log.Error("TCP server stopped: %v", err)
	}

	log.Info("Shutting down, closing %d connections", clientManager.Count())
	clientManager.CloseAll()
}
