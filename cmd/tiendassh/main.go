// Package main implements the SSH server that serves the storefront TUI.
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	gossh "golang.org/x/crypto/ssh"

	"github.com/lucia/tienda-terminal-go/internal/auth"
	"github.com/lucia/tienda-terminal-go/internal/cache"
	"github.com/lucia/tienda-terminal-go/internal/config"
	"github.com/lucia/tienda-terminal-go/internal/store"
	"github.com/lucia/tienda-terminal-go/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config", "err", err)
	}

	if err := ensureHostKey(cfg.SSHHostKeyPath); err != nil {
		log.Fatal("Failed to ensure host key", "err", err)
	}

	// Load allowlist if in allowlist mode
	var allowlist []gossh.PublicKey
	if cfg.SSHAuthMode == config.AuthModeAllowlist {
		allowlist, err = auth.LoadAllowlist(cfg.AllowlistPath)
		if err != nil {
			if errors.Is(err, auth.ErrAllowlistNotFound) {
				log.Info("Creating empty allowlist", "path", cfg.AllowlistPath)
				if err := auth.CreateEmptyAllowlist(cfg.AllowlistPath); err != nil {
					log.Fatal("Failed to create allowlist", "err", err)
				}
				log.Info("Add your SSH public key to the allowlist and restart")
				os.Exit(1)
			}
			log.Fatal("Failed to load allowlist", "err", err)
		}
		if len(allowlist) == 0 {
			log.Warn("Allowlist is empty; no connections will be accepted", "path", cfg.AllowlistPath)
		}
		log.Info("Loaded allowlist", "keys", len(allowlist))
	} else {
		log.Warn("Running in PUBLIC mode - anyone can connect. Not safe for internet-facing servers.")
	}

	// Commerce backend client
	clientOpts := []store.ClientOption{}
	if cfg.StoreConsumerKey != "" && cfg.StoreConsumerSecret != "" {
		clientOpts = append(clientOpts, store.WithCredentials(cfg.StoreConsumerKey, cfg.StoreConsumerSecret))
	}
	backend := store.NewClient(cfg.StoreBaseURL, clientOpts...)

	// Catalog cache shared across sessions
	catalogCache := cache.New[string, []store.Product](cfg.CacheTTL)

	opts := []ssh.Option{
		wish.WithAddress(cfg.SSHAddr),
		wish.WithHostKeyPath(cfg.SSHHostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
				return tui.NewModel(backend, catalogCache, cfg.StoreDomain, cfg.Currency), []tea.ProgramOption{tea.WithAltScreen()}
			}),
			logging.Middleware(),
		),
	}

	if cfg.SSHAuthMode == config.AuthModeAllowlist {
		opts = append(opts, wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			return auth.IsKeyAllowed(key, allowlist)
		}))
	} else {
		opts = append(opts, wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		}))
	}

	// Always disable password auth
	opts = append(opts, wish.WithPasswordAuth(func(ctx ssh.Context, password string) bool {
		return false
	}))

	server, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatal("Failed to create SSH server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("Starting SSH server", "addr", cfg.SSHAddr)
	log.Info("Commerce backend", "url", cfg.StoreBaseURL, "domain", cfg.StoreDomain)
	log.Info("Auth mode", "mode", cfg.SSHAuthMode)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("Server error", "err", err)
		}
	}()

	<-done
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Fatal("Shutdown error", "err", err)
	}
}

// ensureHostKey generates an ED25519 host key if it doesn't exist.
func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	log.Info("Generating new ED25519 host key", "path", path)

	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generating key: %w", err)
	}

	sshPrivKey, err := gossh.MarshalPrivateKey(privKey, "")
	if err != nil {
		return fmt.Errorf("marshaling private key: %w", err)
	}

	if err := os.WriteFile(path, pem.EncodeToMemory(sshPrivKey), 0600); err != nil {
		return fmt.Errorf("writing private key: %w", err)
	}

	sshPubKey, err := gossh.NewPublicKey(pubKey)
	if err != nil {
		return fmt.Errorf("creating public key: %w", err)
	}

	if err := os.WriteFile(path+".pub", gossh.MarshalAuthorizedKey(sshPubKey), 0644); err != nil {
		return fmt.Errorf("writing public key: %w", err)
	}

	return nil
}
