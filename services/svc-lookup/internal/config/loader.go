package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/hashicorp/vault/api"

	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
)

const (
	SecretDHRUAPIKey     = "DHRU_API_KEY"
	SecretPostgresPass   = "POSTGRES_PASSWORD"
	SecretCachePassword  = "CACHE_PASSWORD"
	SecretAuthJWTSecret  = "AUTH_JWT_SECRET"
	secretsPathTemplate  = "apps/%s/%s"
	defaultRetryInterval = time.Second
)

var ErrSecretsStorageDisabled = errors.New("secret storage is not enabled")

type Loader struct {
	mu               sync.RWMutex
	cfg              *ServiceConfig
	secretsRepo      ports.SecretsRepository
	configSignalChan chan os.Signal
	reloadErrors     chan error
	lastVersion      uint
	retryInterval    time.Duration
	dumpWriter       io.Writer
	subscribers      []func(*ServiceConfig)
}

func NewLoader(cfg *ServiceConfig, secretsRepo ports.SecretsRepository, initialVersion uint) *Loader {
	return &Loader{
		cfg:              cfg,
		secretsRepo:      secretsRepo,
		configSignalChan: make(chan os.Signal, 1),
		reloadErrors:     make(chan error, 1),
		lastVersion:      initialVersion,
		retryInterval:    defaultRetryInterval,
		dumpWriter:       os.Stdout,
	}
}

// OnReload registers fn to run with the configuration after every
// successful secrets reload.
func (l *Loader) OnReload(fn func(*ServiceConfig)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.subscribers = append(l.subscribers, fn)
}

// WatchConfigSignals reloads secrets on SIGHUP or when the poll interval
// elapses, and dumps the redacted configuration on SIGUSR1.
func (l *Loader) WatchConfigSignals(ctx context.Context) <-chan error {
	signal.Notify(l.configSignalChan, syscall.SIGHUP, syscall.SIGUSR1)

	var ticks <-chan time.Time

	if l.cfg.SecretsStorage.Enabled && l.cfg.SecretsStorage.PollInterval > 0 {
		ticker := time.NewTicker(l.cfg.SecretsStorage.PollInterval)
		ticks = ticker.C

		go func() {
			<-ctx.Done()
			ticker.Stop()
		}()
	}

	go func() {
		defer signal.Stop(l.configSignalChan)
		defer close(l.reloadErrors)

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticks:
				l.handleConfigReload(ctx)

			case sig := <-l.configSignalChan:
				switch sig {
				case syscall.SIGHUP:
					l.handleConfigReload(ctx)

				case syscall.SIGUSR1:
					l.DumpConfig()
				}
			}
		}
	}()

	return l.reloadErrors
}

func (l *Loader) DumpConfig() {
	l.mu.RLock()
	snapshot := l.cfg.Redacted()
	l.mu.RUnlock()

	configJSON, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(l.dumpWriter, "Error marshaling config: %v\n", err)

		return
	}

	_, _ = fmt.Fprintf(l.dumpWriter, "\n=== Configuration Dump ===\n%s\n=== End Configuration ===\n\n", configJSON)
}

// Load authenticates against Vault, overlays the stored secrets onto the
// configuration and returns the secret version it applied.
func (l *Loader) Load(ctx context.Context) (uint, error) {
	if !l.cfg.SecretsStorage.Enabled {
		return 0, ErrSecretsStorageDisabled
	}

	if err := l.authenticateVault(ctx); err != nil {
		return 0, fmt.Errorf("failed to authenticate with Vault: %w", err)
	}

	data, err := l.readSecret(ctx, "data")
	if err != nil {
		return 0, fmt.Errorf("failed to load secrets from Vault: %w", err)
	}

	values, err := nestedMap(data, "data")
	if err != nil {
		return 0, err
	}

	if err := l.applySecretsToConfig(values); err != nil {
		return 0, fmt.Errorf("failed to apply secrets to config: %w", err)
	}

	version, err := l.currentVersion(ctx)
	if err != nil {
		return 0, err
	}

	l.mu.Lock()
	l.lastVersion = version
	l.mu.Unlock()

	return version, nil
}

func (l *Loader) authenticateVault(ctx context.Context) error {
	storage := l.cfg.SecretsStorage

	switch strings.ToLower(storage.AuthMethod) {
	case "token":
		if storage.Token == "" {
			return fmt.Errorf("token is required for token auth method")
		}

		l.secretsRepo.SetToken(storage.Token)

		return nil

	case "approle":
		if storage.RoleID == "" || storage.SecretID == "" {
			return fmt.Errorf("role_id and secret_id are required for approle auth method")
		}

		resp, err := l.secretsRepo.WriteWithContext(ctx, "auth/approle/login", map[string]any{
			"role_id":   storage.RoleID,
			"secret_id": storage.SecretID,
		})
		if err != nil {
			return fmt.Errorf("failed to authenticate via approle: %w", err)
		}

		if resp == nil || resp.Auth == nil {
			return fmt.Errorf("no auth info returned from Vault")
		}

		l.secretsRepo.SetToken(resp.Auth.ClientToken)

		return nil

	default:
		return fmt.Errorf("unsupported auth method: %s", storage.AuthMethod)
	}
}

func (l *Loader) handleConfigReload(ctx context.Context) {
	version, err := l.currentVersion(ctx)
	if err != nil {
		l.reportReloadStatus(err)

		return
	}

	l.mu.RLock()
	unchanged := version == l.lastVersion
	l.mu.RUnlock()

	if unchanged {
		return
	}

	if _, err := l.Load(ctx); err != nil {
		l.reportReloadStatus(err)

		return
	}

	l.mu.RLock()
	subscribers := append([]func(*ServiceConfig){}, l.subscribers...)
	l.mu.RUnlock()

	for _, fn := range subscribers {
		fn(l.cfg)
	}

	l.reportReloadStatus(nil)
}

func (l *Loader) currentVersion(ctx context.Context) (uint, error) {
	metadata, err := l.readSecret(ctx, "metadata")
	if err != nil {
		return 0, fmt.Errorf("failed to load secret metadata: %w", err)
	}

	version, err := secretVersion(metadata)
	if err != nil {
		return 0, fmt.Errorf("failed to get secret version: %w", err)
	}

	return version, nil
}

// readSecret reads apps/<pathType>/<mount> with retries bounded by the
// configured timeout.
func (l *Loader) readSecret(ctx context.Context, pathType string) (map[string]any, error) {
	storage := l.cfg.SecretsStorage
	path := fmt.Sprintf(secretsPathTemplate, pathType, storage.MountPath)

	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	secret, err := backoff.Retry(ctx, func() (*api.Secret, error) {
		return l.secretsRepo.GetSecrets(ctx, path)
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(l.retryInterval)),
		backoff.WithMaxTries(storage.MaxRetries+1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read from path %s after %d retries: %w", path, storage.MaxRetries, err)
	}

	if secret == nil {
		return nil, nil
	}

	return secret.Data, nil
}

func (l *Loader) applySecretsToConfig(data map[string]any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, value := range data {
		strValue, ok := value.(string)
		if !ok || strValue == "" {
			continue
		}

		if err := applySecretToConfig(l.cfg, key, strValue); err != nil {
			return err
		}
	}

	return nil
}

func applySecretToConfig(cfg *ServiceConfig, key, value string) error {
	switch key {
	case SecretDHRUAPIKey:
		cfg.Provider.APIKey = value
	case SecretPostgresPass:
		cfg.Database.Password = value
	case SecretCachePassword:
		cfg.Cache.Password = value
	case SecretAuthJWTSecret:
		cfg.Auth.JWTSecret = value
	default:
		return nil
	}

	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("failed to set environment variable %s: %w", key, err)
	}

	return nil
}

func (l *Loader) reportReloadStatus(err error) {
	select {
	case l.reloadErrors <- err:
	default:
	}
}

func nestedMap(data map[string]any, key string) (map[string]any, error) {
	if data == nil {
		return nil, nil
	}

	nested, ok := data[key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid secret format, missing %q key", key)
	}

	return nested, nil
}

func secretVersion(metadata map[string]any) (uint, error) {
	current, ok := metadata["current_version"]
	if !ok {
		return 0, nil
	}

	switch v := current.(type) {
	case float64:
		return uint(v), nil
	case int:
		return uint(v), nil
	case uint:
		return v, nil
	case json.Number:
		version, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("failed to parse version: %w", err)
		}

		return uint(version), nil
	default:
		return 0, fmt.Errorf("unexpected version type: %T", current)
	}
}
