// Package mdns advertises the HTTP API on the local network.
package mdns

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"safewallet/config"

	"github.com/grandcat/zeroconf"
	"go.uber.org/fx"
)

const (
	ServiceType = "_safewallet._tcp"
	Domain      = "local."

	defaultInstance = "SafeWallet"
	maxLabelLength  = 63
)

type registerFunc func(instance, service, domain string, port int, txt []string, ifaces []any) (shutdowner, error)

type shutdowner interface {
	Shutdown()
}

// Advertiser registers the service with zeroconf while the app runs.
type Advertiser struct {
	instance string
	host     string
	port     int
	txt      []string
	register registerFunc
	server   shutdowner
	logger   *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the advertiser and hooks it to the app lifecycle.
// It returns nil when mDNS is disabled.
func New(params Params) *Advertiser {
	cfg := params.Config
	if cfg.MDNS == nil || !cfg.MDNS.Enabled {
		return nil
	}

	adv := NewAdvertiser(cfg.MDNS.Instance, cfg.HTTP.Port, cfg.Env.ServiceName, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return adv.Start()
		},
		OnStop: func(_ context.Context) error {
			adv.Stop()

			return nil
		},
	})

	return adv
}

// NewAdvertiser builds an advertiser for the given instance name and HTTP port.
func NewAdvertiser(instance string, port int, serviceName string, logger *slog.Logger) *Advertiser {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "safewallet"
	}

	if strings.TrimSpace(instance) == "" {
		instance = defaultInstance
	}

	host := sanitizeHost(hostname)
	if !strings.Contains(host, ".") {
		host += ".local"
	}

	return &Advertiser{
		instance: sanitizeInstance(fmt.Sprintf("%s (%s)", instance, hostname)),
		host:     host,
		port:     port,
		txt: []string{
			fmt.Sprintf("http_port=%d", port),
			"api=/api",
			"proto=v1",
			fmt.Sprintf("service=%s", serviceName),
			fmt.Sprintf("host=%s", host),
		},
		register: func(instance, service, domain string, port int, txt []string, _ []any) (shutdowner, error) {
			return zeroconf.Register(instance, service, domain, port, txt, nil)
		},
		logger: logger,
	}
}

// Start registers the service. Calling it twice replaces the previous registration.
func (a *Advertiser) Start() error {
	if a.port <= 0 {
		return fmt.Errorf("invalid port %d", a.port)
	}

	a.Stop()

	server, err := a.register(a.instance, ServiceType, Domain, a.port, a.txt, nil)
	if err != nil {
		return fmt.Errorf("register mDNS service: %w", err)
	}

	a.server = server
	a.logger.Info("mDNS advertisement started",
		slog.String("instance", a.instance),
		slog.Int("port", a.port),
	)

	return nil
}

// Stop withdraws the registration if any.
func (a *Advertiser) Stop() {
	if a.server == nil {
		return
	}

	a.server.Shutdown()
	a.server = nil
	a.logger.Info("mDNS advertisement stopped")
}

// Instance returns the advertised instance name.
func (a *Advertiser) Instance() string {
	return a.instance
}

func sanitizeInstance(name string) string {
	cleaned := strings.TrimSpace(name)
	replacer := strings.NewReplacer("\n", " ", "\r", " ", ".", " ", "_", " ")
	cleaned = replacer.Replace(cleaned)
	if cleaned == "" {
		cleaned = defaultInstance
	}

	return truncateRunes(cleaned, maxLabelLength)
}

func sanitizeHost(name string) string {
	cleaned := strings.TrimSpace(strings.ToLower(name))
	replacer := strings.NewReplacer(" ", "-", "_", "-", "\n", "", "\r", "")
	cleaned = replacer.Replace(cleaned)
	if cleaned == "" {
		cleaned = "safewallet"
	}

	return truncateRunes(cleaned, maxLabelLength)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}

	return s
}
