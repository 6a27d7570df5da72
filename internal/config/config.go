package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rohmanhakim/autohackgovernor/internal/target"
	"github.com/rohmanhakim/autohackgovernor/pkg/units"
)

// Config carries the governor's tunable constants. spec.md treats these as
// compile-time constants; this package makes them configurable the way the
// teacher makes crawl politeness configurable, without changing any
// default value spec.md specifies.
type Config struct {
	rootHost string

	reservationRate float64
	gracePeriodMs   float64
	memoryPerThread units.RAMHundredths

	weakenSecurityEffect units.SecurityThousandths
	hackSecurityEffect   units.SecurityThousandths
	growSecurityEffect   units.SecurityThousandths

	growTimeRatio   float64
	weakenTimeRatio float64

	generalPollIntervalMs float64
	diagnosticsEnabled    bool
}

type configDTO struct {
	RootHost string `json:"rootHost,omitempty"`

	ReservationRate float64 `json:"reservationRate,omitempty"`
	GracePeriodMs   float64 `json:"gracePeriodMs,omitempty"`
	MemoryPerThread int     `json:"memoryPerThread,omitempty"`

	WeakenSecurityEffect int `json:"weakenSecurityEffect,omitempty"`
	HackSecurityEffect   int `json:"hackSecurityEffect,omitempty"`
	GrowSecurityEffect   int `json:"growSecurityEffect,omitempty"`

	GrowTimeRatio   float64 `json:"growTimeRatio,omitempty"`
	WeakenTimeRatio float64 `json:"weakenTimeRatio,omitempty"`

	GeneralPollIntervalMs float64 `json:"generalPollIntervalMs,omitempty"`
	DiagnosticsEnabled    bool    `json:"diagnosticsEnabled,omitempty"`
}

func newConfigFromDTO(dto configDTO) (Config, error) {
	cfg := WithDefault(dto.RootHost)

	if dto.RootHost != "" {
		cfg.rootHost = dto.RootHost
	}
	if dto.ReservationRate != 0 {
		cfg.reservationRate = dto.ReservationRate
	}
	if dto.GracePeriodMs != 0 {
		cfg.gracePeriodMs = dto.GracePeriodMs
	}
	if dto.MemoryPerThread != 0 {
		cfg.memoryPerThread = units.RAMHundredths(dto.MemoryPerThread)
	}
	if dto.WeakenSecurityEffect != 0 {
		cfg.weakenSecurityEffect = units.SecurityThousandths(dto.WeakenSecurityEffect)
	}
	if dto.HackSecurityEffect != 0 {
		cfg.hackSecurityEffect = units.SecurityThousandths(dto.HackSecurityEffect)
	}
	if dto.GrowSecurityEffect != 0 {
		cfg.growSecurityEffect = units.SecurityThousandths(dto.GrowSecurityEffect)
	}
	if dto.GrowTimeRatio != 0 {
		cfg.growTimeRatio = dto.GrowTimeRatio
	}
	if dto.WeakenTimeRatio != 0 {
		cfg.weakenTimeRatio = dto.WeakenTimeRatio
	}
	if dto.GeneralPollIntervalMs != 0 {
		cfg.generalPollIntervalMs = dto.GeneralPollIntervalMs
	}
	cfg.diagnosticsEnabled = dto.DiagnosticsEnabled

	return cfg.Build()
}

func WithConfigFile(path string) (Config, error) {
	_, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrFileDoesNotExist, err.Error())
	}
	configContent, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrReadConfigFail, err.Error())
	}
	cfgDTO := configDTO{}

	if err := json.Unmarshal(configContent, &cfgDTO); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
	}

	return newConfigFromDTO(cfgDTO)
}

// WithDefault creates a new Config rooted at rootHost with every tunable
// set to spec.md's literal default (see target.DefaultParams). An empty
// rootHost defaults to "home".
func WithDefault(rootHost string) *Config {
	if rootHost == "" {
		rootHost = "home"
	}
	defaults := target.DefaultParams()
	return &Config{
		rootHost:              rootHost,
		reservationRate:       defaults.ReservationRate,
		gracePeriodMs:         defaults.GracePeriodMs,
		memoryPerThread:       defaults.MemoryPerThread,
		weakenSecurityEffect:  defaults.WeakenSecurityEffect,
		hackSecurityEffect:    defaults.HackSecurityEffect,
		growSecurityEffect:    defaults.GrowSecurityEffect,
		growTimeRatio:         defaults.GrowTimeRatio,
		weakenTimeRatio:       defaults.WeakenTimeRatio,
		generalPollIntervalMs: 1000,
		diagnosticsEnabled:    true,
	}
}

func (c *Config) WithRootHost(host string) *Config {
	c.rootHost = host
	return c
}

func (c *Config) WithReservationRate(rate float64) *Config {
	c.reservationRate = rate
	return c
}

func (c *Config) WithGracePeriodMs(ms float64) *Config {
	c.gracePeriodMs = ms
	return c
}

func (c *Config) WithMemoryPerThread(hundredths units.RAMHundredths) *Config {
	c.memoryPerThread = hundredths
	return c
}

func (c *Config) WithWeakenSecurityEffect(thousandths units.SecurityThousandths) *Config {
	c.weakenSecurityEffect = thousandths
	return c
}

func (c *Config) WithHackSecurityEffect(thousandths units.SecurityThousandths) *Config {
	c.hackSecurityEffect = thousandths
	return c
}

func (c *Config) WithGrowSecurityEffect(thousandths units.SecurityThousandths) *Config {
	c.growSecurityEffect = thousandths
	return c
}

func (c *Config) WithGrowTimeRatio(ratio float64) *Config {
	c.growTimeRatio = ratio
	return c
}

func (c *Config) WithWeakenTimeRatio(ratio float64) *Config {
	c.weakenTimeRatio = ratio
	return c
}

func (c *Config) WithGeneralPollIntervalMs(ms float64) *Config {
	c.generalPollIntervalMs = ms
	return c
}

func (c *Config) WithDiagnosticsEnabled(enabled bool) *Config {
	c.diagnosticsEnabled = enabled
	return c
}

func (c *Config) Build() (Config, error) {
	if c.rootHost == "" {
		return Config{}, fmt.Errorf("%w: rootHost cannot be empty", ErrInvalidConfig)
	}
	if c.reservationRate <= 0 || c.reservationRate > 1 {
		return Config{}, fmt.Errorf("%w: reservationRate must be in (0, 1]", ErrInvalidConfig)
	}
	if c.gracePeriodMs <= 0 {
		return Config{}, fmt.Errorf("%w: gracePeriodMs must be positive", ErrInvalidConfig)
	}
	if c.hackSecurityEffect+c.growSecurityEffect > c.weakenSecurityEffect {
		return Config{}, fmt.Errorf("%w: hackSecurityEffect + growSecurityEffect must not exceed weakenSecurityEffect (one Hack-phase weaken thread must offset one hack and one grow thread's security gain)", ErrInvalidConfig)
	}
	return *c, nil
}

func (c Config) RootHost() string { return c.rootHost }

func (c Config) DiagnosticsEnabled() bool { return c.diagnosticsEnabled }

// GeneralPollIntervalMs returns the configured interval. Params() does not
// carry it, and the governor reschedules GeneralPoll every 1000 ms
// whatever this is set to.
func (c Config) GeneralPollIntervalMs() float64 { return c.generalPollIntervalMs }

// Params projects the configured tunables into target.Params, the shape
// the governor and target state machine actually consume.
func (c Config) Params() target.Params {
	return target.Params{
		ReservationRate:      c.reservationRate,
		GracePeriodMs:        c.gracePeriodMs,
		MemoryPerThread:      c.memoryPerThread,
		WeakenSecurityEffect: c.weakenSecurityEffect,
		HackSecurityEffect:   c.hackSecurityEffect,
		GrowSecurityEffect:   c.growSecurityEffect,
		GrowTimeRatio:        c.growTimeRatio,
		WeakenTimeRatio:      c.weakenTimeRatio,
	}
}
