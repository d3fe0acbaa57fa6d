package attack

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"

	"urlshortener/cmd/bench/internal/config"
)

var ErrNoSeed = errors.New("attack requires seeded links")

type Config struct {
	BaseURL            string
	IDs                []string
	Rate               int
	Duration           time.Duration
	CreateRatio        float64
	Type               string
	Connections        int
	InsecureSkipVerify bool
}

func Targeter(cfg *Config) (vegeta.Targeter, error) {
	switch cfg.Type {
	case config.TypeCreate:
		return CreateTargeter(cfg.BaseURL), nil
	case config.TypeCheck:
		return CheckTargeter(cfg.BaseURL), nil
	case config.TypeRedirect:
		if len(cfg.IDs) == 0 {
			return nil, ErrNoSeed
		}
		return RedirectTargeter(cfg.BaseURL, cfg.IDs), nil
	case config.TypeMixed:
		if len(cfg.IDs) == 0 {
			return nil, ErrNoSeed
		}
		return MixedTargeter(cfg.BaseURL, cfg.IDs, cfg.CreateRatio), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

func Run(cfg *Config) error {
	targeter, err := Targeter(cfg)
	if err != nil {
		return err
	}

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	attacker := vegeta.NewAttacker(
		vegeta.Redirects(vegeta.NoFollow),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(5*time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}), //nolint:gosec
	)

	fmt.Printf("Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	return vegeta.NewTextReporter(&metrics).Report(os.Stdout)
}
