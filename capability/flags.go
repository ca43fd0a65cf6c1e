package capability

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	KeyAppEnv       = "APP_ENV"
	KeyCI           = "CI"
	KeyDebug        = "DEBUG"
	KeyTestWorkerID = "TEST_WORKER_ID"
)

var ErrParsingFlags = errors.New("failed to parse environment flags")

// Flags are the environment switches helpers may consult.
type Flags struct {
	AppEnv       string `env:"APP_ENV" envDefault:"production"`
	CI           bool   `env:"CI"`
	Debug        bool   `env:"DEBUG"`
	TestWorkerID string `env:"TEST_WORKER_ID"`
}

func LoadFlags() (Flags, error) {
	var f Flags
	if err := env.Parse(&f); err != nil {
		return Flags{}, errors.Join(ErrParsingFlags, err)
	}
	return f, nil
}

// FlagsFromMap parses flags from vars instead of the process environment.
func FlagsFromMap(vars map[string]string) (Flags, error) {
	var f Flags
	if err := env.ParseWithOptions(&f, env.Options{Environment: vars}); err != nil {
		return Flags{}, errors.Join(ErrParsingFlags, err)
	}
	return f, nil
}

// FlagsFromDotenv reads the given dotenv files, later files winning.
func FlagsFromDotenv(filenames ...string) (Flags, error) {
	vars, err := godotenv.Read(filenames...)
	if err != nil {
		return Flags{}, fmt.Errorf("failed to read dotenv: %w", err)
	}
	return FlagsFromMap(vars)
}

// Platform identifies the runtime a binary was built for.
type Platform struct {
	GOOS   string
	GOARCH string
}

func CurrentPlatform() Platform {
	return Platform{GOOS: runtime.GOOS, GOARCH: runtime.GOARCH}
}
