package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file if present, mirroring bootstrap.Loadenv: absence
// is not an error, just a fall-through to the system environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}
}

// FromEnv builds Options from DefaultOptions, overridden by
// EXAMCONSOLIDATE_SIZE_THRESHOLD, EXAMCONSOLIDATE_TIME_LIMIT_SECONDS, and
// EXAMCONSOLIDATE_MODE when set. Malformed values are ignored and logged,
// falling back to the existing default rather than failing the run.
func FromEnv() Options {
	o := DefaultOptions()

	if v := os.Getenv("EXAMCONSOLIDATE_MODE"); v != "" {
		switch v {
		case "fast":
			o = o.WithMode(ModeFast)
		case "deep":
			o = o.WithMode(ModeDeep)
		case "default":
			o = o.WithMode(ModeDefault)
		default:
			log.Printf("config: ignoring unrecognized EXAMCONSOLIDATE_MODE %q", v)
		}
	}

	if v := os.Getenv("EXAMCONSOLIDATE_SIZE_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			o.SizeThreshold = n
		} else {
			log.Printf("config: ignoring malformed EXAMCONSOLIDATE_SIZE_THRESHOLD %q", v)
		}
	}

	if v := os.Getenv("EXAMCONSOLIDATE_TIME_LIMIT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			o.TimeLimit = time.Duration(n) * time.Second
		} else {
			log.Printf("config: ignoring malformed EXAMCONSOLIDATE_TIME_LIMIT_SECONDS %q", v)
		}
	}

	return o
}
