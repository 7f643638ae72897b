package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

var (
	dotEnvPath = ".env"
	lookupEnv  = os.LookupEnv
)

// parseEnv overlays cfg with LIDO_* variables. Values missing from the
// process environment are looked up in the dotenv file, if it exists.
func parseEnv(cfg *Config, dotenv string) error {
	fileVals := map[string]string{}
	if dotenv != "" {
		m, err := godotenv.Read(dotenv)
		switch {
		case err == nil:
			fileVals = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("read %s: %w", dotenv, err)
		}
	}

	get := func(key string) (string, bool) {
		if v, ok := lookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"LIDO_SESSION", &cfg.Session},
		{"LIDO_DB_DRIVER", &cfg.DBDriver},
		{"LIDO_DB_DSN", &cfg.DBDSN},
		{"LIDO_API_URL", &cfg.APIBaseURL},
		{"LIDO_USER_AGENT", &cfg.UserAgent},
		{"LIDO_REPORT", &cfg.ReportPath},
		{"LIDO_S3_BUCKET", &cfg.S3Bucket},
		{"LIDO_S3_REGION", &cfg.S3Region},
		{"LIDO_S3_ENDPOINT", &cfg.S3Endpoint},
		{"LIDO_S3_PREFIX", &cfg.S3Prefix},
		{"LIDO_S3_ACCESS_KEY", &cfg.S3AccessKey},
		{"LIDO_S3_SECRET_KEY", &cfg.S3SecretKey},
	}
	for _, s := range strs {
		if v, ok := get(s.key); ok && v != "" {
			*s.dst = v
		}
	}

	if v, ok := get("LIDO_COUNTRY"); ok && v != "" {
		cfg.Countries = splitCountries(v)
	}
	return nil
}
