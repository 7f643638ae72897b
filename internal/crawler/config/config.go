package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/disguise"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/navdata"
	"github.com/dmitrijs2005/lidocrawler/internal/crawler/storage"
	"github.com/dmitrijs2005/lidocrawler/internal/dbx"
)

var ErrNoSession = errors.New("no session token given")

// Config holds runtime settings for one crawler invocation.
type Config struct {
	Session   string
	Countries []string

	Update        bool
	Disguise      bool
	DisguiseMin   int
	DisguiseMax   int
	AdvanceLatest bool
	AssumeYes     bool

	DBDriver string
	DBDSN    string

	APIBaseURL  string
	UserAgent   string
	HTTPTimeout time.Duration

	ReportPath string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3Prefix    string
	S3AccessKey string
	S3SecretKey string

	Debug       bool
	ShowVersion bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DisguiseMin = disguise.DefaultMin
	c.DisguiseMax = disguise.DefaultMax
	c.DBDriver = string(dbx.DialectSQLite)
	c.DBDSN = storage.DefaultSQLitePath
	c.APIBaseURL = navdata.DefaultBaseURL
	c.UserAgent = navdata.DefaultUserAgent
	c.HTTPTimeout = 60 * time.Second
	c.S3Region = "us-east-1"
}

// LoadConfig builds a Config from defaults, environment, the JSON file and
// args (without the program name). flag.ErrHelp is returned as is.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, dotEnvPath); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ShowVersion {
		return nil
	}
	if strings.TrimSpace(c.Session) == "" {
		return ErrNoSession
	}
	if c.DisguiseMin < 0 || c.DisguiseMax < 0 {
		return fmt.Errorf("disguise bounds must not be negative (%d, %d)", c.DisguiseMin, c.DisguiseMax)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if _, err := dbx.ParseDialect(c.DBDriver); err != nil {
		return err
	}
	return nil
}

// splitCountries turns "DE,,AT" into [DE AT].
func splitCountries(v string) []string {
	var out []string
	for _, c := range strings.Split(v, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
