package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/lidocrawler/internal/flagx"
)

// usageOutput receives flag errors and -h output.
var usageOutput io.Writer = os.Stderr

// NewFlagSet declares every crawler flag bound to cfg. The returned function
// must be called after parsing to apply values that need conversion.
func NewFlagSet(cfg *Config) (*flag.FlagSet, func()) {
	fs := flag.NewFlagSet("crawler", flag.ContinueOnError)
	fs.SetOutput(usageOutput)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: crawler [flags] SESSION\n\nFlags:\n")
		fs.PrintDefaults()
	}

	fs.BoolVar(&cfg.Update, "u", cfg.Update, "shorthand for -update")
	fs.BoolVar(&cfg.Update, "update", cfg.Update, "re-capture airports already in the store")
	country := strings.Join(cfg.Countries, ",")
	fs.StringVar(&country, "c", country, "shorthand for -country")
	fs.StringVar(&country, "country", country, "comma-separated country codes to crawl")
	fs.BoolVar(&cfg.Disguise, "d", cfg.Disguise, "shorthand for -disguise")
	fs.BoolVar(&cfg.Disguise, "disguise", cfg.Disguise, "pause a random time between airports")
	fs.IntVar(&cfg.DisguiseMin, "disguise-min", cfg.DisguiseMin, "shortest disguise pause (seconds)")
	fs.IntVar(&cfg.DisguiseMax, "disguise-max", cfg.DisguiseMax, "longest disguise pause (seconds)")
	fs.BoolVar(&cfg.AdvanceLatest, "advance-latest", cfg.AdvanceLatest, "point airports at their newest snapshot")
	fs.BoolVar(&cfg.AssumeYes, "y", cfg.AssumeYes, "shorthand for -yes")
	fs.BoolVar(&cfg.AssumeYes, "yes", cfg.AssumeYes, "do not ask for confirmation")

	fs.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "database driver: sqlite, postgres or mysql")
	fs.StringVar(&cfg.DBDSN, "db-dsn", cfg.DBDSN, "database data source name")

	fs.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "Nav Data Pro API base URL")
	fs.StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "User-Agent header sent to the API")
	timeout := fs.Int("timeout", int(cfg.HTTPTimeout/time.Second), "HTTP timeout (in seconds, 0 = none)")

	fs.StringVar(&cfg.ReportPath, "report", cfg.ReportPath, "write a CSV crawl report to this path")

	fs.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "mirror committed charts to this S3 bucket")
	fs.StringVar(&cfg.S3Region, "s3-region", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3Endpoint, "s3-endpoint", cfg.S3Endpoint, "custom S3 endpoint (e.g. MinIO)")
	fs.StringVar(&cfg.S3Prefix, "s3-prefix", cfg.S3Prefix, "S3 key prefix")

	fs.String("config", "", "path to JSON config file")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "verbose logging")
	fs.BoolVar(&cfg.ShowVersion, "version", cfg.ShowVersion, "print build information and exit")

	return fs, func() {
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if set["c"] || set["country"] {
			cfg.Countries = splitCountries(country)
		}
		if set["timeout"] {
			cfg.HTTPTimeout = time.Duration(*timeout) * time.Second
		}
	}
}

// parseFlags overlays cfg with args. The single positional argument, when
// present, is the session token.
func parseFlags(cfg *Config, args []string) error {
	fs, apply := NewFlagSet(cfg)

	positional, err := flagx.ParseInterspersed(fs, args)
	if err != nil {
		return err
	}
	apply()

	switch len(positional) {
	case 0:
	case 1:
		cfg.Session = positional[0]
	default:
		return fmt.Errorf("expected one session token, got %d arguments", len(positional))
	}
	return nil
}

// Usage prints the command line help to w.
func Usage(w io.Writer) {
	cfg := &Config{}
	cfg.LoadDefaults()
	fs, _ := NewFlagSet(cfg)
	fs.SetOutput(w)
	fs.Usage()
}
