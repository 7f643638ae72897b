package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lidocrawler/internal/flagx"
	"github.com/dmitrijs2005/lidocrawler/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from an explicit false or 0.
type JsonConfig struct {
	Session       string          `json:"session"`
	Countries     []string        `json:"countries"`
	Update        *bool           `json:"update"`
	Disguise      *bool           `json:"disguise"`
	DisguiseMin   *int            `json:"disguise_min"`
	DisguiseMax   *int            `json:"disguise_max"`
	AdvanceLatest *bool           `json:"advance_latest"`
	DBDriver      string          `json:"db_driver"`
	DBDSN         string          `json:"db_dsn"`
	APIBaseURL    string          `json:"api_base_url"`
	UserAgent     string          `json:"user_agent"`
	HTTPTimeout   *timex.Duration `json:"http_timeout"`
	ReportPath    string          `json:"report"`
	S3Bucket      string          `json:"s3_bucket"`
	S3Region      string          `json:"s3_region"`
	S3Endpoint    string          `json:"s3_endpoint"`
	S3Prefix      string          `json:"s3_prefix"`
	S3AccessKey   string          `json:"s3_access_key"`
	S3SecretKey   string          `json:"s3_secret_key"`
}

// parseJson overlays cfg with the file named by -config in args, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.Session, jc.Session)
	if len(jc.Countries) > 0 {
		cfg.Countries = jc.Countries
	}
	setBool(&cfg.Update, jc.Update)
	setBool(&cfg.Disguise, jc.Disguise)
	setInt(&cfg.DisguiseMin, jc.DisguiseMin)
	setInt(&cfg.DisguiseMax, jc.DisguiseMax)
	setBool(&cfg.AdvanceLatest, jc.AdvanceLatest)
	setString(&cfg.DBDriver, jc.DBDriver)
	setString(&cfg.DBDSN, jc.DBDSN)
	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.UserAgent, jc.UserAgent)
	if jc.HTTPTimeout != nil {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
	setString(&cfg.ReportPath, jc.ReportPath)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3Prefix, jc.S3Prefix)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
