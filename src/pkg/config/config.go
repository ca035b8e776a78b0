// Package config loads the JSON configuration file shared by all
// entrypoints. Each package gets its own section; missing fields fall back
// to defaults, with a log line per substitution.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

type GeneratorConfig struct {
	Timezone             string `json:"timezone,omitempty"`
	CurrencySymbol       string `json:"currency_symbol,omitempty"`
	TemplateDir          string `json:"template_dir,omitempty"`
	OutputDir            string `json:"output_dir,omitempty"`
	Strict               bool   `json:"strict,omitempty"`
	RenderTimeoutSeconds int    `json:"render_timeout_seconds,omitempty"`
	InjectPageCSS        bool   `json:"inject_page_css,omitempty"`
	PageMarginMM         int    `json:"page_margin_mm,omitempty"`
}

type WebConfig struct {
	Address   string `json:"address,omitempty"`
	Port      int    `json:"port,omitempty"`
	RateLimit int    `json:"rate_limit,omitempty"`
	Burst     int    `json:"burst,omitempty"`
}

type StoreConfig struct {
	S3Bucket string `json:"s3_bucket,omitempty"`
	S3Region string `json:"s3_region,omitempty"`
	S3Prefix string `json:"s3_prefix,omitempty"`
}

type EmailConfig struct {
	Provider string `json:"provider,omitempty"`
	Sender   string `json:"sender,omitempty"`
}

type Config struct {
	Generator GeneratorConfig `json:"generator,omitempty"`
	Web       WebConfig       `json:"web,omitempty"`
	Store     StoreConfig     `json:"store,omitempty"`
	Email     EmailConfig     `json:"email,omitempty"`
}

func DefaultValueConfig() Config {
	return Config{
		Generator: GeneratorConfig{
			Timezone:             "Australia/Brisbane",
			CurrencySymbol:       "A$",
			TemplateDir:          "./templates",
			OutputDir:            "./output",
			RenderTimeoutSeconds: 30,
			PageMarginMM:         12,
		},
		Web: WebConfig{
			Address:   "127.0.0.1",
			Port:      8402,
			RateLimit: 3,
			Burst:     50,
		},
		Email: EmailConfig{
			Provider: "mailgun",
		},
	}
}

// create config with default values before config gets initialized
var Cfg Config = DefaultValueConfig() // this one we use to access config values from anywhere

/*
InitializeConfig reads the JSON config file into Cfg. A missing file keeps
the defaults (with a warning); a file that exists but does not parse is
fatal. Every field absent from the file is filled from the defaults, one log
line each.
*/
func InitializeConfig(path string) {
	defaults := DefaultValueConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		tl.Log(
			tl.Warning, palette.YellowBold, "Config file '%s' not readable, keeping defaults: '%s'",
			path, err,
		)
		Cfg = defaults
		return
	}

	var loaded Config
	xerr.QuitIfError(json.Unmarshal(content, &loaded), fmt.Sprintf("Unable to parse config file '%s'", path))
	Cfg = loaded

	tl.ApplyDefaults(&Cfg, defaults, func(field string, defVal any) {
		tl.Log(
			tl.Info, palette.Purple,
			"%s field is %s in configuration. Using default value: %v",
			field, "missing", tl.PrettyForStderr(defVal),
		)
	})

	tl.Log(tl.Info, palette.Green, "%s '%s'", "Loaded configuration from", path)
	tl.LogJSON(tl.Verbose, palette.CyanDim, "docmint configuration", Cfg)
}

// CheckIfEnvVarsPresent warns about every missing env var. It does not exit;
// only the provider actually selected needs its credentials.
func CheckIfEnvVarsPresent(names ...string) {
	for _, name := range names {
		if os.Getenv(name) == "" {
			tl.Log(tl.Warning, palette.YellowBold, "Environment variable '%s' is %s", name, "not set")
		}
	}
}

// LoadLocation resolves the configured IANA timezone name.
func (g GeneratorConfig) LoadLocation() (loc *time.Location, e *xerr.Error) {
	loc, err := time.LoadLocation(g.Timezone)
	if err != nil {
		e = xerr.NewError(err, "load configured timezone", g.Timezone)
		return
	}
	return loc, nil
}

// RenderTimeout converts the configured seconds into a duration.
func (g GeneratorConfig) RenderTimeout() time.Duration {
	return time.Duration(g.RenderTimeoutSeconds) * time.Second
}
