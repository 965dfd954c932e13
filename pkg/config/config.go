// Package config defines the application configuration, loaded from the
// environment with optional .env support.
package config

import "time"

// DB selects the storage engine for persisted rate snapshots. When Url is
// set the postgres driver is used, otherwise a local sqlite file at Path.
type DB struct {
	Url  string `envconfig:"URL"`
	Path string `envconfig:"PATH"`
}

// OpenExchangeRates configures the rate provider client.
//
// AppID is only required once a currency conversion is attempted; the check
// is lazy so the static unit converter works without credentials.
type OpenExchangeRates struct {
	AppID       string        `envconfig:"APP_ID"`
	ApiUrl      string        `envconfig:"API_URL" default:"https://openexchangerates.org/api/latest.json" validate:"required,url"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`
}

// Rates configures the snapshot staleness policy.
type Rates struct {
	MaxAge time.Duration `envconfig:"MAX_AGE" default:"168h" validate:"gt=0"`
}

// Log mirrors the logger options.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[unitconv]"`
}

// App is the root configuration.
type App struct {
	Log               *Log               `envconfig:"LOG"`
	DB                *DB                `envconfig:"DATABASE"`
	OpenExchangeRates *OpenExchangeRates `envconfig:"OPENEXCHANGERATES"`
	Rates             *Rates             `envconfig:"RATES"`
}
