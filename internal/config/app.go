package config

import (
	"time"
	// timezone names resolve without a system zoneinfo
	_ "time/tzdata"

	"github.com/pkg/errors"
)

type AppConfig struct {
	TimezoneName          string `yaml:"timezone"`
	SlotKeyName           string `yaml:"slot-key"`
	CommandTimeoutSeconds int64  `yaml:"command-timeout-seconds"`

	location *time.Location
}

func (s *AppConfig) resolveLocation() error {
	if s.TimezoneName == "" {
		s.location = time.Local
		return nil
	}
	loc, err := time.LoadLocation(s.TimezoneName)
	if err != nil {
		return errors.Wrapf(err, "app.timezone %q", s.TimezoneName)
	}
	s.location = loc
	return nil
}

// Location is the zone used for day boundaries; the local zone when unset.
func (s *AppConfig) Location() *time.Location {
	if s.location == nil {
		return time.Local
	}
	return s.location
}

func (s *AppConfig) SlotKey() string {
	return s.SlotKeyName
}

func (s *AppConfig) CommandTimeout() time.Duration {
	return time.Duration(s.CommandTimeoutSeconds) * time.Second
}
