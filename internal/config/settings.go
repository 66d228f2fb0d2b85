package config

import (
	"os"
	"path/filepath"

	"git.lost.host/meutraa/svt/internal/curve"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const (
	DefaultSettingsPath = "svt_config.toml"
	SettingsEnv         = "SVT_SETTINGS"

	// Mode value for volume-only cycles
	ModeNone = "none"
)

var ErrSettings = errors.New("invalid settings file")

// Settings are the options of the last successful apply. They seed the
// command line defaults of the next run.
type Settings struct {
	Map string `toml:"map"`

	Mode        string  `toml:"mode"`
	Exponent    float64 `toml:"exponent"`
	FlatChange  float64 `toml:"flat_change"`
	FlatScale   float64 `toml:"flat_scale"`
	FlatScaling bool    `toml:"flat_scaling"`
	FitEndRatio float64 `toml:"fit_end_ratio"`

	Volume       bool `toml:"volume"`
	Hits         bool `toml:"hits"`
	Snaps        bool `toml:"snaps"`
	Inherited    bool `toml:"inherited"`
	Offset       int  `toml:"offset"`
	Buffer       int  `toml:"buffer"`
	MinSpacing   int  `toml:"min_spacing"`
	IgnoreEndBPM bool `toml:"ignore_end_bpm"`

	SnapNum   float64 `toml:"snap_num"`
	SnapDenom float64 `toml:"snap_denom"`
	Barlines  bool    `toml:"barlines"`

	Backup  string `toml:"backup"`
	History string `toml:"history"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Mode:        "linear",
		Exponent:    0.5,
		FlatScale:   1,
		FitEndRatio: 1,
		Hits:        true,
		Snaps:       true,
		Offset:      0,
		Buffer:      3,
		SnapNum:     1,
		SnapDenom:   1,
		Backup:      "backup.osu",
		History:     "svt_history.db",
	}
}

// SettingsPath is $SVT_SETTINGS, or svt_config.toml in the working directory.
func SettingsPath() string {
	if path := os.Getenv(SettingsEnv); path != "" {
		return path
	}
	return DefaultSettingsPath
}

func (s *Settings) Validate() error {
	if s.Mode == ModeNone {
		return nil
	}
	for _, name := range curve.ModeNames {
		if s.Mode == name {
			return nil
		}
	}
	return errors.Wrapf(ErrSettings, "unknown mode %q", s.Mode)
}

// LoadSettings returns the defaults when the file does not exist. Keys
// missing from the file keep their default values.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if nil != err {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}
	if err := toml.Unmarshal(data, s); nil != err {
		return nil, errors.Wrapf(ErrSettings, "%s: %v", path, err)
	}
	if err := s.Validate(); nil != err {
		return nil, errors.Wrap(err, path)
	}
	return s, nil
}

// Save replaces the file at path.
func (s *Settings) Save(path string) error {
	data, err := toml.Marshal(s)
	if nil != err {
		return errors.Wrap(err, "unable to encode settings")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".svt-settings-*.tmp")
	if nil != err {
		return errors.Wrap(err, "unable to save settings")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); nil != err {
		tmp.Close()
		return errors.Wrap(err, "unable to save settings")
	}
	if err := tmp.Close(); nil != err {
		return errors.Wrap(err, "unable to save settings")
	}
	return errors.Wrap(os.Rename(tmp.Name(), path), "unable to save settings")
}
