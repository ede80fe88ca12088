// Package config loads fatmove configuration profiles.
//
// Configuration lives in an INI file with three sections: [DEFAULT],
// [user], and [ARMIN]. Every key holds a Policy value encoded as an
// integer: 0 (no), 1 (yes), or 2 (prompt). The section to use is picked
// on the command line; [user] is the everyday profile and [ARMIN] is
// tuned for A State of Trance transfers.
package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Policy is a three-way switch controlling an optional action.
type Policy int

const (
	// No disables the action.
	No Policy = iota

	// Yes performs the action without asking.
	Yes

	// Prompt asks the user before performing the action. When running
	// non-interactively the answer depends on the action: destructive
	// actions are skipped, keep/remove filters keep.
	Prompt
)

// String returns the config-file spelling of the policy.
func (p Policy) String() string {
	switch p {
	case No:
		return "no"
	case Yes:
		return "yes"
	case Prompt:
		return "prompt"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy converts the integer encoding used in config files.
func ParsePolicy(v int) (Policy, error) {
	switch v {
	case 0:
		return No, nil
	case 1:
		return Yes, nil
	case 2:
		return Prompt, nil
	}
	return No, fmt.Errorf("invalid policy value %d (want 0, 1, or 2)", v)
}

// Profile names selectable on the command line.
const (
	ProfileDefault = "DEFAULT"
	ProfileUser    = "user"
	ProfileArmin   = "ARMIN"
)

// Settings holds one resolved configuration profile.
type Settings struct {
	// OverwriteDestinationFiles controls what happens when a destination
	// file or directory already exists.
	OverwriteDestinationFiles Policy

	// Remove* control which non-audio file types are left behind.
	RemoveImages         Policy
	RemoveLog            Policy
	RemoveCue            Policy
	RemoveM3U            Policy
	RemoveOtherFiletypes Policy

	// UpdateUserCredentials controls whether sudo caches the passphrase
	// when the process restarts as root.
	UpdateUserCredentials Policy

	// DeleteSources controls whether source paths are removed after a
	// successful copy.
	DeleteSources Policy

	// Convert* control which audio formats are transcoded to mp3 before
	// the copy.
	ConvertFLACtoMP3 Policy
	ConvertALACtoMP3 Policy
	ConvertAACtoMP3  Policy
	ConvertM4AtoMP3  Policy
	ConvertMP4toMP3  Policy
	ConvertOGGtoMP3  Policy
}

// Load reads the named profile section from the INI file at path.
func Load(path, profile string) (*Settings, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	section, err := file.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("config file %s has no [%s] section: %w", path, profile, err)
	}

	s := &Settings{}
	fields := []struct {
		key string
		dst *Policy
	}{
		{"OverwriteDestinationFiles", &s.OverwriteDestinationFiles},
		{"RemoveImages", &s.RemoveImages},
		{"RemoveLog", &s.RemoveLog},
		{"RemoveCue", &s.RemoveCue},
		{"RemoveM3U", &s.RemoveM3U},
		{"RemoveOtherFiletypes", &s.RemoveOtherFiletypes},
		{"UpdateUserCredentials", &s.UpdateUserCredentials},
		{"DeleteSources", &s.DeleteSources},
		{"ConvertFLACtoMP3", &s.ConvertFLACtoMP3},
		{"ConvertALACtoMP3", &s.ConvertALACtoMP3},
		{"ConvertAACtoMP3", &s.ConvertAACtoMP3},
		{"ConvertM4AtoMP3", &s.ConvertM4AtoMP3},
		{"ConvertMP4toMP3", &s.ConvertMP4toMP3},
		{"ConvertOGGtoMP3", &s.ConvertOGGtoMP3},
	}

	for _, f := range fields {
		raw, err := section.Key(f.key).Int()
		if err != nil {
			return nil, fmt.Errorf("config key %s.%s: %w", profile, f.key, err)
		}
		policy, err := ParsePolicy(raw)
		if err != nil {
			return nil, fmt.Errorf("config key %s.%s: %w", profile, f.key, err)
		}
		*f.dst = policy
	}

	return s, nil
}
