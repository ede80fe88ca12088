package config

import (
	"fmt"
	"os"
)

// Template is the starter config file written by `fatmove config init`.
// Values: 0 = no, 1 = yes, 2 = prompt.
const Template = `; fatmove configuration
; Each value is one of: 0 (no), 1 (yes), 2 (prompt).
; The --non-interactive flag always wins over prompt settings.

[DEFAULT]
OverwriteDestinationFiles = 0
RemoveImages = 0
RemoveLog = 0
RemoveCue = 0
RemoveM3U = 0
RemoveOtherFiletypes = 2
UpdateUserCredentials = 2
DeleteSources = 0
ConvertFLACtoMP3 = 0
ConvertALACtoMP3 = 0
ConvertAACtoMP3 = 0
ConvertM4AtoMP3 = 0
ConvertMP4toMP3 = 0
ConvertOGGtoMP3 = 0

; Everyday profile.
[user]
OverwriteDestinationFiles = 0
RemoveImages = 2
RemoveLog = 1
RemoveCue = 1
RemoveM3U = 1
RemoveOtherFiletypes = 2
UpdateUserCredentials = 2
DeleteSources = 0
ConvertFLACtoMP3 = 2
ConvertALACtoMP3 = 0
ConvertAACtoMP3 = 0
ConvertM4AtoMP3 = 0
ConvertMP4toMP3 = 0
ConvertOGGtoMP3 = 2

; Profile for A State of Trance transfers (--armin).
[ARMIN]
OverwriteDestinationFiles = 1
RemoveImages = 1
RemoveLog = 1
RemoveCue = 1
RemoveM3U = 1
RemoveOtherFiletypes = 1
UpdateUserCredentials = 2
DeleteSources = 2
ConvertFLACtoMP3 = 0
ConvertALACtoMP3 = 0
ConvertAACtoMP3 = 0
ConvertM4AtoMP3 = 0
ConvertMP4toMP3 = 0
ConvertOGGtoMP3 = 0
`

// WriteTemplate writes the starter config file to path. It refuses to
// clobber an existing file unless force is set.
func WriteTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	return os.WriteFile(path, []byte(Template), 0644)
}
