// Package convert transcodes audio files to mp3 with ffmpeg.
//
// Car stereos that need the fatsort treatment also tend to only play
// mp3, so the plan's lossless and oddball formats can be converted in
// place before the copy. The converted file lands next to its source
// and replaces the original pair in the plan; the engine deletes these
// temporaries once the copy phase is done.
package convert

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatmove/fatmove/internal/config"
	"github.com/fatmove/fatmove/internal/execx"
	"github.com/fatmove/fatmove/internal/planner"
	"github.com/fatmove/fatmove/internal/prompt"
)

// quality is the VBR quality passed to libmp3lame; 0 is the highest.
const quality = "0"

// Converter runs ffmpeg over the plan's convertible files.
type Converter struct {
	Runner execx.Runner
	Prompt *prompt.Prompter
	Out    io.Writer
	Err    io.Writer

	Interactive bool
	Verbose     bool
	Quiet       bool
}

// rule pairs a source extension with its conversion policy.
type rule struct {
	ext    string
	policy config.Policy
}

// rules returns the enabled conversion rules for the settings.
func rules(s *config.Settings) []rule {
	all := []rule{
		{".flac", s.ConvertFLACtoMP3},
		{".alac", s.ConvertALACtoMP3},
		{".aac", s.ConvertAACtoMP3},
		{".m4a", s.ConvertM4AtoMP3},
		{".mp4", s.ConvertMP4toMP3},
		{".ogg", s.ConvertOGGtoMP3},
	}

	var enabled []rule
	for _, r := range all {
		if r.policy != config.No {
			enabled = append(enabled, r)
		}
	}
	return enabled
}

// Apply converts plan files whose extension has conversion enabled,
// swapping the converted file into the plan at the same index. It
// returns the temporary mp3 files it created. Failed conversions are
// reported and leave the original pair in the plan.
func (c *Converter) Apply(ctx context.Context, plan *planner.TransferPlan, settings *config.Settings) []string {
	enabled := rules(settings)
	if len(enabled) == 0 {
		return nil
	}

	var created []string
	for i, source := range plan.SourceFiles {
		lower := strings.ToLower(source)
		for _, r := range enabled {
			if !strings.HasSuffix(lower, r.ext) {
				continue
			}

			if r.policy == config.Prompt {
				if !c.Interactive {
					// Non-interactive wins over the prompt setting.
					if !c.Quiet {
						fmt.Fprintf(c.Out, "Not converting %s\n", source)
					}
					break
				}
				if !c.Prompt.YesNo(fmt.Sprintf("Convert %s?", source)) {
					break
				}
			}

			if !c.Quiet {
				fmt.Fprintf(c.Out, "Converting %s\n", source)
			}

			converted := source[:len(source)-len(r.ext)] + ".mp3"
			if err := c.run(ctx, source, converted); err != nil {
				if !c.Quiet {
					fmt.Fprintf(c.Err, "ERROR: failed to convert %s\n", source)
				}
				break
			}

			created = append(created, converted)
			destination := plan.DestFiles[i]
			plan.SourceFiles[i] = converted
			plan.DestFiles[i] = destination[:len(destination)-len(r.ext)] + ".mp3"
			break
		}
	}
	return created
}

// run invokes ffmpeg for one file.
func (c *Converter) run(ctx context.Context, in, out string) error {
	args := []string{"-i", in}
	if !c.Interactive {
		// Never overwrite an existing converted file without a prompt.
		args = append(args, "-n")
	}
	args = append(args,
		"-loglevel", c.logLevel(),
		"-hide_banner",
		"-codec:a", "libmp3lame",
		"-qscale:a", quality,
		out,
	)
	return c.Runner.Run(ctx, "ffmpeg", args...)
}

// logLevel maps the verbosity flags onto ffmpeg's -loglevel.
func (c *Converter) logLevel() string {
	switch {
	case c.Quiet:
		return "fatal"
	case c.Verbose:
		return "info"
	}
	return "warning"
}
