package planner

import (
	"fmt"
	"strings"

	"github.com/fatmove/fatmove/internal/config"
	"github.com/fatmove/fatmove/internal/prompt"
)

// Extension groups recognized by the filter. Audio is the payload and
// is never filtered; everything else is governed by a policy setting.
var (
	audioExts = []string{".flac", ".alac", ".aac", ".m4a", ".mp4", ".ogg", ".mp3"}
	imageExts = []string{".jpg", ".jpeg", ".bmp", ".png", ".gif"}
)

// Filter drops unwanted files from a plan's file lists according to the
// extension policy settings.
type Filter struct {
	Settings *config.Settings
	Prompt   *prompt.Prompter

	// Interactive permits Prompt policies to actually ask. When false a
	// Prompt policy keeps the file: nothing is dropped unconfirmed.
	Interactive bool
}

// Apply rebuilds the plan's file lists without the filtered entries.
// Source and destination entries are dropped pairwise, so the lists
// stay aligned. Directory lists are untouched.
func (f *Filter) Apply(plan *TransferPlan) {
	sources := make([]string, 0, len(plan.SourceFiles))
	destinations := make([]string, 0, len(plan.DestFiles))

	for i, source := range plan.SourceFiles {
		if f.keep(source) {
			sources = append(sources, source)
			destinations = append(destinations, plan.DestFiles[i])
		}
	}

	plan.SourceFiles = sources
	plan.DestFiles = destinations
}

// keep decides whether one file survives filtering.
func (f *Filter) keep(file string) bool {
	lower := strings.ToLower(file)
	if hasAnySuffix(lower, audioExts) {
		return true
	}
	return f.evaluate(f.policyFor(lower), file)
}

// policyFor classifies a lower-cased path by extension.
func (f *Filter) policyFor(lower string) config.Policy {
	switch {
	case hasAnySuffix(lower, imageExts):
		return f.Settings.RemoveImages
	case strings.HasSuffix(lower, ".log"):
		return f.Settings.RemoveLog
	case strings.HasSuffix(lower, ".cue"):
		return f.Settings.RemoveCue
	case strings.HasSuffix(lower, ".m3u"):
		return f.Settings.RemoveM3U
	default:
		return f.Settings.RemoveOtherFiletypes
	}
}

// evaluate applies a removal policy to one candidate file.
func (f *Filter) evaluate(policy config.Policy, file string) bool {
	switch policy {
	case config.Yes:
		return false
	case config.Prompt:
		if !f.Interactive {
			return true
		}
		return f.Prompt.YesNo(fmt.Sprintf("Move '%s'?", file))
	}
	return true
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
