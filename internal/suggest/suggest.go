// SPDX-License-Identifier: MIT

// Package suggest turns a free-text prompt into a partial style by keyword
// rules.
package suggest

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/thatcatcamp/buttonsmith/internal/style"
)

// ErrEmptyPrompt is returned for a prompt with nothing but whitespace.
var ErrEmptyPrompt = errors.New("prompt is empty")

// Suggestion is the outcome of one prompt: the combined patch of every rule
// that matched, and the names of those rules in order.
type Suggestion struct {
	Patch style.Patch `json:"patch"`
	Rules []string    `json:"rules"`
}

// Matched reports whether any rule recognized the prompt.
func (s Suggestion) Matched() bool {
	return len(s.Rules) > 0
}

type rule struct {
	name     string
	keywords []string
	patch    style.Patch
}

// rules run in order; a later match overrides fields set by an earlier one.
var rules = []rule{
	{
		name:     "neon",
		keywords: []string{"neon", "futuristic", "cyber"},
		patch: style.Patch{
			BgType:      style.Ptr(style.BackgroundGradient),
			Bg1:         style.Ptr("#ff007f"),
			Bg2:         style.Ptr("#7c3aed"),
			Angle:       style.Ptr(120.0),
			TextColor:   style.Ptr("#fff"),
			ShadowColor: style.Ptr("#ff007f"),
			Animation:   style.Ptr(style.AnimationPulse),
			Pill:        style.Ptr(true),
		},
	},
	{
		name:     "danger",
		keywords: []string{"danger", "delete", "red"},
		patch: style.Patch{
			BgType:    style.Ptr(style.BackgroundSolid),
			Bg1:       style.Ptr("#ef4444"),
			TextColor: style.Ptr("#fff"),
			Animation: style.Ptr(style.AnimationShake),
		},
	},
	{
		name:     "glass",
		keywords: []string{"glass", "glassmorphism"},
		patch: style.Patch{
			BgType:      style.Ptr(style.BackgroundTransparent),
			BorderW:     style.Ptr(1.0),
			BorderColor: style.Ptr("rgba(255,255,255,0.12)"),
			ShadowY:     style.Ptr(2.0),
			TextColor:   style.Ptr("#eaf6ff"),
		},
	},
	{
		name:     "minimal",
		keywords: []string{"minimal", "grey"},
		patch: style.Patch{
			BgType:    style.Ptr(style.BackgroundSolid),
			Bg1:       style.Ptr("#f3f4f6"),
			TextColor: style.Ptr("#111827"),
			Radius:    style.Ptr(8.0),
			Animation: style.Ptr(style.AnimationNone),
		},
	},
	{
		name:     "heart",
		keywords: []string{"like", "heart"},
		patch: style.Patch{
			Icon: style.Ptr(style.LibraryIcon("heart")),
		},
	},
	{
		name:     "bell",
		keywords: []string{"bell", "notify"},
		patch: style.Patch{
			Icon:      style.Ptr(style.LibraryIcon("bell")),
			Animation: style.Ptr(style.AnimationGlow),
		},
	},
	{
		name:     "glossy",
		keywords: []string{"glossy", "shine"},
		patch: style.Patch{
			BgType:    style.Ptr(style.BackgroundGradient),
			Bg1:       style.Ptr("#7dd3fc"),
			Bg2:       style.Ptr("#0369a1"),
			Animation: style.Ptr(style.AnimationPulse),
		},
	},
}

// Rules lists the rule names in evaluation order.
func Rules() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

// Suggest evaluates every rule against prompt. Keywords match anywhere in the
// prompt, so "reddish" counts as red. A prompt that matches nothing yields an
// empty patch and no error.
func Suggest(prompt string) (Suggestion, error) {
	text := normalize(prompt)
	if text == "" {
		return Suggestion{}, ErrEmptyPrompt
	}

	var s Suggestion
	for _, r := range rules {
		if r.matches(text) {
			s.Patch = s.Patch.Then(r.patch)
			s.Rules = append(s.Rules, r.name)
		}
	}
	return s, nil
}

// Apply runs Suggest and merges the result over current.
func Apply(current style.Model, prompt string) (style.Model, Suggestion, error) {
	s, err := Suggest(prompt)
	if err != nil {
		return current, s, err
	}
	return style.Merge(current, s.Patch), s, nil
}

func (r rule) matches(text string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// normalize folds compatibility forms and case. A Caser holds state, so one
// is built per call.
func normalize(prompt string) string {
	return strings.TrimSpace(cases.Lower(language.Und).String(norm.NFKC.String(prompt)))
}
