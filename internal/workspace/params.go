// ============================================================================
// BookFab - Text-to-Speech Workspace
// ============================================================================
//
// Package:     workspace
// Description: Conversion parameters and their ranges
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package workspace

import (
	"fmt"
	"math"
	"strings"
)

// Expressiveness of the synthesized speech
type Expressiveness string

const (
	ExpressivenessHigh   Expressiveness = "high"
	ExpressivenessMedium Expressiveness = "medium"
	ExpressivenessLow    Expressiveness = "low"
)

// Expressivenesses lists the levels in display order
var Expressivenesses = []Expressiveness{ExpressivenessHigh, ExpressivenessMedium, ExpressivenessLow}

// Loudness of the synthesized speech
type Loudness string

const (
	LoudnessLoud     Loudness = "loud"
	LoudnessModerate Loudness = "moderate"
	LoudnessSoft     Loudness = "soft"
	LoudnessQuiet    Loudness = "quiet"
)

// Loudnesses lists the levels in display order
var Loudnesses = []Loudness{LoudnessLoud, LoudnessModerate, LoudnessSoft, LoudnessQuiet}

// SilenceKind names one of the three pause sliders
type SilenceKind string

const (
	SilenceComma     SilenceKind = "comma"
	SilenceSentence  SilenceKind = "sentence"
	SilenceParagraph SilenceKind = "paragraph"
)

// SilenceKinds lists the sliders in display order
var SilenceKinds = []SilenceKind{SilenceComma, SilenceSentence, SilenceParagraph}

// Slider ranges
const (
	SilenceMinMs  = 0
	SilenceMaxMs  = 2000
	SilenceStepMs = 10

	SpeedMin  = 0.5
	SpeedMax  = 2.5
	SpeedStep = 0.05
)

// Parameters are the prosody settings of a conversion
type Parameters struct {
	Expressiveness Expressiveness
	Silence        map[SilenceKind]int // milliseconds
	Speed          float64
	Loudness       Loudness
}

// DefaultParameters returns the settings of a fresh workspace
func DefaultParameters() Parameters {
	return Parameters{
		Expressiveness: ExpressivenessMedium,
		Silence: map[SilenceKind]int{
			SilenceComma:     200,
			SilenceSentence:  500,
			SilenceParagraph: 1000,
		},
		Speed:    1.0,
		Loudness: LoudnessModerate,
	}
}

// clone copies the silence map so Parameters can be handed out by value
func (p Parameters) clone() Parameters {
	silence := make(map[SilenceKind]int, len(p.Silence))
	for k, v := range p.Silence {
		silence[k] = v
	}
	p.Silence = silence
	return p
}

// ParseExpressiveness validates an expressiveness name
func ParseExpressiveness(s string) (Expressiveness, error) {
	e := Expressiveness(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Expressivenesses {
		if e == valid {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: expressiveness %q", ErrInvalidValue, s)
}

// ParseLoudness validates a loudness name
func ParseLoudness(s string) (Loudness, error) {
	l := Loudness(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Loudnesses {
		if l == valid {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: loudness %q", ErrInvalidValue, s)
}

// ParseSilenceKind validates a silence slider name
func ParseSilenceKind(s string) (SilenceKind, error) {
	k := SilenceKind(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range SilenceKinds {
		if k == valid {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: silence %q", ErrInvalidValue, s)
}

// ClampSilence clamps ms to the slider range and snaps it to the step
func ClampSilence(ms int) int {
	if ms < SilenceMinMs {
		return SilenceMinMs
	}
	if ms > SilenceMaxMs {
		return SilenceMaxMs
	}
	return int(math.Round(float64(ms)/SilenceStepMs)) * SilenceStepMs
}

// ClampSpeed clamps x to the slider range and snaps it to the step.
// NaN yields the default speed.
func ClampSpeed(x float64) float64 {
	if math.IsNaN(x) {
		return 1.0
	}
	if x < SpeedMin {
		return SpeedMin
	}
	if x > SpeedMax {
		return SpeedMax
	}
	steps := math.Round((x - SpeedMin) / SpeedStep)
	snapped := SpeedMin + steps*SpeedStep
	// keep two decimals so repeated nudges do not drift
	return math.Round(snapped*100) / 100
}

// cycle returns the element delta positions away from cur in values,
// wrapping around. An unknown cur starts at the first element.
func cycle[T comparable](values []T, cur T, delta int) T {
	idx := -1
	for i, v := range values {
		if v == cur {
			idx = i
			break
		}
	}
	if idx < 0 {
		return values[0]
	}
	n := len(values)
	return values[((idx+delta)%n+n)%n]
}
