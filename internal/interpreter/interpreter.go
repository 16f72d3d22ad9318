// Package interpreter converts free-text evaluation notes into
// structured prompt changes. The rules are deliberate keyword matches
// with fixed confidences; they are the product contract, not a stand-in
// for a language model.
package interpreter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tracklab/tracklab-api/internal/models"
)

const (
	maxBPM                 = 200
	minBPM                 = 40
	bpmStep                = 20
	lowConfidenceThreshold = 0.7
)

// Interpret runs the rule set over a version's evaluation notes and
// returns the proposed changes plus a candidate prompt with all of
// them applied. Never errors: no matching rule means an empty change
// list with overall confidence 1.
func Interpret(version *models.Version) models.InterpretationResponse {
	start := time.Now()

	notes := version.EvaluationNotes
	promptStructure := &version.PromptStructure

	var changes []models.Change
	changes = append(changes, globalChanges(notes, promptStructure)...)
	changes = append(changes, instrumentChanges(notes, promptStructure)...)
	changes = append(changes, sectionChanges(notes, promptStructure)...)

	updatedPrompt := applyChanges(promptStructure, changes)

	overall := 1.0
	if len(changes) > 0 {
		sum := 0.0
		for _, c := range changes {
			sum += c.Confidence
		}
		overall = sum / float64(len(changes))
	}

	warnings := []string{}
	for _, c := range changes {
		if c.Confidence < lowConfidenceThreshold {
			warnings = append(warnings, fmt.Sprintf("Low confidence (%d%%) on: %s",
				int(math.Round(c.Confidence*100)), c.Reason))
		}
	}

	if changes == nil {
		changes = []models.Change{}
	}

	return models.InterpretationResponse{
		Changes:           changes,
		UpdatedPrompt:     updatedPrompt,
		OverallConfidence: overall,
		ProcessingTimeMs:  time.Since(start).Milliseconds(),
		Warnings:          warnings,
	}
}

// globalChanges applies the tempo and mood rules to the global note.
// The checks are independent: one note can fire several rules.
func globalChanges(notes models.EvaluationNotes, p *models.ThreeTierPrompt) []models.Change {
	if notes.Global == "" {
		return nil
	}

	var changes []models.Change
	text := strings.ToLower(notes.Global)
	bpm := p.GlobalSettings.Tempo.BPM

	if strings.Contains(text, "faster") || strings.Contains(text, "more energy") {
		changes = append(changes, models.Change{
			Tier:       models.TierGlobal,
			Field:      "tempo.bpm",
			OldValue:   bpm,
			NewValue:   min(maxBPM, bpm+bpmStep),
			Reason:     "User requested faster tempo and more energy",
			SourceNote: notes.Global,
			Confidence: 0.92,
		})
	}

	if strings.Contains(text, "slower") || strings.Contains(text, "chill") {
		changes = append(changes, models.Change{
			Tier:       models.TierGlobal,
			Field:      "tempo.bpm",
			OldValue:   bpm,
			NewValue:   max(minBPM, bpm-bpmStep),
			Reason:     "User requested slower, more relaxed tempo",
			SourceNote: notes.Global,
			Confidence: 0.90,
		})
	}

	if strings.Contains(text, "energetic") || strings.Contains(text, "uplifting") {
		if !containsString(p.GlobalSettings.Mood, "Energetic") {
			newMood := append(append([]string(nil), p.GlobalSettings.Mood...), "Energetic")
			changes = append(changes, models.Change{
				Tier:       models.TierGlobal,
				Field:      "mood",
				OldValue:   p.GlobalSettings.Mood,
				NewValue:   newMood,
				Reason:     "Add energetic mood as requested",
				SourceNote: notes.Global,
				Confidence: 0.88,
			})
		}
	}

	return changes
}

// instrumentChanges applies the effect rules to per-instrument notes.
func instrumentChanges(notes models.EvaluationNotes, p *models.ThreeTierPrompt) []models.Change {
	var changes []models.Change

	for _, inst := range p.Instruments {
		note := notes.Instruments[inst.ID]
		if note == "" {
			continue
		}
		text := strings.ToLower(note)

		if strings.Contains(text, "saturation") || strings.Contains(text, "grit") || strings.Contains(text, "dirty") {
			newEffects := append(cloneEffects(inst.Effects), models.Effect{Type: "Heavy Saturation"})
			changes = append(changes, models.Change{
				Tier:       models.TierInstrument,
				TargetID:   inst.ID,
				Field:      "effects",
				OldValue:   inst.Effects,
				NewValue:   newEffects,
				Reason:     fmt.Sprintf("Add saturation to %s for more grit", inst.Name),
				SourceNote: note,
				Confidence: 0.85,
			})
		}

		if strings.Contains(text, "too clean") || strings.Contains(text, "needs distortion") {
			newEffects := append(cloneEffects(inst.Effects), models.Effect{
				Type:       "Distortion",
				Parameters: map[string]any{"level": "Medium"},
			})
			changes = append(changes, models.Change{
				Tier:       models.TierInstrument,
				TargetID:   inst.ID,
				Field:      "effects",
				OldValue:   inst.Effects,
				NewValue:   newEffects,
				Reason:     fmt.Sprintf("Add distortion to %s", inst.Name),
				SourceNote: note,
				Confidence: 0.82,
			})
		}
	}

	return changes
}

// sectionChanges looks for "remove <instrument>" requests in section
// notes, matched against every instrument name in the prompt.
func sectionChanges(notes models.EvaluationNotes, p *models.ThreeTierPrompt) []models.Change {
	var changes []models.Change

	for _, section := range p.Sections {
		note := notes.Sections[section.ID]
		if note == "" {
			continue
		}
		text := strings.ToLower(note)

		for _, inst := range p.Instruments {
			if !strings.Contains(text, "remove "+strings.ToLower(inst.Name)) {
				continue
			}
			var remaining []string
			for _, id := range section.IncludedInstrumentIDs {
				if id != inst.ID {
					remaining = append(remaining, id)
				}
			}
			if remaining == nil {
				remaining = []string{}
			}
			changes = append(changes, models.Change{
				Tier:       models.TierSection,
				TargetID:   section.ID,
				Field:      "included_instrument_ids",
				OldValue:   section.IncludedInstrumentIDs,
				NewValue:   remaining,
				Reason:     fmt.Sprintf("Remove %s from %s as requested", inst.Name, section.Type),
				SourceNote: note,
				Confidence: 0.78,
			})
		}
	}

	return changes
}

// applyChanges builds the candidate prompt: a deep copy of the
// original with every proposed change written over it.
func applyChanges(p *models.ThreeTierPrompt, changes []models.Change) models.ThreeTierPrompt {
	updated := p.Clone()

	for _, change := range changes {
		switch change.Tier {
		case models.TierGlobal:
			switch change.Field {
			case "tempo.bpm":
				if bpm, ok := change.NewValue.(int); ok {
					updated.GlobalSettings.Tempo.BPM = bpm
				}
			case "mood":
				if mood, ok := change.NewValue.([]string); ok {
					updated.GlobalSettings.Mood = mood
				}
			}
		case models.TierInstrument:
			inst := updated.InstrumentByID(change.TargetID)
			if inst != nil && change.Field == "effects" {
				if effects, ok := change.NewValue.([]models.Effect); ok {
					inst.Effects = effects
				}
			}
		case models.TierSection:
			section := updated.SectionByID(change.TargetID)
			if section != nil && change.Field == "included_instrument_ids" {
				if ids, ok := change.NewValue.([]string); ok {
					section.IncludedInstrumentIDs = ids
				}
			}
		}
	}

	return updated
}

func cloneEffects(effects []models.Effect) []models.Effect {
	out := make([]models.Effect, len(effects))
	for i, e := range effects {
		out[i] = e.Clone()
	}
	return out
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
