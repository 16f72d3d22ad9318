// Package prompt renders structured three-tier prompts into their
// canonical human-readable text form.
package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tracklab/tracklab-api/internal/models"
)

// CompileToMasterPrompt serializes a structured prompt into the master
// prompt text block. The exact format is load-bearing: it is displayed
// to users and sent onward as the generation payload.
func CompileToMasterPrompt(p *models.ThreeTierPrompt) string {
	var lines []string

	lines = append(lines, "=== GLOBAL SETTINGS ===")
	lines = append(lines, "Genre: "+strings.Join(p.GlobalSettings.Genre, ", "))
	lines = append(lines, "Key: "+p.GlobalSettings.Key)
	lines = append(lines, "Time Signature: "+p.GlobalSettings.TimeSignature)
	lines = append(lines, fmt.Sprintf("Tempo: %d BPM (%s)", p.GlobalSettings.Tempo.BPM, p.GlobalSettings.Tempo.Named))
	lines = append(lines, "Mood: "+strings.Join(p.GlobalSettings.Mood, ", "))
	lines = append(lines, "")

	lines = append(lines, "=== INSTRUMENTS ===")
	for i, inst := range p.Instruments {
		lines = append(lines, fmt.Sprintf("%d. %s (ID: %s)", i+1, inst.Name, inst.ID))
		lines = append(lines, "   Timbre: "+strings.Join(inst.Timbre, ", "))

		if len(inst.VocalTechniques) > 0 {
			lines = append(lines, "   Vocal Techniques: "+strings.Join(inst.VocalTechniques, ", "))
		}

		if len(inst.Effects) > 0 {
			rendered := make([]string, len(inst.Effects))
			for j, effect := range inst.Effects {
				rendered[j] = renderEffect(effect)
			}
			lines = append(lines, "   Effects: "+strings.Join(rendered, ", "))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "=== PERFORMANCE & ARRANGEMENT ===")
	for i, section := range p.Sections {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, strings.ToUpper(section.Type)))

		names := make([]string, len(section.IncludedInstrumentIDs))
		for j, id := range section.IncludedInstrumentIDs {
			names[j] = p.InstrumentName(id)
		}
		lines = append(lines, "   Instruments: "+strings.Join(names, ", "))

		for _, instID := range sortedPerformanceKeys(section.Performance) {
			style := section.Performance[instID]
			lines = append(lines, "   "+p.InstrumentName(instID)+":")
			if len(style.Dynamics) > 0 {
				lines = append(lines, "     - Dynamics: "+strings.Join(style.Dynamics, ", "))
			}
			if len(style.Rhythm) > 0 {
				lines = append(lines, "     - Rhythm: "+strings.Join(style.Rhythm, ", "))
			}
			if len(style.Melody) > 0 {
				lines = append(lines, "     - Melody: "+strings.Join(style.Melody, ", "))
			}
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// renderEffect formats an effect as "Type (param: value, ...)" when it
// has parameters, else the bare type.
func renderEffect(effect models.Effect) string {
	if len(effect.Parameters) == 0 {
		return effect.Type
	}

	keys := make([]string, 0, len(effect.Parameters))
	for k := range effect.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	params := make([]string, len(keys))
	for i, k := range keys {
		params[i] = fmt.Sprintf("%s: %v", k, effect.Parameters[k])
	}
	return fmt.Sprintf("%s (%s)", effect.Type, strings.Join(params, ", "))
}

// sortedPerformanceKeys gives map iteration a stable order so compiled
// output is deterministic.
func sortedPerformanceKeys(performance map[string]models.PerformanceStyle) []string {
	keys := make([]string, 0, len(performance))
	for k := range performance {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
