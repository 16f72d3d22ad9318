// Package metadata derives searchable tags and technical details from
// prompt text on submission.
package metadata

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tracklab/tracklab-api/internal/glossary"
	"github.com/tracklab/tracklab-api/internal/models"
)

var (
	bpmRe     = regexp.MustCompile(`(?i)(\d+)\s*bpm`)
	keyRe     = regexp.MustCompile(`(?i)\b([A-G](#|b)?)\s+(major|minor)\b`)
	timeSigRe = regexp.MustCompile(`\b(\d+/\d+)\b`)
)

// Instrument words matched against prompt text even when unbracketed.
var commonInstruments = []string{
	"vocal", "vocals", "bass", "keys", "keyboard", "piano", "guitar",
	"drums", "saxophone", "sax", "trumpet", "violin", "strings", "synth", "synthesizer",
}

// ExtractTechnicalDetails pattern-matches BPM, musical key, and time
// signature out of free text. A failed match leaves the field unset;
// nothing here errors.
func ExtractTechnicalDetails(text string) models.TechnicalDetails {
	var details models.TechnicalDetails

	if m := bpmRe.FindStringSubmatch(text); m != nil {
		if bpm, err := strconv.Atoi(m[1]); err == nil {
			details.BPM = &bpm
		}
	}
	if m := keyRe.FindStringSubmatch(text); m != nil {
		details.Key = m[1] + " " + m[3]
	}
	if m := timeSigRe.FindStringSubmatch(text); m != nil {
		details.TimeSignature = m[1]
	}

	return details
}

func joinPositiveText(promptData *models.PrototypePromptData) string {
	parts := []string{promptData.Global}
	for _, inst := range promptData.Instruments {
		parts = append(parts, inst.Description)
	}
	for _, section := range promptData.Sections {
		parts = append(parts, section.Description)
	}
	return strings.Join(parts, " ")
}

func joinNegativeText(promptData *models.PrototypePromptData) string {
	parts := []string{promptData.NegativeGlobal}
	for _, inst := range promptData.Instruments {
		parts = append(parts, inst.NegativeDescription)
	}
	for _, section := range promptData.Sections {
		parts = append(parts, section.NegativeDescription)
	}
	return strings.Join(parts, " ")
}

// extractInstrumentNames collects declared instrument names plus any
// common instrument word mentioned anywhere in the positive text.
func extractInstrumentNames(promptData *models.PrototypePromptData) []string {
	var found []string
	seen := map[string]bool{}

	for _, inst := range promptData.Instruments {
		name := strings.ToLower(inst.Name)
		if !seen[name] {
			seen[name] = true
			found = append(found, name)
		}
	}

	allText := strings.ToLower(joinPositiveText(promptData))
	for _, inst := range commonInstruments {
		if strings.Contains(allText, inst) && !seen[inst] {
			seen[inst] = true
			found = append(found, inst)
		}
	}

	return found
}

// ExtractMetadata derives the full categorized-metadata record from a
// prompt: bracketed terms from positive and negative text categorized
// independently, technical details from the positive text, and
// instrument names unioned into the positive instrument bucket.
func ExtractMetadata(promptData *models.PrototypePromptData) models.CategorizedMetadata {
	positiveText := joinPositiveText(promptData)
	negativeText := joinNegativeText(promptData)

	positive := glossary.CategorizeTerms(glossary.ExtractBracketedTerms(positiveText))
	negative := glossary.CategorizeTerms(glossary.ExtractBracketedTerms(negativeText))

	instruments := positive.InstrumentTags
	seen := map[string]bool{}
	for _, tag := range instruments {
		seen[tag] = true
	}
	for _, name := range extractInstrumentNames(promptData) {
		if !seen[name] {
			seen[name] = true
			instruments = append(instruments, name)
		}
	}
	positive.InstrumentTags = instruments

	return models.CategorizedMetadata{
		TagBuckets:       positive,
		TechnicalDetails: ExtractTechnicalDetails(positiveText),

		NegativeGenreTags:       negative.GenreTags,
		NegativeMoodTags:        negative.MoodTags,
		NegativeInstrumentTags:  negative.InstrumentTags,
		NegativePerformanceTags: negative.PerformanceTags,
		NegativeProductionTags:  negative.ProductionTags,
	}
}

// GenerateMasterPrompt serializes a prompt into its canonical text
// form. The format is byte-stable: it is shown to users and doubles as
// the generation payload.
func GenerateMasterPrompt(promptData *models.PrototypePromptData) string {
	var b strings.Builder

	b.WriteString("Positive: " + promptData.Global + "\n")
	if promptData.NegativeGlobal != "" {
		b.WriteString("Negative: " + promptData.NegativeGlobal + "\n")
	}
	b.WriteString("\n")

	b.WriteString("Instruments:\n")
	for _, inst := range promptData.Instruments {
		b.WriteString("- " + inst.Name + ":\n  Positive: " + inst.Description + "\n")
		if inst.NegativeDescription != "" {
			b.WriteString("  Negative: " + inst.NegativeDescription + "\n")
		}
	}

	b.WriteString("\nSections:\n")
	for _, section := range promptData.Sections {
		b.WriteString("- " + section.Type + ":\n  Positive: " + section.Description + "\n")
		if section.NegativeDescription != "" {
			b.WriteString("  Negative: " + section.NegativeDescription + "\n")
		}
	}

	return strings.TrimSpace(b.String())
}
