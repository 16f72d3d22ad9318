package models

// Tempo describes track tempo as both a BPM value and a named feel.
type Tempo struct {
	BPM   int    `json:"bpm"`
	Named string `json:"named"`
}

// GlobalSettings is tier 1 of a structured prompt: whole-track settings.
type GlobalSettings struct {
	Genre         []string `json:"genre"`
	Key           string   `json:"key"`
	TimeSignature string   `json:"time_signature"`
	Tempo         Tempo    `json:"tempo"`
	Mood          []string `json:"mood"`
	Version       int      `json:"version"`
}

// Effect is a named audio effect with optional parameters.
type Effect struct {
	Type       string         `json:"type"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Instrument is tier 2: one instrument and its sound design.
type Instrument struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Timbre          []string `json:"timbre"`
	Effects         []Effect `json:"effects"`
	VocalTechniques []string `json:"vocal_techniques,omitempty"`
	Version         int      `json:"version"`
}

// PerformanceStyle describes how one instrument plays within a section.
type PerformanceStyle struct {
	Dynamics []string `json:"dynamics"`
	Rhythm   []string `json:"rhythm"`
	Melody   []string `json:"melody"`
}

// Section is tier 3: one song section and its arrangement.
// IncludedInstrumentIDs and the Performance keys must reference
// existing instrument ids on the owning prompt.
type Section struct {
	ID                    string                      `json:"id"`
	Type                  string                      `json:"type"`
	IncludedInstrumentIDs []string                    `json:"included_instrument_ids"`
	Performance           map[string]PerformanceStyle `json:"performance"`
	Version               int                         `json:"version"`
}

// ThreeTierPrompt is the structured representation of a generation
// request: global settings, instruments, and sections.
type ThreeTierPrompt struct {
	GlobalSettings GlobalSettings `json:"global_settings"`
	Instruments    []Instrument   `json:"instruments"`
	Sections       []Section      `json:"sections"`
}

// InstrumentByID returns the instrument with the given id, or nil.
func (p *ThreeTierPrompt) InstrumentByID(id string) *Instrument {
	for i := range p.Instruments {
		if p.Instruments[i].ID == id {
			return &p.Instruments[i]
		}
	}
	return nil
}

// SectionByID returns the section with the given id, or nil.
func (p *ThreeTierPrompt) SectionByID(id string) *Section {
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			return &p.Sections[i]
		}
	}
	return nil
}

// InstrumentName resolves an instrument id to its display name,
// falling back to the raw id when the instrument is unknown.
func (p *ThreeTierPrompt) InstrumentName(id string) string {
	if inst := p.InstrumentByID(id); inst != nil {
		return inst.Name
	}
	return id
}

// RemoveInstrument removes an instrument and prunes every reference to
// it from section instrument lists and performance maps in one step,
// so sections never point at a missing instrument.
func (p *ThreeTierPrompt) RemoveInstrument(id string) {
	instruments := p.Instruments[:0]
	for _, inst := range p.Instruments {
		if inst.ID != id {
			instruments = append(instruments, inst)
		}
	}
	p.Instruments = instruments

	for i := range p.Sections {
		section := &p.Sections[i]
		kept := section.IncludedInstrumentIDs[:0]
		for _, instID := range section.IncludedInstrumentIDs {
			if instID != id {
				kept = append(kept, instID)
			}
		}
		section.IncludedInstrumentIDs = kept
		delete(section.Performance, id)
	}
}

// Clone returns a deep copy of the prompt.
func (p *ThreeTierPrompt) Clone() ThreeTierPrompt {
	out := ThreeTierPrompt{
		GlobalSettings: p.GlobalSettings.Clone(),
		Instruments:    make([]Instrument, len(p.Instruments)),
		Sections:       make([]Section, len(p.Sections)),
	}
	for i, inst := range p.Instruments {
		out.Instruments[i] = inst.Clone()
	}
	for i, section := range p.Sections {
		out.Sections[i] = section.Clone()
	}
	return out
}

// Clone returns a deep copy of the global settings.
func (g GlobalSettings) Clone() GlobalSettings {
	out := g
	out.Genre = append([]string(nil), g.Genre...)
	out.Mood = append([]string(nil), g.Mood...)
	return out
}

// Clone returns a deep copy of the instrument.
func (i Instrument) Clone() Instrument {
	out := i
	out.Timbre = append([]string(nil), i.Timbre...)
	out.VocalTechniques = append([]string(nil), i.VocalTechniques...)
	if i.Effects != nil {
		out.Effects = make([]Effect, len(i.Effects))
		for j, effect := range i.Effects {
			out.Effects[j] = effect.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the effect.
func (e Effect) Clone() Effect {
	out := e
	if e.Parameters != nil {
		out.Parameters = make(map[string]any, len(e.Parameters))
		for k, v := range e.Parameters {
			out.Parameters[k] = v
		}
	}
	return out
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	out := s
	out.IncludedInstrumentIDs = append([]string(nil), s.IncludedInstrumentIDs...)
	if s.Performance != nil {
		out.Performance = make(map[string]PerformanceStyle, len(s.Performance))
		for id, style := range s.Performance {
			out.Performance[id] = PerformanceStyle{
				Dynamics: append([]string(nil), style.Dynamics...),
				Rhythm:   append([]string(nil), style.Rhythm...),
				Melody:   append([]string(nil), style.Melody...),
			}
		}
	}
	return out
}

// PrototypeInstrument is the flat-text instrument shape used by the
// reduced prototype flow.
type PrototypeInstrument struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	NegativeDescription string `json:"negative_description,omitempty"`
}

// PrototypeSection is the flat-text section shape used by the reduced
// prototype flow.
type PrototypeSection struct {
	ID                  string `json:"id"`
	Type                string `json:"type"`
	Description         string `json:"description"`
	NegativeDescription string `json:"negative_description,omitempty"`
}

// PrototypePromptData mirrors the three tiers as flat positive and
// negative text, without structured timbre/effects/performance.
type PrototypePromptData struct {
	Global         string                `json:"global"`
	NegativeGlobal string                `json:"negative_global,omitempty"`
	Instruments    []PrototypeInstrument `json:"instruments"`
	Sections       []PrototypeSection    `json:"sections"`
}
