package glossary

import "github.com/tracklab/tracklab-api/internal/models"

// Catalog category names.
const (
	CategoryTempoRhythm    = "Tempo & Rhythm"
	CategoryDynamics       = "Dynamics & Expression"
	CategoryStructure      = "Song Structure"
	CategoryMelodyHarmony  = "Melody & Harmony"
	CategoryInstrumenation = "Instrumentation & Texture"
	CategoryGenres         = "Genres & Styles"
	CategoryProduction     = "Production & Effects"
	CategoryVocal          = "Vocal Techniques"
	CategoryMood           = "Mood & Atmosphere"
)

// Helper category groupings surfaced to the UI per prompt tier.
var (
	GlobalCategories     = []string{CategoryTempoRhythm, CategoryMelodyHarmony, CategoryGenres, CategoryStructure}
	InstrumentCategories = []string{CategoryInstrumenation, CategoryProduction, CategoryVocal}
	SectionCategories    = []string{CategoryDynamics, CategoryTempoRhythm, CategoryMelodyHarmony, CategoryStructure}
)

var catalog = []models.GlossaryTerm{
	// Tempo & Rhythm
	{
		ID: "tempo-1", Term: "Adagio",
		Definition:   "A slow tempo marking, typically 66-76 BPM. Creates a calm, relaxed atmosphere.",
		Category:     CategoryTempoRhythm,
		AppliesTo:    []models.Tier{models.TierGlobal},
		Examples:     []string{"Classical slow movements", "Ballads", "Meditation music"},
		RelatedTerms: []string{"Largo", "Andante"},
	},
	{
		ID: "tempo-2", Term: "Allegro",
		Definition:   "A fast, lively tempo marking, typically 120-156 BPM. Energetic and bright.",
		Category:     CategoryTempoRhythm,
		AppliesTo:    []models.Tier{models.TierGlobal},
		Examples:     []string{"Pop choruses", "Dance music", "Upbeat classical movements"},
		RelatedTerms: []string{"Presto", "Vivace"},
	},
	{
		ID: "tempo-3", Term: "Andante",
		Definition: "A moderate walking pace tempo, typically 76-108 BPM. Comfortable and flowing.",
		Category:   CategoryTempoRhythm,
		AppliesTo:  []models.Tier{models.TierGlobal},
		Examples:   []string{"Folk songs", "Mid-tempo pop", "Walking scenes in film scores"},
	},
	{
		ID: "tempo-4", Term: "Presto",
		Definition:   "Very fast tempo marking, typically 168-200 BPM. Creates excitement and urgency.",
		Category:     CategoryTempoRhythm,
		AppliesTo:    []models.Tier{models.TierGlobal},
		Examples:     []string{"Fast classical movements", "Speed metal", "Action sequences"},
		RelatedTerms: []string{"Allegro", "Prestissimo"},
	},
	{
		ID: "rhythm-1", Term: "Syncopation",
		Definition:   "Rhythmic emphasis on weak beats or off-beats, creating tension and groove.",
		Category:     CategoryTempoRhythm,
		Subcategory:  "Rhythmic Patterns",
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Reggae", "Jazz", "Funk bass lines"},
		RelatedTerms: []string{"Groove", "Swing"},
	},
	{
		ID: "rhythm-2", Term: "Swing",
		Definition:   "A rhythmic feel where eighth notes are played unevenly in a long-short pattern.",
		Category:     CategoryTempoRhythm,
		Subcategory:  "Rhythmic Patterns",
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Jazz standards", "Big band", "Blues shuffles"},
		RelatedTerms: []string{"Groove", "Triplet feel"},
	},
	{
		ID: "rhythm-3", Term: "Rubato",
		Definition:  "Expressive tempo flexibility where the performer speeds up and slows down for emotion.",
		Category:    CategoryTempoRhythm,
		Subcategory: "Rhythmic Patterns",
		AppliesTo:   []models.Tier{models.TierSection},
		Examples:    []string{"Romantic piano pieces", "Expressive vocal performances", "Ballad verses"},
	},
	{
		ID: "rhythm-4", Term: "Polyrhythm",
		Definition:   "Multiple contrasting rhythms played simultaneously, creating complex textures.",
		Category:     CategoryTempoRhythm,
		Subcategory:  "Rhythmic Patterns",
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"African drumming", "Progressive rock", "Latin percussion"},
		RelatedTerms: []string{"Cross-rhythm", "Hemiola"},
	},

	// Dynamics & Expression
	{
		ID: "dynamics-1", Term: "Forte",
		Definition:   "Loud volume marking. Creates power and emphasis.",
		Category:     CategoryDynamics,
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Chorus sections", "Climactic moments", "Rock guitar solos"},
		Synonyms:     []string{"f", "loud"},
		RelatedTerms: []string{"Fortissimo", "Mezzo-forte"},
	},
	{
		ID: "dynamics-2", Term: "Piano",
		Definition:   "Soft volume marking. Creates intimacy and gentleness.",
		Category:     CategoryDynamics,
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Verses", "Intimate moments", "Whispered vocals"},
		Synonyms:     []string{"p", "soft"},
		RelatedTerms: []string{"Pianissimo", "Mezzo-piano"},
	},
	{
		ID: "dynamics-3", Term: "Crescendo",
		Definition:   "Gradual increase in volume. Builds tension and excitement.",
		Category:     CategoryDynamics,
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Build-ups before chorus", "Orchestral swells", "EDM risers"},
		RelatedTerms: []string{"Decrescendo", "Swell"},
	},
	{
		ID: "dynamics-4", Term: "Decrescendo",
		Definition:   "Gradual decrease in volume. Creates release or fading effect.",
		Category:     CategoryDynamics,
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Song endings", "Transitional passages", "Echo effects"},
		Synonyms:     []string{"Diminuendo"},
		RelatedTerms: []string{"Crescendo", "Fade out"},
	},
	{
		ID: "dynamics-5", Term: "Sforzando",
		Definition:   "Sudden strong accent on a note or chord. Creates dramatic emphasis.",
		Category:     CategoryDynamics,
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Dramatic hits", "Orchestral accents", "Rock power chords"},
		Synonyms:     []string{"sfz"},
		RelatedTerms: []string{"Accent", "Marcato"},
	},
	{
		ID: "expression-1", Term: "Legato",
		Definition:   "Smooth, connected playing with no gaps between notes.",
		Category:     CategoryDynamics,
		Subcategory:  "Articulation",
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"String sections", "Flowing melodies", "Smooth vocal lines"},
		RelatedTerms: []string{"Staccato", "Smooth"},
	},
	{
		ID: "expression-2", Term: "Staccato",
		Definition:   "Short, detached notes with silence between them.",
		Category:     CategoryDynamics,
		Subcategory:  "Articulation",
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Pizzicato strings", "Choppy rhythms", "Percussive accents"},
		RelatedTerms: []string{"Legato", "Marcato"},
	},
	{
		ID: "expression-3", Term: "Accent",
		Definition:   "Emphasized note that stands out from surrounding notes.",
		Category:     CategoryDynamics,
		Subcategory:  "Articulation",
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Downbeats", "Syncopated rhythms", "Drum hits"},
		RelatedTerms: []string{"Sforzando", "Marcato"},
	},

	// Song Structure
	{
		ID: "structure-1", Term: "Verse",
		Definition:   "Repeating section with same music but different lyrics, telling the story.",
		Category:     CategoryStructure,
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Storytelling sections", "Lower energy parts", "Narrative progression"},
		RelatedTerms: []string{"Chorus", "Pre-Chorus"},
	},
	{
		ID: "structure-2", Term: "Chorus",
		Definition:   "Main repeated section with the hook, usually the most memorable and energetic part.",
		Category:     CategoryStructure,
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Main hook", "Sing-along sections", "Peak energy moments"},
		RelatedTerms: []string{"Verse", "Bridge", "Hook"},
	},
	{
		ID: "structure-3", Term: "Bridge",
		Definition:   "Contrasting section providing relief from verse-chorus repetition.",
		Category:     CategoryStructure,
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Musical departure", "Key change sections", "Emotional shifts"},
		RelatedTerms: []string{"Middle 8", "C-Section"},
	},
	{
		ID: "structure-4", Term: "Intro",
		Definition:   "Opening section that sets the mood and introduces main musical elements.",
		Category:     CategoryStructure,
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Song openings", "Establishing atmosphere", "Building anticipation"},
		RelatedTerms: []string{"Outro", "Verse"},
	},
	{
		ID: "structure-5", Term: "Outro",
		Definition:   "Closing section that brings the song to an end.",
		Category:     CategoryStructure,
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Fade outs", "Final choruses", "Codas"},
		Synonyms:     []string{"Ending", "Coda"},
		RelatedTerms: []string{"Intro", "Chorus"},
	},
	{
		ID: "structure-6", Term: "Drop",
		Definition:   "High-energy climactic section in electronic music, following a build-up.",
		Category:     CategoryStructure,
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"EDM drops", "Bass drops", "Post-buildup sections"},
		RelatedTerms: []string{"Build-up", "Break"},
	},

	// Melody & Harmony
	{
		ID: "melody-1", Term: "Arpeggio",
		Definition:   "Notes of a chord played in sequence rather than simultaneously.",
		Category:     CategoryMelodyHarmony,
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Guitar fingerpicking", "Piano patterns", "Harp glissandos"},
		RelatedTerms: []string{"Chord", "Broken chord"},
	},
	{
		ID: "melody-2", Term: "Melisma",
		Definition:   "Single syllable sung across multiple notes, common in R&B and gospel.",
		Category:     CategoryMelodyHarmony,
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Gospel runs", "R&B vocal flourishes", "Mariah Carey-style runs"},
		RelatedTerms: []string{"Vocal run", "Riff"},
	},
	{
		ID: "harmony-1", Term: "Chord Progression",
		Definition:   "Sequence of chords that form the harmonic foundation.",
		Category:     CategoryMelodyHarmony,
		Subcategory:  "Harmony",
		AppliesTo:    []models.Tier{models.TierGlobal, models.TierSection},
		Examples:     []string{"I-V-vi-IV", "ii-V-I in jazz", "12-bar blues"},
		RelatedTerms: []string{"Harmony", "Cadence"},
	},
	{
		ID: "harmony-2", Term: "Dissonance",
		Definition:   "Tension created by clashing notes or chords, seeking resolution.",
		Category:     CategoryMelodyHarmony,
		Subcategory:  "Harmony",
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Suspended chords", "Jazz tensions", "Modern classical"},
		RelatedTerms: []string{"Consonance", "Resolution", "Tension"},
	},
	{
		ID: "harmony-3", Term: "Resolution",
		Definition:   "Movement from dissonant or tense harmony to consonant, stable harmony.",
		Category:     CategoryMelodyHarmony,
		Subcategory:  "Harmony",
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"V to I cadence", "Suspended to major chord", "Tension release"},
		RelatedTerms: []string{"Dissonance", "Cadence"},
	},
	{
		ID: "harmony-4", Term: "Modulation",
		Definition:   "Changing from one key to another within a piece.",
		Category:     CategoryMelodyHarmony,
		Subcategory:  "Harmony",
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Key changes in choruses", "Bridge key shifts", "Final chorus lifts"},
		RelatedTerms: []string{"Key change", "Transposition"},
	},
	{
		ID: "harmony-5", Term: "Counter-melody",
		Definition:   "Secondary melody played simultaneously with the main melody.",
		Category:     CategoryMelodyHarmony,
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Guitar leads over vocals", "String counterlines", "Background vocals"},
		RelatedTerms: []string{"Harmony", "Descant"},
	},

	// Instrumentation & Texture
	{
		ID: "timbre-1", Term: "Bright",
		Definition:   "Tone quality with emphasized high frequencies, clarity and brilliance.",
		Category:     CategoryInstrumenation,
		Subcategory:  "Timbre",
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"Brass instruments", "Electric guitar with treble", "Crisp cymbals"},
		RelatedTerms: []string{"Dark", "Warm"},
	},
	{
		ID: "timbre-2", Term: "Dark",
		Definition:   "Tone quality with emphasized low frequencies, warmth and depth.",
		Category:     CategoryInstrumenation,
		Subcategory:  "Timbre",
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"Cello", "Bass guitar", "Muted horns"},
		RelatedTerms: []string{"Bright", "Warm"},
	},
	{
		ID: "timbre-3", Term: "Warm",
		Definition:   "Pleasant, rich tone with balanced mid-range frequencies.",
		Category:     CategoryInstrumenation,
		Subcategory:  "Timbre",
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"Vintage analog synths", "Acoustic guitar", "Jazz saxophone"},
		RelatedTerms: []string{"Rich", "Mellow"},
	},
	{
		ID: "timbre-4", Term: "Rich",
		Definition:   "Full, complex tone with many harmonic overtones.",
		Category:     CategoryInstrumenation,
		Subcategory:  "Timbre",
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"String sections", "Grand piano", "Layered synths"},
		RelatedTerms: []string{"Warm", "Thick"},
	},
	{
		ID: "timbre-5", Term: "Mellow",
		Definition:   "Soft, smooth tone without harshness.",
		Category:     CategoryInstrumenation,
		Subcategory:  "Timbre",
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"Flute", "Nylon string guitar", "Soft vocals"},
		RelatedTerms: []string{"Warm", "Soft"},
	},
	{
		ID: "texture-1", Term: "Monophonic",
		Definition:   "Single melodic line with no harmony or accompaniment.",
		Category:     CategoryInstrumenation,
		Subcategory:  "Texture",
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Solo flute", "Unaccompanied vocal", "Single synth lead"},
		RelatedTerms: []string{"Polyphonic", "Homophonic"},
	},
	{
		ID: "texture-2", Term: "Polyphonic",
		Definition:   "Multiple independent melodic lines played simultaneously.",
		Category:     CategoryInstrumenation,
		Subcategory:  "Texture",
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Fugues", "Counterpoint", "Jazz improvisation"},
		RelatedTerms: []string{"Monophonic", "Contrapuntal"},
	},
	{
		ID: "texture-3", Term: "Homophonic",
		Definition:   "Main melody with chordal accompaniment.",
		Category:     CategoryInstrumenation,
		Subcategory:  "Texture",
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Pop songs", "Hymns", "Piano with chords + melody"},
		RelatedTerms: []string{"Polyphonic", "Melody-dominated"},
	},
	{
		ID: "texture-4", Term: "Layered",
		Definition:   "Multiple sounds or parts stacked on top of each other.",
		Category:     CategoryInstrumenation,
		Subcategory:  "Texture",
		AppliesTo:    []models.Tier{models.TierInstrument, models.TierSection},
		Examples:     []string{"Synth pads with multiple oscillators", "Vocal harmonies", "Orchestral sections"},
		RelatedTerms: []string{"Dense", "Thick"},
	},
	{
		ID: "texture-5", Term: "Sparse",
		Definition:   "Thin texture with few simultaneous sounds, emphasizing space.",
		Category:     CategoryInstrumenation,
		Subcategory:  "Texture",
		AppliesTo:    []models.Tier{models.TierSection},
		Examples:     []string{"Minimal verses", "Ambient music", "Intimate performances"},
		RelatedTerms: []string{"Dense", "Minimal"},
	},

	// Genres & Styles
	{
		ID: "genre-1", Term: "Pop",
		Definition:   "Popular music characterized by catchy melodies, verse-chorus structure, and broad appeal.",
		Category:     CategoryGenres,
		AppliesTo:    []models.Tier{models.TierGlobal},
		Examples:     []string{"Taylor Swift", "The Weeknd", "Ariana Grande"},
		RelatedTerms: []string{"Contemporary", "Mainstream"},
	},
	{
		ID: "genre-2", Term: "Rock",
		Definition:   "Genre featuring electric guitars, strong rhythms, and often rebellious themes.",
		Category:     CategoryGenres,
		AppliesTo:    []models.Tier{models.TierGlobal},
		Examples:     []string{"The Beatles", "Led Zeppelin", "Foo Fighters"},
		RelatedTerms: []string{"Alternative", "Indie Rock"},
	},
	{
		ID: "genre-3", Term: "Jazz",
		Definition:   "Improvisational genre with complex harmonies, syncopation, and swing feel.",
		Category:     CategoryGenres,
		AppliesTo:    []models.Tier{models.TierGlobal},
		Examples:     []string{"Miles Davis", "John Coltrane", "Billie Holiday"},
		RelatedTerms: []string{"Blues", "Bebop"},
	},
	{
		ID: "genre-4", Term: "Electronic",
		Definition:   "Music created using electronic instruments, synthesizers, and computers.",
		Category:     CategoryGenres,
		AppliesTo:    []models.Tier{models.TierGlobal},
		Examples:     []string{"Daft Punk", "Deadmau5", "Aphex Twin"},
		RelatedTerms: []string{"EDM", "Techno", "House"},
	},
	{
		ID: "genre-5", Term: "Hip-Hop",
		Definition:   "Genre featuring rhythmic vocal delivery (rapping) over beats and samples.",
		Category:     CategoryGenres,
		AppliesTo:    []models.Tier{models.TierGlobal},
		Examples:     []string{"Kendrick Lamar", "Jay-Z", "Nas"},
		RelatedTerms: []string{"Rap", "Trap"},
	},
	{
		ID: "genre-6", Term: "R&B",
		Definition:   "Rhythm and Blues featuring soulful vocals, groove-oriented rhythms.",
		Category:     CategoryGenres,
		AppliesTo:    []models.Tier{models.TierGlobal},
		Examples:     []string{"Beyoncé", "Usher", "Alicia Keys"},
		RelatedTerms: []string{"Soul", "Neo-Soul"},
	},

	// Production & Effects
	{
		ID: "effect-1", Term: "Reverb",
		Definition:   "Echo effect simulating acoustic space, from small rooms to large halls.",
		Category:     CategoryProduction,
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"Vocal reverb", "Drum room ambience", "Guitar spaciousness"},
		RelatedTerms: []string{"Delay", "Echo", "Ambience"},
	},
	{
		ID: "effect-2", Term: "Distortion",
		Definition:   "Effect that clips and alters the waveform, adding harmonics and aggression.",
		Category:     CategoryProduction,
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"Distorted guitar", "Bass saturation", "Vocal grit"},
		RelatedTerms: []string{"Overdrive", "Saturation"},
	},
	{
		ID: "effect-3", Term: "Delay",
		Definition:   "Effect creating echoes by repeating the sound after a set time.",
		Category:     CategoryProduction,
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"Slapback delay on vocals", "Ping-pong delay", "Dub reggae delays"},
		RelatedTerms: []string{"Reverb", "Echo"},
	},
	{
		ID: "effect-4", Term: "Compression",
		Definition:   "Effect reducing dynamic range by making loud parts quieter and quiet parts louder.",
		Category:     CategoryProduction,
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"Vocal compression", "Drum bus compression", "Sidechain compression"},
		RelatedTerms: []string{"Limiting", "Dynamics"},
	},
	{
		ID: "effect-5", Term: "Chorus",
		Definition:   "Effect creating thickness by layering slightly detuned copies of the sound.",
		Category:     CategoryProduction,
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"80s synths", "Clean guitar", "Thickened vocals"},
		RelatedTerms: []string{"Flanger", "Doubling"},
	},
	{
		ID: "effect-6", Term: "EQ",
		Definition:   "Equalization - adjusting the balance of frequency ranges to shape tone.",
		Category:     CategoryProduction,
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"Bass boost", "Treble cut", "Midrange scoop"},
		Synonyms:     []string{"Equalization"},
		RelatedTerms: []string{"Filter", "Tone shaping"},
	},

	// Vocal Techniques
	{
		ID: "vocal-1", Term: "Falsetto",
		Definition:   "High-pitched vocal register above normal range, light and airy quality.",
		Category:     CategoryVocal,
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"Bee Gees", "Maroon 5", "Prince"},
		RelatedTerms: []string{"Head voice", "Upper register"},
	},
	{
		ID: "vocal-2", Term: "Belt",
		Definition:   "Powerful, chest-dominant vocal technique for high notes with strength.",
		Category:     CategoryVocal,
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"Musical theater", "Power ballads", "Gospel singing"},
		RelatedTerms: []string{"Chest voice", "Power vocals"},
	},
	{
		ID: "vocal-3", Term: "Vibrato",
		Definition:   "Slight, rapid variation in pitch creating a warm, expressive quality.",
		Category:     CategoryVocal,
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"Opera singing", "Classical vocals", "Expressive moments"},
		RelatedTerms: []string{"Tremolo", "Oscillation"},
	},
	{
		ID: "vocal-4", Term: "Growl",
		Definition:   "Rough, gritty vocal technique adding aggression and texture.",
		Category:     CategoryVocal,
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"Metal vocals", "Blues singing", "Rock grit"},
		RelatedTerms: []string{"Rasp", "Distortion"},
	},
	{
		ID: "vocal-5", Term: "Whisper",
		Definition:   "Soft, breathy vocal delivery with minimal vocal cord vibration.",
		Category:     CategoryVocal,
		AppliesTo:    []models.Tier{models.TierInstrument},
		Examples:     []string{"Intimate verses", "ASMR vocals", "Billie Eilish style"},
		RelatedTerms: []string{"Breathy", "Soft singing"},
	},

	// Mood & Atmosphere
	{
		ID: "mood-1", Term: "Energetic",
		Definition:   "High-energy, exciting, and dynamic mood.",
		Category:     CategoryMood,
		AppliesTo:    []models.Tier{models.TierGlobal},
		Examples:     []string{"Dance tracks", "Workout music", "Upbeat pop"},
		RelatedTerms: []string{"Uplifting", "Powerful"},
	},
	{
		ID: "mood-2", Term: "Melancholic",
		Definition:   "Sad, reflective, and emotionally introspective mood.",
		Category:     CategoryMood,
		AppliesTo:    []models.Tier{models.TierGlobal},
		Examples:     []string{"Sad ballads", "Rainy day playlists", "Emotional scenes"},
		RelatedTerms: []string{"Somber", "Reflective"},
	},
	{
		ID: "mood-3", Term: "Uplifting",
		Definition:   "Positive, inspiring, and emotionally elevating mood.",
		Category:     CategoryMood,
		AppliesTo:    []models.Tier{models.TierGlobal},
		Examples:     []string{"Motivational tracks", "Happy endings", "Celebration music"},
		RelatedTerms: []string{"Energetic", "Joyful"},
	},
	{
		ID: "mood-4", Term: "Dark",
		Definition:   "Ominous, mysterious, or unsettling mood.",
		Category:     CategoryMood,
		AppliesTo:    []models.Tier{models.TierGlobal},
		Examples:     []string{"Horror soundtracks", "Noir jazz", "Gothic music"},
		RelatedTerms: []string{"Mysterious", "Eerie"},
	},
	{
		ID: "mood-5", Term: "Peaceful",
		Definition:   "Calm, serene, and tranquil mood.",
		Category:     CategoryMood,
		AppliesTo:    []models.Tier{models.TierGlobal},
		Examples:     []string{"Meditation music", "Ambient soundscapes", "Lullabies"},
		RelatedTerms: []string{"Calm", "Relaxing"},
	},
}
