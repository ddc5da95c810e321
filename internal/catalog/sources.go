package catalog

// Sources is the full scrape catalog in run order. Disabled entries stay
// configured so they can be switched on without a code change elsewhere.
var Sources = []ScrapeSource{
	{
		Name:       "astrostyle",
		Kind:       KindSignSpecific,
		URLPattern: "https://astrostyle.com/horoscopes/daily/{sign}/",
		ExtractionPrompt: `Extract TODAY'S COMPLETE daily horoscope for {sign}.

Include ALL of the following:
1. Main horoscope text - extract the FULL text, not a summary
2. All planetary influences, transits, and aspects mentioned
3. All practical advice, actions, or guidance provided
4. Lucky numbers, colors, or other attributes if mentioned
5. Love, career, or other specific area forecasts if provided
6. Any timing information (morning/afternoon/evening guidance)

Do NOT summarize or shorten the content. Extract the complete horoscope as written.
Only exclude navigation menus, ads, and unrelated site content.`,
		Frequency: "daily",
		Tags:      []string{"horoscope", "daily"},
		Enabled:   true,
	},
	{
		Name:       "cafeastrology_horoscopes",
		Kind:       KindSignSpecific,
		URLPattern: "https://cafeastrology.com/{sign}dailyhoroscope.html",
		ExtractionPrompt: `Extract TODAY'S COMPLETE daily horoscope for {sign} in its ORIGINAL form.

**CRITICAL: Quote the horoscope text word-for-word. Do NOT paraphrase or summarize.**

Format your response exactly like this:

**Daily Horoscope:**
[Quote the complete horoscope paragraph(s) exactly as written]

**Planetary Influences:**
[List all planetary alignments, transits, and aspects mentioned]

**Specific Advice:**
[List all specific actions, guidance, and recommendations]

**Ratings (if provided):**
[Include any ratings for Love, Creativity, Business, etc.]

**Timing Notes:**
[Any morning/afternoon/evening specific guidance]

**Additional Forecasts:**
[Any love/career/money/health forecasts if provided]

Remember: Extract word-for-word. Preserve all detail. Do not condense.
Only exclude navigation menus, ads, and unrelated site content.`,
		Frequency: "daily",
		Tags:      []string{"horoscope", "daily"},
		Enabled:   true,
	},
	{
		Name: "cafeastrology_cosmic_overview",
		Kind: KindCosmicOverview,
		URL:  "https://www.cafeastrology.com/",
		ExtractionPrompt: `Extract TODAY's cosmic information:
1. Current moon phase and moon sign
2. Planetary aspects happening today
3. Any planets in retrograde
4. Overall cosmic energy or theme for the day

Be specific about today's astrological events.`,
		Frequency: "daily",
		Tags:      []string{"moon-phase", "aspects", "transits"},
		Enabled:   false, // Disabled for now, we'll enable after testing horoscopes
	},
	{
		Name: "astro_seek",
		Kind: KindCosmicOverview,
		URL:  "https://www.astro-seek.com/",
		ExtractionPrompt: `Extract current planetary positions and aspects:
1. Today's major planetary transits
2. Moon position and phase
3. Any significant astrological events today

Focus on actionable astrological insights.`,
		Frequency: "daily",
		Tags:      []string{"cosmic-events", "daily-astrology"},
		Enabled:   true,
	},
	{
		Name: "tinybuddha",
		Kind: KindCosmicOverview,
		URL:  "https://tinybuddha.com/",
		ExtractionPrompt: `Extract recent spiritual wisdom and mindfulness guidance:
1. Featured inspirational teaching or quote
2. Practical mindfulness suggestions
3. Guidance on self-reflection or intention-setting

Summarize in 2-3 sentences with warm, grounding energy.`,
		Frequency: "daily",
		Tags:      []string{"spiritual-wisdom", "mindfulness"},
		Enabled:   true,
	},
}
