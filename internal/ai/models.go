package ai

// Prompt is a provider-agnostic completion request: system-level output
// instructions plus the user-facing request body.
type Prompt struct {
	System string
	User   string
}

// Emphasized returns a copy with the output constraints restated more
// forcefully. Used on the fallback hop, where the secondary model may follow
// formatting instructions less reliably than the primary.
func (p Prompt) Emphasized() Prompt {
	p.System = "IMPORTANT: Respond with a single valid JSON object and NOTHING else. " +
		"No prose, no markdown fences, no commentary.\n\n" + p.System
	return p
}
