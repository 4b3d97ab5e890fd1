package timeline

// walkContext is the cursor state threaded through the descent. It is
// copied by value to save and restore around a derivation chain.
type walkContext struct {
	track        *Track
	videoTrack   *Track
	clip         *Clip
	videoClip    *Clip
	essence      *Essence
	videoEssence *Essence

	// transition is the Transition whose OperationGroup is being parsed.
	transition *Transition

	// Clip-scoped levels wait here for the next SourceClip.
	clipGain       *Level
	clipAutomation *Level
	clipMute       bool

	// Set while walking the inputs of an AudioChannelCombiner.
	combined        bool
	combinedTotal   int
	combinedChannel int

	// derivation is set while following a SourceClip into another
	// CompositionMob.
	derivation bool
}

// takeClipLevels moves the pending clip-scoped levels onto clip.
func (c *walkContext) takeClipLevels(clip *Clip) {
	if c.clipGain != nil {
		clip.Gain = c.clipGain
	}
	if c.clipAutomation != nil {
		clip.Automation = c.clipAutomation
	}
	if c.clipMute {
		clip.Mute = true
	}
}

func (c *walkContext) resetClipLevels() {
	c.clipGain = nil
	c.clipAutomation = nil
	c.clipMute = false
}

func (c *walkContext) resetCombined() {
	c.combined = false
	c.combinedTotal = 0
	c.combinedChannel = 0
}
