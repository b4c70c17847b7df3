package tween

// Phase is one leg of a chain: it adds Delta to the animated value over Duration seconds.
type Phase struct {
	Name     string
	Delta    float32
	Duration float32
	Ease     Ease
}

// Chain plays phases one after another. Each phase starts Overlap seconds before the previous one
// ends, and phases contribute additively, so where two overlap their motion blends and the final
// value is always the sum of all deltas.
type Chain struct {
	phases []Phase
	starts []float32
	total  float32
}

// NewChain lays out the phases on a timeline. Overlap is clamped so a phase never starts before its predecessor.
func NewChain(overlap float32, phases ...Phase) *Chain {
	c := &Chain{phases: phases, starts: make([]float32, len(phases))}
	var at float32
	for i, p := range phases {
		if i > 0 {
			prev := phases[i-1].Duration
			step := prev - overlap
			if step < 0 {
				step = 0
			}
			at += step
		}
		c.starts[i] = at
		if end := at + p.Duration; end > c.total {
			c.total = end
		}
	}
	return c
}

// Duration is the wall-clock length of the whole chain in seconds.
func (c *Chain) Duration() float32 {
	return c.total
}

// Start returns when phase i begins, in seconds from the chain start.
func (c *Chain) Start(i int) float32 {
	return c.starts[i]
}

// Len is the number of phases.
func (c *Chain) Len() int {
	return len(c.phases)
}

// Total is the sum of all deltas: the value reached at the end.
func (c *Chain) Total() float32 {
	var sum float32
	for _, p := range c.phases {
		sum += p.Delta
	}
	return sum
}

// At returns the accumulated value at time t seconds.
func (c *Chain) At(t float32) float32 {
	var v float32
	for i, p := range c.phases {
		local := t - c.starts[i]
		switch {
		case local <= 0:
			continue
		case p.Duration <= 0 || local >= p.Duration:
			v += p.Delta
		default:
			ease := p.Ease
			if ease == nil {
				ease = Linear
			}
			v += p.Delta * ease(local/p.Duration)
		}
	}
	return v
}

// Player advances a chain by frame deltas.
type Player struct {
	chain   *Chain
	elapsed float32
}

// NewPlayer starts c at time zero.
func NewPlayer(c *Chain) *Player {
	return &Player{chain: c}
}

// Advance moves the playhead by dt seconds and returns the value and whether the chain finished.
func (p *Player) Advance(dt float32) (float32, bool) {
	p.elapsed += dt
	if p.elapsed >= p.chain.total {
		p.elapsed = p.chain.total
		return p.chain.Total(), true
	}
	return p.chain.At(p.elapsed), false
}

// Elapsed is the playhead position in seconds.
func (p *Player) Elapsed() float32 {
	return p.elapsed
}
