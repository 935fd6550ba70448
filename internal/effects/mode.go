package effects

type Mode int

const (
	ModeBouncing Mode = iota
	ModeParticles
	ModeStarfield
	ModeWaves
)

func (m Mode) String() string {
	switch m {
	case ModeBouncing:
		return "bouncing"
	case ModeParticles:
		return "particles"
	case ModeStarfield:
		return "starfield"
	case ModeWaves:
		return "waves"
	default:
		return "unknown"
	}
}

// Trigger labels understood by the default registry.
const (
	LabelEnterSite = "Enter Site"
	LabelGuestbook = "Guestbook"
	LabelCoolLinks = "Cool Links"
	LabelHome      = "Home"
)

// Registry maps trigger labels to the mode they select.
type Registry struct {
	labels map[string]Mode
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{labels: map[string]Mode{}}
}

// DefaultRegistry knows the three site buttons plus Home, which returns to the
// bouncing balls.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(LabelEnterSite, ModeParticles)
	r.Register(LabelGuestbook, ModeWaves)
	r.Register(LabelCoolLinks, ModeStarfield)
	r.Register(LabelHome, ModeBouncing)
	return r
}

// Register binds label to mode, replacing any earlier binding.
func (r *Registry) Register(label string, m Mode) {
	if _, ok := r.labels[label]; !ok {
		r.order = append(r.order, label)
	}
	r.labels[label] = m
}

func (r *Registry) Lookup(label string) (Mode, bool) {
	m, ok := r.labels[label]
	return m, ok
}

// Labels returns the registered labels in registration order.
func (r *Registry) Labels() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
