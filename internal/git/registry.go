package git

import "github.com/Johannes-Berggren/webgit/internal/models"

const (
	DefaultOriginName   = "origin"
	DefaultUpstreamName = "upstream"
)

// Query selects a remote by name. Name beats Override beats Fallback; the
// first non-empty one is looked up.
type Query struct {
	Name     string // explicit, e.g. from --remote
	Override string // environment default
	Fallback string // hard-coded default, e.g. "origin"

	// FirstIfMissing returns the first remote when nothing matches.
	FirstIfMissing bool
}

// Registry holds the remotes of one working directory in `git remote -v` order.
type Registry struct {
	remotes          []models.Remote
	originOverride   string
	upstreamOverride string
}

// NewRegistry builds a registry. The override names come from the
// environment and replace "origin"/"upstream" as defaults.
func NewRegistry(remotes []models.Remote, originOverride, upstreamOverride string) *Registry {
	return &Registry{
		remotes:          remotes,
		originOverride:   originOverride,
		upstreamOverride: upstreamOverride,
	}
}

func (r *Registry) Remotes() []models.Remote {
	return r.remotes
}

// Lookup resolves q against the registry. It returns nil, nil when nothing
// matches and q.FirstIfMissing is false.
func (r *Registry) Lookup(q Query) (*models.Remote, error) {
	if len(r.remotes) == 0 {
		return nil, ErrNoRemotesConfigured
	}

	if name := firstNonEmpty(q.Name, q.Override, q.Fallback); name != "" {
		for i := range r.remotes {
			if r.remotes[i].Name == name {
				return &r.remotes[i], nil
			}
		}
	}

	if q.FirstIfMissing {
		return &r.remotes[0], nil
	}
	return nil, nil
}

// Origin looks up the user's own copy, falling back to the first remote.
func (r *Registry) Origin(name string) (*models.Remote, error) {
	return r.Lookup(Query{
		Name:           name,
		Override:       r.originOverride,
		Fallback:       DefaultOriginName,
		FirstIfMissing: true,
	})
}

// Upstream looks up the shared copy, falling back to the first remote.
func (r *Registry) Upstream(name string) (*models.Remote, error) {
	return r.Lookup(Query{
		Name:           name,
		Override:       r.upstreamOverride,
		Fallback:       DefaultUpstreamName,
		FirstIfMissing: true,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
