package profile

import (
	"fmt"

	"github.com/neelchauhan/torlink/internal/directive"
)

// Apply runs the profile's steps against em in order and stops at the first
// failure. On error em may hold a partial list; callers must not render it.
func (p *Profile) Apply(em *directive.Emitter) error {
	for i, s := range p.Steps {
		op, args := s.Op()
		for _, arg := range args {
			if err := applyOne(em, op, arg); err != nil {
				return fmt.Errorf("profile %s step %d (%s %s): %w", p.Name, i, op, arg, err)
			}
		}
	}
	return nil
}

func applyOne(em *directive.Emitter, op Op, arg string) error {
	switch op {
	case OpFlags:
		return em.FromFlags(arg)
	case OpRelPath:
		return em.LinkRelPath(arg)
	case OpPath:
		em.LinkPath(arg)
	case OpComponent:
		em.Component(arg)
	case OpDependency:
		em.Dependency(arg)
	default:
		return fmt.Errorf("unknown step operation %q", op)
	}
	return nil
}
