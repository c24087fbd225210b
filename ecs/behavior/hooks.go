package behavior

import "time"

// HitInfo describes one projectile hit on the player.
type HitInfo struct {
	Kind   string
	Launch int
	At     time.Duration
}

// Hooks are the extension points fired by enemies. Nil hooks do nothing;
// there is no default damage, reaction or defeat behaviour.
type Hooks struct {
	OnHit    func(HitInfo)
	OnDamage func(HitInfo)
	OnDefeat func(kind string)
}

func (h Hooks) hit(info HitInfo) {
	if h.OnHit != nil {
		h.OnHit(info)
	}
	if h.OnDamage != nil {
		h.OnDamage(info)
	}
}

func (h Hooks) defeat(kind string) {
	if h.OnDefeat != nil {
		h.OnDefeat(kind)
	}
}

// Merge returns hooks that run h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnHit:    chainInfo(h.OnHit, other.OnHit),
		OnDamage: chainInfo(h.OnDamage, other.OnDamage),
		OnDefeat: chainKind(h.OnDefeat, other.OnDefeat),
	}
}

func chainInfo(a, b func(HitInfo)) func(HitInfo) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(info HitInfo) {
		a(info)
		b(info)
	}
}

func chainKind(a, b func(string)) func(string) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(kind string) {
		a(kind)
		b(kind)
	}
}
