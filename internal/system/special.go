// internal/system/special.go
package system

import (
	"errors"
	"fmt"

	"go-social-defense/internal/component"
	"go-social-defense/internal/config"
	"go-social-defense/internal/defs"
	"go-social-defense/internal/entity"
	"go-social-defense/internal/event"
	"go-social-defense/internal/types"
	"go-social-defense/internal/utils"
	"go-social-defense/pkg/geom"
)

var (
	ErrWrongAbility = errors.New("friend has no such ability")
	ErrAbilityUsed  = errors.New("ability already used this wave")
	ErrGameOver     = errors.New("game is over")
	ErrNoMap        = errors.New("no map selected")
)

// SpecialSystem запускает особые способности друзей.
type SpecialSystem struct {
	ecs             *entity.ECS
	session         *component.Session
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewSpecialSystem(ecs *entity.ECS, session *component.Session, rng *utils.PRNGService,
	eventDispatcher *event.Dispatcher) *SpecialSystem {
	return &SpecialSystem{ecs: ecs, session: session, rng: rng, eventDispatcher: eventDispatcher}
}

// Update отсчитывает перезарядку и запускает готовые способности.
func (s *SpecialSystem) Update(dt float64) {
	for _, f := range s.ecs.Friends {
		if f.SpecialCooldown > 0 {
			f.SpecialCooldown -= dt
		}
		if f.SpecialCooldown <= 0 {
			s.useSpecial(f)
		}
	}
}

func (s *SpecialSystem) useSpecial(f *component.Friend) {
	switch a := f.Stats.Ability.(type) {
	case defs.Listener:
		credit := a.Credit
		if f.HasUpgrade(a.BoostUpgrade) {
			credit = a.BoostedCredit
		}
		s.creditNeighbours(f, a.Radius, credit)
		f.SpecialCooldown = a.Cooldown

	case defs.SlowField:
		ticks := a.SlowTicks
		if f.HasUpgrade(a.BoostUpgrade) {
			ticks = a.BoostedSlowTicks
		}
		for _, e := range enemiesWithin(s.ecs, f.Position, f.Stats.Range) {
			e.ApplySlow(ticks)
		}
		f.SpecialCooldown = a.Cooldown

	case defs.Conspiracy:
		if f.HasUpgrade(a.ConvertUpgrade) {
			for _, e := range enemiesWithin(s.ecs, f.Position, f.Stats.Range) {
				if s.rng.Chance(a.ConvertChance) {
					s.convert(f, e)
				}
			}
			f.SpecialCooldown = a.ConvertCooldown
			return
		}
		ticks := a.SlowTicks
		if f.HasUpgrade(a.BoostUpgrade) {
			ticks = a.BoostedSlowTicks
		}
		for _, e := range enemiesWithin(s.ecs, f.Position, f.Stats.Range) {
			e.ApplySlow(ticks)
		}
		f.SpecialCooldown = a.SlowCooldown

	case defs.CuteStun:
		// Без апгрейда способность спит и кулдаун не ставится.
		if !f.HasUpgrade(a.RequiredUpgrade) {
			return
		}
		for _, e := range enemiesWithin(s.ecs, f.Position, f.Stats.Range) {
			e.Stun(a.StunTicks)
		}
		f.SpecialCooldown = a.Cooldown

	case defs.SingingStun:
		radius, ticks := f.Stats.Range, a.StunTicks
		if f.HasUpgrade(a.BoostUpgrade) {
			radius += a.RangeBonus
			ticks = a.BoostedStunTicks
		}
		stunned := enemiesWithin(s.ecs, f.Position, radius)
		for _, e := range stunned {
			e.Stun(ticks)
		}
		if len(stunned) > 0 {
			Say(s.ecs, f.Position, fmt.Sprintf("♪ %s's song stunned %d enemies! ♪", f.Name, len(stunned)))
		}
		f.SpecialCooldown = a.Cooldown
		if f.HasUpgrade(a.FastUpgrade) {
			f.SpecialCooldown = a.FastCooldown
		}

	case defs.Grapple:
		s.grapple(f, a)
		f.SpecialCooldown = a.Cooldown

	case defs.FamilyPhoto, defs.TrainRampage, defs.Moveable, defs.Scholar, defs.Passive:
		// одноразовые или пассивные, по кулдауну ничего не делают
	}
}

func (s *SpecialSystem) grapple(f *component.Friend, a defs.Grapple) {
	limit, ticks := a.MaxHolds, a.HoldTicks
	if f.HasUpgrade(a.HoldsUpgrade) {
		limit = a.BoostedMaxHolds
	}
	if f.HasUpgrade(a.DurationUpgrade) {
		ticks = a.BoostedHoldTicks
	}

	// лимит считается на одну активацию, старые захваты не мешают новым
	grabbed := 0
	for _, e := range enemiesWithin(s.ecs, f.Position, a.Radius) {
		if grabbed >= limit {
			break
		}
		if !e.Hold(ticks) {
			continue
		}
		grabbed++
		f.Grapples = append(f.Grapples, component.GrappleHold{EnemyID: e.ID, Remaining: ticks})
		Say(s.ecs, e.Position, "Grappled! 🤼")
	}

	if f.HasUpgrade(a.ListenUpgrade) && len(f.Grapples) > 0 {
		s.creditNeighbours(f, a.ListenRadius, a.ListenCredit)
	}
}

// creditNeighbours сокращает перезарядку остальных друзей в радиусе.
func (s *SpecialSystem) creditNeighbours(f *component.Friend, radius, ms float64) {
	for _, other := range s.ecs.Friends {
		if other.ID != f.ID && geom.Distance(f.Position, other.Position) < radius {
			other.CreditFireCooldown(ms)
		}
	}
}

func (s *SpecialSystem) convert(f *component.Friend, e *component.Enemy) {
	e.Convert(config.ConvertedColor)
	e.Release()
	Say(s.ecs, e.Position, fmt.Sprintf("%s converted them!", f.Name))
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyConverted, Data: event.EnemyKilledData{
		EnemyID:      e.ID,
		EnemyType:    e.TypeID,
		Position:     e.Position,
		AttackerType: f.TypeID,
	}})
}

func (s *SpecialSystem) oneShotGuard(used bool) error {
	if s.session.GameOver {
		return ErrGameOver
	}
	if used {
		return ErrAbilityUsed
	}
	return nil
}

// FamilyPhoto оглушает всех врагов на карте. Раз за волну.
func (s *SpecialSystem) FamilyPhoto(f *component.Friend) error {
	a, ok := f.Stats.Ability.(defs.FamilyPhoto)
	if !ok {
		return ErrWrongAbility
	}
	if err := s.oneShotGuard(s.session.PhotoUsed); err != nil {
		return err
	}
	s.session.PhotoUsed = true

	for _, e := range s.ecs.Enemies {
		if e.Targetable() {
			e.Stun(a.StunTicks)
		}
	}
	s.ecs.AddBubble(&component.SpeechBubble{
		Position: geom.Point{X: config.PhotoBubbleX, Y: config.PhotoBubbleY},
		Message:  "Family photo time! Everyone smile! 📷",
		Life:     config.BubbleLife,
		MaxLife:  config.BubbleLife,
	})
	return nil
}

// TrainRampage пускает один или два поезда задом по случайному пути
// рядом с другом. Раз за волну.
func (s *SpecialSystem) TrainRampage(f *component.Friend) error {
	a, ok := f.Stats.Ability.(defs.TrainRampage)
	if !ok {
		return ErrWrongAbility
	}
	if err := s.oneShotGuard(s.session.TrainUsed); err != nil {
		return err
	}
	if s.session.Map == nil || len(s.session.Map.Paths) == 0 {
		return ErrNoMap
	}
	s.session.TrainUsed = true

	path := s.session.Map.Paths[s.rng.Intn(len(s.session.Map.Paths))]
	next := max(0, geom.NearestSegment(f.Position, path)-1)

	damage, offsets := a.Damage, a.OffsetsY[:1]
	boosted := f.HasUpgrade(a.BoostUpgrade)
	if boosted {
		damage, offsets = a.BoostedDamage, a.OffsetsY
	}

	for _, dy := range offsets {
		s.ecs.AddTrain(&component.Train{
			Position:     geom.Point{X: f.Position.X, Y: f.Position.Y + dy},
			Path:         path,
			NextWaypoint: next,
			Backwards:    true,
			Speed:        config.TrainSpeed,
			Damage:       damage,
			Life:         config.TrainLife,
			MaxLife:      config.TrainLife,
			HitRadius:    config.TrainHitRadius,
			ArriveRadius: config.TrainArrive,
			Hit:          make(map[types.EntityID]struct{}),
		})
	}

	msg := "🚂 TRAIN RAMPAGE! All aboard! 🚂"
	if boosted {
		msg = "🚂🚂 DOUBLE TRAIN RAMPAGE! 🚂🚂"
	}
	Say(s.ecs, f.Position, msg)
	return nil
}
