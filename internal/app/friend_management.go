// internal/app/friend_management.go
package app

import (
	"errors"
	"fmt"

	"go-social-defense/internal/component"
	"go-social-defense/internal/config"
	"go-social-defense/internal/defs"
	"go-social-defense/internal/event"
	"go-social-defense/internal/system"
	"go-social-defense/internal/types"
	"go-social-defense/pkg/geom"
)

var (
	ErrOnPath            = errors.New("can't place on the path")
	ErrOccupied          = errors.New("too close to another friend")
	ErrInsufficientFunds = errors.New("not enough money")
	ErrUnknownFriend     = errors.New("unknown friend")
	ErrNoMoveInProgress  = errors.New("no friend is being moved")
)

// PlaceFriend покупает друга типа typeID и ставит его в p.
func (g *Game) PlaceFriend(typeID string, p geom.Point) (types.EntityID, error) {
	def, ok := g.Library.Friends[typeID]
	if !ok {
		return 0, g.reject(fmt.Errorf("%w: %q", ErrUnknownFriend, typeID))
	}
	if err := g.canPlaceFriend(p, def.Cost, 0); err != nil {
		return 0, g.reject(err)
	}

	g.Session.Currency -= def.Cost
	f := g.createFriendEntity(&def, p)

	g.EventDispatcher.Dispatch(event.Event{Type: event.FriendPlaced, Data: event.FriendData{
		FriendID: f.ID, TypeID: f.TypeID, Position: p,
	}})
	g.EventDispatcher.Dispatch(event.Event{Type: event.CurrencyChanged, Data: event.CurrencyData{
		Delta: -def.Cost, Balance: g.Session.Currency,
	}})
	return f.ID, nil
}

// canPlaceFriend проверяет правила установки в p. ignore: друг, которого
// сейчас переносят, он не мешает сам себе.
func (g *Game) canPlaceFriend(p geom.Point, cost int, ignore types.EntityID) error {
	switch {
	case g.Session.GameOver:
		return system.ErrGameOver
	case g.Session.Map == nil:
		return system.ErrNoMap
	case g.Session.Currency < cost:
		return fmt.Errorf("%w: need $%d", ErrInsufficientFunds, cost)
	case g.Session.Map.IsOnPath(p, config.PathClearance):
		return ErrOnPath
	}
	for _, f := range g.ECS.Friends {
		if f.ID != ignore && geom.Distance(f.Position, p) < config.FriendSpacing {
			return ErrOccupied
		}
	}
	return nil
}

// CanPlaceAt: проверка места без учёта цены, для подсветки под курсором.
func (g *Game) CanPlaceAt(p geom.Point) bool {
	return g.canPlaceFriend(p, 0, g.Session.MovingFriend) == nil
}

func (g *Game) createFriendEntity(def *defs.FriendDefinition, p geom.Point) *component.Friend {
	f := &component.Friend{
		TypeID:     def.ID,
		Name:       def.Name,
		Position:   p,
		Stats:      def.Stats(),
		BaseDamage: def.Damage,
	}
	if a, ok := def.Ability.(defs.Scholar); ok {
		f.Experience = &component.Experience{Max: a.MaxLevel, GainRate: a.GainRate}
	}
	g.ECS.AddFriend(f)
	return f
}

// ApplyUpgrade покупает улучшение id для поставленного друга.
func (g *Game) ApplyUpgrade(friendID types.EntityID, id string) error {
	f, ok := g.ECS.Friend(friendID)
	if !ok {
		return g.reject(ErrUnknownFriend)
	}
	if g.Session.GameOver {
		return g.reject(system.ErrGameOver)
	}
	up, err := g.UpgradeSystem.Check(f, id)
	if err != nil {
		return g.reject(err)
	}
	if g.Session.Currency < up.Cost {
		return g.reject(fmt.Errorf("%w: need $%d", ErrInsufficientFunds, up.Cost))
	}
	if _, err := g.UpgradeSystem.Apply(f, id); err != nil {
		return g.reject(err)
	}

	g.Session.Currency -= up.Cost
	g.EventDispatcher.Dispatch(event.Event{Type: event.FriendUpgraded, Data: event.FriendData{
		FriendID: f.ID, TypeID: f.TypeID, Position: f.Position, Upgrade: id,
	}})
	g.EventDispatcher.Dispatch(event.Event{Type: event.CurrencyChanged, Data: event.CurrencyData{
		Delta: -up.Cost, Balance: g.Session.Currency,
	}})
	return nil
}

// FriendAt возвращает друга под точкой p, если он есть.
func (g *Game) FriendAt(p geom.Point) (*component.Friend, bool) {
	for _, f := range g.ECS.Friends {
		if geom.Distance(f.Position, p) < config.FriendClickSize {
			return f, true
		}
	}
	return nil, false
}

// TriggerFamilyPhoto запускает фото friendID (раз за волну).
func (g *Game) TriggerFamilyPhoto(friendID types.EntityID) error {
	f, ok := g.ECS.Friend(friendID)
	if !ok {
		return g.reject(ErrUnknownFriend)
	}
	if err := g.SpecialSystem.FamilyPhoto(f); err != nil {
		return g.reject(err)
	}
	g.logger.Debug().Str("friend", f.Name).Msg("Family photo")
	return nil
}

// TriggerTrainRampage запускает поезда friendID (раз за волну).
func (g *Game) TriggerTrainRampage(friendID types.EntityID) error {
	f, ok := g.ECS.Friend(friendID)
	if !ok {
		return g.reject(ErrUnknownFriend)
	}
	if err := g.SpecialSystem.TrainRampage(f); err != nil {
		return g.reject(err)
	}
	g.logger.Debug().Str("friend", f.Name).Int("trains", len(g.ECS.Trains)).Msg("Train rampage")
	return nil
}

// BeginReposition поднимает переносимого друга, следующий Reposition ставит его.
func (g *Game) BeginReposition(friendID types.EntityID) error {
	f, ok := g.ECS.Friend(friendID)
	if !ok {
		return g.reject(ErrUnknownFriend)
	}
	if _, ok := f.Stats.Ability.(defs.Moveable); !ok {
		return g.reject(system.ErrWrongAbility)
	}
	switch {
	case g.Session.GameOver:
		return g.reject(system.ErrGameOver)
	case g.Session.MoveUsed:
		return g.reject(system.ErrAbilityUsed)
	}

	g.Session.MovingFriend = f.ID
	system.Say(g.ECS, f.Position, "Hey I'm coming to visit!")
	return nil
}

// Reposition переносит поднятого друга в p и тратит перенос этой волны.
func (g *Game) Reposition(p geom.Point) error {
	f, ok := g.ECS.Friend(g.Session.MovingFriend)
	if !ok {
		return g.reject(ErrNoMoveInProgress)
	}
	if err := g.canPlaceFriend(p, 0, f.ID); err != nil {
		return g.reject(err)
	}

	f.Position = p
	g.Session.MoveUsed = true
	g.Session.MovingFriend = 0
	system.Say(g.ECS, p, fmt.Sprintf("%s relocated!", f.Name))
	g.EventDispatcher.Dispatch(event.Event{Type: event.FriendMoved, Data: event.FriendData{
		FriendID: f.ID, TypeID: f.TypeID, Position: p,
	}})
	return nil
}

// CancelReposition отменяет перенос, не тратя его.
func (g *Game) CancelReposition() {
	g.Session.MovingFriend = 0
}

// HandleClick разбирает клик по полю. По порядку: неиспользованная
// одноразовая способность друга, ожидающий перенос, установка выбранного типа.
// Возвращает друга под курсором, чтобы хост открыл его панель.
func (g *Game) HandleClick(p geom.Point, placing string) (types.EntityID, error) {
	if f, ok := g.FriendAt(p); ok {
		switch f.Stats.Ability.(type) {
		case defs.FamilyPhoto:
			if !g.Session.PhotoUsed {
				return f.ID, g.TriggerFamilyPhoto(f.ID)
			}
		case defs.TrainRampage:
			if !g.Session.TrainUsed {
				return f.ID, g.TriggerTrainRampage(f.ID)
			}
		case defs.Moveable:
			if !g.Session.MoveUsed && g.Session.MovingFriend == 0 {
				return f.ID, g.BeginReposition(f.ID)
			}
		}
		if g.Session.MovingFriend == 0 {
			return f.ID, nil
		}
	}

	if g.Session.MovingFriend != 0 {
		return 0, g.Reposition(p)
	}
	if placing == "" {
		return 0, nil
	}
	id, err := g.PlaceFriend(placing, p)
	return id, err
}
