// internal/entity/ecs.go
package entity

import (
	"go-social-defense/internal/component"
	"go-social-defense/internal/types"
)

// ECS хранит все сущности сессии. Срезы сохраняют порядок появления, индексы
// дают поиск по ID: промах поиска означает, что сущности больше нет.
type ECS struct {
	GameTime float64 // мс игрового времени
	NextID   types.EntityID

	Enemies     []*component.Enemy
	Friends     []*component.Friend
	Projectiles []*component.Projectile
	Trains      []*component.Train
	Bananas     []*component.Banana
	Bubbles     []*component.SpeechBubble

	enemyIndex  map[types.EntityID]*component.Enemy
	friendIndex map[types.EntityID]*component.Friend
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		enemyIndex:  make(map[types.EntityID]*component.Enemy),
		friendIndex: make(map[types.EntityID]*component.Friend),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy выдаёт ID и регистрирует врага.
func (ecs *ECS) AddEnemy(e *component.Enemy) types.EntityID {
	e.ID = ecs.NewEntity()
	ecs.Enemies = append(ecs.Enemies, e)
	ecs.enemyIndex[e.ID] = e
	return e.ID
}

// Enemy ищет врага по ID (живого или ждущего удаления).
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.enemyIndex[id]
	return e, ok
}

// AddFriend выдаёт ID и регистрирует друга.
func (ecs *ECS) AddFriend(f *component.Friend) types.EntityID {
	f.ID = ecs.NewEntity()
	ecs.Friends = append(ecs.Friends, f)
	ecs.friendIndex[f.ID] = f
	return f.ID
}

func (ecs *ECS) Friend(id types.EntityID) (*component.Friend, bool) {
	f, ok := ecs.friendIndex[id]
	return f, ok
}

func (ecs *ECS) AddProjectile(p *component.Projectile) {
	p.ID = ecs.NewEntity()
	ecs.Projectiles = append(ecs.Projectiles, p)
}

func (ecs *ECS) AddTrain(t *component.Train) {
	t.ID = ecs.NewEntity()
	ecs.Trains = append(ecs.Trains, t)
}

func (ecs *ECS) AddBanana(b *component.Banana) {
	ecs.Bananas = append(ecs.Bananas, b)
}

func (ecs *ECS) AddBubble(b *component.SpeechBubble) {
	ecs.Bubbles = append(ecs.Bubbles, b)
}

// LivingEnemies: враги, которые ещё держат волну.
func (ecs *ECS) LivingEnemies() int {
	n := 0
	for _, e := range ecs.Enemies {
		if e.Targetable() {
			n++
		}
	}
	return n
}

// Prune удаляет мёртвых врагов, отработавшие снаряды и эффекты.
func (ecs *ECS) Prune() {
	ecs.Enemies = filter(ecs.Enemies, func(e *component.Enemy) bool {
		if !e.Alive {
			delete(ecs.enemyIndex, e.ID)
			return false
		}
		return true
	})
	ecs.Projectiles = filter(ecs.Projectiles, func(p *component.Projectile) bool { return p.Alive })
	ecs.Trains = filter(ecs.Trains, func(t *component.Train) bool { return t.Alive() })
	ecs.Bananas = filter(ecs.Bananas, func(b *component.Banana) bool { return b.Life > 0 })
	ecs.Bubbles = filter(ecs.Bubbles, func(b *component.SpeechBubble) bool { return b.Life > 0 })
}

// Reset удаляет все сущности. Счётчик ID не сбрасывается, старые
// дескрипторы не попадут в новые сущности.
func (ecs *ECS) Reset() {
	ecs.ClearTransient()
	ecs.Friends = nil
	clear(ecs.friendIndex)
	ecs.GameTime = 0
}

// ClearTransient удаляет всё, кроме друзей.
func (ecs *ECS) ClearTransient() {
	ecs.Enemies = nil
	ecs.Projectiles = nil
	ecs.Trains = nil
	ecs.Bananas = nil
	ecs.Bubbles = nil
	clear(ecs.enemyIndex)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	clear(items[len(out):])
	return out
}
