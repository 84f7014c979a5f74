// internal/component/friend.go
package component

import (
	"slices"

	"go-social-defense/internal/defs"
	"go-social-defense/internal/types"
	"go-social-defense/pkg/geom"
)

// Friend: поставленный игроком защитник. Позиция меняется только
// одноразовым перемещением.
type Friend struct {
	ID       types.EntityID
	TypeID   string
	Name     string
	Position geom.Point

	Stats      defs.StatBlock // собственная копия, апгрейды меняют только её
	BaseDamage float64        // урон из таблицы, от него считается опыт

	FireCooldown    float64 // мс игрового времени до следующего выстрела
	TargetID        types.EntityID
	SpecialCooldown float64 // тики
	Upgrades        []string

	Experience *Experience   // только у учёного
	Grapples   []GrappleHold // только у борца
}

// HasUpgrade: применено ли улучшение id.
func (f *Friend) HasUpgrade(id string) bool {
	return slices.Contains(f.Upgrades, id)
}

// CreditFireCooldown приближает выстрел на ms, но не ниже нуля.
func (f *Friend) CreditFireCooldown(ms float64) {
	f.FireCooldown = max(0, f.FireCooldown-ms)
}
