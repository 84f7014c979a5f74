package app

// CodexUpgrade: одно покупаемое улучшение в справочнике.
type CodexUpgrade struct {
	ID          string
	Name        string
	Cost        int
	Description string
}

// CodexEntry описывает тип друга для инфо-панели.
type CodexEntry struct {
	ID          string
	Name        string
	Cost        int
	Range       float64
	Description string
	Category    string
	Counters    []string // имена врагов, по которым урон x2
	ResistedBy  []string // имена врагов, по которым урон x0.5
	Upgrades    []CodexUpgrade
}

// Codex перечисляет типы друзей в порядке магазина.
func (g *Game) Codex() []CodexEntry {
	entries := make([]CodexEntry, 0, len(g.Library.FriendOrder))
	for _, id := range g.Library.FriendOrder {
		def, ok := g.Library.Friends[id]
		if !ok {
			continue
		}
		entry := CodexEntry{
			ID:          def.ID,
			Name:        def.Name,
			Cost:        def.Cost,
			Range:       def.Range,
			Description: def.Description,
			Category:    def.Category,
			Counters:    g.enemyNames(def.Strong),
			ResistedBy:  g.enemyNames(def.Weak),
		}
		for _, upID := range def.Upgrades {
			up, ok := g.Library.Upgrades[upID]
			if !ok {
				continue
			}
			entry.Upgrades = append(entry.Upgrades, CodexUpgrade{
				ID: up.ID, Name: up.Name, Cost: up.Cost, Description: up.Description,
			})
		}
		entries = append(entries, entry)
	}
	return entries
}

func (g *Game) enemyNames(ids []string) []string {
	var names []string
	for _, id := range ids {
		if e, ok := g.Library.Enemies[id]; ok {
			names = append(names, e.Name)
		} else {
			names = append(names, id)
		}
	}
	return names
}
