package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "go-social-defense/internal/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Counters records gameplay counters. Without an installed MeterProvider the
// global no-op provider makes every call free.
type Counters struct {
	enemiesDefeated metric.Int64Counter
	enemiesLeaked   metric.Int64Counter
	wavesCompleted  metric.Int64Counter
	friendsPlaced   metric.Int64Counter
	upgrades        metric.Int64Counter
	rejections      metric.Int64Counter
}

// NewCounters registers the gameplay instruments on the global meter.
func NewCounters() (*Counters, error) {
	return NewCountersWith(meter())
}

// NewCountersWith registers the gameplay instruments on m.
func NewCountersWith(m metric.Meter) (*Counters, error) {
	c := &Counters{}
	var err error

	if c.enemiesDefeated, err = m.Int64Counter("game.enemies.defeated",
		metric.WithDescription("Enemies defeated by friends or trains")); err != nil {
		return nil, err
	}
	if c.enemiesLeaked, err = m.Int64Counter("game.enemies.leaked",
		metric.WithDescription("Enemies that reached the end of their path")); err != nil {
		return nil, err
	}
	if c.wavesCompleted, err = m.Int64Counter("game.waves.completed",
		metric.WithDescription("Waves survived")); err != nil {
		return nil, err
	}
	if c.friendsPlaced, err = m.Int64Counter("game.friends.placed",
		metric.WithDescription("Friends placed on the map")); err != nil {
		return nil, err
	}
	if c.upgrades, err = m.Int64Counter("game.upgrades.applied",
		metric.WithDescription("Upgrades purchased")); err != nil {
		return nil, err
	}
	if c.rejections, err = m.Int64Counter("game.actions.rejected",
		metric.WithDescription("Player actions rejected with a notice")); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Counters) EnemyDefeated(enemyType, attacker string) {
	c.enemiesDefeated.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("enemy", enemyType), attribute.String("attacker", attacker)))
}

func (c *Counters) EnemyLeaked(enemyType string) {
	c.enemiesLeaked.Add(context.Background(), 1, metric.WithAttributes(attribute.String("enemy", enemyType)))
}

func (c *Counters) WaveCompleted(wave int) {
	c.wavesCompleted.Add(context.Background(), 1, metric.WithAttributes(attribute.Int("wave", wave)))
}

func (c *Counters) FriendPlaced(friendType string) {
	c.friendsPlaced.Add(context.Background(), 1, metric.WithAttributes(attribute.String("friend", friendType)))
}

func (c *Counters) UpgradeApplied(friendType, upgrade string) {
	c.upgrades.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("friend", friendType), attribute.String("upgrade", upgrade)))
}

func (c *Counters) Rejected(reason string) {
	c.rejections.Add(context.Background(), 1, metric.WithAttributes(attribute.String("reason", reason)))
}
