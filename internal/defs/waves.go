// internal/defs/waves.go
package defs

import "math"

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Enemies     []string `yaml:"enemies"` // типы врагов, чередуются по кругу
	Count       int      `yaml:"count"`   // базовое количество
}

// ScaledCount: floor(count × 1.1^(wave-1)).
func (w *WaveDefinition) ScaledCount(wave int) int {
	return int(math.Floor(float64(w.Count) * math.Pow(1.1, float64(wave-1))))
}

// EnemyAt возвращает тип врага для n-го появления в волне.
func (w *WaveDefinition) EnemyAt(n int) string {
	return w.Enemies[n%len(w.Enemies)]
}

// SpawnInterval: интервал появления в мс игрового времени для номера волны.
func SpawnInterval(wave int) float64 {
	return math.Max(800, 1800-float64(wave)*50)
}
