package app

import "go-social-defense/internal/system"

var reasons = []struct {
	err   error
	label string
}{
	{ErrOnPath, "on_path"},
	{ErrOccupied, "occupied"},
	{ErrInsufficientFunds, "funds"},
	{ErrUnknownFriend, "unknown_friend"},
	{ErrNoMoveInProgress, "no_move"},
	{ErrMapLocked, "map_locked"},
	{ErrUnknownMap, "unknown_map"},
	{system.ErrUpgradeSlotsFull, "slots_full"},
	{system.ErrDuplicateUpgrade, "duplicate_upgrade"},
	{system.ErrUpgradeNotAllowed, "upgrade_not_allowed"},
	{system.ErrUnknownUpgrade, "unknown_upgrade"},
	{system.ErrAbilityUsed, "ability_used"},
	{system.ErrWrongAbility, "wrong_ability"},
	{system.ErrWaveInProgress, "wave_in_progress"},
	{system.ErrGameOver, "game_over"},
	{system.ErrNoMap, "no_map"},
}
