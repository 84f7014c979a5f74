// internal/types/types.go
package types

// EntityID: стабильный дескриптор сущности. Ноль никогда не выдаётся.
type EntityID uint64
