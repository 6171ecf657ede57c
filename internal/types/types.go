// internal/types/types.go
package types

// EntityID — идентификатор сущности (0 означает отсутствие сущности)
type EntityID uint64
