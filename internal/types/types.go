package types

// EntityID — уникальный идентификатор сущности в мире
type EntityID uint64
