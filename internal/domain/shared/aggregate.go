package shared

// BaseAggregateRoot adds optimistic-version tracking and in-memory domain
// event collection on top of BaseEntity. Repositories compare Version in
// their UPDATE guards; a stale version surfaces as ErrConcurrencyConflict.
type BaseAggregateRoot struct {
	BaseEntity
	Version      int
	domainEvents []DomainEvent
}

// NewBaseAggregateRoot starts an aggregate at version 1.
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// GetVersion returns the version the aggregate was loaded at.
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion bumps the version; mutating operations call it so the
// persistence guard can detect concurrent writers.
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// AddDomainEvent records an event alongside the state change that caused it.
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns the events recorded since the aggregate was loaded.
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents drops the recorded events, typically after they have
// been logged or dispatched.
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}
