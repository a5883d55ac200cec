package service

// Administrator decides whether an identity may change marketplace settings
// and receives the marketplace fees.
type Administrator interface {
	IsAdministrator(identity string) bool
	Address() string
}

// StaticAdministrator is a single configured administrator address.
type StaticAdministrator struct {
	address string
}

func NewStaticAdministrator(address string) *StaticAdministrator {
	return &StaticAdministrator{address: address}
}

func (a *StaticAdministrator) IsAdministrator(identity string) bool {
	return identity != "" && identity == a.address
}

func (a *StaticAdministrator) Address() string {
	return a.address
}
