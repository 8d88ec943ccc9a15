package schedule

// Actor identifies the operator machine and account behind a board mutation,
// for audit logging.
type Actor struct {
	// Hostname is the machine name of the operator.
	Hostname string
	// Username is the operating system account of the operator.
	Username string
}

// Clone returns a deep copy of the actor, nil-safe.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}
