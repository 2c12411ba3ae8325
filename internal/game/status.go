package game

// Status is a read-only view of a role for the status endpoint and logs.
type Status struct {
	Role       string   `json:"role"`
	Phase      string   `json:"phase"`
	Address    string   `json:"address,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
	Word       string   `json:"word,omitempty"`
	Remaining  uint32   `json:"remaining"`
	Skeleton   string   `json:"skeleton,omitempty"`
	Guess      string   `json:"guess,omitempty"`
	Won        bool     `json:"won"`
}

func (r Role) phase() string {
	switch r.Kind {
	case RoleDrawer:
		return r.Drawer.Phase.String()
	case RoleGuesser:
		return r.Guesser.Phase.String()
	case RoleWaiting:
		return "waiting_for_connection"
	default:
		return "unknown"
	}
}

func (r Role) Status() Status {
	s := Status{Role: r.Kind.String(), Phase: r.phase()}

	switch r.Kind {
	case RoleWaiting:
		s.Address = r.Address
	case RoleDrawer:
		s.Candidates = r.Drawer.Candidates
		s.Word = r.Drawer.Word
		s.Remaining = r.Drawer.Remaining
		s.Won = r.Drawer.Won
	case RoleGuesser:
		s.Remaining = r.Guesser.Remaining
		s.Skeleton = r.Guesser.Skeleton
		s.Guess = r.Guesser.Guess
		s.Word = r.Guesser.Word
		s.Won = r.Guesser.Won
	}

	return s
}
