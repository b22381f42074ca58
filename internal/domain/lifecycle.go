package domain

var allowedTransitions = map[State]map[State]struct{}{
	StateDiscovered: {
		StateEnhancing: {},
	},
	StateEnhancing: {
		StateEnhanced: {},
	},
	StateEnhanced: {
		StateEnhancing: {},
		StateApproved:  {},
		StateRejected:  {},
	},
	StateApproved: {},
	StateRejected: {},
}

// Valid reports whether s is a known lifecycle state.
func (s State) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// Terminal reports whether s has no outgoing edges.
func (s State) Terminal() bool {
	return s == StateApproved || s == StateRejected
}

// States lists every lifecycle state in progression order.
func States() []State {
	return []State{StateDiscovered, StateEnhancing, StateEnhanced, StateApproved, StateRejected}
}

// ParseState validates a state name coming from outside the process.
func ParseState(v string) (State, error) {
	s := State(v)
	if !s.Valid() {
		return "", Invalid("state", "unknown lifecycle state "+quote(v))
	}
	return s, nil
}

// ValidateTransition checks the edge from -> to against the transition table.
func ValidateTransition(from, to State) error {
	if !from.Valid() {
		return Invalid("state", "unknown lifecycle state "+quote(string(from)))
	}
	if !to.Valid() {
		return Invalid("targetState", "unknown lifecycle state "+quote(string(to)))
	}
	if _, ok := allowedTransitions[from][to]; !ok {
		return &TransitionError{Subject: "candidate", From: string(from), To: string(to)}
	}
	return nil
}

func quote(s string) string { return `"` + s + `"` }

var sessionTransitions = map[SessionStatus]map[SessionStatus]struct{}{
	SessionQueued: {
		SessionRunning: {},
		SessionFailed:  {},
	},
	SessionRunning: {
		SessionCompleted: {},
		SessionFailed:    {},
	},
	SessionCompleted: {},
	SessionFailed:    {},
}

// ValidateSessionTransition checks a discovery session status change.
func ValidateSessionTransition(from, to SessionStatus) error {
	if _, ok := sessionTransitions[from][to]; !ok {
		return &TransitionError{Subject: "discovery session", From: string(from), To: string(to)}
	}
	return nil
}
