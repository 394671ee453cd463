package order

type Status string

const (
	StatusCreated Status = "created"
	StatusPaid    Status = "paid"
	StatusExpired Status = "expired"
)

// transitions lists every allowed move. paid is terminal; expired can still be
// settled because the processor may capture a payment after the sweep ran.
var transitions = map[Status][]Status{
	StatusCreated: {StatusPaid, StatusExpired},
	StatusExpired: {StatusPaid},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusPaid, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// SettleableStatuses are the states a settlement event may move to paid.
func SettleableStatuses() []Status {
	var out []Status
	for _, from := range []Status{StatusCreated, StatusExpired} {
		if CanTransition(from, StatusPaid) {
			out = append(out, from)
		}
	}
	return out
}
