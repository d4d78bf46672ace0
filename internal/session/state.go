package session

import "github.com/tyrone-yanaga/product-launcher/internal/domain"

// Kind identifies which state the session is in.
type Kind int

const (
	Idle Kind = iota
	Pending
	Error
	Success
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Error:
		return "error"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the session. Message is set only for Error,
// Result only for Success.
type State struct {
	Kind       Kind
	Message    string
	Result     *domain.OptimizationResult
	Generation uint64
	RequestID  string
}

// IsPending reports whether a request is in flight for the current generation.
func (s State) IsPending() bool { return s.Kind == Pending }
