package user

// Plan is the subscription tier. Billing transitions happen elsewhere; the
// API only reads it to enforce limits.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

const FreeClientLimit = 10

func (p Plan) String() string {
	return string(p)
}

func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanPro:
		return true
	default:
		return false
	}
}

// ClientLimit returns the maximum number of clients, or -1 for unlimited.
func (p Plan) ClientLimit() int {
	if p == PlanPro {
		return -1
	}
	return FreeClientLimit
}

func NewPlan(s string) (Plan, error) {
	plan := Plan(s)
	if !plan.IsValid() {
		return "", ErrInvalidPlan
	}
	return plan, nil
}
