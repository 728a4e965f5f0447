package chat

// Registry evaluates an ordered rule table. Order is significant: rules
// with overlapping predicates (e.g. EXPENSE_MONTHLY before the generic
// EXPENSE_INSIGHTS) rely on first-match-wins semantics.
type Registry struct {
	rules []Rule
}

// NewRegistry creates a registry from rules in evaluation order.
func NewRegistry(rules ...Rule) *Registry {
	return &Registry{rules: rules}
}

// Register appends rules to the end of the evaluation order.
func (r *Registry) Register(rules ...Rule) {
	r.rules = append(r.rules, rules...)
}

// Rules returns the evaluation order (for tests and diagnostics).
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Dispatch returns the first matching rule's intent and reply.
// The boolean is false when no rule matched.
func (r *Registry) Dispatch(req *Request) (Intent, string, bool) {
	for _, rule := range r.rules {
		if rule.Match(req) {
			return rule.Intent, rule.Respond(req), true
		}
	}
	return "", "", false
}
