package policy

// Per-resource access matrix, independent of transport. Routes consult this
// through middlewares.Permit instead of hard-coding auth per handler.

type Resource string

const (
	Category     Resource = "category"
	Issue        Resource = "issue"
	IssueImage   Resource = "issue-image"
	Vote         Resource = "vote"
	Comment      Resource = "comment"
	Rule         Resource = "rule"
	Profile      Resource = "profile"
	Notification Resource = "notification"
)

type Action string

const (
	Read  Action = "read"
	Write Action = "write"
)

// Principal is whatever the identity provider vouched for.
// A zero UserID means an anonymous caller.
type Principal struct {
	UserID uint
	Role   string
}

func (p Principal) Authenticated() bool {
	return p.UserID != 0
}

// needsAuth[resource][action] — true means anonymous callers are denied.
// Notifications are additionally owner-scoped, enforced by filtering in the
// repository rather than here.
var needsAuth = map[Resource]map[Action]bool{
	Category:     {Read: false, Write: false},
	Issue:        {Read: false, Write: true},
	IssueImage:   {Read: false, Write: true},
	Vote:         {Read: true, Write: true},
	Comment:      {Read: false, Write: true},
	Rule:         {Read: false, Write: false},
	Profile:      {Read: false, Write: true},
	Notification: {Read: true, Write: true},
}

func Allow(res Resource, act Action, p Principal) bool {
	actions, ok := needsAuth[res]
	if !ok {
		return false
	}
	required, ok := actions[act]
	if !ok {
		return false
	}
	if required && !p.Authenticated() {
		return false
	}
	return true
}
