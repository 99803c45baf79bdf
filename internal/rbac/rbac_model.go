package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// WildcardDomain and WildcardRole let a default policy row apply to every
// company or every role.
const (
	WildcardDomain = "*"
	WildcardRole   = "*"
)

const modelText = `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (p.sub == "*" || g(r.sub, p.sub, r.dom)) && (p.dom == "*" || r.dom == p.dom) && r.obj == p.obj && r.act == p.act
`

type Permission struct {
	Role     string
	Resource string
	Action   string
}

// DefaultPermissions apply to every company before its own role_permissions.
var DefaultPermissions = []Permission{
	{WildcardRole, "leave", "create"},
	{WildcardRole, "leave", "read"},
	{WildcardRole, "leave", "comment"},
	{WildcardRole, "employee", "read"},
	{WildcardRole, "notification", "read"},
	{"General Manager", "leave", "approve"},
	{"General Manager", "leave", "reject"},
	{"General Manager", "leave", "export"},
	{"General Manager", "employee", "create"},
	{"General Manager", "employee", "update"},
	{"General Manager", "employee", "delete"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}

// gmOnly actions may only be granted to the General Manager; company rows
// handing them to other roles are ignored.
var gmOnly = map[[2]string]bool{
	{"leave", "approve"}: true,
	{"leave", "reject"}:  true,
}

func isReservedGrant(role, resource, action string) bool {
	return gmOnly[[2]string{resource, action}] && role != "General Manager"
}
