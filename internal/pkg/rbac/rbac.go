// Package rbac holds the route permissions of the portal as a casbin policy.
// Requests are checked as (role, method, path) where path is relative to the
// versioned API prefix, e.g. "/doctors/doc-1".
package rbac

import (
	_ "embed"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
)

var (
	//go:embed model.conf
	modelConf string

	//go:embed policy.csv
	policyCSV string
)

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelConf)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m, stringadapter.NewAdapter(policyCSV))
}

// Allowed treats enforcement errors as a denial.
func Allowed(e *casbin.Enforcer, role, method, path string) bool {
	ok, err := e.Enforce(role, method, path)
	if err != nil {
		return false
	}
	return ok
}
