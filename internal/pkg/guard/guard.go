// Package guard decides, from the request path and whether a session
// credential is present, if navigation must be redirected.
package guard

import "strings"

// Default paths
const (
	LoginPath = "/login"
	HomePath  = "/dashboard"
)

// DefaultProtected lists the page prefixes that need a session
var DefaultProtected = []string{
	"/dashboard",
	"/students",
	"/courses",
	"/enrollments",
	"/attendance",
	"/marks",
	"/library",
}

// Rules configures Decide
type Rules struct {
	LoginPath string
	HomePath  string
	Protected []string
}

// Default returns the rules used by the admin app
func Default() Rules {
	return Rules{
		LoginPath: LoginPath,
		HomePath:  HomePath,
		Protected: append([]string(nil), DefaultProtected...),
	}
}

// Decision is the outcome for one navigation
type Decision struct {
	Redirect bool
	Target   string
}

// Allow is the zero Decision
var Allow = Decision{}

// Decide applies the rules in order:
//  1. login page with a credential goes home
//  2. root or a protected page without a credential goes to login
//  3. everything else passes
func (r Rules) Decide(path string, hasCredential bool) Decision {
	path = normalize(path)

	if hasCredential && under(path, r.LoginPath) {
		return Decision{Redirect: true, Target: r.HomePath}
	}
	if !hasCredential && (path == "/" || r.protected(path)) {
		return Decision{Redirect: true, Target: r.LoginPath}
	}
	return Allow
}

func (r Rules) protected(path string) bool {
	for _, p := range r.Protected {
		if under(path, p) {
			return true
		}
	}
	return false
}

// under reports whether path equals prefix or lies in its subtree.
// "/students/12" is under "/students", "/studentsx" is not.
func under(path, prefix string) bool {
	prefix = normalize(prefix)
	if prefix == "/" {
		return path == "/"
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
