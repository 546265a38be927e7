package sd

import "strings"

// joinPath builds "<base>/<name>", avoiding a doubled separator when
// base already ends in one.
func joinPath(base, name string) string {
	if strings.HasSuffix(base, "/") {
		return base + name
	}
	return base + "/" + name
}

// baseName returns the portion of path after the final separator, or
// path itself when it contains none.
func baseName(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return path
	}
	return path[idx+1:]
}
