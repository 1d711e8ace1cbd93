package reqres

import (
	"net/url"
	"strconv"
)

// Request paths of the demo API, relative to the configured base URL.
const (
	PathUsers     = "/users"
	PathLogin     = "/login"
	PathRegister  = "/register"
	PathResources = "/unknown"
)

func UserPath(id int) string {
	return PathUsers + "/" + url.PathEscape(strconv.Itoa(id))
}

func ResourcePath(id int) string {
	return PathResources + "/" + url.PathEscape(strconv.Itoa(id))
}
