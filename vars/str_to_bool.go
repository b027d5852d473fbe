package vars

import "strings"

func StrToBool(str string) bool {
	str = strings.ToLower(strings.TrimSpace(str))
	switch str {
	case "true", "t", "yes", "y", "on", "1":
		return true
	case "false", "f", "no", "n", "off", "0":
		return false
	}
	return false
}
