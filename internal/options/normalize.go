package options

import "strings"

var separatorStripper = strings.NewReplacer("-", "", "_", "")

// Normalize turns a user spelling of an option name into its canonical key:
// lower case with every '-' and '_' removed, so "Prob-Specs_Dir" becomes
// "probspecsdir".
func Normalize(key string) string {
	return separatorStripper.Replace(strings.ToLower(key))
}
