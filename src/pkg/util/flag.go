package util

import (
	"os"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

type NamedFlag struct {
	Value *string
	Name  string
}

// NamedStringFlag(workbookPtr, "--workbook"), can also use -workbook and workbook
func NamedStringFlag(flagPointer *string, cliName string) NamedFlag {
	return NamedFlag{
		Value: flagPointer,
		Name:  normalizeFlagName(cliName),
	}
}

func normalizeFlagName(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "--") {
		return s
	}
	if strings.HasPrefix(s, "-") {
		// single dash → double dash
		return "-" + s
	}
	return "--" + s
}

// RequireOneOf logs the expected flag names and exits(1) unless at least one
// of them was given a non-blank value.
func RequireOneOf(flags ...NamedFlag) {
	for _, f := range flags {
		if f.Value != nil && strings.TrimSpace(*f.Value) != "" {
			return
		}
	}
	names := make([]string, 0, len(flags))
	for _, f := range flags {
		names = append(names, f.Name)
	}
	tl.Log(tl.Warning, palette.YellowBold, "One of %s is %s", strings.Join(names, ", "), "required")
	os.Exit(1)
}
