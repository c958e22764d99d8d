package config

import (
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ExpandPath replaces every ${NAME} in template with the value env holds for
// NAME. Substituted values are inserted verbatim and not expanded again.
//
// If any variable is unset the result is discarded and a *LoadFileError naming
// the first missing variable is returned.
func ExpandPath(template string, env Env) (string, error) {
	matches := placeholderRe.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template, nil
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		name := template[m[2]:m[3]]
		val, ok := env.LookupEnv(name)
		if !ok {
			return "", &LoadFileError{Name: name, Template: template}
		}
		b.WriteString(template[last:m[0]])
		b.WriteString(val)
		last = m[1]
	}
	b.WriteString(template[last:])
	return b.String(), nil
}
