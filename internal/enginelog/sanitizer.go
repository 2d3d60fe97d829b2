package enginelog

import "regexp"

// Sanitizer redacts secrets from a log line before it is written. This
// mirrors azcopy's SAS-token log scrubber, retargeted at the auth tokens
// this codebase actually handles (hf_token and bearer-style values).
type Sanitizer interface {
	Sanitize(line string) string
}

type tokenSanitizer struct {
	patterns []*regexp.Regexp
}

// NewTokenSanitizer builds a Sanitizer that blanks out hf_token=... query
// and kv-param style values, and Authorization: Bearer ... headers, so that
// StartJob params and pyannote auth tokens never land in a log file.
func NewTokenSanitizer() Sanitizer {
	return &tokenSanitizer{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(hf_token=)[^\s&"]+`),
			regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9\-_.=]+`),
			regexp.MustCompile(`(?i)(auth_token["']?\s*[:=]\s*["']?)[^\s&"',}]+`),
		},
	}
}

func (s *tokenSanitizer) Sanitize(line string) string {
	for _, p := range s.patterns {
		line = p.ReplaceAllString(line, "${1}REDACTED")
	}
	return line
}
