package zzd

import "regexp"

// codeRE is the fixed warning-code alphabet: class letter W or E
// followed by 3 or 4 digits. Codes outside the alphabet (N-prefixed
// notes among them) are discarded by the extractor.
var codeRE = regexp.MustCompile(`^[WE]\d{3,4}$`)

// severityByPrefix is the fixed class table.
var severityByPrefix = map[byte]Severity{
	'W': Warning,
	'E': Fatal,
}

// SeverityForCode maps a warning code to its severity via the fixed
// prefix table. ok is false for codes outside the W/E alphabet.
func SeverityForCode(code string) (Severity, bool) {
	if !codeRE.MatchString(code) {
		return "", false
	}
	sev, ok := severityByPrefix[code[0]]
	return sev, ok
}
