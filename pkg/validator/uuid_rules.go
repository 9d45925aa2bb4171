package validator

import (
	"github.com/google/uuid"
)

// IsUUID requires the canonical 36-character UUID form.
func IsUUID() Rule[string] {
	return textRule(UUID{}, isCanonicalUUID)
}

// ParseUUID records UUID for a malformed string and stops the chain. Otherwise the returned
// pipeline holds the parsed UUID.
func ParseUUID(p *Pipeline[string]) *Pipeline[uuid.UUID] {
	return ValidateAndMap(p, constant[string](UUID{}), isCanonicalUUID, uuid.MustParse)
}

// IsNotNilUUID rejects the all-zero UUID.
func IsNotNilUUID() Rule[uuid.UUID] {
	return Rule[uuid.UUID]{
		Constraint: constant[uuid.UUID](NotNull{}),
		Check:      func(v uuid.UUID) bool { return v != uuid.Nil },
	}
}

func isCanonicalUUID(v string) bool {
	// Fast rejection on length and hyphen positions before parsing
	if len(v) != 36 {
		return false
	}
	if v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
		return false
	}
	_, err := uuid.Parse(v)
	return err == nil
}
