package domain

import "strings"

const keySeparator = "::"

// MakeKey builds the composite row key for a (unit, segment) identifier pair.
func MakeKey(unitID, segmentID string) string {
	return unitID + keySeparator + segmentID
}

// ParseKey splits a composite key back into its unit and segment identifiers.
// It is the inverse of MakeKey as long as neither identifier contains the
// separator; identifiers that do are not guarded against and split at the
// first occurrence.
func ParseKey(key string) (unitID, segmentID string) {
	unitID, segmentID, _ = strings.Cut(key, keySeparator)
	return unitID, segmentID
}
