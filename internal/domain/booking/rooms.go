package booking

type RoomLimits struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (l RoomLimits) Contains(rooms int) bool {
	return rooms >= l.Min && rooms <= l.Max
}

var defaultRoomLimits = RoomLimits{Min: 1, Max: 1}

type familyRule struct {
	adultsOnly   RoomLimits
	withChildren RoomLimits
}

func sameRule(min, max int) familyRule {
	l := RoomLimits{Min: min, Max: max}
	return familyRule{adultsOnly: l, withChildren: l}
}

// Family thresholds are a fixed business table keyed by party size, not a formula.
// A party of four adults needs two rooms while four with children may share one.
var familyRoomTable = map[int]familyRule{
	2: sameRule(1, 2),
	3: sameRule(1, 3),
	4: {adultsOnly: RoomLimits{Min: 2, Max: 4}, withChildren: RoomLimits{Min: 1, Max: 4}},
	5: sameRule(3, 5),
	6: sameRule(3, 6),
	7: sameRule(4, 7),
	8: sameRule(4, 8),
}

// GetRoomLimits resolves the selectable room range for a party.
// Unknown package types and negative counts still yield the {1,1} default
// alongside the error so callers that only render bounds keep working.
func GetRoomLimits(adults, children int, pt PackageType) (RoomLimits, error) {
	if adults < 0 || children < 0 {
		return defaultRoomLimits, ErrInvalidBookingInput
	}
	total := adults + children

	switch pt {
	case PackageSolo:
		return RoomLimits{Min: 1, Max: 1}, nil
	case PackageGroup:
		return RoomLimits{Min: 1, Max: ceilHalf(total)}, nil
	case PackageFamily:
		rule, ok := familyRoomTable[total]
		if !ok {
			return RoomLimits{Min: 1, Max: total}, nil
		}
		if children > 0 {
			return rule.withChildren, nil
		}
		return rule.adultsOnly, nil
	case PackagePrivate:
		return RoomLimits{Min: ceilHalf(adults), Max: adults}, nil
	default:
		return defaultRoomLimits, ErrInvalidPackageType
	}
}

func ceilHalf(n int) int {
	return (n + 1) / 2
}
