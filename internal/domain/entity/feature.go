package entity

import "slices"

// FeatureKey names a boolean capability of a cafe, e.g. wifi or outdoor seating.
type FeatureKey string

const (
	FeatureWifi        FeatureKey = "wifi"
	FeatureView        FeatureKey = "view"
	FeaturePetFriendly FeatureKey = "petFriendly"
	FeatureParking     FeatureKey = "parking"
	FeatureAircon      FeatureKey = "aircon"
	FeatureOutdoor     FeatureKey = "outdoor"
	FeatureLiveMusic   FeatureKey = "liveMusic"
)

// Feature couples a feature key with its display label.
type Feature struct {
	Key   FeatureKey `json:"key"`
	Label string     `json:"label"`
}

// Features is the single source of truth for the known feature keys and their labels.
// Presentation code consumes this table instead of keeping its own dictionary.
var Features = []Feature{
	{Key: FeatureWifi, Label: "WiFi"},
	{Key: FeatureView, Label: "View"},
	{Key: FeaturePetFriendly, Label: "Pet"},
	{Key: FeatureParking, Label: "Parking"},
	{Key: FeatureAircon, Label: "AC"},
	{Key: FeatureOutdoor, Label: "Outdoor"},
	{Key: FeatureLiveMusic, Label: "Music"},
}

// String returns the string representation of the FeatureKey.
func (k FeatureKey) String() string {
	return string(k)
}

// IsValid reports whether the key is part of the static feature table.
func (k FeatureKey) IsValid() bool {
	return slices.ContainsFunc(Features, func(f Feature) bool { return f.Key == k })
}

// Label returns the display label of the key, falling back to the key itself.
func (k FeatureKey) Label() string {
	for _, f := range Features {
		if f.Key == k {
			return f.Label
		}
	}

	return string(k)
}

// FeatureSet maps feature keys to whether the cafe offers them. Missing keys read as false.
type FeatureSet map[FeatureKey]bool

// Has reports whether the feature is set to true.
func (fs FeatureSet) Has(key FeatureKey) bool {
	return fs[key]
}

// HasAll reports whether every key in keys is set to true.
func (fs FeatureSet) HasAll(keys []FeatureKey) bool {
	for _, key := range keys {
		if !fs[key] {
			return false
		}
	}

	return true
}

// Enabled lists the enabled keys in table order.
func (fs FeatureSet) Enabled() []FeatureKey {
	keys := make([]FeatureKey, 0, len(fs))
	for _, f := range Features {
		if fs[f.Key] {
			keys = append(keys, f.Key)
		}
	}

	return keys
}

// Clone returns a copy of the set.
func (fs FeatureSet) Clone() FeatureSet {
	if fs == nil {
		return nil
	}

	out := make(FeatureSet, len(fs))
	for k, v := range fs {
		out[k] = v
	}

	return out
}

// Normalized returns a set containing every known key with unknown keys dropped.
func (fs FeatureSet) Normalized() FeatureSet {
	out := make(FeatureSet, len(Features))
	for _, f := range Features {
		out[f.Key] = fs[f.Key]
	}

	return out
}

// ParseFeatureKey converts s to a FeatureKey, reporting whether it is a known key.
func ParseFeatureKey(s string) (FeatureKey, bool) {
	key := FeatureKey(s)

	return key, key.IsValid()
}
