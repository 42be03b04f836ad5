package models

// NullableID maps an optional domain id to its column value. Empty ids become
// NULL so uuid columns never see the empty string.
func NullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

// IDValue maps a nullable id column back to the domain's empty-string form.
func IDValue(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}
