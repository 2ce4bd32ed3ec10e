package fundwatch

// hasRequiredFields reports whether every required canonical field name is
// present among the fields actually bound in an extracted table.
func hasRequiredFields(fields, required []string) bool {
	present := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		present[f] = struct{}{}
	}
	for _, r := range required {
		if _, ok := present[r]; !ok {
			return false
		}
	}
	return true
}

// missingFields returns the required field names absent from fields, for
// error messages.
func missingFields(fields, required []string) []string {
	present := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		present[f] = struct{}{}
	}
	var missing []string
	for _, r := range required {
		if _, ok := present[r]; !ok {
			missing = append(missing, r)
		}
	}
	return missing
}
