package shell

// NextName returns the name following current in names, wrapping to the
// first after the last. It reports false when current is not in names.
func NextName(current string, names []string) (string, bool) {
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)], true
		}
	}
	return "", false
}
