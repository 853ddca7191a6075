package sanitize

// RemoveEmptyKeys recursively drops empty nested mappings and empty sequences
// from m in place and returns it. A mapping that becomes empty after its own
// children are cleaned is dropped too. Sequences are not descended into.
func RemoveEmptyKeys(m map[string]interface{}) map[string]interface{} {
	for k, v := range m {
		switch val := v.(type) {
		case map[string]interface{}:
			if len(RemoveEmptyKeys(val)) == 0 {
				delete(m, k)
			}
		case []interface{}:
			if len(val) == 0 {
				delete(m, k)
			}
		default:
			if seqLen(v) == 0 {
				delete(m, k)
			}
		}
	}
	return m
}
