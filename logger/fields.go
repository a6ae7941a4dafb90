package logger

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldCycleID   = "cycle_id"
	FieldState     = "state"
	FieldReason    = "reason"
	FieldOperation = "operation"
	FieldProvider  = "provider"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
	FieldSizeBytes = "size_bytes"
	FieldPath      = "path"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("cycle done", logger.Fields("state", "success", "duration_ms", 1234))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}
