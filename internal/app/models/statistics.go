package models

// Statistics is kept as the backend sent it; each role endpoint returns its
// own set of counters.
type Statistics map[string]interface{}
