package providers

import "time"

// shutdownTimeout bounds graceful HTTP server shutdown; in-flight
// requests past this point are dropped.
const shutdownTimeout = 30 * time.Second
