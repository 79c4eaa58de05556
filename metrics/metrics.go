// Package metrics defines the recorder the library reports into. The default
// is the noop recorder; the prometheus implementation registers collectors
// under the "paygate" namespace.
package metrics

import "time"

type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}
