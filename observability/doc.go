// Package observability defines the Observer hook shared by errgate packages.
//
// Components accept an optional Observer (through fx with `optional:"true"`)
// and emit an OperationContext after each operation:
//
//	func (g *Gate) observeOperation(operation, resource string, start time.Time, err error, metadata map[string]interface{}) {
//		if g.observer == nil {
//			return
//		}
//		g.observer.ObserveOperation(observability.OperationContext{
//			Component: "reporting",
//			Operation: operation,
//			Resource:  resource,
//			Duration:  time.Since(start),
//			Error:     err,
//			Metadata:  metadata,
//		})
//	}
//
// The metrics package turns these events into Prometheus counters and
// histograms. NoOpObserver is available for tests.
package observability
