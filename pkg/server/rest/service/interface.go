package service

type Metrics interface {
	ObservePrecision(precision int, axisMode string)
	ObserveResolveError(reason string)
}
