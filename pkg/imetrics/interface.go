/*
 * Copyright (c) 2026-present TypeStore authors
 */

// Package imetrics is a small in-process metrics registry. Collaborators
// exposing an outer surface (HTTP, Prometheus, ...) scrape it via List.
package imetrics

type IMetric interface {
	Name() string

	// Storage is the storage kind the metric belongs to, "" when not
	// storage-bound.
	Storage() string
}

type IMetrics interface {
	// Increase adds valueDelta to the metric, creating it at 0 first.
	// Naming best practices: https://prometheus.io/docs/practices/naming/
	//
	// @ConcurrentAccess
	Increase(metricName string, storage string, valueDelta float64)

	// List calls cb with the current value of every metric.
	//
	// @ConcurrentAccess
	List(cb func(metric IMetric, metricValue float64) (err error)) (err error)
}
