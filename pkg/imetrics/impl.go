/*
 * Copyright (c) 2026-present TypeStore authors
 */

package imetrics

import "sync"

func Provide() IMetrics {
	return &mapMetrics{metrics: map[metric]float64{}}
}

type metric struct {
	name    string
	storage string
}

func (m *metric) Name() string {
	return m.name
}

func (m *metric) Storage() string {
	return m.storage
}

type mapMetrics struct {
	lock    sync.Mutex
	metrics map[metric]float64
}

func (m *mapMetrics) Increase(metricName string, storage string, valueDelta float64) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.metrics[metric{name: metricName, storage: storage}] += valueDelta
}

func (m *mapMetrics) List(cb func(metric IMetric, metricValue float64) (err error)) (err error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for key, value := range m.metrics {
		key := key
		if err = cb(&key, value); err != nil {
			return err
		}
	}
	return nil
}
