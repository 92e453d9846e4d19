package metrics

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// SessionMetric summarizes the attacks played in one session.
type SessionMetric struct {
	Territories int
	StartTime   time.Time
	Duration    time.Duration
	Attacks     int // Resolved attacks, Conquests + Repels
	Conquests   int
	Repels      int
	Rejections  int // Attempts refused before any dice were rolled
}

func (m SessionMetric) MarshalZerologObject(e *zerolog.Event) {
	e.Int("territories", m.Territories).
		Time("start_time", m.StartTime).
		Dur("duration", m.Duration).
		Int("attacks", m.Attacks).
		Int("conquests", m.Conquests).
		Int("repels", m.Repels).
		Int("rejections", m.Rejections)
}

type Collector interface {
	Start(territories int)
	AddConquest()
	AddRepel()
	AddRejection()
	Complete() SessionMetric
}

type collector struct {
	territories int
	startTime   time.Time
	conquests   atomic.Int32
	repels      atomic.Int32
	rejections  atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(territories int) {
	m.startTime = time.Now()
	m.territories = territories
}

func (m *collector) AddConquest() {
	m.conquests.Add(1)
}

func (m *collector) AddRepel() {
	m.repels.Add(1)
}

func (m *collector) AddRejection() {
	m.rejections.Add(1)
}

func (m *collector) Complete() SessionMetric {
	conquests := int(m.conquests.Load())
	repels := int(m.repels.Load())
	var duration time.Duration
	if !m.startTime.IsZero() {
		duration = time.Since(m.startTime)
	}
	return SessionMetric{
		Territories: m.territories,
		StartTime:   m.startTime,
		Duration:    duration,
		Attacks:     conquests + repels,
		Conquests:   conquests,
		Repels:      repels,
		Rejections:  int(m.rejections.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(territories int)   {}
func (m *dummyCollector) AddConquest()            {}
func (m *dummyCollector) AddRepel()               {}
func (m *dummyCollector) AddRejection()           {}
func (m *dummyCollector) Complete() SessionMetric { return SessionMetric{} }
