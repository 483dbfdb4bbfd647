package model

import "time"

// StatePersistenceDuration is how long Done/IgnoredToday states survive
// between accesses before the auto-reset clears them. Never means the
// states are kept indefinitely.
type StatePersistenceDuration string

const (
	PersistZero           StatePersistenceDuration = "ZERO"
	PersistOneMinute      StatePersistenceDuration = "ONE_MINUTE"
	PersistFifteenMinutes StatePersistenceDuration = "FIFTEEN_MINUTES"
	PersistOneHour        StatePersistenceDuration = "ONE_HOUR"
	PersistOneDay         StatePersistenceDuration = "ONE_DAY"
	PersistNever          StatePersistenceDuration = "NEVER"
)

// DefaultStatePersistence is used when a checklist does not choose one.
const DefaultStatePersistence = PersistFifteenMinutes

type persistenceInfo struct {
	duration    time.Duration
	bounded     bool
	displayName string
}

var persistenceInfos = map[StatePersistenceDuration]persistenceInfo{
	PersistZero:           {0, true, "Reset immediately"},
	PersistOneMinute:      {time.Minute, true, "1 minute"},
	PersistFifteenMinutes: {15 * time.Minute, true, "15 minutes"},
	PersistOneHour:        {time.Hour, true, "1 hour"},
	PersistOneDay:         {24 * time.Hour, true, "1 day"},
	PersistNever:          {0, false, "Never"},
}

// StatePersistenceDurations lists the options in menu order.
func StatePersistenceDurations() []StatePersistenceDuration {
	return []StatePersistenceDuration{
		PersistZero, PersistOneMinute, PersistFifteenMinutes,
		PersistOneHour, PersistOneDay, PersistNever,
	}
}

// Valid reports whether p is a known option.
func (p StatePersistenceDuration) Valid() bool {
	_, ok := persistenceInfos[p]
	return ok
}

// Duration returns the threshold and whether it is bounded; Never reports
// bounded == false and callers must treat it as infinite.
func (p StatePersistenceDuration) Duration() (time.Duration, bool) {
	info := persistenceInfos[p]
	return info.duration, info.bounded
}

// Exceeded reports whether elapsed has passed the threshold. Never is never
// exceeded.
func (p StatePersistenceDuration) Exceeded(elapsed time.Duration) bool {
	d, bounded := p.Duration()
	return bounded && elapsed > d
}

// DisplayName returns the human-readable option label.
func (p StatePersistenceDuration) DisplayName() string {
	return persistenceInfos[p].displayName
}
