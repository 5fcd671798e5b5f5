package search

import "github.com/poiesic/retort/core"

// Monitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type Monitor interface {
	Start(input *core.Statement)
	PageLoaded(count int)
	Excluded(statement *core.Statement)
	NewBest(result *core.MatchResult)
	ThresholdReached(result *core.MatchResult)
	Finish(best *core.MatchResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.Statement)              {}
func (n *noopMonitor) PageLoaded(_ int)                     {}
func (n *noopMonitor) Excluded(_ *core.Statement)           {}
func (n *noopMonitor) NewBest(_ *core.MatchResult)          {}
func (n *noopMonitor) ThresholdReached(_ *core.MatchResult) {}
func (n *noopMonitor) Finish(_ *core.MatchResult)           {}
