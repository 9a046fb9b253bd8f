package engine

import "sort"

// Token identifies a scheduled decay. The zero Token means "nothing scheduled".
type Token uint64

type decayEvent struct {
	token    Token
	platform int
	at       float64
}

// DecayQueue holds pending breakable-platform decays keyed by platform id.
// Events fire when polled with a time at or past their due time; nothing runs
// in the background.
type DecayQueue struct {
	next    Token
	pending []decayEvent
}

// Schedule queues a decay of platform at time at and returns its cancellation token.
func (q *DecayQueue) Schedule(platform int, at float64) Token {
	q.next++
	q.pending = append(q.pending, decayEvent{token: q.next, platform: platform, at: at})
	return q.next
}

// Cancel removes the decay identified by t. It reports whether one was pending.
func (q *DecayQueue) Cancel(t Token) bool {
	if t == 0 {
		return false
	}
	for i, ev := range q.pending {
		if ev.token == t {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending decay.
func (q *DecayQueue) CancelAll() {
	q.pending = q.pending[:0]
}

// Pending returns the number of scheduled decays.
func (q *DecayQueue) Pending() int {
	return len(q.pending)
}

// ScheduledFor reports the due time of the pending decay for platform, if any.
func (q *DecayQueue) ScheduledFor(platform int) (float64, bool) {
	for _, ev := range q.pending {
		if ev.platform == platform {
			return ev.at, true
		}
	}
	return 0, false
}

// Due removes and returns the platforms whose decay time is <= now,
// ordered by due time and then by scheduling order.
func (q *DecayQueue) Due(now float64) []int {
	var fired []decayEvent
	kept := q.pending[:0]
	for _, ev := range q.pending {
		if ev.at <= now {
			fired = append(fired, ev)
		} else {
			kept = append(kept, ev)
		}
	}
	q.pending = kept
	if len(fired) == 0 {
		return nil
	}

	sort.SliceStable(fired, func(i, j int) bool {
		if fired[i].at != fired[j].at {
			return fired[i].at < fired[j].at
		}
		return fired[i].token < fired[j].token
	})

	ids := make([]int, len(fired))
	for i, ev := range fired {
		ids[i] = ev.platform
	}
	return ids
}
